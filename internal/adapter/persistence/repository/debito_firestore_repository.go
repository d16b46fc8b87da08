package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/infrastructure/database"
	"licitax_advisor/internal/usecase/interfaces"
)

const defaultDebitosCollection = "debitos"

type debitoDoc struct {
	Tipo        string    `firestore:"tipo"`
	ClienteNome string    `firestore:"clienteNome"`
	CNPJ        string    `firestore:"cnpj,omitempty"`
	Descricao   string    `firestore:"descricao"`
	Valor       float64   `firestore:"valor"`
	Vencimento  time.Time `firestore:"vencimento"`
	Referencia  time.Time `firestore:"referencia"`
	Status      string    `firestore:"status"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// DebitoFirestoreRepository persists Debito entities in Firestore.
//
// Collection: debitos (override with DEBITOS_COLLECTION).
// The only supported mutation is the single-field status transition.
type DebitoFirestoreRepository struct {
	db         *database.Firestore
	collection string
}

var _ interfaces.IDebitoRepository = (*DebitoFirestoreRepository)(nil)

func NewDebitoFirestoreRepository(db *database.Firestore) *DebitoFirestoreRepository {
	return &DebitoFirestoreRepository{
		db:         db,
		collection: getenvDefault("DEBITOS_COLLECTION", defaultDebitosCollection),
	}
}

func (r *DebitoFirestoreRepository) List(ctx context.Context) ([]entities.Debito, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	iter := cli.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	out := make([]entities.Debito, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		d, err := debitoFromSnapshot(doc)
		if err != nil {
			log.Printf("[debito][repo] skipping malformed document id=%s err=%v", doc.Ref.ID, err)
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *DebitoFirestoreRepository) GetByID(ctx context.Context, id string) (entities.Debito, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Debito{}, err
	}

	doc, err := cli.Collection(r.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return entities.Debito{}, nil
	}
	if err != nil {
		return entities.Debito{}, err
	}
	return debitoFromSnapshot(doc)
}

func (r *DebitoFirestoreRepository) Create(ctx context.Context, d entities.Debito) (entities.Debito, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Debito{}, err
	}

	_, err = cli.Collection(r.collection).Doc(d.ID).Create(ctx, toDebitoDoc(d))
	if err != nil {
		return entities.Debito{}, err
	}
	return d, nil
}

func (r *DebitoFirestoreRepository) UpdateStatus(ctx context.Context, id string, newStatus entities.DebitoStatus) (entities.Debito, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Debito{}, err
	}

	_, err = cli.Collection(r.collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(newStatus)},
	})
	if status.Code(err) == codes.NotFound {
		return entities.Debito{}, nil
	}
	if err != nil {
		return entities.Debito{}, err
	}
	return r.GetByID(ctx, id)
}

func toDebitoDoc(d entities.Debito) debitoDoc {
	return debitoDoc{
		Tipo:        string(d.Tipo),
		ClienteNome: d.ClienteNome,
		CNPJ:        d.CNPJ,
		Descricao:   d.Descricao,
		Valor:       d.Valor,
		Vencimento:  d.Vencimento,
		Referencia:  d.Referencia,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

func debitoFromSnapshot(doc *firestore.DocumentSnapshot) (entities.Debito, error) {
	var it debitoDoc
	if err := doc.DataTo(&it); err != nil {
		return entities.Debito{}, err
	}
	return debitoFromDoc(doc.Ref.ID, it)
}

func debitoFromDoc(id string, it debitoDoc) (entities.Debito, error) {
	if it.Vencimento.IsZero() {
		return entities.Debito{}, errMissingRequiredDate
	}
	return entities.Debito{
		ID:          id,
		Tipo:        entities.DebitoTipo(it.Tipo),
		ClienteNome: it.ClienteNome,
		CNPJ:        it.CNPJ,
		Descricao:   it.Descricao,
		Valor:       it.Valor,
		Vencimento:  it.Vencimento,
		Referencia:  it.Referencia,
		Status:      entities.DebitoStatus(it.Status),
		CreatedAt:   it.CreatedAt,
	}, nil
}
