package repository

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/infrastructure/database"
	"licitax_advisor/internal/usecase/interfaces"
)

const defaultPagamentosCollection = "pagamentos"

type pagamentoDoc struct {
	DebitoID     string                 `firestore:"debitoId"`
	Date         time.Time              `firestore:"date"`
	Status       string                 `firestore:"status"`
	MPPayload    map[string]interface{} `firestore:"mpPayload,omitempty"`
	MPPayloadRaw string                 `firestore:"mpPayloadRaw,omitempty"`
}

// PagamentoFirestoreRepository persists Pagamento entities in Firestore.
//
// Collection: pagamentos (override with PAGAMENTOS_COLLECTION).
// The doc id is the provider payment id.
type PagamentoFirestoreRepository struct {
	db         *database.Firestore
	collection string
}

var _ interfaces.IPagamentoRepository = (*PagamentoFirestoreRepository)(nil)

func NewPagamentoFirestoreRepository(db *database.Firestore) *PagamentoFirestoreRepository {
	return &PagamentoFirestoreRepository{
		db:         db,
		collection: getenvDefault("PAGAMENTOS_COLLECTION", defaultPagamentosCollection),
	}
}

func (r *PagamentoFirestoreRepository) Create(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Pagamento{}, err
	}

	_, err = cli.Collection(r.collection).Doc(p.ID).Create(ctx, toPagamentoDoc(p))
	if err != nil {
		return entities.Pagamento{}, err
	}
	return p, nil
}

func (r *PagamentoFirestoreRepository) GetByID(ctx context.Context, id string) (entities.Pagamento, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Pagamento{}, err
	}

	doc, err := cli.Collection(r.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return entities.Pagamento{}, nil
	}
	if err != nil {
		return entities.Pagamento{}, err
	}
	return pagamentoFromSnapshot(doc)
}

func (r *PagamentoFirestoreRepository) ListByDebitoID(ctx context.Context, debitoID string) ([]entities.Pagamento, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	iter := cli.Collection(r.collection).Where("debitoId", "==", debitoID).Documents(ctx)
	defer iter.Stop()

	out := make([]entities.Pagamento, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := pagamentoFromSnapshot(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func toPagamentoDoc(p entities.Pagamento) pagamentoDoc {
	return pagamentoDoc{
		DebitoID:     p.DebitoID,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func pagamentoFromSnapshot(doc *firestore.DocumentSnapshot) (entities.Pagamento, error) {
	var it pagamentoDoc
	if err := doc.DataTo(&it); err != nil {
		return entities.Pagamento{}, err
	}
	return entities.Pagamento{
		ID:           doc.Ref.ID,
		DebitoID:     it.DebitoID,
		Date:         it.Date,
		Status:       entities.PagamentoStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: json.RawMessage(it.MPPayloadRaw),
	}, nil
}
