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

const defaultClientesCollection = "clientes"

type clienteDoc struct {
	CNPJ        string    `firestore:"cnpj"`
	RazaoSocial string    `firestore:"razaoSocial"`
	Endereco    string    `firestore:"endereco,omitempty"`
	Cidade      string    `firestore:"cidade,omitempty"`
	Estado      string    `firestore:"estado,omitempty"`
	CEP         string    `firestore:"cep,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// ClienteFirestoreRepository persists Cliente entities in Firestore.
//
// Collection: clientes (override with CLIENTES_COLLECTION).
// The CNPJ uniqueness check (GetByCNPJ before a write) and the write itself
// are independent round-trips with no atomicity.
type ClienteFirestoreRepository struct {
	db         *database.Firestore
	collection string
}

var _ interfaces.IClienteRepository = (*ClienteFirestoreRepository)(nil)

func NewClienteFirestoreRepository(db *database.Firestore) *ClienteFirestoreRepository {
	return &ClienteFirestoreRepository{
		db:         db,
		collection: getenvDefault("CLIENTES_COLLECTION", defaultClientesCollection),
	}
}

func (r *ClienteFirestoreRepository) List(ctx context.Context) ([]entities.Cliente, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	iter := cli.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	out := make([]entities.Cliente, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		c, err := clienteFromSnapshot(doc)
		if err != nil {
			log.Printf("[cliente][repo] skipping malformed document id=%s err=%v", doc.Ref.ID, err)
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *ClienteFirestoreRepository) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Cliente{}, err
	}

	doc, err := cli.Collection(r.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return entities.Cliente{}, nil
	}
	if err != nil {
		return entities.Cliente{}, err
	}
	return clienteFromSnapshot(doc)
}

func (r *ClienteFirestoreRepository) GetByCNPJ(ctx context.Context, cnpj string) (entities.Cliente, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Cliente{}, err
	}

	iter := cli.Collection(r.collection).Where("cnpj", "==", cnpj).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return entities.Cliente{}, nil
	}
	if err != nil {
		return entities.Cliente{}, err
	}
	return clienteFromSnapshot(doc)
}

func (r *ClienteFirestoreRepository) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Cliente{}, err
	}

	_, err = cli.Collection(r.collection).Doc(c.ID).Create(ctx, toClienteDoc(c))
	if err != nil {
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteFirestoreRepository) Update(ctx context.Context, id string, upd entities.ClienteUpdate) (entities.Cliente, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Cliente{}, err
	}

	updates := clienteUpdatePaths(upd)
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	_, err = cli.Collection(r.collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return entities.Cliente{}, nil
	}
	if err != nil {
		return entities.Cliente{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ClienteFirestoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return false, err
	}

	ref := cli.Collection(r.collection).Doc(id)
	_, err = ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// No cascade: dependent licitações/documentos keep their denormalized name.
	if _, err := ref.Delete(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func toClienteDoc(c entities.Cliente) clienteDoc {
	return clienteDoc{
		CNPJ:        c.CNPJ,
		RazaoSocial: c.RazaoSocial,
		Endereco:    c.Endereco,
		Cidade:      c.Cidade,
		Estado:      c.Estado,
		CEP:         c.CEP,
		CreatedAt:   c.CreatedAt,
	}
}

func clienteFromSnapshot(doc *firestore.DocumentSnapshot) (entities.Cliente, error) {
	var it clienteDoc
	if err := doc.DataTo(&it); err != nil {
		return entities.Cliente{}, err
	}
	return entities.Cliente{
		ID:          doc.Ref.ID,
		CNPJ:        it.CNPJ,
		RazaoSocial: it.RazaoSocial,
		Endereco:    it.Endereco,
		Cidade:      it.Cidade,
		Estado:      it.Estado,
		CEP:         it.CEP,
		CreatedAt:   it.CreatedAt,
	}, nil
}

func clienteUpdatePaths(upd entities.ClienteUpdate) []firestore.Update {
	out := make([]firestore.Update, 0, 6)
	if upd.CNPJ != nil {
		out = append(out, firestore.Update{Path: "cnpj", Value: *upd.CNPJ})
	}
	if upd.RazaoSocial != nil {
		out = append(out, firestore.Update{Path: "razaoSocial", Value: *upd.RazaoSocial})
	}
	if upd.Endereco != nil {
		out = append(out, firestore.Update{Path: "endereco", Value: *upd.Endereco})
	}
	if upd.Cidade != nil {
		out = append(out, firestore.Update{Path: "cidade", Value: *upd.Cidade})
	}
	if upd.Estado != nil {
		out = append(out, firestore.Update{Path: "estado", Value: *upd.Estado})
	}
	if upd.CEP != nil {
		out = append(out, firestore.Update{Path: "cep", Value: *upd.CEP})
	}
	return out
}
