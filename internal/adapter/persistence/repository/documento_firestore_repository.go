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

const defaultDocumentosCollection = "documentos"

type documentoDoc struct {
	ClienteID   string     `firestore:"clienteId"`
	ClienteNome string     `firestore:"clienteNome"`
	Tipo        string     `firestore:"tipo"`
	Validade    *time.Time `firestore:"validade,omitempty"`
	CreatedAt   time.Time  `firestore:"createdAt"`
}

// DocumentoFirestoreRepository persists Documento entities in Firestore.
//
// Collection: documentos (override with DOCUMENTOS_COLLECTION).
type DocumentoFirestoreRepository struct {
	db         *database.Firestore
	collection string
}

var _ interfaces.IDocumentoRepository = (*DocumentoFirestoreRepository)(nil)

func NewDocumentoFirestoreRepository(db *database.Firestore) *DocumentoFirestoreRepository {
	return &DocumentoFirestoreRepository{
		db:         db,
		collection: getenvDefault("DOCUMENTOS_COLLECTION", defaultDocumentosCollection),
	}
}

func (r *DocumentoFirestoreRepository) List(ctx context.Context) ([]entities.Documento, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	iter := cli.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	out := make([]entities.Documento, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		d, err := documentoFromSnapshot(doc)
		if err != nil {
			log.Printf("[documento][repo] skipping malformed document id=%s err=%v", doc.Ref.ID, err)
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *DocumentoFirestoreRepository) GetByID(ctx context.Context, id string) (entities.Documento, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Documento{}, err
	}

	doc, err := cli.Collection(r.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return entities.Documento{}, nil
	}
	if err != nil {
		return entities.Documento{}, err
	}
	return documentoFromSnapshot(doc)
}

func (r *DocumentoFirestoreRepository) Create(ctx context.Context, d entities.Documento) (entities.Documento, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Documento{}, err
	}

	_, err = cli.Collection(r.collection).Doc(d.ID).Create(ctx, toDocumentoDoc(d))
	if err != nil {
		return entities.Documento{}, err
	}
	return d, nil
}

func (r *DocumentoFirestoreRepository) Update(ctx context.Context, id string, upd entities.DocumentoUpdate) (entities.Documento, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Documento{}, err
	}

	updates := documentoUpdatePaths(upd)
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	_, err = cli.Collection(r.collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return entities.Documento{}, nil
	}
	if err != nil {
		return entities.Documento{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *DocumentoFirestoreRepository) Delete(ctx context.Context, id string) (bool, error) {
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

	if _, err := ref.Delete(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func toDocumentoDoc(d entities.Documento) documentoDoc {
	return documentoDoc{
		ClienteID:   d.ClienteID,
		ClienteNome: d.ClienteNome,
		Tipo:        d.Tipo,
		Validade:    d.Validade,
		CreatedAt:   d.CreatedAt,
	}
}

func documentoFromSnapshot(doc *firestore.DocumentSnapshot) (entities.Documento, error) {
	var it documentoDoc
	if err := doc.DataTo(&it); err != nil {
		return entities.Documento{}, err
	}
	return entities.Documento{
		ID:          doc.Ref.ID,
		ClienteID:   it.ClienteID,
		ClienteNome: it.ClienteNome,
		Tipo:        it.Tipo,
		Validade:    it.Validade,
		CreatedAt:   it.CreatedAt,
	}, nil
}

func documentoUpdatePaths(upd entities.DocumentoUpdate) []firestore.Update {
	out := make([]firestore.Update, 0, 4)
	if upd.ClienteID != nil {
		out = append(out, firestore.Update{Path: "clienteId", Value: *upd.ClienteID})
	}
	if upd.ClienteNome != nil {
		out = append(out, firestore.Update{Path: "clienteNome", Value: *upd.ClienteNome})
	}
	if upd.Tipo != nil {
		out = append(out, firestore.Update{Path: "tipo", Value: *upd.Tipo})
	}
	if upd.Validade != nil {
		out = append(out, firestore.Update{Path: "validade", Value: *upd.Validade})
	}
	return out
}
