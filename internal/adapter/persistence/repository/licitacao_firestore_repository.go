package repository

import (
	"context"
	"errors"
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

const defaultLicitacoesCollection = "licitacoes"

var errMissingRequiredDate = errors.New("missing required date field")

type comentarioDoc struct {
	Autor    string    `firestore:"autor,omitempty"`
	Texto    string    `firestore:"texto"`
	CriadoEm time.Time `firestore:"criadoEm"`
}

type licitacaoDoc struct {
	ClienteID       string          `firestore:"clienteId"`
	ClienteNome     string          `firestore:"clienteNome"`
	Numero          string          `firestore:"numero"`
	DataInicio      time.Time       `firestore:"dataInicio"`
	PrazoAnalise    time.Time       `firestore:"prazoAnalise"`
	DataHomologacao *time.Time      `firestore:"dataHomologacao,omitempty"`
	Status          string          `firestore:"status"`
	Checklist       map[string]bool `firestore:"checklist"`
	Comentarios     []comentarioDoc `firestore:"comentarios"`
	CreatedAt       time.Time       `firestore:"createdAt"`
}

// LicitacaoFirestoreRepository persists Licitacao entities in Firestore.
//
// Collection: licitacoes (override with LICITACOES_COLLECTION).
// List is ordered by dataInicio descending; documents that fail mapping
// (decode error or zero required date) are logged and skipped, never failing
// the whole batch.
type LicitacaoFirestoreRepository struct {
	db         *database.Firestore
	collection string
}

var _ interfaces.ILicitacaoRepository = (*LicitacaoFirestoreRepository)(nil)

func NewLicitacaoFirestoreRepository(db *database.Firestore) *LicitacaoFirestoreRepository {
	return &LicitacaoFirestoreRepository{
		db:         db,
		collection: getenvDefault("LICITACOES_COLLECTION", defaultLicitacoesCollection),
	}
}

func (r *LicitacaoFirestoreRepository) List(ctx context.Context) ([]entities.Licitacao, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	iter := cli.Collection(r.collection).OrderBy("dataInicio", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	out := make([]entities.Licitacao, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		l, err := licitacaoFromSnapshot(doc)
		if err != nil {
			log.Printf("[licitacao][repo] skipping malformed document id=%s err=%v", doc.Ref.ID, err)
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *LicitacaoFirestoreRepository) GetByID(ctx context.Context, id string) (entities.Licitacao, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Licitacao{}, err
	}

	doc, err := cli.Collection(r.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return entities.Licitacao{}, nil
	}
	if err != nil {
		return entities.Licitacao{}, err
	}
	return licitacaoFromSnapshot(doc)
}

func (r *LicitacaoFirestoreRepository) Create(ctx context.Context, l entities.Licitacao) (entities.Licitacao, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Licitacao{}, err
	}

	_, err = cli.Collection(r.collection).Doc(l.ID).Create(ctx, toLicitacaoDoc(l))
	if err != nil {
		return entities.Licitacao{}, err
	}
	return l, nil
}

func (r *LicitacaoFirestoreRepository) Update(ctx context.Context, id string, upd entities.LicitacaoUpdate) (entities.Licitacao, error) {
	cli, err := r.db.Acquire(ctx)
	if err != nil {
		return entities.Licitacao{}, err
	}

	updates := licitacaoUpdatePaths(upd)
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	_, err = cli.Collection(r.collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return entities.Licitacao{}, nil
	}
	if err != nil {
		return entities.Licitacao{}, err
	}
	return r.GetByID(ctx, id)
}

func toLicitacaoDoc(l entities.Licitacao) licitacaoDoc {
	return licitacaoDoc{
		ClienteID:       l.ClienteID,
		ClienteNome:     l.ClienteNome,
		Numero:          l.Numero,
		DataInicio:      l.DataInicio,
		PrazoAnalise:    l.PrazoAnalise,
		DataHomologacao: l.DataHomologacao,
		Status:          string(l.Status),
		Checklist:       l.Checklist,
		Comentarios:     toComentarioDocs(l.Comentarios),
		CreatedAt:       l.CreatedAt,
	}
}

func licitacaoFromSnapshot(doc *firestore.DocumentSnapshot) (entities.Licitacao, error) {
	var it licitacaoDoc
	if err := doc.DataTo(&it); err != nil {
		return entities.Licitacao{}, err
	}
	return licitacaoFromDoc(doc.Ref.ID, it)
}

func licitacaoFromDoc(id string, it licitacaoDoc) (entities.Licitacao, error) {
	if it.DataInicio.IsZero() || it.PrazoAnalise.IsZero() {
		return entities.Licitacao{}, errMissingRequiredDate
	}
	return entities.Licitacao{
		ID:              id,
		ClienteID:       it.ClienteID,
		ClienteNome:     it.ClienteNome,
		Numero:          it.Numero,
		DataInicio:      it.DataInicio,
		PrazoAnalise:    it.PrazoAnalise,
		DataHomologacao: it.DataHomologacao,
		Status:          entities.LicitacaoStatus(it.Status),
		Checklist:       it.Checklist,
		Comentarios:     fromComentarioDocs(it.Comentarios),
		CreatedAt:       it.CreatedAt,
	}, nil
}

func licitacaoUpdatePaths(upd entities.LicitacaoUpdate) []firestore.Update {
	out := make([]firestore.Update, 0, 8)
	if upd.ClienteID != nil {
		out = append(out, firestore.Update{Path: "clienteId", Value: *upd.ClienteID})
	}
	if upd.ClienteNome != nil {
		out = append(out, firestore.Update{Path: "clienteNome", Value: *upd.ClienteNome})
	}
	if upd.Numero != nil {
		out = append(out, firestore.Update{Path: "numero", Value: *upd.Numero})
	}
	if upd.DataInicio != nil {
		out = append(out, firestore.Update{Path: "dataInicio", Value: *upd.DataInicio})
	}
	if upd.PrazoAnalise != nil {
		out = append(out, firestore.Update{Path: "prazoAnalise", Value: *upd.PrazoAnalise})
	}
	if upd.DataHomologacao != nil {
		out = append(out, firestore.Update{Path: "dataHomologacao", Value: *upd.DataHomologacao})
	}
	if upd.Status != nil {
		out = append(out, firestore.Update{Path: "status", Value: string(*upd.Status)})
	}
	if upd.Checklist != nil {
		out = append(out, firestore.Update{Path: "checklist", Value: upd.Checklist})
	}
	if upd.Comentarios != nil {
		out = append(out, firestore.Update{Path: "comentarios", Value: toComentarioDocs(upd.Comentarios)})
	}
	return out
}

func toComentarioDocs(in []entities.Comentario) []comentarioDoc {
	out := make([]comentarioDoc, 0, len(in))
	for _, c := range in {
		out = append(out, comentarioDoc{Autor: c.Autor, Texto: c.Texto, CriadoEm: c.CriadoEm})
	}
	return out
}

func fromComentarioDocs(in []comentarioDoc) []entities.Comentario {
	out := make([]entities.Comentario, 0, len(in))
	for _, c := range in {
		out = append(out, entities.Comentario{Autor: c.Autor, Texto: c.Texto, CriadoEm: c.CriadoEm})
	}
	return out
}
