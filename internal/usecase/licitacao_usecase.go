package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/usecase/interfaces"
)

var (
	ErrLicitacaoNotFound      = errors.New("licitacao not found")
	ErrInvalidLicitacaoID     = errors.New("invalid licitacao id")
	ErrInvalidLicitacaoInput  = errors.New("invalid licitacao input")
	ErrInvalidLicitacaoStatus = errors.New("invalid licitacao status")
)

// ILicitacaoUseCase exposes bid-tracking operations.
//
// Create resolves the referenced Cliente and copies its razão social onto the
// licitação (denormalization-on-write); Update re-resolves it whenever the
// cliente reference changes.
type ILicitacaoUseCase interface {
	List(ctx context.Context) ([]entities.Licitacao, error)
	GetByID(ctx context.Context, id string) (entities.Licitacao, error)
	Create(ctx context.Context, in entities.Licitacao) (entities.Licitacao, error)
	Update(ctx context.Context, id string, upd entities.LicitacaoUpdate) (entities.Licitacao, error)
}

type LicitacaoUseCase struct {
	repo        interfaces.ILicitacaoRepository
	clienteRepo interfaces.IClienteRepository
}

var _ ILicitacaoUseCase = (*LicitacaoUseCase)(nil)

func NewLicitacaoUseCase(repo interfaces.ILicitacaoRepository, clienteRepo interfaces.IClienteRepository) *LicitacaoUseCase {
	return &LicitacaoUseCase{repo: repo, clienteRepo: clienteRepo}
}

func (u *LicitacaoUseCase) List(ctx context.Context) ([]entities.Licitacao, error) {
	return u.repo.List(ctx)
}

func (u *LicitacaoUseCase) GetByID(ctx context.Context, id string) (entities.Licitacao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Licitacao{}, ErrInvalidLicitacaoID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Licitacao{}, err
	}
	if l.ID == "" {
		return entities.Licitacao{}, ErrLicitacaoNotFound
	}
	return l, nil
}

func (u *LicitacaoUseCase) Create(ctx context.Context, in entities.Licitacao) (entities.Licitacao, error) {
	in.ClienteID = strings.TrimSpace(in.ClienteID)
	in.Numero = strings.TrimSpace(in.Numero)
	if in.ClienteID == "" || in.Numero == "" || in.DataInicio.IsZero() || in.PrazoAnalise.IsZero() {
		return entities.Licitacao{}, ErrInvalidLicitacaoInput
	}

	nome, err := u.resolveClienteNome(ctx, in.ClienteID)
	if err != nil {
		return entities.Licitacao{}, err
	}
	in.ClienteNome = nome

	in.ID = uuid.NewString()
	// Status is fixed at creation; callers cannot pick another initial value.
	in.Status = entities.LicitacaoStatusAguardandoAnalise
	if in.Checklist == nil {
		in.Checklist = map[string]bool{}
	}
	if in.Comentarios == nil {
		in.Comentarios = []entities.Comentario{}
	}
	in.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, in)
}

func (u *LicitacaoUseCase) Update(ctx context.Context, id string, upd entities.LicitacaoUpdate) (entities.Licitacao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Licitacao{}, ErrInvalidLicitacaoID
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return entities.Licitacao{}, ErrInvalidLicitacaoStatus
	}

	if upd.ClienteID != nil {
		clienteID := strings.TrimSpace(*upd.ClienteID)
		if clienteID == "" {
			return entities.Licitacao{}, ErrInvalidLicitacaoInput
		}
		upd.ClienteID = &clienteID

		nome, err := u.resolveClienteNome(ctx, clienteID)
		if err != nil {
			return entities.Licitacao{}, err
		}
		upd.ClienteNome = &nome
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.Licitacao{}, err
	}
	if updated.ID == "" {
		return entities.Licitacao{}, ErrLicitacaoNotFound
	}
	return updated, nil
}

func (u *LicitacaoUseCase) resolveClienteNome(ctx context.Context, clienteID string) (string, error) {
	cliente, err := u.clienteRepo.GetByID(ctx, clienteID)
	if err != nil {
		return "", err
	}
	if cliente.ID == "" {
		log.Printf("[licitacao][usecase] cliente reference not found cliente_id=%s", clienteID)
		return "", ErrClienteNotFound
	}
	return cliente.RazaoSocial, nil
}
