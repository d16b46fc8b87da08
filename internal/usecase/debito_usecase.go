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
	ErrDebitoNotFound      = errors.New("debito not found")
	ErrInvalidDebitoID     = errors.New("invalid debito id")
	ErrInvalidDebitoInput  = errors.New("invalid debito input")
	ErrInvalidDebitoStatus = errors.New("invalid debito status transition")
)

// IDebitoUseCase exposes billing-obligation operations.
//
// Create always starts a débito as PENDENTE; UpdateStatus only accepts the
// three post-pending values (PAGO, ENVIADO_FINANCEIRO, PAGO_VIA_ACORDO).
type IDebitoUseCase interface {
	List(ctx context.Context) ([]entities.Debito, error)
	GetByID(ctx context.Context, id string) (entities.Debito, error)
	Create(ctx context.Context, in entities.Debito) (entities.Debito, error)
	UpdateStatus(ctx context.Context, id string, status entities.DebitoStatus) (entities.Debito, error)
}

type DebitoUseCase struct {
	repo interfaces.IDebitoRepository
}

var _ IDebitoUseCase = (*DebitoUseCase)(nil)

func NewDebitoUseCase(repo interfaces.IDebitoRepository) *DebitoUseCase {
	return &DebitoUseCase{repo: repo}
}

func (u *DebitoUseCase) List(ctx context.Context) ([]entities.Debito, error) {
	return u.repo.List(ctx)
}

func (u *DebitoUseCase) GetByID(ctx context.Context, id string) (entities.Debito, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Debito{}, ErrInvalidDebitoID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Debito{}, err
	}
	if d.ID == "" {
		return entities.Debito{}, ErrDebitoNotFound
	}
	return d, nil
}

func (u *DebitoUseCase) Create(ctx context.Context, in entities.Debito) (entities.Debito, error) {
	in.ClienteNome = strings.TrimSpace(in.ClienteNome)
	in.Descricao = strings.TrimSpace(in.Descricao)
	if in.ClienteNome == "" || in.Descricao == "" || in.Valor < 0 || in.Vencimento.IsZero() {
		return entities.Debito{}, ErrInvalidDebitoInput
	}
	if in.Tipo == "" {
		in.Tipo = entities.DebitoTipoAvulso
	}
	if !in.Tipo.Valid() {
		return entities.Debito{}, ErrInvalidDebitoInput
	}

	now := time.Now().UTC()
	in.ID = uuid.NewString()
	in.Status = entities.DebitoStatusPendente
	if in.Referencia.IsZero() {
		in.Referencia = now
	}
	in.CreatedAt = now
	return u.repo.Create(ctx, in)
}

func (u *DebitoUseCase) UpdateStatus(ctx context.Context, id string, status entities.DebitoStatus) (entities.Debito, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Debito{}, ErrInvalidDebitoID
	}
	if !status.PosPendente() {
		log.Printf("[debito][usecase] status transition rejected id=%s status=%s", id, status)
		return entities.Debito{}, ErrInvalidDebitoStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Debito{}, err
	}
	if updated.ID == "" {
		return entities.Debito{}, ErrDebitoNotFound
	}
	return updated, nil
}
