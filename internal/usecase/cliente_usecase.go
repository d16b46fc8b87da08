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
	ErrClienteNotFound     = errors.New("cliente not found")
	ErrClienteCNPJEmUso    = errors.New("cnpj already registered")
	ErrInvalidClienteID    = errors.New("invalid cliente id")
	ErrInvalidClienteInput = errors.New("invalid cliente input")
)

// IClienteUseCase exposes Cliente registration operations.
//
// CNPJ is the uniqueness key: Create rejects a value already in use, Update
// re-runs the check excluding the cliente being updated.
type IClienteUseCase interface {
	List(ctx context.Context) ([]entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	Create(ctx context.Context, in entities.Cliente) (entities.Cliente, error)
	Update(ctx context.Context, id string, upd entities.ClienteUpdate) (entities.Cliente, error)
	Delete(ctx context.Context, id string) error
}

type ClienteUseCase struct {
	repo interfaces.IClienteRepository
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(repo interfaces.IClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

func (u *ClienteUseCase) List(ctx context.Context) ([]entities.Cliente, error) {
	return u.repo.List(ctx)
}

func (u *ClienteUseCase) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return c, nil
}

func (u *ClienteUseCase) Create(ctx context.Context, in entities.Cliente) (entities.Cliente, error) {
	in.CNPJ = strings.TrimSpace(in.CNPJ)
	in.RazaoSocial = strings.TrimSpace(in.RazaoSocial)
	if in.CNPJ == "" || in.RazaoSocial == "" {
		return entities.Cliente{}, ErrInvalidClienteInput
	}

	// Check-then-write; a concurrent create with the same CNPJ can slip
	// through (no multi-document transaction).
	existing, err := u.repo.GetByCNPJ(ctx, in.CNPJ)
	if err != nil {
		return entities.Cliente{}, err
	}
	if existing.ID != "" {
		log.Printf("[cliente][usecase] create rejected: cnpj already in use cnpj=%s existing_id=%s", in.CNPJ, existing.ID)
		return entities.Cliente{}, ErrClienteCNPJEmUso
	}

	in.ID = uuid.NewString()
	in.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, in)
}

func (u *ClienteUseCase) Update(ctx context.Context, id string, upd entities.ClienteUpdate) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}

	if upd.CNPJ != nil {
		cnpj := strings.TrimSpace(*upd.CNPJ)
		if cnpj == "" {
			return entities.Cliente{}, ErrInvalidClienteInput
		}
		upd.CNPJ = &cnpj

		existing, err := u.repo.GetByCNPJ(ctx, cnpj)
		if err != nil {
			return entities.Cliente{}, err
		}
		if existing.ID != "" && existing.ID != id {
			log.Printf("[cliente][usecase] update rejected: cnpj already in use cnpj=%s existing_id=%s", cnpj, existing.ID)
			return entities.Cliente{}, ErrClienteCNPJEmUso
		}
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.Cliente{}, err
	}
	if updated.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return updated, nil
}

func (u *ClienteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClienteID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrClienteNotFound
	}
	return nil
}
