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
	ErrDocumentoNotFound     = errors.New("documento not found")
	ErrInvalidDocumentoID    = errors.New("invalid documento id")
	ErrInvalidDocumentoInput = errors.New("invalid documento input")
)

// IDocumentoUseCase exposes compliance-artifact operations. Same
// denormalization contract as licitações: the cliente name is copied at write
// time and re-resolved when the reference changes.
type IDocumentoUseCase interface {
	List(ctx context.Context) ([]entities.Documento, error)
	GetByID(ctx context.Context, id string) (entities.Documento, error)
	Create(ctx context.Context, in entities.Documento) (entities.Documento, error)
	Update(ctx context.Context, id string, upd entities.DocumentoUpdate) (entities.Documento, error)
	Delete(ctx context.Context, id string) error
}

type DocumentoUseCase struct {
	repo        interfaces.IDocumentoRepository
	clienteRepo interfaces.IClienteRepository
}

var _ IDocumentoUseCase = (*DocumentoUseCase)(nil)

func NewDocumentoUseCase(repo interfaces.IDocumentoRepository, clienteRepo interfaces.IClienteRepository) *DocumentoUseCase {
	return &DocumentoUseCase{repo: repo, clienteRepo: clienteRepo}
}

func (u *DocumentoUseCase) List(ctx context.Context) ([]entities.Documento, error) {
	return u.repo.List(ctx)
}

func (u *DocumentoUseCase) GetByID(ctx context.Context, id string) (entities.Documento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Documento{}, ErrInvalidDocumentoID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Documento{}, err
	}
	if d.ID == "" {
		return entities.Documento{}, ErrDocumentoNotFound
	}
	return d, nil
}

func (u *DocumentoUseCase) Create(ctx context.Context, in entities.Documento) (entities.Documento, error) {
	in.ClienteID = strings.TrimSpace(in.ClienteID)
	in.Tipo = strings.TrimSpace(in.Tipo)
	if in.ClienteID == "" || in.Tipo == "" {
		return entities.Documento{}, ErrInvalidDocumentoInput
	}

	cliente, err := u.clienteRepo.GetByID(ctx, in.ClienteID)
	if err != nil {
		return entities.Documento{}, err
	}
	if cliente.ID == "" {
		log.Printf("[documento][usecase] cliente reference not found cliente_id=%s", in.ClienteID)
		return entities.Documento{}, ErrClienteNotFound
	}
	in.ClienteNome = cliente.RazaoSocial

	in.ID = uuid.NewString()
	in.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, in)
}

func (u *DocumentoUseCase) Update(ctx context.Context, id string, upd entities.DocumentoUpdate) (entities.Documento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Documento{}, ErrInvalidDocumentoID
	}

	if upd.ClienteID != nil {
		clienteID := strings.TrimSpace(*upd.ClienteID)
		if clienteID == "" {
			return entities.Documento{}, ErrInvalidDocumentoInput
		}
		upd.ClienteID = &clienteID

		cliente, err := u.clienteRepo.GetByID(ctx, clienteID)
		if err != nil {
			return entities.Documento{}, err
		}
		if cliente.ID == "" {
			return entities.Documento{}, ErrClienteNotFound
		}
		upd.ClienteNome = &cliente.RazaoSocial
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.Documento{}, err
	}
	if updated.ID == "" {
		return entities.Documento{}, ErrDocumentoNotFound
	}
	return updated, nil
}

func (u *DocumentoUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDocumentoID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrDocumentoNotFound
	}
	return nil
}
