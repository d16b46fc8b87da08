package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/usecase/interfaces"
)

var ErrInvalidValidacaoInput = errors.New("invalid validacao input")

// IValidacaoUseCase delegates document validation to the external collaborator
// (documents + criteria in, structured verdict out). No validation reasoning
// lives in this service.
type IValidacaoUseCase interface {
	Validate(ctx context.Context, documentos []entities.DocumentoParaValidacao, criterios string) (entities.ResultadoValidacao, error)
}

type ValidacaoUseCase struct {
	validator interfaces.IDocumentValidator
}

var _ IValidacaoUseCase = (*ValidacaoUseCase)(nil)

func NewValidacaoUseCase(validator interfaces.IDocumentValidator) *ValidacaoUseCase {
	return &ValidacaoUseCase{validator: validator}
}

func (u *ValidacaoUseCase) Validate(ctx context.Context, documentos []entities.DocumentoParaValidacao, criterios string) (entities.ResultadoValidacao, error) {
	criterios = strings.TrimSpace(criterios)
	if criterios == "" || len(documentos) == 0 {
		return entities.ResultadoValidacao{}, ErrInvalidValidacaoInput
	}
	for _, d := range documentos {
		if strings.TrimSpace(d.Nome) == "" {
			return entities.ResultadoValidacao{}, ErrInvalidValidacaoInput
		}
		if len(d.Conteudo) == 0 && strings.TrimSpace(d.GCSUri) == "" {
			return entities.ResultadoValidacao{}, ErrInvalidValidacaoInput
		}
	}
	if u.validator == nil {
		return entities.ResultadoValidacao{}, errors.New("document validator not configured")
	}

	log.Printf("[validacao][usecase] validate start documentos=%d criterios_len=%d", len(documentos), len(criterios))
	return u.validator.Validate(ctx, documentos, criterios)
}
