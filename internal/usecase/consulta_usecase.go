package usecase

import (
	"context"
	"errors"
	"strings"

	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/usecase/interfaces"
)

var ErrInvalidConsultaPeriodo = errors.New("invalid consulta period")

const defaultTamanhoPagina = 50

// IConsultaUseCase forwards read-only queries to the PNCP open-data API.
// Upstream responses come back unmodified, error payloads included.
type IConsultaUseCase interface {
	Contratacoes(ctx context.Context, f entities.ConsultaContratacoes) (entities.RespostaProxy, error)
	Contratos(ctx context.Context, f entities.ConsultaContratos) (entities.RespostaProxy, error)
}

type ConsultaUseCase struct {
	pncp interfaces.IConsultaPNCP
}

var _ IConsultaUseCase = (*ConsultaUseCase)(nil)

func NewConsultaUseCase(pncp interfaces.IConsultaPNCP) *ConsultaUseCase {
	return &ConsultaUseCase{pncp: pncp}
}

func (u *ConsultaUseCase) Contratacoes(ctx context.Context, f entities.ConsultaContratacoes) (entities.RespostaProxy, error) {
	f.DataInicial = strings.TrimSpace(f.DataInicial)
	f.DataFinal = strings.TrimSpace(f.DataFinal)
	if f.DataInicial == "" || f.DataFinal == "" {
		return entities.RespostaProxy{}, ErrInvalidConsultaPeriodo
	}
	if f.Pagina <= 0 {
		f.Pagina = 1
	}
	if f.TamanhoPagina <= 0 {
		f.TamanhoPagina = defaultTamanhoPagina
	}
	return u.pncp.ConsultarContratacoes(ctx, f)
}

func (u *ConsultaUseCase) Contratos(ctx context.Context, f entities.ConsultaContratos) (entities.RespostaProxy, error) {
	f.DataInicial = strings.TrimSpace(f.DataInicial)
	f.DataFinal = strings.TrimSpace(f.DataFinal)
	if f.DataInicial == "" || f.DataFinal == "" {
		return entities.RespostaProxy{}, ErrInvalidConsultaPeriodo
	}
	if f.Pagina <= 0 {
		f.Pagina = 1
	}
	if f.TamanhoPagina <= 0 {
		f.TamanhoPagina = defaultTamanhoPagina
	}
	return u.pncp.ConsultarContratos(ctx, f)
}
