package request

import (
	"licitax_advisor/internal/domain/entities"
)

// Query DTOs for the PNCP consulta proxy. Dates use the AAAAMMDD format the
// upstream API expects; they are forwarded, not reinterpreted.

type ConsultaContratacoesRequest struct {
	DataInicial      string `form:"dataInicial" binding:"required"`
	DataFinal        string `form:"dataFinal" binding:"required"`
	CodigoModalidade int    `form:"codigoModalidadeContratacao"`
	UF               string `form:"uf"`
	Pagina           int    `form:"pagina"`
	TamanhoPagina    int    `form:"tamanhoPagina"`
}

func (r ConsultaContratacoesRequest) ToFiltro() entities.ConsultaContratacoes {
	return entities.ConsultaContratacoes{
		DataInicial:      r.DataInicial,
		DataFinal:        r.DataFinal,
		CodigoModalidade: r.CodigoModalidade,
		UF:               r.UF,
		Pagina:           r.Pagina,
		TamanhoPagina:    r.TamanhoPagina,
	}
}

type ConsultaContratosRequest struct {
	DataInicial   string `form:"dataInicial" binding:"required"`
	DataFinal     string `form:"dataFinal" binding:"required"`
	CNPJOrgao     string `form:"cnpjOrgao"`
	Pagina        int    `form:"pagina"`
	TamanhoPagina int    `form:"tamanhoPagina"`
}

func (r ConsultaContratosRequest) ToFiltro() entities.ConsultaContratos {
	return entities.ConsultaContratos{
		DataInicial:   r.DataInicial,
		DataFinal:     r.DataFinal,
		CNPJOrgao:     r.CNPJOrgao,
		Pagina:        r.Pagina,
		TamanhoPagina: r.TamanhoPagina,
	}
}
