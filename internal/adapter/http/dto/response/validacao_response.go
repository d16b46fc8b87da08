package response

import (
	"licitax_advisor/internal/domain/entities"
)

type ValidacaoResponse struct {
	Completo  bool            `json:"completo"`
	Validade  map[string]bool `json:"validade"`
	Faltantes []string        `json:"faltantes"`
}

func FromResultadoValidacao(r entities.ResultadoValidacao) ValidacaoResponse {
	out := ValidacaoResponse{
		Completo:  r.Completo,
		Validade:  r.Validade,
		Faltantes: r.Faltantes,
	}
	if out.Validade == nil {
		out.Validade = map[string]bool{}
	}
	if out.Faltantes == nil {
		out.Faltantes = []string{}
	}
	return out
}
