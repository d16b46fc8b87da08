package response

import (
	"time"

	"licitax_advisor/internal/domain/entities"
)

// Wire dates are ISO-8601 (RFC 3339) strings; optional dates are omitted when
// absent.

type ClienteResponse struct {
	ID          string `json:"id"`
	CNPJ        string `json:"cnpj"`
	RazaoSocial string `json:"razaoSocial"`
	Endereco    string `json:"endereco,omitempty"`
	Cidade      string `json:"cidade,omitempty"`
	Estado      string `json:"estado,omitempty"`
	CEP         string `json:"cep,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func FromCliente(c entities.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:          c.ID,
		CNPJ:        c.CNPJ,
		RazaoSocial: c.RazaoSocial,
		Endereco:    c.Endereco,
		Cidade:      c.Cidade,
		Estado:      c.Estado,
		CEP:         c.CEP,
		CreatedAt:   formatData(c.CreatedAt),
	}
}

func FromClientes(in []entities.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromCliente(c))
	}
	return out
}

func formatData(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatDataOpcional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatData(*t)
}
