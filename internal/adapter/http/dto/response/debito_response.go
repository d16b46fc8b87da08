package response

import (
	"licitax_advisor/internal/domain/entities"
)

type DebitoResponse struct {
	ID          string  `json:"id"`
	Tipo        string  `json:"tipo"`
	ClienteNome string  `json:"clienteNome"`
	CNPJ        string  `json:"cnpj,omitempty"`
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
	Vencimento  string  `json:"vencimento"`
	Referencia  string  `json:"referencia"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

func FromDebito(d entities.Debito) DebitoResponse {
	return DebitoResponse{
		ID:          d.ID,
		Tipo:        string(d.Tipo),
		ClienteNome: d.ClienteNome,
		CNPJ:        d.CNPJ,
		Descricao:   d.Descricao,
		Valor:       d.Valor,
		Vencimento:  formatData(d.Vencimento),
		Referencia:  formatData(d.Referencia),
		Status:      string(d.Status),
		CreatedAt:   formatData(d.CreatedAt),
	}
}

func FromDebitos(in []entities.Debito) []DebitoResponse {
	out := make([]DebitoResponse, 0, len(in))
	for _, d := range in {
		out = append(out, FromDebito(d))
	}
	return out
}
