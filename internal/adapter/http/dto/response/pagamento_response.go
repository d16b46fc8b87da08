package response

import (
	"licitax_advisor/internal/domain/entities"
)

type PagamentoResponse struct {
	ID       string `json:"id"`
	DebitoID string `json:"debitoId"`
	Date     string `json:"date"`
	Status   string `json:"status"`

	MPPayloadRaw string                 `json:"mpPayloadRaw,omitempty"`
	MPPayload    map[string]interface{} `json:"mpPayload,omitempty"`
}

func FromPagamento(p entities.Pagamento) PagamentoResponse {
	return PagamentoResponse{
		ID:           p.ID,
		DebitoID:     p.DebitoID,
		Date:         formatData(p.Date),
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
