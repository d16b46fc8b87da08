package response

import (
	"licitax_advisor/internal/domain/entities"
)

type DocumentoResponse struct {
	ID          string `json:"id"`
	ClienteID   string `json:"clienteId"`
	ClienteNome string `json:"clienteNome"`
	Tipo        string `json:"tipo"`
	Validade    string `json:"validade,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func FromDocumento(d entities.Documento) DocumentoResponse {
	return DocumentoResponse{
		ID:          d.ID,
		ClienteID:   d.ClienteID,
		ClienteNome: d.ClienteNome,
		Tipo:        d.Tipo,
		Validade:    formatDataOpcional(d.Validade),
		CreatedAt:   formatData(d.CreatedAt),
	}
}

func FromDocumentos(in []entities.Documento) []DocumentoResponse {
	out := make([]DocumentoResponse, 0, len(in))
	for _, d := range in {
		out = append(out, FromDocumento(d))
	}
	return out
}
