package response

import (
	"licitax_advisor/internal/domain/entities"
)

type ComentarioResponse struct {
	Autor    string `json:"autor,omitempty"`
	Texto    string `json:"texto"`
	CriadoEm string `json:"criadoEm"`
}

type LicitacaoResponse struct {
	ID              string               `json:"id"`
	ClienteID       string               `json:"clienteId"`
	ClienteNome     string               `json:"clienteNome"`
	Numero          string               `json:"numero"`
	DataInicio      string               `json:"dataInicio"`
	PrazoAnalise    string               `json:"prazoAnalise"`
	DataHomologacao string               `json:"dataHomologacao,omitempty"`
	Status          string               `json:"status"`
	Checklist       map[string]bool      `json:"checklist"`
	Comentarios     []ComentarioResponse `json:"comentarios"`
	CreatedAt       string               `json:"createdAt"`
}

func FromLicitacao(l entities.Licitacao) LicitacaoResponse {
	comentarios := make([]ComentarioResponse, 0, len(l.Comentarios))
	for _, c := range l.Comentarios {
		comentarios = append(comentarios, ComentarioResponse{
			Autor:    c.Autor,
			Texto:    c.Texto,
			CriadoEm: formatData(c.CriadoEm),
		})
	}
	return LicitacaoResponse{
		ID:              l.ID,
		ClienteID:       l.ClienteID,
		ClienteNome:     l.ClienteNome,
		Numero:          l.Numero,
		DataInicio:      formatData(l.DataInicio),
		PrazoAnalise:    formatData(l.PrazoAnalise),
		DataHomologacao: formatDataOpcional(l.DataHomologacao),
		Status:          string(l.Status),
		Checklist:       l.Checklist,
		Comentarios:     comentarios,
		CreatedAt:       formatData(l.CreatedAt),
	}
}

func FromLicitacoes(in []entities.Licitacao) []LicitacaoResponse {
	out := make([]LicitacaoResponse, 0, len(in))
	for _, l := range in {
		out = append(out, FromLicitacao(l))
	}
	return out
}
