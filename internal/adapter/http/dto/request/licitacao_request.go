package request

import (
	"time"

	"licitax_advisor/internal/domain/entities"
)

type ComentarioRequest struct {
	Autor string `json:"autor"`
	Texto string `json:"texto" binding:"required"`
}

type LicitacaoCreateRequest struct {
	ClienteID       string              `json:"clienteId" binding:"required"`
	Numero          string              `json:"numero" binding:"required"`
	DataInicio      string              `json:"dataInicio" binding:"required"`
	PrazoAnalise    string              `json:"prazoAnalise" binding:"required"`
	DataHomologacao *string             `json:"dataHomologacao"`
	Checklist       map[string]bool     `json:"checklist"`
	Comentarios     []ComentarioRequest `json:"comentarios"`
}

func (r LicitacaoCreateRequest) ToEntity() (entities.Licitacao, error) {
	dataInicio, err := parseData(r.DataInicio)
	if err != nil {
		return entities.Licitacao{}, err
	}
	prazoAnalise, err := parseData(r.PrazoAnalise)
	if err != nil {
		return entities.Licitacao{}, err
	}
	dataHomologacao, err := parseDataOpcional(r.DataHomologacao)
	if err != nil {
		return entities.Licitacao{}, err
	}
	return entities.Licitacao{
		ClienteID:       r.ClienteID,
		Numero:          r.Numero,
		DataInicio:      dataInicio,
		PrazoAnalise:    prazoAnalise,
		DataHomologacao: dataHomologacao,
		Checklist:       r.Checklist,
		Comentarios:     toComentarios(r.Comentarios),
	}, nil
}

type LicitacaoUpdateRequest struct {
	ClienteID       *string             `json:"clienteId"`
	Numero          *string             `json:"numero"`
	DataInicio      *string             `json:"dataInicio"`
	PrazoAnalise    *string             `json:"prazoAnalise"`
	DataHomologacao *string             `json:"dataHomologacao"`
	Status          *string             `json:"status"`
	Checklist       map[string]bool     `json:"checklist"`
	Comentarios     []ComentarioRequest `json:"comentarios"`
}

func (r LicitacaoUpdateRequest) ToUpdate() (entities.LicitacaoUpdate, error) {
	dataInicio, err := parseDataOpcional(r.DataInicio)
	if err != nil {
		return entities.LicitacaoUpdate{}, err
	}
	prazoAnalise, err := parseDataOpcional(r.PrazoAnalise)
	if err != nil {
		return entities.LicitacaoUpdate{}, err
	}
	dataHomologacao, err := parseDataOpcional(r.DataHomologacao)
	if err != nil {
		return entities.LicitacaoUpdate{}, err
	}

	upd := entities.LicitacaoUpdate{
		ClienteID:       r.ClienteID,
		Numero:          r.Numero,
		DataInicio:      dataInicio,
		PrazoAnalise:    prazoAnalise,
		DataHomologacao: dataHomologacao,
		Checklist:       r.Checklist,
	}
	if r.Status != nil {
		status := entities.LicitacaoStatus(*r.Status)
		upd.Status = &status
	}
	if r.Comentarios != nil {
		upd.Comentarios = toComentarios(r.Comentarios)
	}
	return upd, nil
}

func toComentarios(in []ComentarioRequest) []entities.Comentario {
	now := time.Now().UTC()
	out := make([]entities.Comentario, 0, len(in))
	for _, c := range in {
		out = append(out, entities.Comentario{Autor: c.Autor, Texto: c.Texto, CriadoEm: now})
	}
	return out
}
