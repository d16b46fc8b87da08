package request

import (
	"licitax_advisor/internal/domain/entities"
)

type DocumentoCreateRequest struct {
	ClienteID string  `json:"clienteId" binding:"required"`
	Tipo      string  `json:"tipo" binding:"required"`
	Validade  *string `json:"validade"`
}

func (r DocumentoCreateRequest) ToEntity() (entities.Documento, error) {
	validade, err := parseDataOpcional(r.Validade)
	if err != nil {
		return entities.Documento{}, err
	}
	return entities.Documento{
		ClienteID: r.ClienteID,
		Tipo:      r.Tipo,
		Validade:  validade,
	}, nil
}

type DocumentoUpdateRequest struct {
	ClienteID *string `json:"clienteId"`
	Tipo      *string `json:"tipo"`
	Validade  *string `json:"validade"`
}

func (r DocumentoUpdateRequest) ToUpdate() (entities.DocumentoUpdate, error) {
	validade, err := parseDataOpcional(r.Validade)
	if err != nil {
		return entities.DocumentoUpdate{}, err
	}
	return entities.DocumentoUpdate{
		ClienteID: r.ClienteID,
		Tipo:      r.Tipo,
		Validade:  validade,
	}, nil
}
