package request

import (
	"licitax_advisor/internal/domain/entities"
)

type ClienteCreateRequest struct {
	CNPJ        string `json:"cnpj" binding:"required"`
	RazaoSocial string `json:"razaoSocial" binding:"required"`
	Endereco    string `json:"endereco"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
}

func (r ClienteCreateRequest) ToEntity() entities.Cliente {
	return entities.Cliente{
		CNPJ:        r.CNPJ,
		RazaoSocial: r.RazaoSocial,
		Endereco:    r.Endereco,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
		CEP:         r.CEP,
	}
}

// ClienteUpdateRequest carries a partial field set; absent fields are left
// unchanged.
type ClienteUpdateRequest struct {
	CNPJ        *string `json:"cnpj"`
	RazaoSocial *string `json:"razaoSocial"`
	Endereco    *string `json:"endereco"`
	Cidade      *string `json:"cidade"`
	Estado      *string `json:"estado"`
	CEP         *string `json:"cep"`
}

func (r ClienteUpdateRequest) ToUpdate() entities.ClienteUpdate {
	return entities.ClienteUpdate{
		CNPJ:        r.CNPJ,
		RazaoSocial: r.RazaoSocial,
		Endereco:    r.Endereco,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
		CEP:         r.CEP,
	}
}
