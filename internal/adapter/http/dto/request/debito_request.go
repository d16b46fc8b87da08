package request

import (
	"licitax_advisor/internal/domain/entities"
)

type DebitoCreateRequest struct {
	Tipo        string  `json:"tipo"`
	ClienteNome string  `json:"clienteNome" binding:"required"`
	CNPJ        string  `json:"cnpj"`
	Descricao   string  `json:"descricao" binding:"required"`
	Valor       float64 `json:"valor" binding:"min=0"`
	Vencimento  string  `json:"vencimento" binding:"required"`
	Referencia  *string `json:"referencia"`
}

func (r DebitoCreateRequest) ToEntity() (entities.Debito, error) {
	vencimento, err := parseData(r.Vencimento)
	if err != nil {
		return entities.Debito{}, err
	}
	d := entities.Debito{
		Tipo:        entities.DebitoTipo(r.Tipo),
		ClienteNome: r.ClienteNome,
		CNPJ:        r.CNPJ,
		Descricao:   r.Descricao,
		Valor:       r.Valor,
		Vencimento:  vencimento,
	}
	referencia, err := parseDataOpcional(r.Referencia)
	if err != nil {
		return entities.Debito{}, err
	}
	if referencia != nil {
		d.Referencia = *referencia
	}
	return d, nil
}

// DebitoStatusRequest is the body of the status-transition operation, the only
// mutation débitos support.
type DebitoStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r DebitoStatusRequest) ToStatus() entities.DebitoStatus {
	return entities.DebitoStatus(r.Status)
}
