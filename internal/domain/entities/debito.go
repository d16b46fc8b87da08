package entities

import "time"

// DebitoTipo distinguishes ad-hoc charges from system-generated ones.
type DebitoTipo string

const (
	DebitoTipoAvulso  DebitoTipo = "AVULSO"
	DebitoTipoSistema DebitoTipo = "SISTEMA"
)

func (t DebitoTipo) Valid() bool {
	return t == DebitoTipoAvulso || t == DebitoTipoSistema
}

// DebitoStatus is the debt lifecycle. New débitos always start PENDENTE and
// may only transition to one of the post-pending values.
type DebitoStatus string

const (
	DebitoStatusPendente          DebitoStatus = "PENDENTE"
	DebitoStatusPago              DebitoStatus = "PAGO"
	DebitoStatusEnviadoFinanceiro DebitoStatus = "ENVIADO_FINANCEIRO"
	DebitoStatusPagoViaAcordo     DebitoStatus = "PAGO_VIA_ACORDO"
)

// PosPendente reports whether s is an allowed transition target.
func (s DebitoStatus) PosPendente() bool {
	switch s {
	case DebitoStatusPago, DebitoStatusEnviadoFinanceiro, DebitoStatusPagoViaAcordo:
		return true
	}
	return false
}

// Pago reports whether the débito is settled (directly or via acordo).
func (s DebitoStatus) Pago() bool {
	return s == DebitoStatusPago || s == DebitoStatusPagoViaAcordo
}

// Debito is a billing obligation. It references the Cliente only by its
// display name (and optionally CNPJ); débitos survive Cliente deletion.
type Debito struct {
	ID          string
	Tipo        DebitoTipo
	ClienteNome string
	CNPJ        string
	Descricao   string
	Valor       float64
	Vencimento  time.Time
	Referencia  time.Time
	Status      DebitoStatus
	CreatedAt   time.Time
}
