package entities

import (
	"encoding/json"
	"time"
)

// PagamentoStatus is the provider-side outcome of a payment attempt.
type PagamentoStatus string

const (
	PagamentoStatusPendente PagamentoStatus = "pendente"
	PagamentoStatusAprovado PagamentoStatus = "aprovado"
	PagamentoStatusNegado   PagamentoStatus = "negado"
)

// Pagamento is a payment processed for a Débito through the payment gateway.
//
// MPPayloadRaw keeps the original provider response (JSON) for audit;
// MPPayload is the parsed representation, useful for querying/debugging.
type Pagamento struct {
	ID       string
	DebitoID string
	Date     time.Time
	Status   PagamentoStatus

	MPPayloadRaw json.RawMessage
	MPPayload    map[string]interface{}
}
