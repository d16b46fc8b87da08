package interfaces

import (
	"context"
	"encoding/json"

	"licitax_advisor/internal/domain/entities"
)

//go:generate mockgen -source=gateways.go -destination=mocks/gateways.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
// The raw provider response is persisted alongside the Pagamento for audit.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// IDocumentValidator is the opaque document-validation collaborator: given
// documents plus a free-text criteria description it returns a structured
// verdict. The service never implements the validation reasoning itself.
type IDocumentValidator interface {
	Validate(ctx context.Context, documentos []entities.DocumentoParaValidacao, criterios string) (entities.ResultadoValidacao, error)
}

// IConsultaPNCP forwards structured queries to the PNCP open-data API (or an
// organization-operated proxy in front of it) and returns the upstream
// response unmodified.
type IConsultaPNCP interface {
	ConsultarContratacoes(ctx context.Context, f entities.ConsultaContratacoes) (entities.RespostaProxy, error)
	ConsultarContratos(ctx context.Context, f entities.ConsultaContratos) (entities.RespostaProxy, error)
}
