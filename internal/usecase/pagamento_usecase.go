package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/usecase/interfaces"
)

var (
	ErrPagamentoNotFound        = errors.New("pagamento not found")
	ErrInvalidPagamentoDebitoID = errors.New("invalid debito_id")
	ErrInvalidMPPayload         = errors.New("invalid mercado pago payload")
	ErrDebitoJaPago             = errors.New("debito already paid")
)

// IPagamentoUseCase creates and processes a payment for a débito through the
// payment gateway, persisting the provider response for audit. An approved
// payment transitions the débito to PAGO.
type IPagamentoUseCase interface {
	CreateAndApprove(ctx context.Context, debitoID string, mpPayload json.RawMessage) (entities.Pagamento, error)
	ListByDebitoID(ctx context.Context, debitoID string) ([]entities.Pagamento, error)
}

type PagamentoUseCase struct {
	repo       interfaces.IPagamentoRepository
	debitoRepo interfaces.IDebitoRepository
	gateway    interfaces.IPaymentGateway
}

var _ IPagamentoUseCase = (*PagamentoUseCase)(nil)

func NewPagamentoUseCase(repo interfaces.IPagamentoRepository, debitoRepo interfaces.IDebitoRepository, gateway interfaces.IPaymentGateway) *PagamentoUseCase {
	return &PagamentoUseCase{repo: repo, debitoRepo: debitoRepo, gateway: gateway}
}

func (u *PagamentoUseCase) CreateAndApprove(ctx context.Context, debitoID string, mpPayload json.RawMessage) (entities.Pagamento, error) {
	log.Printf("[pagamento][usecase] create-and-approve start debito_id=%q payload_len=%d", debitoID, len(mpPayload))
	debitoID = strings.TrimSpace(debitoID)
	if debitoID == "" {
		return entities.Pagamento{}, ErrInvalidPagamentoDebitoID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		return entities.Pagamento{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.Pagamento{}, errors.New("payment gateway not configured")
	}

	deb, err := u.debitoRepo.GetByID(ctx, debitoID)
	if err != nil {
		return entities.Pagamento{}, err
	}
	if deb.ID == "" {
		return entities.Pagamento{}, ErrDebitoNotFound
	}
	if deb.Status.Pago() {
		return entities.Pagamento{}, ErrDebitoJaPago
	}

	enriched, err := enrichMPPayload(mpPayload, deb)
	if err != nil {
		return entities.Pagamento{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[pagamento][usecase] payment gateway failed debito_id=%s err=%v", debitoID, err)
		return entities.Pagamento{}, err
	}
	log.Printf("[pagamento][usecase] payment gateway success debito_id=%s provider_payment_id=%s provider_status=%s", debitoID, providerPaymentID, providerStatus)

	status := entities.PagamentoStatusNegado
	if providerStatus == "approved" {
		status = entities.PagamentoStatusAprovado
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[pagamento][usecase] provider response unmarshal failed debito_id=%s err=%v", debitoID, err)
	}

	created, err := u.repo.Create(ctx, entities.Pagamento{
		ID:           providerPaymentID,
		DebitoID:     debitoID,
		Date:         time.Now().UTC(),
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	})
	if err != nil {
		return entities.Pagamento{}, err
	}

	if status == entities.PagamentoStatusAprovado {
		// The payment record is already persisted; a failed transition is
		// logged and left for the dedicated status operation to reconcile.
		if _, err := u.debitoRepo.UpdateStatus(ctx, debitoID, entities.DebitoStatusPago); err != nil {
			log.Printf("[pagamento][usecase] debito status transition failed debito_id=%s err=%v", debitoID, err)
		}
	}

	log.Printf("[pagamento][usecase] create-and-approve success debito_id=%s pagamento_id=%s status=%s", debitoID, created.ID, created.Status)
	return created, nil
}

func (u *PagamentoUseCase) ListByDebitoID(ctx context.Context, debitoID string) ([]entities.Pagamento, error) {
	debitoID = strings.TrimSpace(debitoID)
	if debitoID == "" {
		return nil, ErrInvalidPagamentoDebitoID
	}
	return u.repo.ListByDebitoID(ctx, debitoID)
}

// enrichMPPayload links the provider request to the débito: the débito is the
// source of truth for the amount, and external_reference supports
// reconciliation of provider events.
func enrichMPPayload(mpPayload json.RawMessage, deb entities.Debito) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		return nil, ErrInvalidMPPayload
	}
	if !hasNonEmptyString(reqMap, "payment_method_id") {
		return nil, ErrInvalidMPPayload
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = deb.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Debito %s - %s", deb.ID, deb.Descricao)
	}
	reqMap["transaction_amount"] = deb.Valor

	b, err := json.Marshal(reqMap)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}
