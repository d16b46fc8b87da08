package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	response "licitax_advisor/internal/adapter/http/dto/response"
	"licitax_advisor/internal/usecase"
	"licitax_advisor/internal/usecase/interfaces"
	"licitax_advisor/pkg"
)

// PagamentoHandler handles HTTP requests for débito payments.
type PagamentoHandler struct {
	usecase usecase.IPagamentoUseCase
}

func NewPagamentoHandler(uc usecase.IPagamentoUseCase) *PagamentoHandler {
	return &PagamentoHandler{usecase: uc}
}

// CreateByDebitoID creates/approves a payment using debito_id in path.
func (h *PagamentoHandler) CreateByDebitoID(c *gin.Context) {
	debitoID := c.Param("id")
	log.Printf("[pagamento][handler] create start debito_id=%s", debitoID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Printf("[pagamento][handler] invalid payload debito_id=%s err=%v", debitoID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), debitoID, mpPayload)
	if err != nil {
		log.Printf("[pagamento][handler] create failed debito_id=%s err=%v", debitoID, err)
		appErr := mapPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pagamento][handler] create success debito_id=%s pagamento_id=%s status=%s", debitoID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPagamento(created))
}

// GetByDebitoID returns the latest payment for a débito.
func (h *PagamentoHandler) GetByDebitoID(c *gin.Context) {
	debitoID := c.Param("id")
	log.Printf("[pagamento][handler] get-by-debito start debito_id=%s", debitoID)

	pagamentos, err := h.usecase.ListByDebitoID(c.Request.Context(), debitoID)
	if err != nil {
		log.Printf("[pagamento][handler] get-by-debito failed debito_id=%s err=%v", debitoID, err)
		appErr := mapPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(pagamentos) == 0 {
		log.Printf("[pagamento][handler] get-by-debito not-found debito_id=%s", debitoID)
		appErr := pkg.NewDomainErrorSimple("PAGAMENTO_NOT_FOUND", "Pagamento not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := pagamentos[0]
	for _, p := range pagamentos[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[pagamento][handler] get-by-debito success debito_id=%s pagamento_id=%s status=%s", debitoID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromPagamento(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPagamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Document store unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidPagamentoDebitoID), errors.Is(err, usecase.ErrInvalidMPPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDebitoNotFound):
		return pkg.NewDomainErrorSimple("DEBITO_NOT_FOUND", "Debito not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDebitoJaPago):
		return pkg.NewDomainErrorSimple("DEBITO_JA_PAGO", "Debito already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPagamentoNotFound):
		return pkg.NewDomainErrorSimple("PAGAMENTO_NOT_FOUND", "Pagamento not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
