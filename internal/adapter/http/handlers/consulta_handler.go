package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "licitax_advisor/internal/adapter/http/dto/request"
	"licitax_advisor/internal/domain/entities"
	"licitax_advisor/internal/usecase"
	"licitax_advisor/pkg"
)

var errInvalidConsultaPayload = pkg.NewDomainErrorSimple("INVALID_CONSULTA_INPUT", "dataInicial and dataFinal are required", http.StatusBadRequest)

// ConsultaHandler proxies read-only procurement queries to the PNCP API.
type ConsultaHandler struct {
	usecase usecase.IConsultaUseCase
}

func NewConsultaHandler(uc usecase.IConsultaUseCase) *ConsultaHandler {
	return &ConsultaHandler{usecase: uc}
}

func (h *ConsultaHandler) Contratacoes(c *gin.Context) {
	var payload request.ConsultaContratacoesRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidConsultaPayload.HTTPStatus, errInvalidConsultaPayload.ToHTTPError())
		return
	}

	resp, err := h.usecase.Contratacoes(c.Request.Context(), payload.ToFiltro())
	if err != nil {
		appErr := mapConsultaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writeProxyResponse(c, resp)
}

func (h *ConsultaHandler) Contratos(c *gin.Context) {
	var payload request.ConsultaContratosRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidConsultaPayload.HTTPStatus, errInvalidConsultaPayload.ToHTTPError())
		return
	}

	resp, err := h.usecase.Contratos(c.Request.Context(), payload.ToFiltro())
	if err != nil {
		appErr := mapConsultaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writeProxyResponse(c, resp)
}

// writeProxyResponse relays the upstream status, content type and body as-is,
// upstream error payloads included.
func writeProxyResponse(c *gin.Context, resp entities.RespostaProxy) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	log.Printf("[consulta][handler] upstream relay status=%d bytes=%d", resp.StatusCode, len(resp.Body))
	c.Data(resp.StatusCode, contentType, resp.Body)
}

func mapConsultaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConsultaPeriodo):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "dataInicial and dataFinal are required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("PNCP_UNAVAILABLE", "PNCP query failed", err, http.StatusBadGateway)
	}
}
