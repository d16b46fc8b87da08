package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "licitax_advisor/internal/adapter/http/dto/request"
	response "licitax_advisor/internal/adapter/http/dto/response"
	"licitax_advisor/internal/usecase"
	"licitax_advisor/internal/usecase/interfaces"
	"licitax_advisor/pkg"
)

var errInvalidDebitoPayload = pkg.NewDomainErrorSimple("INVALID_DEBITO_INPUT", "Invalid debito payload", http.StatusBadRequest)

// DebitoHandler handles HTTP requests for client receivables.
type DebitoHandler struct {
	usecase usecase.IDebitoUseCase
}

func NewDebitoHandler(uc usecase.IDebitoUseCase) *DebitoHandler {
	return &DebitoHandler{usecase: uc}
}

func (h *DebitoHandler) List(c *gin.Context) {
	debitos, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDebitoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDebitos(debitos))
}

func (h *DebitoHandler) Get(c *gin.Context) {
	debito, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDebitoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDebito(debito))
}

func (h *DebitoHandler) Create(c *gin.Context) {
	var payload request.DebitoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDebitoPayload.HTTPStatus, errInvalidDebitoPayload.ToHTTPError())
		return
	}

	in, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidDebitoPayload.HTTPStatus, errInvalidDebitoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapDebitoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDebito(created))
}

func (h *DebitoHandler) UpdateStatus(c *gin.Context) {
	var payload request.DebitoStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDebitoPayload.HTTPStatus, errInvalidDebitoPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ToStatus())
	if err != nil {
		appErr := mapDebitoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDebito(updated))
}

func mapDebitoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Document store unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidDebitoID), errors.Is(err, usecase.ErrInvalidDebitoInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDebitoStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status transition not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDebitoNotFound):
		return pkg.NewDomainErrorSimple("DEBITO_NOT_FOUND", "Debito not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
