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

var errInvalidClientePayload = pkg.NewDomainErrorSimple("INVALID_CLIENTE_INPUT", "Invalid cliente payload", http.StatusBadRequest)

// ClienteHandler handles HTTP requests for the cliente registry.
type ClienteHandler struct {
	usecase usecase.IClienteUseCase
}

func NewClienteHandler(uc usecase.IClienteUseCase) *ClienteHandler {
	return &ClienteHandler{usecase: uc}
}

func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClientes(clientes))
}

func (h *ClienteHandler) Get(c *gin.Context) {
	cliente, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var payload request.ClienteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCliente(created))
}

func (h *ClienteHandler) Update(c *gin.Context) {
	var payload request.ClienteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToUpdate()); err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente atualizado com sucesso"})
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente removido com sucesso"})
}

func mapClienteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Document store unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidClienteID), errors.Is(err, usecase.ErrInvalidClienteInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteCNPJEmUso):
		return pkg.NewDomainErrorSimple("CNPJ_EM_USO", "CNPJ already registered for another cliente", http.StatusConflict)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
