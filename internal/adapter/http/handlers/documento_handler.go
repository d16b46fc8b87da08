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

var errInvalidDocumentoPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENTO_INPUT", "Invalid documento payload", http.StatusBadRequest)

// DocumentoHandler handles HTTP requests for compliance artifacts.
type DocumentoHandler struct {
	usecase usecase.IDocumentoUseCase
}

func NewDocumentoHandler(uc usecase.IDocumentoUseCase) *DocumentoHandler {
	return &DocumentoHandler{usecase: uc}
}

func (h *DocumentoHandler) List(c *gin.Context) {
	documentos, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocumentos(documentos))
}

func (h *DocumentoHandler) Get(c *gin.Context) {
	documento, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocumento(documento))
}

func (h *DocumentoHandler) Create(c *gin.Context) {
	var payload request.DocumentoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentoPayload.HTTPStatus, errInvalidDocumentoPayload.ToHTTPError())
		return
	}

	in, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidDocumentoPayload.HTTPStatus, errInvalidDocumentoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDocumento(created))
}

func (h *DocumentoHandler) Update(c *gin.Context) {
	var payload request.DocumentoUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentoPayload.HTTPStatus, errInvalidDocumentoPayload.ToHTTPError())
		return
	}

	upd, err := payload.ToUpdate()
	if err != nil {
		c.JSON(errInvalidDocumentoPayload.HTTPStatus, errInvalidDocumentoPayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Documento atualizado com sucesso"})
}

func (h *DocumentoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Documento removido com sucesso"})
}

func mapDocumentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Document store unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidDocumentoID), errors.Is(err, usecase.ErrInvalidDocumentoInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentoNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENTO_NOT_FOUND", "Documento not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
