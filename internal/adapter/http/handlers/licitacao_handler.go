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

var errInvalidLicitacaoPayload = pkg.NewDomainErrorSimple("INVALID_LICITACAO_INPUT", "Invalid licitacao payload", http.StatusBadRequest)

// LicitacaoHandler handles HTTP requests for tracked bids.
type LicitacaoHandler struct {
	usecase usecase.ILicitacaoUseCase
}

func NewLicitacaoHandler(uc usecase.ILicitacaoUseCase) *LicitacaoHandler {
	return &LicitacaoHandler{usecase: uc}
}

func (h *LicitacaoHandler) List(c *gin.Context) {
	licitacoes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLicitacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLicitacoes(licitacoes))
}

func (h *LicitacaoHandler) Get(c *gin.Context) {
	licitacao, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLicitacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLicitacao(licitacao))
}

func (h *LicitacaoHandler) Create(c *gin.Context) {
	var payload request.LicitacaoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLicitacaoPayload.HTTPStatus, errInvalidLicitacaoPayload.ToHTTPError())
		return
	}

	in, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidLicitacaoPayload.HTTPStatus, errInvalidLicitacaoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapLicitacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromLicitacao(created))
}

func (h *LicitacaoHandler) Update(c *gin.Context) {
	var payload request.LicitacaoUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLicitacaoPayload.HTTPStatus, errInvalidLicitacaoPayload.ToHTTPError())
		return
	}

	upd, err := payload.ToUpdate()
	if err != nil {
		c.JSON(errInvalidLicitacaoPayload.HTTPStatus, errInvalidLicitacaoPayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		appErr := mapLicitacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Licitacao atualizada com sucesso"})
}

func mapLicitacaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Document store unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidLicitacaoID), errors.Is(err, usecase.ErrInvalidLicitacaoInput), errors.Is(err, usecase.ErrInvalidLicitacaoStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLicitacaoNotFound):
		return pkg.NewDomainErrorSimple("LICITACAO_NOT_FOUND", "Licitacao not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
