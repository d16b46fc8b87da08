package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "licitax_advisor/internal/adapter/http/dto/request"
	response "licitax_advisor/internal/adapter/http/dto/response"
	"licitax_advisor/internal/usecase"
	"licitax_advisor/pkg"
)

var errInvalidValidacaoPayload = pkg.NewDomainErrorSimple("INVALID_VALIDACAO_INPUT", "Invalid validacao payload", http.StatusBadRequest)

// ValidacaoHandler handles HTTP requests for AI document validation.
type ValidacaoHandler struct {
	usecase usecase.IValidacaoUseCase
}

func NewValidacaoHandler(uc usecase.IValidacaoUseCase) *ValidacaoHandler {
	return &ValidacaoHandler{usecase: uc}
}

func (h *ValidacaoHandler) Validate(c *gin.Context) {
	var payload request.ValidacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidValidacaoPayload.HTTPStatus, errInvalidValidacaoPayload.ToHTTPError())
		return
	}

	documentos, err := payload.ToEntities()
	if err != nil {
		log.Printf("[validacao][handler] payload decode failed err=%v", err)
		c.JSON(errInvalidValidacaoPayload.HTTPStatus, errInvalidValidacaoPayload.ToHTTPError())
		return
	}

	resultado, err := h.usecase.Validate(c.Request.Context(), documentos, payload.Criterios)
	if err != nil {
		appErr := mapValidacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResultadoValidacao(resultado))
}

func mapValidacaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidValidacaoInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("VALIDATION_FAILED", "Document validation failed", err, http.StatusInternalServerError)
	}
}
