package routes

import (
	"licitax_advisor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConsultas  = "/consultas"
	PathValidacoes = "/validacoes"
)

func addConsultaRoutes(rg *gin.RouterGroup, consultaHandler *handlers.ConsultaHandler, validacaoHandler *handlers.ValidacaoHandler) {
	consultas := rg.Group(PathConsultas)
	{
		// Proxy direto para a API de consultas do PNCP.
		consultas.GET("/contratacoes", consultaHandler.Contratacoes)
		consultas.GET("/contratos", consultaHandler.Contratos)
	}

	validacoes := rg.Group(PathValidacoes)
	{
		validacoes.POST("", validacaoHandler.Validate)
	}
}
