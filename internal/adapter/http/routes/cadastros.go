package routes

import (
	"licitax_advisor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients    = "/clients"
	PathLicitacoes = "/licitacoes"
	PathDocumentos = "/documentos"
	PathDebitos    = "/debitos"
)

func addCadastroRoutes(rg *gin.RouterGroup, clienteHandler *handlers.ClienteHandler, licitacaoHandler *handlers.LicitacaoHandler, documentoHandler *handlers.DocumentoHandler, debitoHandler *handlers.DebitoHandler, pagamentoHandler *handlers.PagamentoHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clienteHandler.List)
		clients.GET("/:id", clienteHandler.Get)
		clients.POST("", clienteHandler.Create)
		clients.PUT("/:id", clienteHandler.Update)
		clients.DELETE("/:id", clienteHandler.Delete)
	}

	licitacoes := rg.Group(PathLicitacoes)
	{
		licitacoes.GET("", licitacaoHandler.List)
		licitacoes.GET("/:id", licitacaoHandler.Get)
		licitacoes.POST("", licitacaoHandler.Create)
		licitacoes.PUT("/:id", licitacaoHandler.Update)
	}

	documentos := rg.Group(PathDocumentos)
	{
		documentos.GET("", documentoHandler.List)
		documentos.GET("/:id", documentoHandler.Get)
		documentos.POST("", documentoHandler.Create)
		documentos.PUT("/:id", documentoHandler.Update)
		documentos.DELETE("/:id", documentoHandler.Delete)
	}

	debitos := rg.Group(PathDebitos)
	{
		debitos.GET("", debitoHandler.List)
		debitos.GET("/:id", debitoHandler.Get)
		debitos.POST("", debitoHandler.Create)
		debitos.PUT("/:id", debitoHandler.UpdateStatus)

		debitos.POST("/:id/pagamentos", pagamentoHandler.CreateByDebitoID)
		debitos.GET("/:id/pagamentos", pagamentoHandler.GetByDebitoID)
	}
}
