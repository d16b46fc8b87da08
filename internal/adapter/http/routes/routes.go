package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "licitax_advisor/docs" // This will be auto-generated
	"licitax_advisor/internal/adapter/http/handlers"
	repository2 "licitax_advisor/internal/adapter/persistence/repository"
	"licitax_advisor/internal/infrastructure/ai"
	"licitax_advisor/internal/infrastructure/database"
	"licitax_advisor/internal/infrastructure/payments"
	"licitax_advisor/internal/infrastructure/pncp"
	"licitax_advisor/internal/usecase"
	"licitax_advisor/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	// The Firestore handle connects lazily on first use; a misconfigured
	// store surfaces as 503 per request instead of failing startup.
	db := database.NewFirestore()

	clienteRepo := repository2.NewClienteFirestoreRepository(db)
	licitacaoRepo := repository2.NewLicitacaoFirestoreRepository(db)
	documentoRepo := repository2.NewDocumentoFirestoreRepository(db)
	debitoRepo := repository2.NewDebitoFirestoreRepository(db)
	pagamentoRepo := repository2.NewPagamentoFirestoreRepository(db)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var validator interfaces.IDocumentValidator
	vertexValidator, err := ai.NewVertexValidator(context.Background())
	if err != nil {
		log.Printf("Vertex AI validator not configured: %v", err)
	} else {
		validator = vertexValidator
	}

	clienteHandler := handlers.NewClienteHandler(usecase.NewClienteUseCase(clienteRepo))
	licitacaoHandler := handlers.NewLicitacaoHandler(usecase.NewLicitacaoUseCase(licitacaoRepo, clienteRepo))
	documentoHandler := handlers.NewDocumentoHandler(usecase.NewDocumentoUseCase(documentoRepo, clienteRepo))
	debitoHandler := handlers.NewDebitoHandler(usecase.NewDebitoUseCase(debitoRepo))
	pagamentoHandler := handlers.NewPagamentoHandler(usecase.NewPagamentoUseCase(pagamentoRepo, debitoRepo, paymentGateway))
	consultaHandler := handlers.NewConsultaHandler(usecase.NewConsultaUseCase(pncp.NewClient()))
	validacaoHandler := handlers.NewValidacaoHandler(usecase.NewValidacaoUseCase(validator))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCadastroRoutes(v1, clienteHandler, licitacaoHandler, documentoHandler, debitoHandler, pagamentoHandler)
	addConsultaRoutes(v1, consultaHandler, validacaoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
