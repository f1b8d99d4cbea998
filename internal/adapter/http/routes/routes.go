package routes

import (
	"log"

	_ "killbill_bluepay/docs"
	"killbill_bluepay/internal/adapter/http/handlers"
	repository2 "killbill_bluepay/internal/adapter/persistence/repository"
	"killbill_bluepay/internal/infrastructure/accounts"
	"killbill_bluepay/internal/infrastructure/config"
	"killbill_bluepay/internal/infrastructure/database"
	"killbill_bluepay/internal/infrastructure/payments"
	"killbill_bluepay/internal/usecase"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	credentialsRepo, tokenRepo := newStores(cfg)

	var paymentGateway interfaces.IPaymentGateway
	gw, err := payments.NewGateway(cfg.Gateway)
	if err != nil {
		log.Printf("[plugin][routes] payment gateway not configured: %v", err)
	} else {
		paymentGateway = gw
	}

	accountService := accounts.NewKillBillAccountClient(cfg.KillBill)
	pluginUseCase := usecase.NewPaymentPluginUseCase(credentialsRepo, tokenRepo, accountService, paymentGateway)
	pluginHandler := handlers.NewPaymentPluginHandler(pluginUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPluginRoutes(v1, pluginHandler)
}

func newStores(cfg config.Config) (interfaces.ICredentialsRepository, interfaces.ITokenRepository) {
	switch cfg.StoreBackend {
	case config.StoreBackendDynamoDB:
		ddb := database.ConnectDynamoDB(cfg.DynamoDB)
		log.Printf("[plugin][routes] store backend=dynamodb region=%s", cfg.DynamoDB.Region)
		return repository2.NewCredentialsDynamoRepository(ddb), repository2.NewTokenDynamoRepository(ddb)
	default:
		db := database.ConnectPostgres(cfg.PostgresConnString, cfg.AutoMigrate)
		log.Printf("[plugin][routes] store backend=postgres auto_migrate=%t", cfg.AutoMigrate)
		return repository2.NewCredentialsPostgresRepository(db), repository2.NewTokenPostgresRepository(db)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
