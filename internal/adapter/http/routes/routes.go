package routes

import (
	"log"
	"os"
	"strconv"

	_ "freegym_settlement/docs" // This will be auto-generated
	"freegym_settlement/internal/adapter/http/handlers"
	repository2 "freegym_settlement/internal/adapter/persistence/repository"
	"freegym_settlement/internal/infrastructure/database"
	"freegym_settlement/internal/infrastructure/storeproc"
	"freegym_settlement/internal/usecase"
	"freegym_settlement/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	approvalRepo := repository2.NewApprovalDynamoRepository(ddb)
	frozenRepo := repository2.NewFrozenSnapshotDynamoRepository(ddb)
	membershipRepo := repository2.NewMembershipDynamoRepository(ddb)
	installmentRepo := repository2.NewInstallmentDynamoRepository(ddb)
	depositRepo := repository2.NewDepositDynamoRepository(ddb)
	ledgerRepo := repository2.NewLedgerDynamoRepository(ddb)

	var procedures interfaces.IStoreProcedures
	gateway, err := storeproc.NewGateway(os.Getenv("STORE_RPC_URL"), os.Getenv("STORE_RPC_KEY"))
	if err != nil {
		log.Printf("Store procedure gateway not configured: %v", err)
	} else {
		procedures = gateway
	}

	depositUseCase := usecase.NewDepositUseCase(depositRepo, procedures)
	settlementUseCase := usecase.NewSettlementUseCase(membershipRepo, ledgerRepo, depositUseCase)
	approvalUseCase := usecase.NewApprovalUseCase(approvalRepo, frozenRepo, membershipRepo, settlementUseCase)
	installmentUseCase := usecase.NewInstallmentUseCase(installmentRepo, procedures)

	approvalHandler := handlers.NewApprovalHandler(approvalUseCase)
	installmentHandler := handlers.NewInstallmentHandler(installmentUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addApprovalRoutes(v1, approvalHandler)
	addInstallmentRoutes(v1, installmentHandler)
	addDepositRoutes(v1, depositHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
