package routes

import (
	"context"
	"os"
	_ "outorga_monitor/docs" // swagger spec registration
	"outorga_monitor/internal/adapter/http/handlers"
	"outorga_monitor/internal/adapter/http/middleware"
	"outorga_monitor/internal/adapter/lock"
	"outorga_monitor/internal/adapter/persistence/repository"
	"outorga_monitor/internal/infrastructure/cache"
	"outorga_monitor/internal/infrastructure/database"
	"outorga_monitor/internal/infrastructure/logging"
	"outorga_monitor/internal/infrastructure/metrics"
	"outorga_monitor/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	router     = gin.New()
	appMetrics = metrics.New()
)

const defaultPort = "8080"

// Run will start the server
func Run() {
	log := logging.GetLogger()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(appMetrics.Handler()))

	if err := getRoutes(context.Background()); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context) error {
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoConfigFromEnv())
	if err != nil {
		return err
	}

	redisCfg, err := cache.RedisConfigFromEnv()
	if err != nil {
		return err
	}
	rdb, err := cache.ConnectRedis(ctx, redisCfg)
	if err != nil {
		return err
	}

	licenseRepo := repository.NewLicenseDynamoRepository(ddb)
	readingRepo := repository.NewMeterReadingDynamoRepository(ddb)
	ndneRepo := repository.NewNDNERecordDynamoRepository(ddb)

	historyUseCase := usecase.NewHistoryUseCase(licenseRepo, readingRepo)
	ndneUseCase := usecase.NewNDNEUseCase(ndneRepo, lock.New(rdb, redisCfg.LockTTL))

	historyHandler := handlers.NewHistoryHandler(historyUseCase)
	ndneHandler := handlers.NewNDNEHandler(ndneUseCase, appMetrics)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMonitoringRoutes(v1, historyHandler, ndneHandler)
	return nil
}

func setMiddlewares() {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(appMetrics))
}
