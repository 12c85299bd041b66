package routes

import (
	"context"
	"log"
	"os"

	_ "ordemfacil/docs" // This will be auto-generated
	"ordemfacil/internal/adapter/http/handlers"
	"ordemfacil/internal/adapter/http/middleware"
	repository2 "ordemfacil/internal/adapter/persistence/repository"
	"ordemfacil/internal/adapter/persistence/session"
	"ordemfacil/internal/domain/remote"
	"ordemfacil/internal/infrastructure/database"
	"ordemfacil/internal/infrastructure/logging"
	"ordemfacil/internal/infrastructure/netsync"
	"ordemfacil/internal/usecase"
	"ordemfacil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	logger, err := logging.NewLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err != nil {
		log.Fatalf("Failed to build the logger: %v", err)
	}
	defer logger.Sync()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(logger *zap.Logger) {
	ctx := context.Background()

	store := snapshotStore(logger)
	sessions := sessionStore(logger)
	gateway := netsync.NewGateway(logger)

	orderUseCase := usecase.NewOrderUseCase(store, gateway, logger)
	catalogUseCase := usecase.NewCatalogUseCase(store, gateway, orderUseCase.Config, logger)
	authUseCase := usecase.NewAuthUseCase(store, sessions, usecase.PlaintextVerifier{}, logger)

	if err := orderUseCase.Load(ctx); err != nil {
		log.Fatalf("Failed to load the orders snapshot: %v", err)
	}
	if err := catalogUseCase.Load(ctx); err != nil {
		log.Fatalf("Failed to load the catalog: %v", err)
	}
	if err := authUseCase.Load(ctx); err != nil {
		log.Fatalf("Failed to load the accounts: %v", err)
	}

	startSync(ctx, gateway, orderUseCase, catalogUseCase, logger)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	syncHandler := handlers.NewSyncHandler(orderUseCase, catalogUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Everything else requires a session.
	authed := v1.Group("", middleware.RequireAuth(authUseCase))
	addAccountRoutes(authed, authHandler)
	addOrderRoutes(authed, orderHandler)
	addCatalogRoutes(authed, catalogHandler)
	addSyncRoutes(authed, syncHandler)
}

// snapshotStore picks the persistence backend from SNAPSHOT_BACKEND:
// file (default), memory, or dynamodb.
func snapshotStore(logger *zap.Logger) interfaces.SnapshotStore {
	switch os.Getenv("SNAPSHOT_BACKEND") {
	case "dynamodb":
		return repository2.NewDynamoSnapshotStore(database.ConnectDynamoDB())
	case "memory":
		return repository2.NewMemorySnapshotStore()
	default:
		store, err := repository2.NewFileSnapshotStore(os.Getenv("DATA_DIR"))
		if err != nil {
			log.Fatalf("Failed to open the data directory: %v", err)
		}
		return store
	}
}

// sessionStore uses redis when REDIS_ADDR is set, an in-process map
// otherwise. Without redis, sessions do not survive a restart.
func sessionStore(logger *zap.Logger) interfaces.SessionStore {
	rdb, err := database.ConnectRedis()
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	if rdb == nil {
		logger.Info("REDIS_ADDR not set, using in-memory sessions")
		return session.NewMemorySessionStore()
	}
	return session.NewRedisSessionStore(rdb)
}

// startSync wires the auto-sync workers and, when auto-sync is enabled with
// a remote location configured, replaces local state with the remote
// snapshot once at startup.
func startSync(ctx context.Context, gateway interfaces.SyncGateway, orders *usecase.OrderUseCase, catalog *usecase.CatalogUseCase, logger *zap.Logger) {
	ordersSyncer := netsync.NewSyncer(gateway, func(ctx context.Context) (string, []byte, bool) {
		cfg := orders.Config(ctx)
		if !cfg.AutoSync || !remote.IsRemoteLocation(cfg.Path) {
			return "", nil, false
		}
		payload, err := orders.ExportSnapshot(ctx)
		if err != nil {
			return "", nil, false
		}
		return remote.Authenticated(cfg.Path, cfg.Username, cfg.Password), payload, true
	}, 0, logger)
	orders.SetNotifier(ordersSyncer)
	ordersSyncer.Start(ctx)

	catalogSyncer := netsync.NewSyncer(gateway, func(ctx context.Context) (string, []byte, bool) {
		cfg := orders.Config(ctx)
		if !cfg.AutoSync || !remote.IsRemoteLocation(cfg.ServicosDbPath) {
			return "", nil, false
		}
		payload, err := catalog.Export(ctx)
		if err != nil {
			return "", nil, false
		}
		return remote.Authenticated(cfg.ServicosDbPath, cfg.Username, cfg.Password), payload, true
	}, 0, logger)
	catalog.SetNotifier(catalogSyncer)
	catalogSyncer.Start(ctx)

	cfg := orders.Config(ctx)
	if cfg.AutoSync && remote.IsRemoteLocation(cfg.Path) {
		if res := orders.PullRemote(ctx, ""); !res.Success {
			logger.Warn("startup pull failed", zap.String("location", cfg.Path), zap.String("error", res.Error))
		} else {
			logger.Info("startup pull done", zap.String("location", cfg.Path))
		}
	}
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
