// ================== cmd/api/main.go ==================
//
// @title Todo Service API
// @version 1.0
// @description Todo resources per user, backed by an in-memory store (/users) and a persistent store (/jpa/users).
// @host localhost:8080
// @BasePath /
// @schemes http
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xyz-asif/todoservice/internal/config"
	"github.com/xyz-asif/todoservice/internal/database"
	"github.com/xyz-asif/todoservice/internal/features/todos"
	"github.com/xyz-asif/todoservice/internal/middleware"
	"github.com/xyz-asif/todoservice/internal/pkg/i18n"
	"github.com/xyz-asif/todoservice/internal/pkg/logger"
	"github.com/xyz-asif/todoservice/internal/pkg/ratelimit"
	"github.com/xyz-asif/todoservice/internal/pkg/response"
	"github.com/xyz-asif/todoservice/internal/routes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	docs "github.com/xyz-asif/todoservice/docs"
)

// backend is the persistent store plus its connection lifecycle.
type backend struct {
	store todos.Store
	ping  func(ctx context.Context) error
	close func() error
}

func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		store := todos.NewMongoStore(db.Database)
		if err := store.EnsureIndexes(ctx); err != nil {
			logger.Warn("Failed to create todo indexes: %v", err)
		}
		return &backend{store: store, ping: db.Ping, close: db.Close}, nil
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &backend{store: todos.NewSQLiteStore(db.DB), ping: db.Ping, close: db.Close}, nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func main() {
	// Load config
	cfg := config.Load()

	level, ok := logger.ParseLevel(cfg.LogLevel)
	if !ok {
		logger.Warn("Unknown LOG_LEVEL %q, using %s", cfg.LogLevel, level)
	}
	logger.SetGlobalLevel(level)

	// Configure Swagger metadata at runtime
	docs.SwaggerInfo.Title = "Todo Service API"
	docs.SwaggerInfo.Description = "Per-user todo lists backed by an in-memory and a persistent store"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	ctx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	store, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer func() {
		if err := store.close(); err != nil {
			logger.Error("Failed to close store: %v", err)
		}
	}()

	messages, err := i18n.LoadEmbedded(cfg.DefaultLocale)
	if err != nil {
		logger.Fatal("Failed to load message catalogs: %v", err)
	}

	//If we are running in production, be quiet and stop logging so much.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	if cfg.RateLimit > 0 {
		limiter := ratelimit.New(cfg.RateLimit, cfg.RateWindow)
		limiter.StartCleanup(ctx, cfg.RateWindow)
		router.Use(ratelimit.Middleware(limiter))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := store.ping(c.Request.Context()); err != nil {
			response.ServiceUnavailable(c, "Store unreachable", "STORE_DOWN")
			return
		}
		response.Success(c, map[string]interface{}{
			"status": "ok",
			"store":  cfg.StoreDriver,
			"time":   time.Now().Unix(),
		})
	})

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
		),
	)

	routes.SetupRoutes(router, todos.NewMemoryStore(), store.store, messages)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting on port %s (store: %s)", cfg.Port, cfg.StoreDriver)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
