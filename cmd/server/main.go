package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Elactrac/dotnation-sub004/internal/handler"
	"github.com/Elactrac/dotnation-sub004/internal/repository"
	"github.com/Elactrac/dotnation-sub004/internal/service"
	"github.com/Elactrac/dotnation-sub004/pkg/logger"
	"github.com/Elactrac/dotnation-sub004/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger("trust-engine")
	defer log.Sync()

	cfg := loadConfig()

	// Corpus storage is optional; without it, analysis uses per-request corpora.
	var corpusRepo *repository.CorpusRepository
	if cfg.DatabaseURL != "" {
		db, err := openPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		corpusRepo = repository.NewCorpusRepository(db)
	}

	aiAnalyzer := service.NewAIAnalyzer(service.AIAnalyzerConfig{
		Endpoint: cfg.AIEndpoint,
		Model:    cfg.AIModel,
		Timeout:  cfg.AITimeout,
	})

	engine := service.NewTrustEngine(aiAnalyzer, log)
	fraudHandler := handler.NewFraudHandler(engine, corpusRepo, cfg.AIAPIKey, log)

	router := setupRouter(fraudHandler, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting trust engine service", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

func setupRouter(fraudHandler *handler.FraudHandler, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		fraud := v1.Group("/fraud")
		{
			fraud.POST("/analyze", fraudHandler.AnalyzeCampaign)
			fraud.GET("/patterns", fraudHandler.GetPatternCategories)
		}
	}

	return router
}

func openPostgres(connectionString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

type Config struct {
	Port        string
	DatabaseURL string
	AIAPIKey    string
	AIEndpoint  string
	AIModel     string
	AITimeout   time.Duration
	Environment string
}

func loadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "8083"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		AIAPIKey:    getEnv("AI_API_KEY", ""),
		AIEndpoint:  getEnv("AI_ENDPOINT", ""),
		AIModel:     getEnv("AI_MODEL", ""),
		AITimeout:   getDurationEnv("AI_TIMEOUT", 10*time.Second),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
