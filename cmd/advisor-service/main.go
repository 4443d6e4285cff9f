package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-advisor/internal/advisor/config"
	delivery "crypto-advisor/internal/advisor/delivery/http"
	_ "crypto-advisor/internal/advisor/docs"
	"crypto-advisor/internal/advisor/repository"
	"crypto-advisor/internal/advisor/service"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/metrics"
	"crypto-advisor/pkg/postgres"
	"crypto-advisor/pkg/redis"
	"crypto-advisor/pkg/telegram"
	"crypto-advisor/pkg/tracing"
	"crypto-advisor/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the crypto advisor API",
	Run:   runServe,
}

func newAIRepository(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) repository.AIRepository {
	if cfg.Gemini.APIKey == "" {
		appLogger.Warn("Gemini API key not set, AI features will serve fallback content")
		return repository.NewUnavailableAIRepository()
	}

	httpOptions := genai.HTTPOptions{BaseURL: cfg.Gemini.BaseURL}
	if cfg.Gemini.Timeout > 0 {
		httpOptions.Timeout = &cfg.Gemini.Timeout
	}
	genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.Gemini.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		appLogger.Error("Failed to initialize Gemini AI client, AI features will serve fallback content", logger.ErrorField(err))
		return repository.NewUnavailableAIRepository()
	}
	return repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Crypto Advisor Service", logger.Field("name", cfg.App.Name), logger.Field("env", cfg.App.Env))

	if err := tracing.Init(cfg.App.Name, cfg.App.Version, cfg.Tracing.Enabled); err != nil {
		appLogger.Fatal("Failed to initialize tracing", logger.ErrorField(err))
	}
	metrics.Register()

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis. Without it the snapshot stays in process and chat
	// sessions live in memory.
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		client, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer client.Close()
		redisClient = client.Client
	}

	var telegramNotifier telegram.Notifier
	if cfg.Telegram.Enabled {
		telegramNotifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	marketRepo := repository.NewCoinGeckoRepository(cfg, appLogger)
	marketCacheRepo := repository.NewMarketCacheRepository(redisClient, appLogger)
	aiRepo := newAIRepository(ctx, cfg, appLogger)
	newsFeedRepo := repository.NewRSSNewsRepository(cfg, appLogger)
	profileRepo := repository.NewUserProfileRepository(db.DB)
	investmentRepo := repository.NewInvestmentRepository(db.DB)

	var sessionRepo repository.ChatSessionRepository
	if redisClient != nil {
		sessionRepo = repository.NewRedisChatSessionRepository(redisClient, cfg.Chat.SessionTTL)
	} else {
		sessionRepo = repository.NewMemoryChatSessionRepository(cfg.Chat.SessionTTL)
	}

	// Initialize services
	relay := service.NewRelay(aiRepo, appLogger)
	marketSvc := service.NewMarketService(marketRepo, marketCacheRepo, cfg, appLogger)
	sentimentSvc := service.NewSentimentService(relay, cfg, appLogger)
	recommendationSvc := service.NewRecommendationService(marketSvc, sentimentSvc, telegramNotifier, appLogger)
	portfolioSvc := service.NewPortfolioService(profileRepo, investmentRepo, telegramNotifier, appLogger)
	newsSvc := service.NewNewsService(newsFeedRepo, relay, cfg, appLogger)
	assistant := service.NewAssistant(marketSvc, sentimentSvc, recommendationSvc, portfolioSvc, appLogger)
	chatSvc := service.NewChatService(sessionRepo, relay, assistant, appLogger)

	// Start market refresher
	if cfg.Refresher.Enabled {
		refresher := service.NewMarketRefresher(marketSvc, cfg.Refresher.Spec, appLogger)
		utils.GoSafe(appLogger, func() {
			if err := refresher.Start(ctx); err != nil {
				appLogger.Error("Market refresher failed", logger.ErrorField(err))
			}
		})
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	delivery.RegisterRoutes(e, delivery.Handlers{
		Market:         delivery.NewMarketHandler(marketSvc, sentimentSvc, appLogger),
		Recommendation: delivery.NewRecommendationHandler(recommendationSvc, appLogger),
		Chat:           delivery.NewChatHandler(chatSvc, appLogger),
		News:           delivery.NewNewsHandler(newsSvc, appLogger),
		Portfolio:      delivery.NewPortfolioHandler(portfolioSvc, appLogger),
	})
	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Failed to flush traces", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Crypto Advisor API
// @version 1.0
// @description Market data, sentiment, portfolio recommendations, chat and investment tracking for crypto investors.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "advisor-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-advisor.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing advisor-service CLI: %s\n", err)
		os.Exit(1)
	}
}
