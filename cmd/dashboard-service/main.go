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

	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/dashboard/datasource"
	delivery "golang-stock-dashboard/internal/dashboard/delivery/http"
	_ "golang-stock-dashboard/internal/dashboard/docs"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/internal/dashboard/strategy"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/notifier"
	"golang-stock-dashboard/pkg/postgres"
	"golang-stock-dashboard/pkg/redis"
	"golang-stock-dashboard/pkg/telegram"
	"golang-stock-dashboard/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Dashboard Service",
		logger.Field("name", cfg.App.Name),
		logger.StringField("store", cfg.Store.Driver))

	// Persisted state backend
	var (
		store       repository.KVStore
		redisClient *redis.Client
	)
	switch cfg.Store.Driver {
	case "memory":
		store = repository.NewMemoryStore()
	case "redis":
		redisClient, err = redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		store = repository.NewRedisStore(redisClient, cfg.Store.KeyPrefix)
	case "postgres":
		db, err := postgres.NewDB(postgres.Config{
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
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			defer sqlDB.Close()
		}
		store = repository.NewPostgresStore(db.DB)
	default:
		appLogger.Fatal("Unknown store driver", logger.StringField("driver", cfg.Store.Driver))
	}

	settingsRepo := repository.NewSettingsRepository(store, repository.SettingsDefaults{
		AutoRefresh: entity.AutoRefreshConfig{Interval: cfg.Dashboard.DefaultRefreshInterval, Period: entity.PeriodDay},
		AutoTrade: entity.AutoTradeConfig{
			Strategy:    strategy.VolumeBreakout,
			TradeAmount: 10,
			MaxPosition: 30,
			MinChange:   2,
			MinVolume:   100,
		},
		Scraper: entity.ScraperConfig{Sources: []string{}, Interval: cfg.Scraper.DefaultInterval},
	})
	watchlistRepo := repository.NewWatchlistRepository(store)

	// Notification sinks
	optional := map[string]notifier.Notifier{}
	if cfg.Telegram.Enabled {
		tg, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.MaxMessagePerMinute)
		if err != nil {
			appLogger.Error("Failed to initialize Telegram client, telegram delivery disabled", logger.ErrorField(err))
		} else {
			optional[common.AlertMethodTelegram] = notifier.NewTelegramNotifier(tg)
		}
	}
	if redisClient != nil {
		optional[common.AlertMethodStream] = notifier.NewRedisStreamNotifier(redisClient, cfg.Notifier.StreamName, cfg.Notifier.StreamMaxLen)
	}
	history := notifier.NewMemoryNotifier(cfg.Dashboard.NotificationHistory)
	notificationSvc := service.NewNotificationService(settingsRepo, history, optional, appLogger.Named("notification"))

	// Services
	source := datasource.NewMock(cfg.Dashboard.RandomSeed)
	marketSvc := service.NewMarketService(source, service.DefaultIndices(), cfg.Dashboard.MarketTickInterval,
		appLogger.Named("market"), service.NewRealTicker)
	refreshSvc := service.NewRefreshService(source, marketSvc, settingsRepo, notificationSvc,
		appLogger.Named("refresh"), service.NewRealTicker)
	alertMonitor := service.NewAlertMonitor(marketSvc, settingsRepo, notificationSvc, cfg.Dashboard.ReferenceIndexCode,
		cfg.Dashboard.AlertCheckInterval, appLogger.Named("alert"), service.NewRealTicker)
	watchlistSvc := service.NewWatchlistService(watchlistRepo, source, notificationSvc, appLogger.Named("watchlist"))
	autoTradeSvc := service.NewAutoTradeService(refreshSvc, settingsRepo, strategy.NewRegistry(), notificationSvc,
		cfg.Dashboard.AutoTradeInterval, appLogger.Named("auto-trade"))
	scraperSvc := service.NewScraperService(cfg.Scraper.Sources, service.NewHTTPFetcher(cfg.Scraper.HTTPTimeout), source,
		settingsRepo, notificationSvc, appLogger.Named("scraper"))

	starters := []struct {
		name  string
		start func(context.Context) error
	}{
		{"market", marketSvc.Start},
		{"refresh", refreshSvc.Start},
		{"alert", alertMonitor.Start},
		{"auto-trade", autoTradeSvc.Start},
		{"scraper", scraperSvc.Start},
	}
	for _, s := range starters {
		if err := s.start(ctx); err != nil {
			appLogger.Fatal("Failed to start service", logger.StringField("service", s.name), logger.ErrorField(err))
		}
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	apiV1 := e.Group("/api/v1")
	delivery.NewMarketHandler(marketSvc, refreshSvc, appLogger).RegisterRoutes(apiV1)
	delivery.NewSettingsHandler(refreshSvc, appLogger).RegisterRoutes(apiV1.Group("/settings"))
	delivery.NewAutoTradeHandler(autoTradeSvc, appLogger).RegisterRoutes(apiV1.Group("/auto-trade"))
	delivery.NewScraperHandler(scraperSvc, appLogger).RegisterRoutes(apiV1.Group("/scraper"))
	delivery.NewAlertHandler(alertMonitor, appLogger).RegisterRoutes(apiV1.Group("/alerts"))
	delivery.NewWatchlistHandler(watchlistSvc, appLogger).RegisterRoutes(apiV1.Group("/watchlist"))
	delivery.NewNotificationHandler(notificationSvc, appLogger).RegisterRoutes(apiV1.Group("/notifications"))

	e.GET("/swagger/*", swagger.WrapHandler)

	utils.GoSafe(func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	})

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	scraperSvc.Stop()
	autoTradeSvc.Stop()
	alertMonitor.Stop()
	refreshSvc.Stop()
	marketSvc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Stock Dashboard API
// @version 1.0
// @description Simulated A-share market dashboard: volume ranking, price alerts, watchlist, auto-trade and news scraping.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
