package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"item-details-service/config"
	configRedis "item-details-service/config/redis"
	configSQLite "item-details-service/config/sqlite"
	_ "item-details-service/docs" // Swagger docs
	"item-details-service/internal/httpserver"
	"item-details-service/pkg/datemath"
	"item-details-service/pkg/gcalendar"
	"item-details-service/pkg/log"
	"item-details-service/pkg/telegram"
)

// @title       Item Details Service API
// @description CRUD for items and item details backed by SQLite.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Item Details Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := configSQLite.Connect(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready (dsn=%s)", cfg.Database.DSN)

	srvCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		APIKeys:         cfg.Auth.APIKeys,
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
		DB:              db,
		CacheTTL:        cfg.Redis.CacheTTL,
	}

	// Redis cache (optional)
	if cfg.Redis.Addr != "" {
		redisClient, redisErr := configRedis.Connect(ctx, cfg.Redis)
		if redisErr != nil {
			logger.Warnf(ctx, "Redis cache not available (optional): %v", redisErr)
		} else {
			defer redisClient.Close()
			srvCfg.Redis = redisClient
		}
	}

	// DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	srvCfg.Dates = dateMathParser

	// Telegram notifications (optional)
	if cfg.Telegram.BotToken != "" {
		srvCfg.Telegram = telegram.NewBot(cfg.Telegram.BotToken)
		srvCfg.ChatID = cfg.Telegram.ChatID
	}

	// Google Calendar reminders (optional)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			srvCfg.Calendar = calendarClient
			srvCfg.CalendarID = cfg.GoogleCalendar.CalendarID
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
