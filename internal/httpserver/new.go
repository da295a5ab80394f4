package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"item-details-service/config"
	"item-details-service/internal/itemdetail/hook"
	"item-details-service/pkg/datemath"
	"item-details-service/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	// Auth & throttling
	apiKeys        []config.APIKeyConfig
	requestsPerMin int

	// Storage
	db       *sql.DB
	redis    *redis.Client
	cacheTTL time.Duration

	// Item details collaborators
	dates      *datemath.Parser
	calendar   hook.Calendar
	calendarID string
	sender     hook.Sender
	chatID     int64
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	APIKeys        []config.APIKeyConfig
	RequestsPerMin int

	// DB is required. Redis is optional; nil disables the item details cache.
	DB       *sql.DB
	Redis    *redis.Client
	CacheTTL time.Duration

	// Dates defaults to a UTC parser.
	Dates *datemath.Parser

	// Calendar enables due date reminders; Telegram enables change notifications.
	Calendar   hook.Calendar
	CalendarID string
	Telegram   hook.Sender
	ChatID     int64
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		apiKeys:         cfg.APIKeys,
		requestsPerMin:  cfg.RequestsPerMin,
		db:              cfg.DB,
		redis:           cfg.Redis,
		cacheTTL:        cfg.CacheTTL,
		dates:           cfg.Dates,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		sender:          cfg.Telegram,
		chatID:          cfg.ChatID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
