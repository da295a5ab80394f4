package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	RateLimit  RateLimitConfig

	// Storage
	Database DatabaseConfig
	Redis    RedisConfig

	// Item details collaborators
	Timezone       string
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AuthConfig lists the API keys accepted by the server.
// An empty list disables authentication.
type AuthConfig struct {
	APIKeys []APIKeyConfig
}

type APIKeyConfig struct {
	Key    string
	UserID string
	Role   string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type DatabaseConfig struct {
	DSN string
}

// RedisConfig configures the optional item details cache. Empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = viper.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = viper.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Auth: api_keys may come from the YAML list or from AUTH_API_KEYS="key:user:role,..."
	if viper.IsSet("auth.api_keys") {
		keysRaw := viper.Get("auth.api_keys")
		switch keys := keysRaw.(type) {
		case []interface{}:
			for _, k := range keys {
				if keyMap, ok := k.(map[string]interface{}); ok {
					cfg.Auth.APIKeys = append(cfg.Auth.APIKeys, APIKeyConfig{
						Key:    getStringFromMap(keyMap, "key"),
						UserID: getStringFromMap(keyMap, "user_id"),
						Role:   getStringFromMap(keyMap, "role"),
					})
				}
			}
		case string:
			cfg.Auth.APIKeys = parseAPIKeys(keys)
		}
	}
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Database.DSN = viper.GetString("database.dsn")
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.CacheTTL = viper.GetDuration("redis.cache_ttl")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	// Collaborators
	cfg.Timezone = viper.GetString("timezone")
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.read_timeout", "5s")
	viper.SetDefault("http_server.write_timeout", "10s")
	viper.SetDefault("http_server.shutdown_timeout", "5s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("database.dsn", ":memory:")
	viper.SetDefault("redis.cache_ttl", "5m")
	viper.SetDefault("timezone", "UTC")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// validate checks cross-field constraints that viper cannot express.
func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	seen := make(map[string]bool, len(cfg.Auth.APIKeys))
	for i, k := range cfg.Auth.APIKeys {
		if k.Key == "" {
			return fmt.Errorf("auth.api_keys[%d]: key is required", i)
		}
		if seen[k.Key] {
			return fmt.Errorf("auth.api_keys[%d]: duplicate key", i)
		}
		seen[k.Key] = true
		if k.UserID == "" {
			return fmt.Errorf("auth.api_keys[%d]: user_id is required", i)
		}
		switch k.Role {
		case "viewer", "editor", "admin":
		default:
			return fmt.Errorf("auth.api_keys[%d]: invalid role %q (valid: viewer, editor, admin)", i, k.Role)
		}
	}

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}

// parseAPIKeys parses a comma-separated list of key:user_id:role triples.
func parseAPIKeys(s string) []APIKeyConfig {
	var keys []APIKeyConfig
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		k := APIKeyConfig{Key: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			k.UserID = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			k.Role = strings.TrimSpace(parts[2])
		}
		keys = append(keys, k)
	}
	return keys
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
