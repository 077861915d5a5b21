package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort         = "1234"
	defaultRatesURL     = "https://www.cbr-xml-daily.ru/daily_json.js"
	defaultRatesTimeout = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Rate feed
	RatesURL         string
	RatesTimeout     time.Duration
	RatesCurrencyIDs []string

	StaticDir string

	// Shown on every page
	AppName     string
	AppVersion  string
	AuthorName  string
	AuthorGroup string

	// RateLimit uses the limiter format, e.g. "100-M". Empty disables rate limiting.
	RateLimit          string
	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("RATES_URL", defaultRatesURL)
	viper.SetDefault("RATES_TIMEOUT", defaultRatesTimeout.String())
	viper.SetDefault("RATES_CURRENCY_IDS", "")
	viper.SetDefault("STATIC_DIR", "./static")
	viper.SetDefault("APP_NAME", "Currency Board")
	viper.SetDefault("APP_VERSION", "0.0.1")
	viper.SetDefault("AUTHOR_NAME", "Mikhail Shlendov")
	viper.SetDefault("AUTHOR_GROUP", "IVT-2")
	viper.SetDefault("RATE_LIMIT", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("METRICS_ENABLED", true)

	// Environment variables override .env values, which override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	cfg.RatesURL = viper.GetString("RATES_URL")
	if cfg.RatesURL == "" {
		cfg.RatesURL = defaultRatesURL
	}

	// Load rate feed timeout (e.g., "10s", "1m")
	timeoutStr := viper.GetString("RATES_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultRatesTimeout
		log.Printf("Warning: Invalid value for RATES_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	cfg.RatesTimeout = timeout
	cfg.RatesCurrencyIDs = splitList(viper.GetString("RATES_CURRENCY_IDS"))

	cfg.StaticDir = viper.GetString("STATIC_DIR")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.AppName = viper.GetString("APP_NAME")
	cfg.AppVersion = viper.GetString("APP_VERSION")
	cfg.AuthorName = viper.GetString("AUTHOR_NAME")
	cfg.AuthorGroup = viper.GetString("AUTHOR_GROUP")
	cfg.RateLimit = strings.TrimSpace(viper.GetString("RATE_LIMIT"))
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.MetricsEnabled = viper.GetBool("METRICS_ENABLED")

	return cfg, nil
}

// splitList parses a comma-separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
