// Package config loads InvestTrack configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env      string
	Port     string
	LogLevel string

	// Finnhub (fast quote provider)
	FinnhubAPIKey        string
	FinnhubBaseURL       string
	FinnhubRatePerMinute int

	// Yahoo Finance (rich provider)
	YahooQuoteURL  string
	YahooChartURL  string
	YahooSearchURL string

	// Market data core
	ProviderTimeout  time.Duration
	QuoteTTL         time.Duration
	ChartTTL         time.Duration
	SearchTTL        time.Duration
	DomesticSuffixes []string
	SymbolTableFile  string
	MarketLocation   *time.Location

	// News
	NewsFeedURL string

	// Portfolio store
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Warm-cache refresher; empty disables the job
	RefreshCron string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: strings.ToLower(os.Getenv("LOG_LEVEL")),

		FinnhubAPIKey:  firstEnv("FINNHUB_API_KEY", "NEXT_PUBLIC_FINNHUB_API_KEY"),
		FinnhubBaseURL: getEnv("FINNHUB_BASE_URL", "https://finnhub.io/api/v1"),

		YahooQuoteURL:  getEnv("YAHOO_QUOTE_URL", "https://query1.finance.yahoo.com/v7/finance/quote"),
		YahooChartURL:  getEnv("YAHOO_CHART_URL", "https://query1.finance.yahoo.com/v8/finance/chart"),
		YahooSearchURL: getEnv("YAHOO_SEARCH_URL", "https://query1.finance.yahoo.com/v1/finance/search"),

		SymbolTableFile: os.Getenv("SYMBOL_TABLE_FILE"),
		NewsFeedURL:     getEnv("NEWS_FEED_URL", "https://news.google.com/rss/search"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:     getEnv("DB_PATH", "investtrack.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "investtrack"),
		DBPassword: getEnv("DB_PASSWORD", "investtrack"),
		DBName:     getEnv("DB_NAME", "investtrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	var err error
	if cfg.FinnhubRatePerMinute, err = parseInt("FINNHUB_RATE_PER_MINUTE", 60); err != nil {
		return nil, err
	}
	if cfg.ProviderTimeout, err = parseDuration("PROVIDER_TIMEOUT", 8*time.Second); err != nil {
		return nil, err
	}
	if cfg.QuoteTTL, err = parseDuration("QUOTE_TTL", 2*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ChartTTL, err = parseDuration("CHART_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SearchTTL, err = parseDuration("SEARCH_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	cfg.DomesticSuffixes = parseList(getEnv("DOMESTIC_SUFFIXES", ".TW,.TWO"))

	tz := getEnv("MARKET_TIMEZONE", "Asia/Taipei")
	if cfg.MarketLocation, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid MARKET_TIMEZONE %q: %w", tz, err)
	}

	// An explicitly empty REFRESH_CRON disables the refresher.
	if v, ok := os.LookupEnv("REFRESH_CRON"); ok {
		cfg.RefreshCron = strings.TrimSpace(v)
	} else {
		cfg.RefreshCron = "@every 1m"
	}

	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be sqlite or postgres", cfg.DBDriver)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", key, n)
	}
	return n, nil
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToUpper(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
