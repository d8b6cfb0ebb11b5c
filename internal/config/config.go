package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Logging controls structured log output for the whole process.
type Logging struct {
	Enabled  bool
	AppMode  string // "development" or "production"
	FilePath string // optional; empty means stderr only
}

// PersonalAI holds credentials for the Personal AI API.
type PersonalAI struct {
	APIKey     string
	BaseURL    string
	DomainName string
}

// Forex holds the per-provider API keys. A provider with an empty key is
// simply not constructed.
type Forex struct {
	ExchangeRateHostKey string
	FixerKey            string
	CurrencyLayerKey    string
	OpenExchangeRatesID string
	AlphaVantageKey     string
	ExchangeRateAPIKey  string
}

type Config struct {
	Logging        Logging
	PersonalAI     PersonalAI
	Forex          Forex
	RequestTimeout time.Duration
}

// Development reports whether the process runs in development mode.
func (l Logging) Development() bool {
	return strings.EqualFold(l.AppMode, "development")
}

// Load reads configuration from the environment. A .env file at envPath (or
// config/.env when empty) is loaded first when present; real environment
// variables win over file values.
func Load(envPath string) (Config, error) {
	if envPath == "" {
		envPath = "config/.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	cfg := Config{
		Logging: Logging{
			Enabled:  parseBool(os.Getenv("ENABLE_LOGGING")),
			AppMode:  defaultStr(os.Getenv("APP_MODE"), "development"),
			FilePath: os.Getenv("LOG_FILE_PATH"),
		},
		PersonalAI: PersonalAI{
			APIKey:     os.Getenv("PERSONAL_AI_API_KEY"),
			BaseURL:    defaultStr(os.Getenv("PERSONAL_AI_BASE_URL"), "https://api.personal.ai"),
			DomainName: os.Getenv("PERSONAL_AI_DOMAIN_NAME"),
		},
		Forex: Forex{
			ExchangeRateHostKey: os.Getenv("EXCHANGERATE_HOST_ACCESS_KEY"),
			FixerKey:            os.Getenv("FIXER_ACCESS_KEY"),
			CurrencyLayerKey:    os.Getenv("CURRENCYLAYER_ACCESS_KEY"),
			OpenExchangeRatesID: os.Getenv("OPENEXCHANGERATES_APP_ID"),
			AlphaVantageKey:     os.Getenv("ALPHAVANTAGE_API_KEY"),
			ExchangeRateAPIKey:  os.Getenv("EXCHANGERATE_API_KEY"),
		},
		RequestTimeout: 15 * time.Second,
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.RequestTimeout = time.Duration(x) * time.Second
		}
	}
	return cfg, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
