package utils

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Config carries everything read from the environment at startup.
type Config struct {
	Port      string
	MongoURI  string
	RedisAddr string
	JWTSecret string

	SendgridAPIKey string
	EmailSender    string

	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
	VATRate               decimal.Decimal
	BaseFormulationPrice  decimal.Decimal
}

// LoadConfig reads configuration from environment variables, applying the
// store defaults where a value is unset. Malformed numbers are an error.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:           envOr("PORT", "8000"),
		MongoURI:       envOr("MONGO_URI", "mongodb://localhost:27017"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailSender:    os.Getenv("EMAIL_SENDER"),
	}

	var err error
	if cfg.FreeShippingThreshold, err = decimalEnv("STORE_FREE_SHIPPING_THRESHOLD", "50"); err != nil {
		return Config{}, err
	}
	if cfg.FlatShippingFee, err = decimalEnv("STORE_SHIPPING_FEE", "25"); err != nil {
		return Config{}, err
	}
	if cfg.VATRate, err = decimalEnv("STORE_VAT_RATE", "0.16"); err != nil {
		return Config{}, err
	}
	if cfg.BaseFormulationPrice, err = decimalEnv("STORE_BASE_FORMULATION_PRICE", "25.00"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func decimalEnv(name, fallback string) (decimal.Decimal, error) {
	raw := envOr(name, fallback)
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return value, nil
}
