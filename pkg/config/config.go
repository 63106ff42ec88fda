package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// ShippingRatesFile optionally points at a YAML rates file; empty
	// means built-in defaults.
	ShippingRatesFile string
}

func Load() Config {
	return Config{
		AppEnv:            getEnv("APP_ENV", "dev"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ShippingRatesFile: getEnv("SHIPPING_RATES_FILE", ""),
	}
}

// ShippingRates are the fee parameters for the shipping calculator.
// Amounts are decimal strings in the file to avoid float drift.
type ShippingRates struct {
	BaseFee           decimal.Decimal
	WeightRatePerGram decimal.Decimal
}

type shippingRatesFile struct {
	BaseFee           string `yaml:"base_fee"`
	WeightRatePerGram string `yaml:"weight_rate_per_gram"`
}

func DefaultShippingRates() ShippingRates {
	return ShippingRates{
		BaseFee:           decimal.RequireFromString("10.0"),
		WeightRatePerGram: decimal.RequireFromString("0.02"),
	}
}

// LoadShippingRates reads rates from a YAML file; an empty path yields the
// defaults. Fields missing from the file keep their default values.
func LoadShippingRates(path string) (ShippingRates, error) {
	rates := DefaultShippingRates()
	if path == "" {
		return rates, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return ShippingRates{}, fmt.Errorf("read shipping rates: %w", err)
	}

	var f shippingRatesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return ShippingRates{}, fmt.Errorf("parse shipping rates: %w", err)
	}

	if f.BaseFee != "" {
		rates.BaseFee, err = decimal.NewFromString(f.BaseFee)
		if err != nil {
			return ShippingRates{}, fmt.Errorf("base_fee: %w", err)
		}
	}
	if f.WeightRatePerGram != "" {
		rates.WeightRatePerGram, err = decimal.NewFromString(f.WeightRatePerGram)
		if err != nil {
			return ShippingRates{}, fmt.Errorf("weight_rate_per_gram: %w", err)
		}
	}

	return rates, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
