package config

import (
	"errors"
	"fmt"
	"time"

	"bizportal/internal/usecase"

	"github.com/spf13/viper"
)

// Config holds every setting of the portal, read from app.env and the
// environment. Environment variables win over the file.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`

	TickInterval             time.Duration `mapstructure:"TICK_INTERVAL"`
	QuoteResponseDelay       time.Duration `mapstructure:"QUOTE_RESPONSE_DELAY"`
	NegotiationResponseDelay time.Duration `mapstructure:"NEGOTIATION_RESPONSE_DELAY"`
	CounterOfferDiscount     float64       `mapstructure:"COUNTER_OFFER_DISCOUNT"`
	VATRate                  float64       `mapstructure:"VAT_RATE"`
	InvoiceDueDays           int           `mapstructure:"INVOICE_DUE_DAYS"`
	OrderLeadDays            int           `mapstructure:"ORDER_LEAD_DAYS"`
	SeedData                 bool          `mapstructure:"SEED_DATA"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	ImageEditorMock        bool   `mapstructure:"IMAGE_EDITOR_MOCK"`
	GeminiAPIKey           string `mapstructure:"GEMINI_API_KEY"`
	ImageEditorModel       string `mapstructure:"IMAGE_EDITOR_MODEL"`
	ImageEditRatePerMinute int    `mapstructure:"IMAGE_EDIT_RATE_PER_MINUTE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"APP_PORT":                   "8080",
	"TICK_INTERVAL":              "5s",
	"QUOTE_RESPONSE_DELAY":       "5s",
	"NEGOTIATION_RESPONSE_DELAY": "4s",
	"COUNTER_OFFER_DISCOUNT":     0.05,
	"VAT_RATE":                   0.20,
	"INVOICE_DUE_DAYS":           30,
	"ORDER_LEAD_DAYS":            30,
	"SEED_DATA":                  true,
	"CORS_ALLOWED_ORIGINS":       "*",
	"IMAGE_EDITOR_MOCK":          false,
	"GEMINI_API_KEY":             "",
	"IMAGE_EDITOR_MODEL":         "gemini-2.5-flash-image",
	"IMAGE_EDIT_RATE_PER_MINUTE": 5,
	"LOG_LEVEL":                  "info",
	"LOG_FORMAT":                 "json",
}

// LoadConfig reads path/app.env when present and overlays the environment.
func LoadConfig(path string) (cfg Config, err error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.AddConfigPath(path)
		v.SetConfigName("app")
		v.SetConfigType("env")
		if err = v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.TickInterval <= 0:
		return fmt.Errorf("TICK_INTERVAL must be positive, got %s", c.TickInterval)
	case c.QuoteResponseDelay < 0 || c.NegotiationResponseDelay < 0:
		return errors.New("response delays must not be negative")
	case c.CounterOfferDiscount < 0 || c.CounterOfferDiscount >= 1:
		return fmt.Errorf("COUNTER_OFFER_DISCOUNT must be in [0, 1), got %v", c.CounterOfferDiscount)
	case c.VATRate < 0:
		return fmt.Errorf("VAT_RATE must not be negative, got %v", c.VATRate)
	case c.InvoiceDueDays < 0 || c.OrderLeadDays < 0:
		return errors.New("day offsets must not be negative")
	case c.ImageEditRatePerMinute < 1:
		return fmt.Errorf("IMAGE_EDIT_RATE_PER_MINUTE must be at least 1, got %d", c.ImageEditRatePerMinute)
	}
	return nil
}

func (c Config) Lifecycle() usecase.LifecycleConfig {
	return usecase.LifecycleConfig{
		TickInterval:             c.TickInterval,
		QuoteResponseDelay:       c.QuoteResponseDelay,
		NegotiationResponseDelay: c.NegotiationResponseDelay,
		CounterOfferDiscount:     c.CounterOfferDiscount,
		VATRate:                  c.VATRate,
		InvoiceDueDays:           c.InvoiceDueDays,
		OrderLeadDays:            c.OrderLeadDays,
	}
}
