package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Pricing PricingConfig
	Payment PaymentConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type PricingConfig struct {
	NightlyRatePerRoom float64 `envconfig:"PRICING_NIGHTLY_RATE" default:"50.0"`
	BaseCurrency       string  `envconfig:"PRICING_BASE_CURRENCY" default:"USD"`
	ForeignCurrency    string  `envconfig:"CURRENCY_FOREIGN_CODE" default:"EUR"`
	ForeignRate        float64 `envconfig:"CURRENCY_FOREIGN_RATE" default:"0.8"`
}

const (
	PaymentProviderLimit  = "limit"
	PaymentProviderStripe = "stripe"
)

type PaymentConfig struct {
	Provider            string  `envconfig:"PAYMENT_PROVIDER" default:"limit"`
	AuthorizationLimit  float64 `envconfig:"PAYMENT_AUTH_LIMIT" default:"1000"`
	StripeSecretKey     string  `envconfig:"STRIPE_SECRET_KEY"`
	StripePaymentMethod string  `envconfig:"STRIPE_PAYMENT_METHOD" default:"pm_card_visa"`
	StripeAPIURL        string  `envconfig:"STRIPE_API_URL"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *PaymentConfig) Validate() error {
	switch c.Provider {
	case PaymentProviderLimit:
		if c.AuthorizationLimit <= 0 {
			return fmt.Errorf("PAYMENT_AUTH_LIMIT must be positive, got %v", c.AuthorizationLimit)
		}
	case PaymentProviderStripe:
		if c.StripeSecretKey == "" {
			return fmt.Errorf("STRIPE_SECRET_KEY is required when PAYMENT_PROVIDER=%s", PaymentProviderStripe)
		}
	default:
		return fmt.Errorf("unknown PAYMENT_PROVIDER %q", c.Provider)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Payment.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid payment config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "Location"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Pricing: PricingConfig{
			NightlyRatePerRoom: 50.0,
			BaseCurrency:       "USD",
			ForeignCurrency:    "EUR",
			ForeignRate:        0.8,
		},
		Payment: PaymentConfig{
			Provider:           PaymentProviderLimit,
			AuthorizationLimit: 1000,
		},
	}
}
