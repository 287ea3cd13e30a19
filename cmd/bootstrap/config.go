package bootstrap

import (
	"log/slog"

	"happy-hotel/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(LogBookingConfig),
)

// LogBookingConfig records the pricing and payment settings bookings run with.
// Credentials are never logged.
func LogBookingConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("booking configuration loaded",
		slog.Float64("nightly_rate_per_room", cfg.Pricing.NightlyRatePerRoom),
		slog.String("base_currency", cfg.Pricing.BaseCurrency),
		slog.String("payment_provider", cfg.Payment.Provider),
		slog.Float64("payment_auth_limit", cfg.Payment.AuthorizationLimit),
		slog.Bool("stripe_key_set", cfg.Payment.StripeSecretKey != ""),
	)
}
