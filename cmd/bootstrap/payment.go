package bootstrap

import (
	"fmt"
	"log/slog"

	"happy-hotel/internal/infra/payment"
	"happy-hotel/internal/pkg/config"
	"happy-hotel/internal/usecase"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) (usecase.PaymentGateway, error) {
	switch cfg.Payment.Provider {
	case config.PaymentProviderStripe:
		logger.Info("payment gateway selected", slog.String("provider", "stripe"))
		return payment.NewStripeGateway(cfg.Payment.StripeSecretKey, payment.StripeOptions{
			Currency:      cfg.Pricing.BaseCurrency,
			PaymentMethod: cfg.Payment.StripePaymentMethod,
			APIURL:        cfg.Payment.StripeAPIURL,
		}), nil
	case config.PaymentProviderLimit:
		logger.Info("payment gateway selected",
			slog.String("provider", "limit"),
			slog.Float64("authorization_limit", cfg.Payment.AuthorizationLimit),
		)
		return payment.NewLimitGateway(cfg.Payment.AuthorizationLimit), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Payment.Provider)
	}
}
