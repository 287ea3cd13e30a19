package components

import (
	"log/slog"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/handler/api"
	"happy-hotel/internal/pkg/clock"
	"happy-hotel/internal/pkg/config"
	"happy-hotel/internal/pkg/currency"
	"happy-hotel/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		fx.Annotate(
			usecase.NewBookingService,
			fx.As(new(usecase.BookingUseCase)),
		),
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPriceCalculator,
	fx.Annotate(
		NewCurrencyConverter,
		fx.As(new(usecase.CurrencyConverter), new(api.ForeignCurrency)),
	),
)

func NewPriceCalculator(cfg config.Config) booking.PriceCalculator {
	return booking.NewPriceCalculatorWithRate(cfg.Pricing.NightlyRatePerRoom)
}

// NewCurrencyConverter serves both the foreign price and the currency label
// shown next to it in quotes.
func NewCurrencyConverter(cfg config.Config, logger *slog.Logger) *currency.FixedRateConverter {
	converter := currency.NewFixedRateConverter(cfg.Pricing.ForeignCurrency, cfg.Pricing.ForeignRate)
	logger.Info("currency converter configured",
		slog.String("base", cfg.Pricing.BaseCurrency),
		slog.String("foreign", converter.Code()),
		slog.Float64("rate", converter.Rate()),
	)
	return converter
}
