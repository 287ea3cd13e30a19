package bootstrap

import (
	"log/slog"

	"happy-hotel/internal/handler/middleware"
	"happy-hotel/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogConfig,
		middleware.NewLogger,
		NewSlogLogger,
	),
)

func NewLogConfig(cfg config.Config) config.LogConfig {
	return cfg.Log
}

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}
