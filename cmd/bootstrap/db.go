package bootstrap

import (
	"context"
	"log/slog"

	"happy-hotel/internal/infra/db"
	"happy-hotel/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool that backs rooms, bookings and notification jobs.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("booking database connected", poolAttrs(cfg.DB)...)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func poolAttrs(cfg config.DBConfig) []any {
	return []any{
		slog.String("host", cfg.Host),
		slog.String("database", cfg.DBName),
		slog.Int("max_conns", int(cfg.MaxConns)),
	}
}
