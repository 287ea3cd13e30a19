package components

import (
	"happy-hotel/internal/infra/db"
	"happy-hotel/internal/infra/notification"
	"happy-hotel/internal/infra/repository"
	"happy-hotel/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(usecase.RoomInventory)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notification.JobWriter)),
		),
		fx.Annotate(
			notification.NewMailSender,
			fx.As(new(usecase.NotificationSender)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
