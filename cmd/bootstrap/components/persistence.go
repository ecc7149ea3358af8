package components

import (
	"laundryhub/internal/infra/db"
	"laundryhub/internal/infra/readstore"
	"laundryhub/internal/infra/repository"
	"laundryhub/internal/infra/uow"
	"laundryhub/internal/usecase/commands"
	"laundryhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewCategoryReadStore,
			fx.As(new(queries.CategoryViewRepo)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewReceiptReadStore,
			fx.As(new(queries.ReceiptViewRepo)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var writeModule = fx.Module("persistence/write",
	fx.Provide(
		uow.NewPostgresUoW,
		// Notifications are written on the pool, not inside transactions
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationWriter)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
