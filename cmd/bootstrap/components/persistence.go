package components

import (
	"innkeeper/internal/infra/db"
	"innkeeper/internal/infra/readstore"
	"innkeeper/internal/infra/uow"
	"innkeeper/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Room
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomViewRepo)),
			fx.As(new(queries.RoomCounter)),
		),
		// Guest
		fx.Annotate(
			readstore.NewGuestReadStore,
			fx.As(new(queries.GuestViewRepo)),
		),
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
			fx.As(new(queries.AvailabilityRepo)),
		),
		// Reporting
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.StayRecordRepo)),
		),
		// Staff: auth commands need the concrete store for credential rows
		readstore.NewStaffReadStore,
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
