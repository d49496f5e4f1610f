package components

import (
	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/infra/readstore"
	"campsite-booking/internal/infra/repository"
	"campsite-booking/internal/infra/uow"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Plot catalog writes go straight to the pool; booking writes go
		// through the unit of work and its transaction-scoped repositories.
		fx.Annotate(
			repository.NewPlotRepository,
			fx.As(new(commands.PlotWriteRepository)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewPlotReadStore,
			fx.As(new(queries.PlotReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
