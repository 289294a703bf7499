package components

import (
	"ridepool/internal/infra/readstore"
	"ridepool/internal/infra/repository"
	"ridepool/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Read-side repositories for queries
		readstore.NewTripReadStore,
		readstore.NewReservationReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DB {
	return pool
}
