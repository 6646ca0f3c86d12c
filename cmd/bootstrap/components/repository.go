package components

import (
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/infra/readstore"
	"movie-booking/internal/infra/uow"
	"movie-booking/internal/pkg/config"
	"movie-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		uow.NewPostgresUoW,
	),
	readstoreModule,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.From(new(*pgsql.Queries)),
			fx.As(new(queries.UserReadStore)),
		),
		// Catalog
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.From(new(*pgsql.Queries)),
			fx.As(new(queries.CatalogReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.From(new(*pgsql.Queries)),
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewSQLQueries(cfg config.Config) *pgsql.Queries {
	return pgsql.New(cfg.DB.QueryTimeout)
}
