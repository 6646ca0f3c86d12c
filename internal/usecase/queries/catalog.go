package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/mock_catalog.go -package=queriesmock

import (
	"context"

	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/pkg/errs"
	"movie-booking/internal/usecase/shared"
)

var ErrMovieNotFound = errs.New("movie not found")

type CatalogQueries interface {
	ListMovies(ctx context.Context) ([]MovieView, error)
	GetMovieDetails(ctx context.Context, movieID int64) (*MovieDetailsView, error)
	ListTimeslots(ctx context.Context, movieID int64, date string) ([]TimeslotView, error)
	ListSeats(ctx context.Context, movieID, timeslotID int64) ([]SeatView, error)
	ServerVersion(ctx context.Context) (string, error)
}

type CatalogReadStore interface {
	ListMovies(ctx context.Context, db pgsql.DBTX) ([]MovieView, error)
	FindMovie(ctx context.Context, db pgsql.DBTX, movieID int64) (*MovieView, error)
	ListMovieDates(ctx context.Context, db pgsql.DBTX, movieID int64) ([]string, error)
	ListTimeslots(ctx context.Context, db pgsql.DBTX, movieID int64, date string) ([]TimeslotView, error)
	ListSeats(ctx context.Context, db pgsql.DBTX, movieID, timeslotID int64) ([]SeatView, error)
	ServerVersion(ctx context.Context, db pgsql.DBTX) (string, error)
}

type catalogQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore CatalogReadStore
}

func NewCatalogQueries(uow shared.UnitOfWork, readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *catalogQueriesImpl) ListMovies(ctx context.Context) ([]MovieView, error) {
	var movies []MovieView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		var err error
		movies, err = q.readStore.ListMovies(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovieDetails reads the movie and its dates from one snapshot.
func (q *catalogQueriesImpl) GetMovieDetails(ctx context.Context, movieID int64) (*MovieDetailsView, error) {
	var details MovieDetailsView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		movie, err := q.readStore.FindMovie(ctx, db, movieID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMovieNotFound
			}
			return err
		}

		dates, err := q.readStore.ListMovieDates(ctx, db, movieID)
		if err != nil {
			return err
		}

		details = MovieDetailsView{Movie: *movie, AvailableDates: dates}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (q *catalogQueriesImpl) ListTimeslots(ctx context.Context, movieID int64, date string) ([]TimeslotView, error) {
	var slots []TimeslotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		var err error
		slots, err = q.readStore.ListTimeslots(ctx, db, movieID, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (q *catalogQueriesImpl) ListSeats(ctx context.Context, movieID, timeslotID int64) ([]SeatView, error) {
	var seats []SeatView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		var err error
		seats, err = q.readStore.ListSeats(ctx, db, movieID, timeslotID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return seats, nil
}

func (q *catalogQueriesImpl) ServerVersion(ctx context.Context) (string, error) {
	var version string
	err := q.uow.WithDB(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		var err error
		version, err = q.readStore.ServerVersion(ctx, db)
		return err
	})
	return version, err
}
