package readstore

import (
	"context"
	"sort"

	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/pkg/pgconv"
	"movie-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogQueries interface {
	ListMovies(ctx context.Context, db pgsql.DBTX) ([]pgsql.Movie, error)
	FindMovieByID(ctx context.Context, db pgsql.DBTX, movieID int64) (pgsql.Movie, error)
	ListMovieDates(ctx context.Context, db pgsql.DBTX, movieID int64) ([]pgtype.Date, error)
	ListTimeslots(ctx context.Context, db pgsql.DBTX, arg pgsql.ListTimeslotsParams) ([]pgsql.Timeslot, error)
	ListSeats(ctx context.Context, db pgsql.DBTX, arg pgsql.ListSeatsParams) ([]pgsql.Seat, error)
	ServerVersion(ctx context.Context, db pgsql.DBTX) (string, error)
}

type CatalogReadStore struct {
	queries CatalogQueries
}

func NewCatalogReadStore(queries CatalogQueries) *CatalogReadStore {
	return &CatalogReadStore{queries: queries}
}

func (r *CatalogReadStore) ListMovies(ctx context.Context, db pgsql.DBTX) ([]queries.MovieView, error) {
	rows, err := r.queries.ListMovies(ctx, db)
	if err != nil {
		return nil, infra.Classify("failed to list movies", err)
	}

	views := make([]queries.MovieView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toMovieView(row))
	}
	return views, nil
}

func (r *CatalogReadStore) FindMovie(ctx context.Context, db pgsql.DBTX, movieID int64) (*queries.MovieView, error) {
	row, err := r.queries.FindMovieByID(ctx, db, movieID)
	if err != nil {
		return nil, infra.Classify("failed to find movie", err)
	}
	view := toMovieView(row)
	return &view, nil
}

func (r *CatalogReadStore) ListMovieDates(ctx context.Context, db pgsql.DBTX, movieID int64) ([]string, error) {
	rows, err := r.queries.ListMovieDates(ctx, db, movieID)
	if err != nil {
		return nil, infra.Classify("failed to list movie dates", err)
	}

	dates := make([]string, 0, len(rows))
	for _, d := range rows {
		if s := pgconv.DateFromPgtype(d); s != "" {
			dates = append(dates, s)
		}
	}
	return dates, nil
}

func (r *CatalogReadStore) ListTimeslots(ctx context.Context, db pgsql.DBTX, movieID int64, date string) ([]queries.TimeslotView, error) {
	day, err := pgconv.ParseDate(date)
	if err != nil {
		return nil, infra.WrapRepoErr(nil, infra.KindConstraintViolated, "invalid timeslot date", err)
	}

	rows, err := r.queries.ListTimeslots(ctx, db, pgsql.ListTimeslotsParams{MovieID: movieID, Date: day})
	if err != nil {
		return nil, infra.Classify("failed to list timeslots", err)
	}

	views := make([]queries.TimeslotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.TimeslotView{
			TimeslotID: row.TimeslotID,
			StartTime:  pgconv.TimeOfDayFromPgtype(row.StartTime),
			EndTime:    pgconv.TimeOfDayFromPgtype(row.EndTime),
		})
	}
	return views, nil
}

// ListSeats returns seats ascending by seat_number; clients render the seat map in this order.
func (r *CatalogReadStore) ListSeats(ctx context.Context, db pgsql.DBTX, movieID, timeslotID int64) ([]queries.SeatView, error) {
	rows, err := r.queries.ListSeats(ctx, db, pgsql.ListSeatsParams{MovieID: movieID, TimeslotID: timeslotID})
	if err != nil {
		return nil, infra.Classify("failed to list seats", err)
	}

	views := make([]queries.SeatView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.SeatView{
			SeatID:        row.SeatID,
			SeatNumber:    row.SeatNumber,
			BookingStatus: row.BookingStatus,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].SeatNumber < views[j].SeatNumber
	})
	return views, nil
}

func (r *CatalogReadStore) ServerVersion(ctx context.Context, db pgsql.DBTX) (string, error) {
	v, err := r.queries.ServerVersion(ctx, db)
	if err != nil {
		return "", infra.Classify("failed to read server version", err)
	}
	return v, nil
}

func toMovieView(row pgsql.Movie) queries.MovieView {
	return queries.MovieView{
		MovieID:         row.MovieID,
		Title:           row.Title,
		Description:     pgconv.StringPtrFromPgtype(row.Description),
		ThumbnailURL:    pgconv.StringPtrFromPgtype(row.ThumbnailURL),
		DurationMinutes: pgconv.Int32PtrFromPgtype(row.DurationMinutes),
		Genre:           pgconv.StringPtrFromPgtype(row.Genre),
		ReleaseDate:     pgconv.DatePtrFromPgtype(row.ReleaseDate),
	}
}
