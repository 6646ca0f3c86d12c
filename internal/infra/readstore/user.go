package readstore

import (
	"context"

	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByEmail(ctx context.Context, db pgsql.DBTX, email string) (pgsql.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
}

func NewUserReadStore(queries UserReadQueries) *UserReadStore {
	return &UserReadStore{
		queries: queries,
	}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, db pgsql.DBTX, email string) (*queries.UserCredentialView, error) {
	row, err := r.queries.FindUserByEmail(ctx, db, email)
	if err != nil {
		return nil, infra.Classify("failed to find user by email", err)
	}

	return &queries.UserCredentialView{
		UserID:         row.UserID,
		Email:          row.Email,
		PasswordDigest: row.Password,
	}, nil
}
