package repository

import (
	"context"

	"movie-booking/internal/domain/user"
	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateUserParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, db pgsql.DBTX, u *user.User) (int64, error) {
	id, err := r.queries.CreateUser(ctx, db, pgsql.CreateUserParams{
		Email:    u.Email().Value(),
		Password: u.PasswordDigest(),
	})
	if err != nil {
		return 0, infra.Classify("failed to create user", err)
	}
	return id, nil
}
