package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/mock_user.go -package=queriesmock

import (
	"context"

	"movie-booking/internal/infra/pgsql"
)

// UserReadStore is consumed by the auth commands for credential checks.
type UserReadStore interface {
	FindByEmail(ctx context.Context, db pgsql.DBTX, email string) (*UserCredentialView, error)
}
