//go:build unit || e2e

package builder

import (
	"movie-booking/internal/domain/user"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/usecase/queries"
)

type UserBuilder struct {
	UserID         int64
	Email          string
	PasswordDigest string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		UserID:         7,
		Email:          "test@example.com",
		PasswordDigest: "$2a$12$hashed_password",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.PasswordDigest)
}

func (u *UserBuilder) BuildInfra() pgsql.User {
	return pgsql.User{
		UserID:   u.UserID,
		Email:    u.Email,
		Password: u.PasswordDigest,
	}
}

func (u *UserBuilder) BuildCredentialView() *queries.UserCredentialView {
	return &queries.UserCredentialView{
		UserID:         u.UserID,
		Email:          u.Email,
		PasswordDigest: u.PasswordDigest,
	}
}
