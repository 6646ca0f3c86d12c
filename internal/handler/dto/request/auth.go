package request

import (
	"strings"

	"movie-booking/internal/domain/user"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *SignupRequest) ToDomain() (user.Email, user.Password, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Password{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Email{}, user.Password{}, err
	}
	return email, pw, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// NormalizedEmail is the lookup key; format is not checked on login.
func (r *LoginRequest) NormalizedEmail() string {
	return strings.TrimSpace(r.Email)
}
