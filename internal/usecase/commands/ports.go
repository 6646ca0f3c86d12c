package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/mock_ports.go -package=commandsmock

import "time"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(digest, password string) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, email string) (string, error)
}

// Actor is the caller as seen by the booking commands.
// Authenticated is false when booking routes run without token checks.
type Actor struct {
	UserID        int64
	Authenticated bool
}

func Anonymous() Actor {
	return Actor{}
}

// may reports whether the actor can act on resources owned by ownerID
func (a Actor) may(ownerID int64) bool {
	return !a.Authenticated || a.UserID == ownerID
}

// Write-side result of a booking create, mapped onto the response DTO by the handler
type BookingResult struct {
	BookingID  int64
	MovieID    int64
	TimeslotID int64
	SeatID     int64
	Date       string
	UserID     int64
	Email      string
	CreatedAt  time.Time
}
