package user

type User struct {
	id             int64
	email          Email
	passwordDigest string
}

// NewUser builds a not-yet-persisted user; the store assigns the id.
func NewUser(email Email, passwordDigest string) (*User, error) {
	if passwordDigest == "" {
		return nil, ErrMissingDigest
	}
	return &User{
		email:          email,
		passwordDigest: passwordDigest,
	}, nil
}

func Reconstruct(id int64, email Email, passwordDigest string) (*User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	return &User{id: id, email: email, passwordDigest: passwordDigest}, nil
}

func (u *User) ID() int64              { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordDigest() string { return u.passwordDigest }
