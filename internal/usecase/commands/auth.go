package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/mock_auth.go -package=commandsmock

import (
	"context"
	"errors"

	"movie-booking/internal/domain/user"
	reqdto "movie-booking/internal/handler/dto/request"
	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/pkg/errs"
	"movie-booking/internal/pkg/password"
	"movie-booking/internal/usecase/queries"
	"movie-booking/internal/usecase/shared"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidSignup          = errs.New("invalid signup request")
	ErrUserNotFound           = errs.New("user not found")
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrTokenGeneration        = errs.New("token generation failed")
)

type SignupResult struct {
	UserID int64
}

type LoginResult struct {
	UserID int64
	Token  string
}

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (*SignupResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	hasher    PasswordHasher
	tokens    TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, hasher PasswordHasher, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		hasher:    hasher,
		tokens:    tokens,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*SignupResult, error) {
	email, pw, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	taken, err := a.emailTaken(ctx, email.Value())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyRegistered
	}

	digest, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := user.NewUser(email, digest)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Users().Create(ctx, tx.DB(), u)
		return createErr
	})
	if err != nil {
		// a concurrent signup can pass the pre-check; the unique index decides
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailAlreadyRegistered)
		}
		return nil, err
	}

	return &SignupResult{UserID: id}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	cred, err := a.findCredentials(ctx, req.NormalizedEmail())
	if err != nil {
		return nil, err
	}

	if err := a.hasher.Compare(cred.PasswordDigest, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to compare password")
	}

	token, err := a.tokens.GenerateToken(cred.UserID, cred.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: cred.UserID, Token: token}, nil
}

func (a *authCommandsImpl) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := a.findCredentials(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case errs.Is(err, ErrUserNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (a *authCommandsImpl) findCredentials(ctx context.Context, email string) (*queries.UserCredentialView, error) {
	var cred *queries.UserCredentialView
	err := a.uow.WithDB(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		var err error
		cred, err = a.readStore.FindByEmail(ctx, db, email)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return cred, nil
}
