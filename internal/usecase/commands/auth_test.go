//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"movie-booking/internal/domain/user"
	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/pkg/errs"
	"movie-booking/internal/pkg/password"
	"movie-booking/internal/usecase/commands"
	"movie-booking/tests/common/builder"
	commandsmock "movie-booking/tests/mock/commands"
	queriesmock "movie-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	*txMocks
	readStore *queriesmock.MockUserReadStore
	hasher    *commandsmock.MockPasswordHasher
	tokens    *commandsmock.MockTokenIssuer
	cmds      commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	f := &authFixture{
		txMocks:   newTxMocks(ctrl),
		readStore: queriesmock.NewMockUserReadStore(ctrl),
		hasher:    commandsmock.NewMockPasswordHasher(ctrl),
		tokens:    commandsmock.NewMockTokenIssuer(ctrl),
	}
	f.cmds = commands.NewAuthCommands(f.uow, f.readStore, f.hasher, f.tokens)
	return f
}

func notFound() error {
	return infra.WrapRepoErr(nil, infra.KindNotFound, "user not found", nil)
}

func TestSignup(t *testing.T) {
	req := builder.NewAuthBuilder().BuildSignupDTO()

	t.Run("新規登録成功", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).Return(nil, notFound())
		f.hasher.EXPECT().Hash(req.Password).Return("$2a$12$digest", nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgsql.DBTX, u *user.User) (int64, error) {
				assert.Equal(t, req.Email, u.Email().Value())
				assert.Equal(t, "$2a$12$digest", u.PasswordDigest())
				return 11, nil
			})

		got, err := f.cmds.Signup(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(11), got.UserID)
	})

	t.Run("事前確認で重複検出", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).
			Return(builder.NewUserBuilder().BuildCredentialView(), nil)

		_, err := f.cmds.Signup(t.Context(), req)
		assert.True(t, errs.Is(err, commands.ErrEmailAlreadyRegistered))
	})

	t.Run("同時登録は一意制約違反で重複扱い", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).Return(nil, notFound())
		f.hasher.EXPECT().Hash(req.Password).Return("$2a$12$digest", nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr(nil, infra.KindDuplicateKey, "email exists", errors.New("23505")))

		_, err := f.cmds.Signup(t.Context(), req)
		assert.True(t, errs.Is(err, commands.ErrEmailAlreadyRegistered))
	})

	t.Run("形式チェックはしない", func(t *testing.T) {
		f := newAuthFixture(t)
		local := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.Email = "a@localhost" }).BuildSignupDTO()
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "a@localhost").Return(nil, notFound())
		f.hasher.EXPECT().Hash(local.Password).Return("$2a$12$digest", nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(12), nil)

		got, err := f.cmds.Signup(t.Context(), local)
		require.NoError(t, err)
		assert.Equal(t, int64(12), got.UserID)
	})

	t.Run("空白のみのメールアドレス", func(t *testing.T) {
		f := newAuthFixture(t)
		bad := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.Email = "   " }).BuildSignupDTO()

		_, err := f.cmds.Signup(t.Context(), bad)
		assert.True(t, errs.Is(err, commands.ErrInvalidSignup))
		assert.ErrorIs(t, err, user.ErrEmptyEmail)
	})

	t.Run("DB障害はそのまま返す", func(t *testing.T) {
		f := newAuthFixture(t)
		dbErr := infra.WrapRepoErr(nil, infra.KindDBFailure, "lookup failed", errors.New("conn reset"))
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).Return(nil, dbErr)

		_, err := f.cmds.Signup(t.Context(), req)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, errs.Is(err, commands.ErrEmailAlreadyRegistered))
	})
}

func TestLogin(t *testing.T) {
	req := builder.NewAuthBuilder().BuildDTO()
	cred := builder.NewUserBuilder().BuildCredentialView()

	t.Run("ログイン成功", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).Return(cred, nil)
		f.hasher.EXPECT().Compare(cred.PasswordDigest, req.Password).Return(nil)
		f.tokens.EXPECT().GenerateToken(cred.UserID, cred.Email).Return("signed", nil)

		got, err := f.cmds.Login(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, &commands.LoginResult{UserID: cred.UserID, Token: "signed"}, got)
	})

	t.Run("前後の空白は除去して検索", func(t *testing.T) {
		f := newAuthFixture(t)
		padded := req
		padded.Email = "  " + req.Email + " "
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).Return(cred, nil)
		f.hasher.EXPECT().Compare(cred.PasswordDigest, req.Password).Return(nil)
		f.tokens.EXPECT().GenerateToken(cred.UserID, cred.Email).Return("signed", nil)

		_, err := f.cmds.Login(t.Context(), padded)
		require.NoError(t, err)
	})

	t.Run("未登録メール", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).Return(nil, notFound())

		_, err := f.cmds.Login(t.Context(), req)
		assert.True(t, errs.Is(err, commands.ErrUserNotFound))
	})

	t.Run("パスワード不一致", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).Return(cred, nil)
		f.hasher.EXPECT().Compare(cred.PasswordDigest, req.Password).Return(password.ErrMismatch)

		_, err := f.cmds.Login(t.Context(), req)
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("トークン生成失敗", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).Return(cred, nil)
		f.hasher.EXPECT().Compare(cred.PasswordDigest, req.Password).Return(nil)
		f.tokens.EXPECT().GenerateToken(cred.UserID, cred.Email).Return("", errors.New("hmac failure"))

		_, err := f.cmds.Login(t.Context(), req)
		assert.True(t, errs.Is(err, commands.ErrTokenGeneration))
	})
}
