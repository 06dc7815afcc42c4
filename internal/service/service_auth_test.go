package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/crypto"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

var testAppConfig = config.App{
	AccessTokenSignKey:   "access-sign-key",
	RefreshTokenSignKey:  "refresh-sign-key",
	RefreshTokenHashKey:  "refresh-hash-key",
	TokenIssuer:          "go-finance-tracker",
	AccessTokenDuration:  15 * time.Minute,
	RefreshTokenDuration: 168 * time.Hour,
	Version:              "test",
}

type authFixture struct {
	svc    *authService
	users  *mock.MockUserRepository
	tokens *mock.MockRefreshTokenRepository
	hasher *mock.MockPasswordHasher
}

func newAuthFixture(t *testing.T, ctrl *gomock.Controller) authFixture {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	tokens := mock.NewMockRefreshTokenRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	issuer := NewTokenIssuer(tokens, testAppConfig, logger.Nop())

	svc := NewAuthService(users, tokens, issuer, hasher, testAppConfig, logger.Nop()).(*authService)

	return authFixture{svc: svc, users: users, tokens: tokens, hasher: hasher}
}

var ana = models.User{UserID: 7, Name: "Ana", Email: "ana@example.com", PasswordHash: "$2a$10$hash"}

// captureStored records the refresh token row the issuer writes.
func captureStored(dst *models.RefreshToken) func(context.Context, models.RefreshToken) error {
	return func(_ context.Context, token models.RefreshToken) error {
		*dst = token
		return nil
	}
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	ctx := context.Background()
	var stored models.RefreshToken

	f.users.EXPECT().FindUserByEmail(ctx, ana.Email).Return(ana, nil)
	f.hasher.EXPECT().Compare(ana.PasswordHash, "1234").Return(nil)
	f.tokens.EXPECT().ReplaceForUser(ctx, gomock.Any()).DoAndReturn(captureStored(&stored))

	pair, err := f.svc.SignIn(ctx, models.Credentials{Email: ana.Email, Password: "1234"})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	assert.Equal(t, ana.UserID, stored.UserID)
	assert.True(t, utils.EqualHash(pair.RefreshToken, testAppConfig.RefreshTokenHashKey, stored.TokenHash))
	assert.NotEqual(t, pair.RefreshToken, stored.TokenHash, "raw refresh token must never be stored")
	assert.WithinDuration(t, time.Now().Add(testAppConfig.RefreshTokenDuration), stored.ExpiresAt, time.Minute)

	claims, err := f.svc.ParseAccessToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.Claims{UserID: 7, Username: "Ana"}, claims)
}

func TestSignIn_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	ctx := context.Background()

	f.users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNotFound)
	f.hasher.EXPECT().CompareDummy("1234")

	f.users.EXPECT().FindUserByEmail(ctx, ana.Email).Return(ana, nil)
	f.hasher.EXPECT().Compare(ana.PasswordHash, "wrong").Return(crypto.ErrPasswordMismatch)

	_, unknownErr := f.svc.SignIn(ctx, models.Credentials{Email: "ghost@example.com", Password: "1234"})
	_, wrongErr := f.svc.SignIn(ctx, models.Credentials{Email: ana.Email, Password: "wrong"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestSignIn_MalformedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)

	_, err := f.svc.SignIn(context.Background(), models.Credentials{Email: "ana", Password: "1234"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSignIn_PersistenceFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	ctx := context.Background()

	f.users.EXPECT().FindUserByEmail(ctx, ana.Email).Return(ana, nil)
	f.hasher.EXPECT().Compare(ana.PasswordHash, "1234").Return(nil)
	f.tokens.EXPECT().ReplaceForUser(ctx, gomock.Any()).Return(store.ErrExecutingStatement)

	pair, err := f.svc.SignIn(ctx, models.Credentials{Email: ana.Email, Password: "1234"})

	assert.ErrorIs(t, err, ErrTokenPersistenceFailed)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, pair)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestRefresh_RotatesAndRejectsOldToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	ctx := context.Background()
	var stored models.RefreshToken

	f.tokens.EXPECT().ReplaceForUser(ctx, gomock.Any()).DoAndReturn(captureStored(&stored)).Times(2)
	f.tokens.EXPECT().FindLatestByUserID(ctx, ana.UserID).DoAndReturn(
		func(context.Context, int64) (models.RefreshToken, error) { return stored, nil },
	).Times(2)
	f.users.EXPECT().FindUserByID(ctx, ana.UserID).Return(ana, nil)

	first, err := f.svc.issuer.IssueTokens(ctx, ana.UserID, ana.Name)
	require.NoError(t, err)

	second, err := f.svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = f.svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefresh_NoStoredRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	ctx := context.Background()

	f.tokens.EXPECT().ReplaceForUser(ctx, gomock.Any()).Return(nil)
	f.tokens.EXPECT().FindLatestByUserID(ctx, ana.UserID).Return(models.RefreshToken{}, store.ErrNotFound)

	pair, err := f.svc.issuer.IssueTokens(ctx, ana.UserID, ana.Name)
	require.NoError(t, err)

	_, err = f.svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefresh_StoredRowExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	ctx := context.Background()
	var stored models.RefreshToken

	f.tokens.EXPECT().ReplaceForUser(ctx, gomock.Any()).DoAndReturn(captureStored(&stored))

	pair, err := f.svc.issuer.IssueTokens(ctx, ana.UserID, ana.Name)
	require.NoError(t, err)

	f.tokens.EXPECT().FindLatestByUserID(ctx, ana.UserID).Return(stored, nil)
	f.svc.now = func() time.Time { return stored.ExpiresAt.Add(time.Second) }

	_, err = f.svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefresh_AccessTokenIsNotARefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	ctx := context.Background()

	f.tokens.EXPECT().ReplaceForUser(ctx, gomock.Any()).Return(nil)

	pair, err := f.svc.issuer.IssueTokens(ctx, ana.UserID, ana.Name)
	require.NoError(t, err)

	_, err = f.svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.ParseAccessToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefresh_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)

	_, err := f.svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Logout / Profile ─────────────────────────────────────────────────────────

func TestLogout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	ctx := context.Background()

	f.tokens.EXPECT().DeleteByUserID(ctx, ana.UserID).Return(nil).Times(2)

	require.NoError(t, f.svc.Logout(ctx, ana.UserID))
	require.NoError(t, f.svc.Logout(ctx, ana.UserID))
}

func TestLogout_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	f.tokens.EXPECT().DeleteByUserID(gomock.Any(), ana.UserID).Return(store.ErrExecutingStatement)

	assert.ErrorIs(t, f.svc.Logout(context.Background(), ana.UserID), store.ErrExecutingStatement)
}

func TestProfile_HidesHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	f.users.EXPECT().FindUserByID(gomock.Any(), ana.UserID).Return(ana, nil)

	user, err := f.svc.Profile(context.Background(), ana.UserID)

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "Ana", user.Name)
}

func TestProfile_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)
	f.users.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrNotFound)

	_, err := f.svc.Profile(context.Background(), 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
