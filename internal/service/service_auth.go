package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/crypto"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/internal/validators"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// authService implements sign-in, refresh rotation, logout and access
// token parsing on top of a [TokenIssuer].
type authService struct {
	users         store.UserRepository
	refreshTokens store.RefreshTokenRepository
	issuer        TokenIssuer
	hasher        crypto.PasswordHasher
	validator     validators.Validator

	tokenIssuer    string
	accessSignKey  string
	refreshSignKey string
	refreshHashKey string

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService wires the auth flow. All state is read-only after
// construction, so the service is safe for concurrent use.
func NewAuthService(
	users store.UserRepository,
	refreshTokens store.RefreshTokenRepository,
	issuer TokenIssuer,
	hasher crypto.PasswordHasher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:          users,
		refreshTokens:  refreshTokens,
		issuer:         issuer,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		tokenIssuer:    cfg.TokenIssuer,
		accessSignKey:  cfg.AccessTokenSignKey,
		refreshSignKey: cfg.RefreshTokenSignKey,
		refreshHashKey: cfg.RefreshTokenHashKey,
		now:            time.Now,
		logger:         logger,
	}
}

// SignIn verifies the credentials and issues a new token pair.
//
// An unknown email and a wrong password both return [ErrInvalidCredentials].
// For an unknown email the password is still compared against a dummy hash,
// so response timing does not reveal whether the account exists.
func (a *authService) SignIn(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.users.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNotFound) {
		a.hasher.CompareDummy(credentials.Password)
		log.Info().Msg("sign-in rejected")
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user lookup during sign-in failed")
		return models.TokenPair{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, credentials.Password); err != nil {
		log.Info().Int64("user_id", user.UserID).Msg("sign-in rejected")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	return a.issuer.IssueTokens(ctx, user.UserID, user.Name)
}

// Refresh exchanges a refresh token for a new pair and invalidates the
// presented one. Every verification failure is reported as
// [ErrUnauthorized]; the reason is only logged.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := a.verifyRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Info().Str("reason", err.Error()).Msg("refresh rejected")
		return models.TokenPair{}, ErrUnauthorized
	}

	return a.issuer.IssueTokens(ctx, user.UserID, user.Name)
}

func (a *authService) verifyRefreshToken(ctx context.Context, refreshToken string) (models.User, error) {
	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, err
	}

	stored, err := a.refreshTokens.FindLatestByUserID(ctx, token.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("no stored refresh token: %w", err)
	}

	if !utils.EqualHash(refreshToken, a.refreshHashKey, stored.TokenHash) {
		return models.User{}, errors.New("refresh token hash mismatch")
	}

	if stored.Expired(a.now()) {
		return models.User{}, errors.New("stored refresh token expired")
	}

	user, err := a.users.FindUserByID(ctx, token.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("refresh token owner lookup: %w", err)
	}

	return user, nil
}

// Logout deletes every stored refresh token of the user. Logging out
// twice is not an error.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	if err := a.refreshTokens.DeleteByUserID(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("logout failed")
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// ParseAccessToken validates an access token. Any failure, including a
// refresh token presented in its place, is [ErrUnauthorized].
func (a *authService) ParseAccessToken(ctx context.Context, accessToken string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(accessToken, a.accessSignKey, a.tokenIssuer)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return models.Claims{UserID: token.UserID, Username: token.Username}, nil
}

func (a *authService) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	return user.Public(), nil
}
