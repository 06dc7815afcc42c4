// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// tokenIssuer signs access and refresh tokens with separate keys, so one
// kind is never accepted as the other, and keeps the keyed hash of the
// latest refresh token per user.
type tokenIssuer struct {
	refreshTokens store.RefreshTokenRepository

	issuer string

	accessSignKey   string
	accessDuration  time.Duration
	refreshSignKey  string
	refreshDuration time.Duration
	refreshHashKey  string

	logger *logger.Logger
}

// NewTokenIssuer constructs a [TokenIssuer] from the token settings in cfg.
func NewTokenIssuer(refreshTokens store.RefreshTokenRepository, cfg config.App, logger *logger.Logger) TokenIssuer {
	return &tokenIssuer{
		refreshTokens:   refreshTokens,
		issuer:          cfg.TokenIssuer,
		accessSignKey:   cfg.AccessTokenSignKey,
		accessDuration:  cfg.AccessTokenDuration,
		refreshSignKey:  cfg.RefreshTokenSignKey,
		refreshDuration: cfg.RefreshTokenDuration,
		refreshHashKey:  cfg.RefreshTokenHashKey,
		logger:          logger,
	}
}

// IssueTokens mints a new pair for the user and replaces every stored
// refresh token row of that user with the hash of the new one. A storage
// failure is returned wrapped in [ErrTokenPersistenceFailed] and no pair is
// handed out.
func (i *tokenIssuer) IssueTokens(ctx context.Context, userID int64, displayName string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	access, err := utils.GenerateJWTToken(i.issuer, userID, displayName, i.accessDuration, i.accessSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("access token generation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(i.issuer, userID, displayName, i.refreshDuration, i.refreshSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("refresh token generation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	err = i.refreshTokens.ReplaceForUser(ctx, models.RefreshToken{
		UserID:    userID,
		TokenHash: utils.HashString(refresh.SignedString, i.refreshHashKey),
		ExpiresAt: refresh.ExpiresAt.Time,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("storing refresh token failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenPersistenceFailed, err)
	}

	return models.TokenPair{
		AccessToken:  access.SignedString,
		RefreshToken: refresh.SignedString,
	}, nil
}
