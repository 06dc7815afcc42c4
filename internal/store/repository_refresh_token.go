// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// refreshTokenRepository stores keyed hashes of issued refresh tokens in
// the "refresh_tokens" table.
type refreshTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRefreshTokenRepository constructs a [RefreshTokenRepository].
func NewRefreshTokenRepository(db *DB, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("creating refresh token repository")
	return &refreshTokenRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceForUser stores the token as the only row of the user. The upsert
// on the unique user_id column overwrites the previous token in one
// statement, so concurrent logins cannot leave two rows behind.
// A transient failure (deadlock, serialization, lost connection) is retried
// once.
func (r *refreshTokenRepository) ReplaceForUser(ctx context.Context, token models.RefreshToken) error {
	log := logger.FromContext(ctx)

	err := r.upsert(ctx, token)
	if err != nil && r.db.retryable(err) {
		log.Warn().Err(err).Str("func", "*refreshTokenRepository.ReplaceForUser").Int64("user_id", token.UserID).Msg("retrying refresh token replacement")
		err = r.upsert(ctx, token)
	}
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.ReplaceForUser").Int64("user_id", token.UserID).Msg("error replacing refresh token")
		return err
	}

	return nil
}

const upsertRefreshTokenSuffix = "ON CONFLICT (user_id) DO UPDATE SET " +
	"token_hash = EXCLUDED.token_hash, expires_at = EXCLUDED.expires_at, created_at = NOW()"

func (r *refreshTokenRepository) upsert(ctx context.Context, token models.RefreshToken) error {
	query, args, err := psql.Insert("refresh_tokens").
		Columns("user_id", "token_hash", "expires_at").
		Values(token.UserID, token.TokenHash, token.ExpiresAt).
		Suffix(upsertRefreshTokenSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err)
	}

	return nil
}

// FindLatestByUserID returns the stored token of the user or [ErrNotFound].
func (r *refreshTokenRepository) FindLatestByUserID(ctx context.Context, userID int64) (models.RefreshToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(refreshTokenColumns...).
		From("refresh_tokens").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token models.RefreshToken
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&token.ID, &token.UserID, &token.TokenHash, &token.ExpiresAt, &token.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.FindLatestByUserID").Int64("user_id", userID).Msg("error finding refresh token")
		return models.RefreshToken{}, readError(err)
	}

	return token, nil
}

// DeleteByUserID revokes every token of the user. Deleting nothing is not
// an error.
func (r *refreshTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("refresh_tokens").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.DeleteByUserID").Int64("user_id", userID).Msg("error deleting refresh tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpired purges rows whose expiry is not after now and reports how
// many were removed.
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("refresh_tokens").Where(sq.LtOrEq{"expires_at": now}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.DeleteExpired").Msg("error purging expired refresh tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
