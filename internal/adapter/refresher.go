// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

const refreshFlightKey = "refresh"

// tokenRefresher exchanges the stored refresh token for a new pair. All
// concurrent callers share one in-flight exchange, so any number of
// simultaneous 401s costs exactly one POST /auth/refresh.
type tokenRefresher struct {
	// client must not carry the auth hooks of the main client, or a 401 on
	// the refresh call would recurse into the refresher.
	client *utils.HTTPClient
	tokens store.TokenStore
	group  singleflight.Group

	mu        sync.RWMutex
	onExpired func()

	logger *logger.Logger
}

func newTokenRefresher(client *utils.HTTPClient, tokens store.TokenStore, logger *logger.Logger) *tokenRefresher {
	return &tokenRefresher{client: client, tokens: tokens, logger: logger}
}

func (r *tokenRefresher) setOnExpired(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onExpired = fn
}

// Refresh returns an access token newer than stale. Callers that arrive
// while an exchange is running wait for it and get its outcome. The
// exchange is detached from the caller's cancellation so one impatient
// caller cannot fail the others.
func (r *tokenRefresher) Refresh(ctx context.Context, stale string) (string, error) {
	v, err, shared := r.group.Do(refreshFlightKey, func() (any, error) {
		return r.refresh(context.WithoutCancel(ctx), stale)
	})
	if err != nil {
		return "", err
	}

	r.logger.Debug().Bool("shared", shared).Msg("access token refreshed")
	return v.(string), nil
}

func (r *tokenRefresher) refresh(ctx context.Context, stale string) (string, error) {
	session, err := r.tokens.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("loading session: %w", err)
	}

	// A flight that finished just before this one already rotated the pair.
	if session.AccessToken != "" && session.AccessToken != stale {
		return session.AccessToken, nil
	}

	if session.RefreshToken == "" {
		r.expire(ctx, session)
		return "", ErrSessionExpired
	}

	var pair models.TokenPair
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(models.RefreshRequest{RefreshToken: session.RefreshToken}).
		SetResult(&pair).
		Post("/auth/refresh")
	if err == nil {
		err = mapHTTPError(resp)
	}
	if err == nil && pair.AccessToken == "" {
		err = fmt.Errorf("empty access token in refresh response")
	}
	if err != nil {
		r.logger.Err(err).Msg("token refresh failed")
		r.expire(ctx, session)
		return "", fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	if err = r.tokens.SetTokens(ctx, pair); err != nil {
		return "", fmt.Errorf("storing refreshed tokens: %w", err)
	}

	return pair.AccessToken, nil
}

// expire clears the local session. The callback only fires when there was
// something to clear, so late callers of an already failed refresh do not
// trigger it again.
func (r *tokenRefresher) expire(ctx context.Context, session models.Session) {
	if err := r.tokens.Clear(ctx); err != nil {
		r.logger.Err(err).Msg("clearing session failed")
	}

	if session.Empty() {
		return
	}

	r.mu.RLock()
	fn := r.onExpired
	r.mu.RUnlock()

	if fn != nil {
		fn()
	}
}
