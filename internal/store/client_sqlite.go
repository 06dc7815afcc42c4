package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// sessionStore is the SQLite-backed [TokenStore]. It keeps one row per key
// in the "session" table.
type sessionStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionStore constructs a [TokenStore] over a migrated client database.
func NewSessionStore(db *DB, logger *logger.Logger) TokenStore {
	logger.Debug().Msg("creating session store")
	return &sessionStore{db: db, logger: logger}
}

func (s *sessionStore) Load(ctx context.Context) (models.Session, error) {
	rows, err := s.db.QueryContext(ctx, selectSession)
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionStore.Load").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var session models.Session
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		switch key {
		case sessionKeyAccessToken:
			session.AccessToken = value
		case sessionKeyRefreshToken:
			session.RefreshToken = value
		case sessionKeyUserEmail:
			session.UserEmail = value
		}
	}
	if err = rows.Err(); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return session, nil
}

func (s *sessionStore) Save(ctx context.Context, session models.Session) error {
	return s.upsert(ctx, map[string]string{
		sessionKeyAccessToken:  session.AccessToken,
		sessionKeyRefreshToken: session.RefreshToken,
		sessionKeyUserEmail:    session.UserEmail,
	})
}

func (s *sessionStore) SetTokens(ctx context.Context, pair models.TokenPair) error {
	return s.upsert(ctx, map[string]string{
		sessionKeyAccessToken:  pair.AccessToken,
		sessionKeyRefreshToken: pair.RefreshToken,
	})
}

func (s *sessionStore) upsert(ctx context.Context, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for key, value := range values {
		if _, err = tx.ExecContext(ctx, upsertSessionValue, key, value); err != nil {
			s.logger.Err(err).Str("func", "*sessionStore.upsert").Str("key", key).Msg("error saving session value")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearSession); err != nil {
		s.logger.Err(err).Str("func", "*sessionStore.Clear").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// memoryTokenStore is a process-local [TokenStore].
type memoryTokenStore struct {
	mu      sync.RWMutex
	session models.Session
}

// NewMemoryTokenStore returns a [TokenStore] that forgets everything on exit.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (m *memoryTokenStore) Load(context.Context) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session, nil
}

func (m *memoryTokenStore) Save(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	return nil
}

func (m *memoryTokenStore) SetTokens(_ context.Context, pair models.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.AccessToken = pair.AccessToken
	m.session.RefreshToken = pair.RefreshToken
	return nil
}

func (m *memoryTokenStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = models.Session{}
	return nil
}
