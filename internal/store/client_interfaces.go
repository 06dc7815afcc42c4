package store

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenStore keeps the client session between runs. Load on an empty store
// returns a zero [models.Session] and no error.
type TokenStore interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	// SetTokens replaces both tokens and keeps the stored email.
	SetTokens(ctx context.Context, pair models.TokenPair) error
	Clear(ctx context.Context) error
}
