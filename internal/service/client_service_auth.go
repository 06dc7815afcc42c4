package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	created, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return created, nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) error {
	if _, err := a.adapter.Login(ctx, credentials); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return mapAdapterError(a.adapter.Logout(ctx))
}

func (a *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	user, err := a.adapter.Profile(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error) {
	user, err := a.adapter.UpdateProfile(ctx, update)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

// DeleteAccount looks up the signed-in user's id first; the server only
// lets a user delete itself.
func (a *clientAuthService) DeleteAccount(ctx context.Context) error {
	user, err := a.adapter.Profile(ctx)
	if err != nil {
		return fmt.Errorf("loading profile: %w", mapAdapterError(err))
	}
	return mapAdapterError(a.adapter.DeleteAccount(ctx, user.UserID))
}

func (a *clientAuthService) OnSessionExpired(fn func()) {
	a.adapter.OnSessionExpired(fn)
}

func (a *clientAuthService) ServerVersion(ctx context.Context) (string, error) {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
