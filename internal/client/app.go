package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/tui"
)

type App struct {
	auth   service.ClientAuthService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a UI")
	}
	return &App{auth: services.AuthService, ui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	signedIn := a.resumeSession(ctx)
	for {
		if !signedIn {
			if err := a.ui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
		signedIn = false
	}
}

// resumeSession reports whether the stored session is still accepted. The
// profile call refreshes the access token if needed.
func (a *App) resumeSession(ctx context.Context) bool {
	user, err := a.auth.Profile(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Msg("no session to resume")
		return false
	}
	a.logger.Info().Str("email", user.Email).Msg("session resumed")
	return true
}
