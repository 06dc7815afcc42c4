package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// DashboardRefreshInterval is how often the main loop reloads the dashboard
// in the background.
const DashboardRefreshInterval = time.Minute

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow runs the menu, login and registration pages until a login
// succeeds. It returns [ErrUserQuit] when the user closes the program.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo, t.services.AuthService.ServerVersion)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return ErrUserQuit
	}

	t.logger.Info().Str("email", result.email).Msg("signed in")
	return nil
}

// MainLoop runs the finance screens. logout is true when the user signed out
// or the session expired, so the caller should run [TUI.LoginFlow] again.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	program := tea.NewProgram(newMainLoopModel(ctx, t.services), tea.WithAltScreen())

	t.services.AuthService.OnSessionExpired(func() {
		program.Send(sessionExpiredMsg{})
	})
	t.services.DashboardPoller.Start(ctx, DashboardRefreshInterval, func(d models.Dashboard, err error) {
		program.Send(dashboardMsg{dashboard: d, err: err})
	})
	defer t.services.DashboardPoller.Stop()

	finalModel, runErr := program.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.sessionExpired {
		t.logger.Warn().Msg("session expired, back to login")
	}
	return result.logout, nil
}
