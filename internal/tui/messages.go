package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// NavigateTo asks [RootModel] to switch pages. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login form. A nil Err ends the login flow.
type LoginResult struct {
	Err   error
	Email string
}

// RegisterResult is produced by the registration form.
type RegisterResult struct {
	Err  error
	Name string
}

// RegisterSuccessNotice is delivered to the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type serverVersionMsg struct {
	version string
}

type sessionExpiredMsg struct{}

type dashboardMsg struct {
	dashboard models.Dashboard
	err       error
}

type profileMsg struct {
	user models.User
	err  error
}

type accountsMsg struct {
	items []models.BankAccount
	err   error
}

type categoriesMsg struct {
	page models.Page[models.Category]
	err  error
}

type transactionsMsg struct {
	page models.Page[models.Transaction]
	err  error
}

// savedMsg reports a finished create, update or delete.
type savedMsg struct {
	status string
	err    error
}

// logoutDoneMsg ends the main loop after a logout or an account deletion.
type logoutDoneMsg struct {
	err            error
	accountDeleted bool
}
