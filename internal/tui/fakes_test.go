package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type fakeAuth struct {
	service.ClientAuthService

	loginErr    error
	credentials models.Credentials
	registered  models.User
	updated     models.UserUpdate
	loggedOut   bool
}

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) error {
	f.credentials = c
	return f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, u models.User) (models.User, error) {
	f.registered = u
	return u, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.loggedOut = true
	return nil
}

func (f *fakeAuth) UpdateProfile(_ context.Context, u models.UserUpdate) (models.User, error) {
	f.updated = u
	return models.User{}, nil
}

type fakeFinance struct {
	service.ClientFinanceService

	createdAccount     models.BankAccount
	createdTransaction models.Transaction
	deletedAccount     int64
	categoryQuery      models.PageRequest
	createErr          error
}

func (f *fakeFinance) CreateBankAccount(_ context.Context, a models.BankAccount) (models.BankAccount, error) {
	f.createdAccount = a
	return a, f.createErr
}

func (f *fakeFinance) DeleteBankAccount(_ context.Context, id int64) error {
	f.deletedAccount = id
	return nil
}

func (f *fakeFinance) CreateTransaction(_ context.Context, t models.Transaction) (models.Transaction, error) {
	f.createdTransaction = t
	return t, nil
}

func (f *fakeFinance) ListCategories(_ context.Context, page models.PageRequest) (models.Page[models.Category], error) {
	f.categoryQuery = page
	return models.NewPage[models.Category](nil, 0, page), nil
}

// press builds the key message bubbletea delivers for s.
func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
