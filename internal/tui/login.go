// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders email
// and password inputs and dispatches an async login command on enter. A
// successful [LoginResult] is handled by [RootModel] to finish the flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form formModel
}

// NewLoginModel creates a [LoginModel]. The email field receives focus; the
// password is masked.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newForm("ENTRAR",
			newField("Email", "voce@exemplo.com", ""),
			newSecretField("Senha", "senha"),
		),
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]: clears the submitting state and shows the error, if any.
//   - esc: goes back to the menu.
//   - enter: checks the inputs and dispatches the login command.
//
// Everything else goes to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.form.submitting = false
		if result.Err != nil {
			m.form.err = errorText(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.form.submitting = false
			m.form.err = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if m.form.submitting {
				return m, nil
			}

			email := m.form.value(0)
			pass := m.form.fields[1].input.Value()
			if email == "" || pass == "" {
				m.form.err = "Email e senha são obrigatórios"
				return m, nil
			}

			m.form.err = ""
			m.form.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	return m.form.view()
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Login(ctx, models.Credentials{Email: email, Password: pass})
		return LoginResult{Err: err, Email: email}
	}
}
