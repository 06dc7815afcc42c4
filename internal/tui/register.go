package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// RegisterModel is the Bubble Tea model for the registration screen. On a
// successful [RegisterResult] it resets the form and navigates back to the
// menu with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form formModel
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	m := &RegisterModel{ctx: ctx, auth: auth}
	m.resetForm()
	return m
}

func (m *RegisterModel) Init() tea.Cmd {
	return nil
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.form.submitting = false
		if result.Err != nil {
			m.form.err = errorText(result.Err)
			return m, nil
		}

		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: RegisterSuccessNotice{Username: result.Name}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if m.form.submitting {
				return m, nil
			}

			name := m.form.value(0)
			email := m.form.value(1)
			pass := m.form.fields[2].input.Value()
			repeat := m.form.fields[3].input.Value()

			switch {
			case name == "" || email == "" || pass == "":
				m.form.err = "Nome, email e senha são obrigatórios"
				return m, nil
			case pass != repeat:
				m.form.err = "As senhas não conferem"
				return m, nil
			}

			m.form.err = ""
			m.form.submitting = true
			return m, m.cmdRegister(name, email, pass)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	return m.form.view()
}

func (m *RegisterModel) cmdRegister(name, email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_, err := auth.Register(ctx, models.User{Name: name, Email: email, Password: pass})
		return RegisterResult{Err: err, Name: name}
	}
}

func (m *RegisterModel) resetForm() {
	m.form = newForm("CADASTRO",
		newField("Nome", "seu nome", ""),
		newField("Email", "voce@exemplo.com", ""),
		newSecretField("Senha", "4 a 20 caracteres"),
		newSecretField("Repita a senha", "senha"),
	)
}
