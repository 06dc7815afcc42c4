package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label string
	input textinput.Model
}

func newField(label, placeholder, value string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	in.CharLimit = 255
	in.SetValue(value)
	return formField{label: label, input: in}
}

func newSecretField(label, placeholder string) formField {
	f := newField(label, placeholder, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

// formModel is a vertical list of labelled inputs. tab and shift+tab move
// the focus; submitting is left to the owner.
type formModel struct {
	title      string
	fields     []formField
	focus      int
	submitting bool
	err        string
	hint       string
}

func newForm(title string, fields ...formField) formModel {
	f := formModel{title: title, fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f formModel) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.move(1)
			return f, nil
		case "shift+tab", "up":
			f.move(-1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f *formModel) move(step int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + step + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f formModel) view() string {
	width := 0
	for _, field := range f.fields {
		if n := len([]rune(field.label)); n > width {
			width = n
		}
	}

	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(pad(field.label, width))
		b.WriteString(" │ [")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}

	if f.submitting {
		b.WriteString("\n[Salvando...]\n")
	} else {
		b.WriteString("\n[Salvar]\n")
	}
	if f.hint != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(f.hint))
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Erro: " + f.err))
		b.WriteString("\n")
	}

	return renderPage(f.title, strings.TrimRight(b.String(), "\n"), "esc: cancelar │ tab: próximo campo │ enter: salvar")
}
