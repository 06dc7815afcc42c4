package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	loggedIn   bool
	email      string

	buildInfo     models.AppBuildInfo
	serverVersion func(ctx context.Context) (string, error)
	version       string
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. serverVersion may be
// nil; it is asked once for the build info window.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, serverVersion func(ctx context.Context) (string, error)) RootModel {
	return RootModel{
		pages:         pages,
		current:       pages[startPage],
		buildInfo:     buildInfo,
		serverVersion: serverVersion,
	}
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.serverVersion != nil {
		fetch := r.serverVersion
		cmds = append(cmds, func() tea.Msg {
			v, err := fetch(context.Background())
			if err != nil {
				return serverVersionMsg{}
			}
			return serverVersionMsg{version: v}
		})
	}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case serverVersionMsg:
		r.version = msg.version
		return r, nil

	// Cross-page navigation.
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	// Finalize login flow on success.
	case LoginResult:
		if msg.Err == nil {
			r.loggedIn = true
			r.email = msg.Email
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.version)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
