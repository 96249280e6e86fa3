// Package tui provides the interactive terminal client using Bubble Tea.
// Each screen is its own model; App routes between them and owns the
// session-wide state every screen shares.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/api"
	"github.com/team13/tutorfind-cli/internal/domain"
	"github.com/team13/tutorfind-cli/internal/session"
)

// deps is what every screen needs: the gateway and the session.
type deps struct {
	client *api.Client
	store  *session.Store
}

func (d deps) token() string {
	return d.store.Token()
}

// screen is one routed view. enter runs when the screen becomes active, so
// every screen loads on entry and reloads when the session changes (the app
// re-enters the screen after login/logout).
type screen interface {
	title() string
	enter() tea.Cmd
	update(msg tea.Msg) (screen, tea.Cmd)
	view() string
}

// sessionChangedMsg announces a login or logout. The app rebuilds the menu
// because the reachable screens depend on the role.
type sessionChangedMsg struct{}

// menuEntry is one launchable screen.
type menuEntry struct {
	name  string
	roles []domain.Role
	build func(deps) screen
}

func (e menuEntry) allows(role domain.Role) bool {
	if len(e.roles) == 0 {
		return true
	}
	for _, r := range e.roles {
		if r == role {
			return true
		}
	}
	return false
}

var menuEntries = []menuEntry{
	{name: "Sign in / Sign up", build: newLoginScreen},
	{name: "Find a Tutor", build: newSearchScreen},
	{name: "Browse Classes", build: newClassesScreen},
	{name: "My Sessions", roles: []domain.Role{domain.RoleLearner}, build: newLearnerScreen},
	{name: "My Enrollments", roles: []domain.Role{domain.RoleLearner}, build: newEnrollmentsScreen},
	{name: "Session Requests", roles: []domain.Role{domain.RoleTutor}, build: newTutorBoardScreen},
	{name: "Availability", roles: []domain.Role{domain.RoleTutor}, build: newAvailabilityScreen},
	{name: "Profile Settings", roles: []domain.Role{domain.RoleTutor}, build: newProfileScreen},
	{name: "My Classes", roles: []domain.Role{domain.RoleTutor}, build: newTutorClassesScreen},
	{name: "Admin Console", roles: []domain.Role{domain.RoleAdmin}, build: newAdminScreen},
}

// App is the root model.
type App struct {
	deps    deps
	entries []menuEntry
	cursor  int
	active  screen

	width    int
	height   int
	quitting bool
}

// New builds the root model. The session is loaded up front so the menu
// reflects the persisted login.
func New(client *api.Client, store *session.Store) App {
	a := App{deps: deps{client: client, store: store}}
	a.entries = visibleEntries(store.Role())
	return a
}

func visibleEntries(role domain.Role) []menuEntry {
	var out []menuEntry
	for _, e := range menuEntries {
		if e.allows(role) {
			out = append(out, e)
		}
	}
	return out
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.active != nil {
			var cmd tea.Cmd
			a.active, cmd = a.active.update(msg)
			return a, cmd
		}
		return a, nil

	case sessionChangedMsg:
		a.entries = visibleEntries(a.deps.store.Role())
		if a.cursor >= len(a.entries) {
			a.cursor = 0
		}
		a.active = nil
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.quitting = true
			return a, tea.Quit
		case "esc":
			if a.active != nil {
				a.active = nil
				return a, nil
			}
			a.quitting = true
			return a, tea.Quit
		}

		if a.active == nil {
			return a.updateMenu(msg)
		}
	}

	if a.active != nil {
		var cmd tea.Cmd
		a.active, cmd = a.active.update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.entries)-1 {
			a.cursor++
		}
	case "enter":
		entry := a.entries[a.cursor]
		a.active = entry.build(a.deps)
		return a, a.active.enter()
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("TutorFind") + "  " + infoStyle.Render(a.sessionLine()) + "\n\n")

	if a.active != nil {
		b.WriteString(a.active.view())
		b.WriteString(helpStyle.Render("\n  esc: menu │ ctrl+c: quit"))
		return b.String()
	}

	for i, e := range a.entries {
		cursor := "  "
		style := infoStyle
		if i == a.cursor {
			cursor = "▶ "
			style = activeStyle
		}
		b.WriteString(style.Render(cursor+e.name) + "\n")
	}
	b.WriteString(helpStyle.Render("\n  j/k: navigate │ enter: open │ q: quit"))
	return b.String()
}

func (a App) sessionLine() string {
	user := a.deps.store.User()
	if user == nil {
		return "not signed in"
	}
	return fmt.Sprintf("%s (%s)", user.FullName(), user.Role)
}

// accessNotice renders the standard wrong-role message.
func accessNotice(need string) string {
	return warnStyle.Render(fmt.Sprintf("  Access restricted: sign in as a %s to use this screen.", need))
}
