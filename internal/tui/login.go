package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// loginScreen handles both sign-in and sign-up.
type loginScreen struct {
	deps deps

	register bool
	inputs   []textinput.Model
	focus    int
	role     domain.Role
	status   string
	busy     bool
}

// Input order for both modes. Register reuses the first two.
const (
	loginEmail = iota
	loginPassword
	regFirstName
	regLastName
	regUsername
)

type loginDoneMsg struct {
	resp *domain.LoginResponse
	err  error
}

type registerDoneMsg struct {
	err error
}

func newLoginScreen(d deps) screen {
	fields := []struct {
		placeholder string
		secret      bool
	}{
		{"email", false},
		{"password", true},
		{"first name", false},
		{"last name", false},
		{"username", false},
	}

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = 100
		ti.Width = 40
		if f.secret {
			ti.EchoMode = textinput.EchoPassword
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	return &loginScreen{deps: d, inputs: inputs, role: domain.RoleLearner}
}

func (s *loginScreen) title() string { return "Sign in" }

func (s *loginScreen) enter() tea.Cmd {
	if s.deps.store.LoggedIn() {
		s.status = "Already signed in as " + s.deps.store.User().Email
	}
	return textinput.Blink
}

func (s *loginScreen) fieldCount() int {
	if s.register {
		return len(s.inputs)
	}
	return 2
}

func (s *loginScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			s.setFocus((s.focus + 1) % s.fieldCount())
			return s, nil
		case "shift+tab", "up":
			s.setFocus((s.focus + s.fieldCount() - 1) % s.fieldCount())
			return s, nil
		case "ctrl+r":
			s.register = !s.register
			s.setFocus(0)
			s.status = ""
			return s, nil
		case "ctrl+t":
			if s.register {
				if s.role == domain.RoleLearner {
					s.role = domain.RoleTutor
				} else {
					s.role = domain.RoleLearner
				}
			}
			return s, nil
		case "ctrl+o":
			s.busy = true
			s.status = ""
			return s, s.logoutCmd()
		case "enter":
			if s.focus < s.fieldCount()-1 {
				s.setFocus(s.focus + 1)
				return s, nil
			}
			return s.submit()
		}

	case loginDoneMsg:
		s.busy = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		if err := s.deps.store.Login(msg.resp.User, msg.resp.Token); err != nil {
			s.status = err.Error()
			return s, nil
		}
		s.status = "Signed in as " + msg.resp.User.Email
		return s, func() tea.Msg { return sessionChangedMsg{} }

	case registerDoneMsg:
		s.busy = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.register = false
		s.setFocus(0)
		s.status = "Account created, sign in to continue"
		return s, nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *loginScreen) setFocus(i int) {
	s.inputs[s.focus].Blur()
	s.focus = i
	s.inputs[s.focus].Focus()
}

func (s *loginScreen) submit() (screen, tea.Cmd) {
	email := strings.TrimSpace(s.inputs[loginEmail].Value())
	password := s.inputs[loginPassword].Value()
	if email == "" || password == "" {
		s.status = "Email and password are required"
		return s, nil
	}

	s.busy = true
	s.status = ""

	if !s.register {
		client := s.deps.client
		return s, func() tea.Msg {
			resp, err := client.Login(context.Background(), email, password)
			return loginDoneMsg{resp: resp, err: err}
		}
	}

	req := domain.RegisterRequest{
		Username:  strings.TrimSpace(s.inputs[regUsername].Value()),
		Email:     email,
		Password:  password,
		Role:      string(s.role),
		FirstName: strings.TrimSpace(s.inputs[regFirstName].Value()),
		LastName:  strings.TrimSpace(s.inputs[regLastName].Value()),
	}
	if req.Username == "" {
		req.Username = email
	}
	client := s.deps.client
	return s, func() tea.Msg {
		_, err := client.Register(context.Background(), req)
		return registerDoneMsg{err: err}
	}
}

func (s *loginScreen) logoutCmd() tea.Cmd {
	store := s.deps.store
	return func() tea.Msg {
		if err := store.Logout(); err != nil {
			return loginDoneMsg{err: err}
		}
		return sessionChangedMsg{}
	}
}

func (s *loginScreen) view() string {
	var b strings.Builder

	mode := "Sign in"
	if s.register {
		mode = "Sign up"
	}
	b.WriteString(labelStyle.Render("  "+mode) + "\n\n")

	for i := 0; i < s.fieldCount(); i++ {
		b.WriteString("  " + s.inputs[i].View() + "\n")
	}
	if s.register {
		b.WriteString("  " + infoStyle.Render("role: ") + activeStyle.Render(string(s.role)) +
			infoStyle.Render("  (ctrl+t to toggle)") + "\n")
	}

	if s.busy {
		b.WriteString("\n  " + infoStyle.Render("working...") + "\n")
	}
	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status) + "\n")
	}

	b.WriteString(helpStyle.Render("\n  enter: submit │ tab: next field │ ctrl+r: toggle sign up │ ctrl+o: sign out"))
	return b.String()
}
