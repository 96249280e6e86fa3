package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// availabilityScreen manages the tutor's weekly slots.
type availabilityScreen struct {
	deps  deps
	fence fence

	slots  []domain.AvailabilitySlot
	cursor int

	adding bool
	form   []textinput.Model
	focus  int

	loading bool
	status  string
}

type slotsMsg struct {
	seq   int
	slots []domain.AvailabilitySlot
	err   error
}

type slotMutatedMsg struct {
	err error
}

func newAvailabilityScreen(d deps) screen {
	placeholders := []string{"day e.g. MONDAY", "start e.g. 10:00", "end e.g. 12:00"}
	form := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 20
		ti.Width = 24
		form[i] = ti
	}
	return &availabilityScreen{deps: d, form: form}
}

func (s *availabilityScreen) title() string { return "Availability" }

func (s *availabilityScreen) enter() tea.Cmd {
	if s.deps.store.Role() != domain.RoleTutor {
		return nil
	}
	return s.fetch()
}

func (s *availabilityScreen) fetch() tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		slots, err := client.MyAvailability(context.Background(), token)
		return slotsMsg{seq: seq, slots: slots, err: err}
	}
}

func (s *availabilityScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case slotsMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = ""
		s.slots = msg.slots
		if s.cursor >= len(s.slots) {
			s.cursor = 0
		}
		return s, nil

	case slotMutatedMsg:
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.adding = false
		return s, s.fetch()

	case tea.KeyMsg:
		if s.deps.store.Role() != domain.RoleTutor {
			return s, nil
		}
		if s.adding {
			return s.updateForm(msg)
		}
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.slots)-1 {
				s.cursor++
			}
		case "a":
			s.adding = true
			s.focus = 0
			for i := range s.form {
				s.form[i].SetValue("")
			}
			s.form[0].Focus()
			return s, textinput.Blink
		case "x", "delete":
			if s.cursor < len(s.slots) {
				return s, s.remove(s.slots[s.cursor].Ref())
			}
		case "r":
			return s, s.fetch()
		}
	}
	return s, nil
}

func (s *availabilityScreen) updateForm(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		s.form[s.focus].Blur()
		s.focus = (s.focus + 1) % len(s.form)
		s.form[s.focus].Focus()
		return s, nil
	case "ctrl+d":
		s.adding = false
		return s, nil
	case "enter":
		if s.focus < len(s.form)-1 {
			s.form[s.focus].Blur()
			s.focus++
			s.form[s.focus].Focus()
			return s, nil
		}
		return s.submit()
	}

	var cmd tea.Cmd
	s.form[s.focus], cmd = s.form[s.focus].Update(msg)
	return s, cmd
}

func (s *availabilityScreen) submit() (screen, tea.Cmd) {
	req := domain.AddAvailabilityRequest{
		DayOfWeek: strings.ToUpper(strings.TrimSpace(s.form[0].Value())),
		StartTime: strings.TrimSpace(s.form[1].Value()),
		EndTime:   strings.TrimSpace(s.form[2].Value()),
	}
	if req.DayOfWeek == "" || req.StartTime == "" || req.EndTime == "" {
		s.status = "All fields are required"
		return s, nil
	}

	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return s, func() tea.Msg {
		_, err := client.AddAvailability(context.Background(), token, req)
		return slotMutatedMsg{err: err}
	}
}

func (s *availabilityScreen) remove(slotID int64) tea.Cmd {
	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		err := client.RemoveAvailability(context.Background(), token, slotID)
		return slotMutatedMsg{err: err}
	}
}

func (s *availabilityScreen) view() string {
	if s.deps.store.Role() != domain.RoleTutor {
		return accessNotice("tutor")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("  Weekly availability") + "\n\n")

	if s.loading {
		b.WriteString(infoStyle.Render("  loading...") + "\n")
	}

	if s.adding {
		for _, in := range s.form {
			b.WriteString("  " + in.View() + "\n")
		}
		b.WriteString(helpStyle.Render("\n  enter: add slot │ tab: next field │ ctrl+d: cancel"))
	} else {
		if len(s.slots) == 0 && !s.loading {
			b.WriteString(infoStyle.Render("  No slots yet") + "\n")
		}
		for i, slot := range s.slots {
			cursor, style := rowStyle(i == s.cursor)
			line := fmt.Sprintf("%s%-10s %s-%s", cursor, slot.Weekday(), slot.StartTime, slot.EndTime)
			b.WriteString(style.Render(line) + "\n")
		}
		b.WriteString(helpStyle.Render("\n  a: add │ x: remove │ j/k: navigate │ r: refresh"))
	}

	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status))
	}
	return b.String()
}
