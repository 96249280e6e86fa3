package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/domain"
	tfstrings "github.com/team13/tutorfind-cli/internal/strings"
)

// enrollmentsScreen lists the learner's class enrollments.
type enrollmentsScreen struct {
	deps  deps
	fence fence

	enrollments []domain.Enrollment
	cursor      int

	loading bool
	status  string
}

type enrollmentsMsg struct {
	seq         int
	enrollments []domain.Enrollment
	err         error
}

type enrollmentDroppedMsg struct {
	err error
}

func newEnrollmentsScreen(d deps) screen {
	return &enrollmentsScreen{deps: d}
}

func (s *enrollmentsScreen) title() string { return "My Enrollments" }

func (s *enrollmentsScreen) enter() tea.Cmd {
	if s.deps.store.Role() != domain.RoleLearner {
		return nil
	}
	return s.fetch()
}

func (s *enrollmentsScreen) fetch() tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		enrollments, err := client.MyEnrollments(context.Background(), token, "")
		return enrollmentsMsg{seq: seq, enrollments: enrollments, err: err}
	}
}

func (s *enrollmentsScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case enrollmentsMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = ""
		s.enrollments = msg.enrollments
		if s.cursor >= len(s.enrollments) {
			s.cursor = 0
		}
		return s, nil

	case enrollmentDroppedMsg:
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = "Enrollment dropped"
		return s, s.fetch()

	case tea.KeyMsg:
		if s.deps.store.Role() != domain.RoleLearner {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.enrollments)-1 {
				s.cursor++
			}
		case "x":
			if s.cursor < len(s.enrollments) {
				e := s.enrollments[s.cursor]
				if e.Status != domain.EnrollmentActive {
					s.status = "Only active enrollments can be dropped"
					return s, nil
				}
				return s, s.drop(e.ID)
			}
		case "r":
			return s, s.fetch()
		}
	}
	return s, nil
}

func (s *enrollmentsScreen) drop(id int64) tea.Cmd {
	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		err := client.DropEnrollment(context.Background(), token, id)
		return enrollmentDroppedMsg{err: err}
	}
}

func (s *enrollmentsScreen) view() string {
	if s.deps.store.Role() != domain.RoleLearner {
		return accessNotice("learner")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("  Enrollments") + "\n\n")

	if s.loading {
		b.WriteString(infoStyle.Render("  loading...") + "\n")
	}
	if len(s.enrollments) == 0 && !s.loading {
		b.WriteString(infoStyle.Render("  No enrollments yet") + "\n")
	}
	for i, e := range s.enrollments {
		cursor, style := rowStyle(i == s.cursor)
		schedule := ""
		if e.AvailabilitySlot != nil {
			schedule = fmt.Sprintf("%s %s-%s", e.AvailabilitySlot.Weekday(),
				e.AvailabilitySlot.StartTime, e.AvailabilitySlot.EndTime)
		}
		line := fmt.Sprintf("%s%-9s %-28s %-18s %s", cursor, e.Status,
			tfstrings.Truncate(e.ClassName, 28), tfstrings.Truncate(e.TutorName, 18), schedule)
		b.WriteString(style.Render(line) + "\n")
	}

	b.WriteString(helpStyle.Render("\n  x: drop │ j/k: navigate │ r: refresh"))
	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status))
	}
	return b.String()
}
