package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/domain"
	tfstrings "github.com/team13/tutorfind-cli/internal/strings"
)

// classesScreen is the public class browser with an enroll action.
type classesScreen struct {
	deps  deps
	fence fence

	classes []domain.Class
	cursor  int
	detail  *domain.Class

	statusFilter string

	loading bool
	status  string
}

type classesMsg struct {
	seq     int
	classes []domain.Class
	err     error
}

type classDetailMsg struct {
	seq   int
	class *domain.Class
	err   error
}

type enrolledMsg struct {
	enrollment *domain.Enrollment
	err        error
}

func newClassesScreen(d deps) screen {
	return &classesScreen{deps: d, statusFilter: domain.ClassOpen}
}

func (s *classesScreen) title() string { return "Browse Classes" }

func (s *classesScreen) enter() tea.Cmd {
	return s.fetch()
}

func (s *classesScreen) fetch() tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	client := s.deps.client
	filter := s.statusFilter
	return func() tea.Msg {
		classes, err := client.ListClasses(context.Background(), filter)
		return classesMsg{seq: seq, classes: classes, err: err}
	}
}

func (s *classesScreen) fetchDetail(id int64) tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	client := s.deps.client
	return func() tea.Msg {
		class, err := client.ClassByID(context.Background(), id)
		return classDetailMsg{seq: seq, class: class, err: err}
	}
}

func (s *classesScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case classesMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = ""
		s.classes = msg.classes
		if s.cursor >= len(s.classes) {
			s.cursor = 0
		}
		return s, nil

	case classDetailMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = ""
		s.detail = msg.class
		return s, nil

	case enrolledMsg:
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = fmt.Sprintf("Enrolled in %s", msg.enrollment.ClassName)
		// The seat count changed server-side; reload both views.
		cmds := []tea.Cmd{s.fetch()}
		if s.detail != nil {
			cmds = append(cmds, s.fetchDetail(s.detail.ID))
		}
		return s, tea.Batch(cmds...)

	case tea.KeyMsg:
		if s.detail != nil {
			switch msg.String() {
			case "e":
				if s.deps.store.Role() != domain.RoleLearner {
					s.status = "Sign in as a learner to enroll"
					return s, nil
				}
				return s, s.enroll(s.detail.ID)
			case "backspace", "left", "q":
				s.detail = nil
				return s, nil
			}
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.classes)-1 {
				s.cursor++
			}
		case "o":
			// Cycle the status filter: OPEN -> all -> OPEN.
			if s.statusFilter == "" {
				s.statusFilter = domain.ClassOpen
			} else {
				s.statusFilter = ""
			}
			return s, s.fetch()
		case "r":
			return s, s.fetch()
		case "enter":
			if s.cursor < len(s.classes) {
				return s, s.fetchDetail(s.classes[s.cursor].ID)
			}
		}
	}
	return s, nil
}

func (s *classesScreen) enroll(id int64) tea.Cmd {
	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		enrollment, err := client.EnrollInClass(context.Background(), token, id)
		return enrolledMsg{enrollment: enrollment, err: err}
	}
}

func (s *classesScreen) view() string {
	var b strings.Builder

	if s.detail != nil {
		s.viewDetail(&b)
		if s.status != "" {
			b.WriteString("\n  " + warnStyle.Render(s.status))
		}
		return b.String()
	}

	filterLabel := s.statusFilter
	if filterLabel == "" {
		filterLabel = "ALL"
	}
	b.WriteString(labelStyle.Render("  Classes") + infoStyle.Render("  filter: "+filterLabel) + "\n\n")

	if s.loading {
		b.WriteString(infoStyle.Render("  loading...") + "\n")
	}
	if len(s.classes) == 0 && !s.loading {
		b.WriteString(infoStyle.Render("  No classes found") + "\n")
	}
	for i, c := range s.classes {
		cursor, style := rowStyle(i == s.cursor)
		line := fmt.Sprintf("%s%-11s %-30s %-14s %d seats left", cursor, c.Status,
			tfstrings.Truncate(c.Name, 30), tfstrings.Truncate(c.SubjectName, 14), c.SeatsLeft())
		b.WriteString(style.Render(line) + "\n")
	}

	b.WriteString(helpStyle.Render("\n  enter: view class │ o: toggle open-only │ j/k: navigate │ r: refresh"))
	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status))
	}
	return b.String()
}

func (s *classesScreen) viewDetail(b *strings.Builder) {
	c := s.detail

	b.WriteString(labelStyle.Render("  "+c.Name) + "\n")
	if c.Description != "" {
		b.WriteString("  " + infoStyle.Render(tfstrings.Truncate(c.Description, 70)) + "\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "  Tutor:   %s\n", c.TutorName)
	fmt.Fprintf(b, "  Subject: %s\n", c.SubjectName)
	fmt.Fprintf(b, "  Type:    %s   Status: %s\n", c.ClassType, c.Status)
	fmt.Fprintf(b, "  Seats:   %d left (%d/%d)\n", c.SeatsLeft(), c.CurrentStudents, c.MaxStudents)
	if c.PricePerSession != nil {
		fmt.Fprintf(b, "  Price:   %.0f/session\n", *c.PricePerSession)
	}
	if c.AvailabilitySlot != nil {
		fmt.Fprintf(b, "  When:    %s %s-%s\n", c.AvailabilitySlot.Weekday(),
			c.AvailabilitySlot.StartTime, c.AvailabilitySlot.EndTime)
	}

	b.WriteString(helpStyle.Render("\n  e: enroll │ backspace: back to list"))
}
