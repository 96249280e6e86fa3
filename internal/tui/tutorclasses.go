package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/domain"
	tfstrings "github.com/team13/tutorfind-cli/internal/strings"
)

// tutorClassesScreen manages the tutor's own classes. Scheduling references
// one of the tutor's availability slots by id.
type tutorClassesScreen struct {
	deps  deps
	fence fence

	classes []domain.Class
	slots   []domain.AvailabilitySlot
	cursor  int

	roster   []domain.RosterEntry
	rosterOf *domain.Class

	creating bool
	form     []textinput.Model
	focus    int

	loading bool
	status  string
}

// Create form order.
const (
	tcName = iota
	tcSubjectID
	tcType
	tcMaxStudents
	tcPrice
	tcSlotID
)

type tutorClassesMsg struct {
	seq     int
	classes []domain.Class
	slots   []domain.AvailabilitySlot
	err     error
}

type classMutatedMsg struct {
	err error
}

type rosterMsg struct {
	seq    int
	roster []domain.RosterEntry
	err    error
}

func newTutorClassesScreen(d deps) screen {
	placeholders := []string{"name", "subject id", "type (GROUP|INDIVIDUAL)", "max students", "price per session", "availability slot id"}
	form := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 100
		ti.Width = 36
		form[i] = ti
	}
	return &tutorClassesScreen{deps: d, form: form}
}

func (s *tutorClassesScreen) title() string { return "My Classes" }

func (s *tutorClassesScreen) enter() tea.Cmd {
	if s.deps.store.Role() != domain.RoleTutor {
		return nil
	}
	return s.fetch()
}

func (s *tutorClassesScreen) fetch() tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		classes, err := client.MyClasses(context.Background(), token)
		if err != nil {
			return tutorClassesMsg{seq: seq, err: err}
		}
		slots, err := client.MyAvailability(context.Background(), token)
		if err != nil {
			return tutorClassesMsg{seq: seq, err: err}
		}
		return tutorClassesMsg{seq: seq, classes: classes, slots: slots}
	}
}

func (s *tutorClassesScreen) fetchRoster(c domain.Class) tea.Cmd {
	seq := s.fence.next()
	s.loading = true
	s.rosterOf = &c

	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		roster, err := client.ClassRoster(context.Background(), token, c.ID)
		return rosterMsg{seq: seq, roster: roster, err: err}
	}
}

func (s *tutorClassesScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tutorClassesMsg:
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
		s.slots = msg.slots
		if s.cursor >= len(s.classes) {
			s.cursor = 0
		}
		return s, nil

	case rosterMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			s.rosterOf = nil
			return s, nil
		}
		s.roster = msg.roster
		return s, nil

	case classMutatedMsg:
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.creating = false
		return s, s.fetch()

	case tea.KeyMsg:
		if s.deps.store.Role() != domain.RoleTutor {
			return s, nil
		}
		if s.creating {
			return s.updateForm(msg)
		}
		if s.rosterOf != nil {
			switch msg.String() {
			case "backspace", "left", "q":
				s.rosterOf = nil
				s.roster = nil
			}
			return s, nil
		}
		return s.updateKeys(msg)
	}

	return s, nil
}

func (s *tutorClassesScreen) updateKeys(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.classes)-1 {
			s.cursor++
		}
	case "n":
		s.creating = true
		s.focus = 0
		for i := range s.form {
			s.form[i].SetValue("")
		}
		s.form[0].Focus()
		return s, textinput.Blink
	case "c":
		if s.cursor < len(s.classes) {
			return s, s.setStatus(s.classes[s.cursor].ID, domain.ClassCancelled)
		}
	case "x":
		if s.cursor < len(s.classes) {
			return s, s.remove(s.classes[s.cursor].ID)
		}
	case "enter":
		if s.cursor < len(s.classes) {
			return s, s.fetchRoster(s.classes[s.cursor])
		}
	case "r":
		return s, s.fetch()
	}
	return s, nil
}

func (s *tutorClassesScreen) updateForm(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		s.form[s.focus].Blur()
		s.focus = (s.focus + 1) % len(s.form)
		s.form[s.focus].Focus()
		return s, nil
	case "ctrl+d":
		s.creating = false
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

func (s *tutorClassesScreen) submit() (screen, tea.Cmd) {
	name := strings.TrimSpace(s.form[tcName].Value())
	subjectID, err := strconv.ParseInt(strings.TrimSpace(s.form[tcSubjectID].Value()), 10, 64)
	if name == "" || err != nil {
		s.status = "Name and numeric subject id are required"
		return s, nil
	}
	maxStudents, err := strconv.Atoi(strings.TrimSpace(s.form[tcMaxStudents].Value()))
	if err != nil || maxStudents < 1 {
		s.status = "Max students must be a positive number"
		return s, nil
	}
	slotID, err := strconv.ParseInt(strings.TrimSpace(s.form[tcSlotID].Value()), 10, 64)
	if err != nil {
		s.status = "A numeric availability slot id is required"
		return s, nil
	}

	req := domain.CreateClassRequest{
		SubjectID:          subjectID,
		Name:               name,
		ClassType:          strings.ToUpper(strings.TrimSpace(s.form[tcType].Value())),
		MaxStudents:        maxStudents,
		AvailabilitySlotID: slotID,
	}
	if req.ClassType == "" {
		req.ClassType = "GROUP"
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(s.form[tcPrice].Value()), 64); err == nil {
		req.PricePerSession = &v
	}

	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return s, func() tea.Msg {
		_, err := client.CreateClass(context.Background(), token, req)
		return classMutatedMsg{err: err}
	}
}

func (s *tutorClassesScreen) setStatus(id int64, status string) tea.Cmd {
	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		_, err := client.UpdateClass(context.Background(), token, id, domain.UpdateClassRequest{Status: &status})
		return classMutatedMsg{err: err}
	}
}

func (s *tutorClassesScreen) remove(id int64) tea.Cmd {
	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		return classMutatedMsg{err: client.DeleteClass(context.Background(), token, id)}
	}
}

func (s *tutorClassesScreen) view() string {
	if s.deps.store.Role() != domain.RoleTutor {
		return accessNotice("tutor")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("  My classes") + "\n\n")

	if s.loading {
		b.WriteString(infoStyle.Render("  loading...") + "\n")
	}

	switch {
	case s.creating:
		for _, in := range s.form {
			b.WriteString("  " + in.View() + "\n")
		}
		if len(s.slots) > 0 {
			b.WriteString("\n  Your slots:\n")
			for _, slot := range s.slots {
				fmt.Fprintf(&b, "  %4d  %-10s %s-%s\n", slot.Ref(), slot.Weekday(), slot.StartTime, slot.EndTime)
			}
		}
		b.WriteString(helpStyle.Render("\n  enter: create │ tab: next field │ ctrl+d: cancel"))

	case s.rosterOf != nil:
		fmt.Fprintf(&b, "  Roster for %s\n\n", s.rosterOf.Name)
		if len(s.roster) == 0 && !s.loading {
			b.WriteString(infoStyle.Render("  No enrolled learners") + "\n")
		}
		for _, e := range s.roster {
			fmt.Fprintf(&b, "  %-9s %-24s attended %d  %s\n", e.Status,
				tfstrings.Truncate(e.LearnerName, 24), e.SessionsAttended, e.PaymentStatus)
		}
		b.WriteString(helpStyle.Render("\n  backspace: back"))

	default:
		if len(s.classes) == 0 && !s.loading {
			b.WriteString(infoStyle.Render("  No classes yet") + "\n")
		}
		for i, c := range s.classes {
			cursor, style := rowStyle(i == s.cursor)
			line := fmt.Sprintf("%s%-11s %-30s %d/%d enrolled", cursor, c.Status,
				tfstrings.Truncate(c.Name, 30), c.CurrentStudents, c.MaxStudents)
			b.WriteString(style.Render(line) + "\n")
		}
		b.WriteString(helpStyle.Render("\n  n: new │ enter: roster │ c: cancel class │ x: delete │ r: refresh"))
	}

	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status))
	}
	return b.String()
}
