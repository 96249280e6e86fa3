package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/domain"
	tfstrings "github.com/team13/tutorfind-cli/internal/strings"
)

// tutorBoardScreen is the tutor dashboard: incoming requests plus the
// feedback the tutor has written.
type tutorBoardScreen struct {
	deps  deps
	fence fence

	tab    int
	cursor int

	bookings []domain.Booking
	feedback []domain.Feedback

	// Non-empty when composing a response note or a feedback entry.
	respondAction string
	respondInput  textinput.Model

	writingTo *domain.Booking
	form      []textinput.Model
	formFocus int

	loading bool
	status  string
}

var tutorTabs = []string{"Requests", "Feedback Given"}

type tutorBoardMsg struct {
	seq      int
	bookings []domain.Booking
	feedback []domain.Feedback
	err      error
}

// bookingRespondedMsg carries the server's updated record. Only the matching
// row is replaced; the rest of the list is untouched.
type bookingRespondedMsg struct {
	booking *domain.Booking
	err     error
}

type feedbackCreatedMsg struct {
	err error
}

func newTutorBoardScreen(d deps) screen {
	respond := textinput.New()
	respond.Placeholder = "response note (optional)"
	respond.CharLimit = 300
	respond.Width = 40

	placeholders := []string{"session date YYYY-MM-DD", "feedback", "strengths", "areas for improvement"}
	form := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 500
		ti.Width = 48
		form[i] = ti
	}

	return &tutorBoardScreen{deps: d, respondInput: respond, form: form}
}

func (s *tutorBoardScreen) title() string { return "Session Requests" }

func (s *tutorBoardScreen) enter() tea.Cmd {
	if s.deps.store.Role() != domain.RoleTutor {
		return nil
	}
	return s.fetch()
}

func (s *tutorBoardScreen) fetch() tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		bookings, err := client.BookingsReceived(context.Background(), token, "")
		if err != nil {
			return tutorBoardMsg{seq: seq, err: err}
		}
		feedback, err := client.FeedbackGiven(context.Background(), token)
		if err != nil {
			return tutorBoardMsg{seq: seq, err: err}
		}
		return tutorBoardMsg{seq: seq, bookings: bookings, feedback: feedback}
	}
}

func (s *tutorBoardScreen) respond(action string) tea.Cmd {
	if s.cursor >= len(s.bookings) {
		return nil
	}
	id := s.bookings[s.cursor].ID
	note := strings.TrimSpace(s.respondInput.Value())

	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		var booking *domain.Booking
		var err error
		if action == "accept" {
			booking, err = client.AcceptBooking(context.Background(), token, id, note)
		} else {
			booking, err = client.DeclineBooking(context.Background(), token, id, note)
		}
		return bookingRespondedMsg{booking: booking, err: err}
	}
}

func (s *tutorBoardScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tutorBoardMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = ""
		s.bookings = msg.bookings
		s.feedback = msg.feedback
		if s.cursor >= s.tabLen() {
			s.cursor = 0
		}
		return s, nil

	case bookingRespondedMsg:
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		for i := range s.bookings {
			if s.bookings[i].ID == msg.booking.ID {
				s.bookings[i] = *msg.booking
				break
			}
		}
		s.status = fmt.Sprintf("Request #%d %s", msg.booking.ID, strings.ToLower(msg.booking.Status))
		return s, nil

	case feedbackCreatedMsg:
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.writingTo = nil
		s.status = "Feedback sent"
		return s, s.fetch()

	case tea.KeyMsg:
		if s.deps.store.Role() != domain.RoleTutor {
			return s, nil
		}
		if s.respondAction != "" {
			return s.updateRespond(msg)
		}
		if s.writingTo != nil {
			return s.updateForm(msg)
		}
		return s.updateKeys(msg)
	}

	return s, nil
}

func (s *tutorBoardScreen) updateKeys(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "right", "l":
		s.tab = (s.tab + 1) % len(tutorTabs)
		s.cursor = 0
	case "shift+tab", "left", "h":
		s.tab = (s.tab + len(tutorTabs) - 1) % len(tutorTabs)
		s.cursor = 0
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.tabLen()-1 {
			s.cursor++
		}
	case "r":
		return s, s.fetch()
	case "a", "d":
		if s.tab != 0 || s.cursor >= len(s.bookings) {
			return s, nil
		}
		if s.bookings[s.cursor].Status != domain.BookingPending {
			s.status = "Only pending requests can be answered"
			return s, nil
		}
		s.respondAction = "accept"
		if msg.String() == "d" {
			s.respondAction = "decline"
		}
		s.respondInput.SetValue("")
		s.respondInput.Focus()
		return s, textinput.Blink
	case "f":
		if s.tab != 0 || s.cursor >= len(s.bookings) {
			return s, nil
		}
		b := s.bookings[s.cursor]
		if b.Status != domain.BookingAccepted {
			s.status = "Feedback is for accepted sessions"
			return s, nil
		}
		s.writingTo = &b
		s.formFocus = 0
		for i := range s.form {
			s.form[i].SetValue("")
		}
		s.form[0].Focus()
		return s, textinput.Blink
	}
	return s, nil
}

func (s *tutorBoardScreen) updateRespond(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		action := s.respondAction
		s.respondAction = ""
		s.respondInput.Blur()
		return s, s.respond(action)
	case "ctrl+d":
		s.respondAction = ""
		s.respondInput.Blur()
		return s, nil
	}

	var cmd tea.Cmd
	s.respondInput, cmd = s.respondInput.Update(msg)
	return s, cmd
}

func (s *tutorBoardScreen) updateForm(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		s.form[s.formFocus].Blur()
		s.formFocus = (s.formFocus + 1) % len(s.form)
		s.form[s.formFocus].Focus()
		return s, nil
	case "ctrl+d":
		s.writingTo = nil
		return s, nil
	case "enter":
		if s.formFocus < len(s.form)-1 {
			s.form[s.formFocus].Blur()
			s.formFocus++
			s.form[s.formFocus].Focus()
			return s, nil
		}
		return s.submitFeedback()
	}

	var cmd tea.Cmd
	s.form[s.formFocus], cmd = s.form[s.formFocus].Update(msg)
	return s, cmd
}

func (s *tutorBoardScreen) submitFeedback() (screen, tea.Cmd) {
	text := strings.TrimSpace(s.form[1].Value())
	if text == "" {
		s.status = "Feedback text is required"
		return s, nil
	}

	bookingID := s.writingTo.ID
	req := domain.CreateFeedbackRequest{
		LearnerID:           s.writingTo.LearnerID,
		BookingID:           &bookingID,
		SessionDate:         strings.TrimSpace(s.form[0].Value()),
		FeedbackText:        text,
		Strengths:           strings.TrimSpace(s.form[2].Value()),
		AreasForImprovement: strings.TrimSpace(s.form[3].Value()),
	}

	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return s, func() tea.Msg {
		_, err := client.CreateFeedback(context.Background(), token, req)
		return feedbackCreatedMsg{err: err}
	}
}

func (s *tutorBoardScreen) tabLen() int {
	if s.tab == 1 {
		return len(s.feedback)
	}
	return len(s.bookings)
}

func (s *tutorBoardScreen) view() string {
	if s.deps.store.Role() != domain.RoleTutor {
		return accessNotice("tutor")
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, name := range tutorTabs {
		if i == s.tab {
			b.WriteString(activeStyle.Render("["+name+"]") + " ")
		} else {
			b.WriteString(infoStyle.Render(" "+name+" ") + " ")
		}
	}
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString(infoStyle.Render("  loading...") + "\n")
	}

	switch {
	case s.respondAction != "":
		fmt.Fprintf(&b, "  %s request #%d\n", strings.ToUpper(s.respondAction[:1])+s.respondAction[1:], s.bookings[s.cursor].ID)
		b.WriteString("  " + s.respondInput.View() + "\n")
		b.WriteString(helpStyle.Render("\n  enter: confirm │ ctrl+d: cancel"))

	case s.writingTo != nil:
		fmt.Fprintf(&b, "  Feedback for %s\n", s.writingTo.LearnerName)
		for _, in := range s.form {
			b.WriteString("  " + in.View() + "\n")
		}
		b.WriteString(helpStyle.Render("\n  enter: send │ tab: next field │ ctrl+d: cancel"))

	case s.tab == 1:
		if len(s.feedback) == 0 && !s.loading {
			b.WriteString(infoStyle.Render("  No feedback written yet") + "\n")
		}
		for i, f := range s.feedback {
			cursor, style := rowStyle(i == s.cursor)
			line := fmt.Sprintf("%s%-12s %-20s %s", cursor, f.SessionDate,
				tfstrings.Truncate(f.LearnerName, 20), tfstrings.Truncate(f.FeedbackText, 40))
			b.WriteString(style.Render(line) + "\n")
		}
		b.WriteString(helpStyle.Render("\n  tab: switch │ j/k: navigate │ r: refresh"))

	default:
		if len(s.bookings) == 0 && !s.loading {
			b.WriteString(infoStyle.Render("  No incoming requests") + "\n")
		}
		for i, bk := range s.bookings {
			cursor, style := rowStyle(i == s.cursor)
			line := fmt.Sprintf("%s%-8s %-20s %-14s %s", cursor, bk.Status,
				tfstrings.Truncate(bk.LearnerName, 20), tfstrings.Truncate(bk.Subject, 14), bk.Slot)
			b.WriteString(style.Render(line) + "\n")
		}
		b.WriteString(helpStyle.Render("\n  a: accept │ d: decline │ f: feedback │ tab: switch │ r: refresh"))
	}

	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status))
	}
	return b.String()
}
