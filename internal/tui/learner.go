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

// learnerScreen is the learner dashboard: sent requests, submitted reviews,
// and received feedback, each behind a tab.
type learnerScreen struct {
	deps  deps
	fence fence

	tab    int
	cursor int

	bookings []domain.Booking
	reviews  []domain.Review
	feedback []domain.Feedback

	reviewing *domain.Booking
	form      []textinput.Model
	formFocus int

	loading bool
	status  string
}

var learnerTabs = []string{"Sessions", "My Reviews", "Feedback"}

type learnerDataMsg struct {
	seq      int
	bookings []domain.Booking
	reviews  []domain.Review
	feedback []domain.Feedback
	err      error
}

type reviewCreatedMsg struct {
	err error
}

func newLearnerScreen(d deps) screen {
	placeholders := []string{"rating 1-5", "comment"}
	form := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 300
		ti.Width = 40
		form[i] = ti
	}
	return &learnerScreen{deps: d, form: form}
}

func (s *learnerScreen) title() string { return "My Sessions" }

func (s *learnerScreen) enter() tea.Cmd {
	if s.deps.store.Role() != domain.RoleLearner {
		return nil
	}
	return s.fetch()
}

// fetch reloads all three tabs in one pass.
func (s *learnerScreen) fetch() tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		bookings, err := client.BookingsSent(context.Background(), token, "")
		if err != nil {
			return learnerDataMsg{seq: seq, err: err}
		}
		reviews, err := client.MyReviews(context.Background(), token)
		if err != nil {
			return learnerDataMsg{seq: seq, err: err}
		}
		feedback, err := client.FeedbackReceived(context.Background(), token)
		if err != nil {
			return learnerDataMsg{seq: seq, err: err}
		}
		return learnerDataMsg{seq: seq, bookings: bookings, reviews: reviews, feedback: feedback}
	}
}

func (s *learnerScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case learnerDataMsg:
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
		s.reviews = msg.reviews
		s.feedback = msg.feedback
		s.clampCursor()
		return s, nil

	case reviewCreatedMsg:
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.reviewing = nil
		s.status = "Review submitted for moderation"
		return s, s.fetch()

	case tea.KeyMsg:
		if s.deps.store.Role() != domain.RoleLearner {
			return s, nil
		}
		if s.reviewing != nil {
			return s.updateForm(msg)
		}
		switch msg.String() {
		case "tab", "right", "l":
			s.tab = (s.tab + 1) % len(learnerTabs)
			s.cursor = 0
			return s, nil
		case "shift+tab", "left", "h":
			s.tab = (s.tab + len(learnerTabs) - 1) % len(learnerTabs)
			s.cursor = 0
			return s, nil
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down", "j":
			if s.cursor < s.tabLen()-1 {
				s.cursor++
			}
			return s, nil
		case "r":
			return s, s.fetch()
		case "enter":
			if s.tab == 0 && s.cursor < len(s.bookings) {
				b := s.bookings[s.cursor]
				if b.Status != domain.BookingAccepted {
					s.status = "Only accepted sessions can be reviewed"
					return s, nil
				}
				s.reviewing = &b
				s.formFocus = 0
				s.form[0].SetValue("")
				s.form[1].SetValue("")
				s.form[0].Focus()
				return s, textinput.Blink
			}
			return s, nil
		}
	}

	if s.reviewing != nil {
		var cmd tea.Cmd
		s.form[s.formFocus], cmd = s.form[s.formFocus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *learnerScreen) updateForm(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		s.form[s.formFocus].Blur()
		s.formFocus = (s.formFocus + 1) % len(s.form)
		s.form[s.formFocus].Focus()
		return s, nil
	case "ctrl+d":
		s.reviewing = nil
		return s, nil
	case "enter":
		if s.formFocus < len(s.form)-1 {
			s.form[s.formFocus].Blur()
			s.formFocus++
			s.form[s.formFocus].Focus()
			return s, nil
		}
		return s.submitReview()
	}

	var cmd tea.Cmd
	s.form[s.formFocus], cmd = s.form[s.formFocus].Update(msg)
	return s, cmd
}

func (s *learnerScreen) submitReview() (screen, tea.Cmd) {
	rating, err := strconv.Atoi(strings.TrimSpace(s.form[0].Value()))
	if err != nil || rating < 1 || rating > 5 {
		s.status = "Rating must be 1-5"
		return s, nil
	}

	bookingID := s.reviewing.ID
	req := domain.CreateReviewRequest{
		TutorID:   s.reviewing.TutorID,
		Rating:    rating,
		Comment:   strings.TrimSpace(s.form[1].Value()),
		BookingID: &bookingID,
	}

	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return s, func() tea.Msg {
		_, err := client.CreateReview(context.Background(), token, req)
		return reviewCreatedMsg{err: err}
	}
}

func (s *learnerScreen) tabLen() int {
	switch s.tab {
	case 1:
		return len(s.reviews)
	case 2:
		return len(s.feedback)
	default:
		return len(s.bookings)
	}
}

func (s *learnerScreen) clampCursor() {
	if s.cursor >= s.tabLen() {
		s.cursor = 0
	}
}

func (s *learnerScreen) view() string {
	if s.deps.store.Role() != domain.RoleLearner {
		return accessNotice("learner")
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, name := range learnerTabs {
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

	if s.reviewing != nil {
		fmt.Fprintf(&b, "  Review your session with %s\n", s.reviewing.TutorName)
		for _, in := range s.form {
			b.WriteString("  " + in.View() + "\n")
		}
		b.WriteString(helpStyle.Render("\n  enter: submit │ ctrl+d: cancel"))
	} else {
		switch s.tab {
		case 1:
			s.viewReviews(&b)
		case 2:
			s.viewFeedback(&b)
		default:
			s.viewBookings(&b)
		}
		b.WriteString(helpStyle.Render("\n  tab: switch │ j/k: navigate │ enter: review session │ r: refresh"))
	}

	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status))
	}
	return b.String()
}

func (s *learnerScreen) viewBookings(b *strings.Builder) {
	if len(s.bookings) == 0 && !s.loading {
		b.WriteString(infoStyle.Render("  No session requests yet") + "\n")
		return
	}
	for i, bk := range s.bookings {
		cursor, style := rowStyle(i == s.cursor)
		line := fmt.Sprintf("%s%-8s %-20s %-14s %s", cursor, bk.Status,
			tfstrings.Truncate(bk.TutorName, 20), tfstrings.Truncate(bk.Subject, 14), bk.Slot)
		b.WriteString(style.Render(line) + "\n")
	}
}

func (s *learnerScreen) viewReviews(b *strings.Builder) {
	if len(s.reviews) == 0 && !s.loading {
		b.WriteString(infoStyle.Render("  No reviews yet") + "\n")
		return
	}
	for i, rev := range s.reviews {
		cursor, style := rowStyle(i == s.cursor)
		line := fmt.Sprintf("%s%d★ %-10s %s", cursor, rev.Rating, rev.Status,
			tfstrings.Truncate(rev.Comment, 50))
		b.WriteString(style.Render(line) + "\n")
	}
}

func (s *learnerScreen) viewFeedback(b *strings.Builder) {
	if len(s.feedback) == 0 && !s.loading {
		b.WriteString(infoStyle.Render("  No feedback yet") + "\n")
		return
	}
	for i, f := range s.feedback {
		cursor, style := rowStyle(i == s.cursor)
		line := fmt.Sprintf("%s%-12s %-20s %s", cursor, f.SessionDate,
			tfstrings.Truncate(f.TutorName, 20), tfstrings.Truncate(f.FeedbackText, 40))
		b.WriteString(style.Render(line) + "\n")
	}
}

func rowStyle(selected bool) (string, interface{ Render(...string) string }) {
	if selected {
		return "▶ ", activeStyle
	}
	return "  ", infoStyle
}
