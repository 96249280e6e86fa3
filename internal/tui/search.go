package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/api"
	"github.com/team13/tutorfind-cli/internal/domain"
	tfstrings "github.com/team13/tutorfind-cli/internal/strings"
)

// searchScreen is the tutor search: a filter row, a result list, and a detail
// pane with the booking flow.
type searchScreen struct {
	deps  deps
	fence fence

	mode    searchMode
	filters []textinput.Model
	focus   int

	tutors []domain.TutorSummary
	cursor int

	detail  *domain.TutorProfile
	reviews []domain.Review

	booking []textinput.Model
	bkFocus int

	loading bool
	status  string
}

type searchMode int

const (
	searchFilters searchMode = iota
	searchList
	searchDetail
	searchBooking
)

// Filter input order mirrors the query-string order.
const (
	filterCity = iota
	filterSubject
	filterMinRating
	filterSortBy
)

// Booking input order.
const (
	bkSubject = iota
	bkMode
	bkSlot
	bkNote
)

type tutorsMsg struct {
	seq    int
	tutors []domain.TutorSummary
	err    error
}

type tutorDetailMsg struct {
	seq     int
	profile *domain.TutorProfile
	reviews []domain.Review
	err     error
}

type bookingCreatedMsg struct {
	booking *domain.Booking
	err     error
}

func newSearchScreen(d deps) screen {
	placeholders := []string{"city", "subject", "min rating", "sort (rating|price_asc|price_desc)"}
	filters := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 60
		ti.Width = 24
		filters[i] = ti
	}
	filters[0].Focus()

	bkPlaceholders := []string{"subject", "mode (ONLINE|IN_PERSON)", "slot e.g. MONDAY 10:00", "note"}
	booking := make([]textinput.Model, len(bkPlaceholders))
	for i, p := range bkPlaceholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 200
		ti.Width = 40
		booking[i] = ti
	}

	return &searchScreen{deps: d, filters: filters, booking: booking}
}

func (s *searchScreen) title() string { return "Find a Tutor" }

func (s *searchScreen) enter() tea.Cmd {
	return tea.Batch(textinput.Blink, s.fetchTutors())
}

func (s *searchScreen) fetchTutors() tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	f := api.SearchFilters{
		City:      strings.TrimSpace(s.filters[filterCity].Value()),
		Subject:   strings.TrimSpace(s.filters[filterSubject].Value()),
		MinRating: strings.TrimSpace(s.filters[filterMinRating].Value()),
		SortBy:    strings.TrimSpace(s.filters[filterSortBy].Value()),
	}
	client := s.deps.client
	return func() tea.Msg {
		tutors, err := client.SearchTutors(context.Background(), f)
		return tutorsMsg{seq: seq, tutors: tutors, err: err}
	}
}

func (s *searchScreen) fetchDetail(id int64) tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	client := s.deps.client
	return func() tea.Msg {
		profile, err := client.TutorProfile(context.Background(), id)
		if err != nil {
			return tutorDetailMsg{seq: seq, err: err}
		}
		reviews, err := client.TutorReviews(context.Background(), id)
		if err != nil {
			return tutorDetailMsg{seq: seq, err: err}
		}
		return tutorDetailMsg{seq: seq, profile: profile, reviews: reviews}
	}
}

func (s *searchScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tutorsMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = ""
		s.tutors = msg.tutors
		if s.cursor >= len(s.tutors) {
			s.cursor = 0
		}
		return s, nil

	case tutorDetailMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			s.mode = searchList
			return s, nil
		}
		s.status = ""
		s.detail = msg.profile
		s.reviews = msg.reviews
		s.mode = searchDetail
		return s, nil

	case bookingCreatedMsg:
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = fmt.Sprintf("Request #%d sent to %s", msg.booking.ID, msg.booking.TutorName)
		s.mode = searchDetail
		return s, nil

	case tea.KeyMsg:
		return s.updateKeys(msg)
	}

	return s.updateInputs(msg)
}

func (s *searchScreen) updateKeys(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch s.mode {
	case searchFilters:
		switch msg.String() {
		case "tab":
			s.filters[s.focus].Blur()
			s.focus = (s.focus + 1) % len(s.filters)
			s.filters[s.focus].Focus()
			return s, nil
		case "enter":
			s.filters[s.focus].Blur()
			s.mode = searchList
			return s, s.fetchTutors()
		}

	case searchList:
		switch msg.String() {
		case "f", "/":
			s.mode = searchFilters
			s.filters[s.focus].Focus()
			return s, nil
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down", "j":
			if s.cursor < len(s.tutors)-1 {
				s.cursor++
			}
			return s, nil
		case "r":
			return s, s.fetchTutors()
		case "enter":
			if len(s.tutors) > 0 {
				return s, s.fetchDetail(s.tutors[s.cursor].ID)
			}
			return s, nil
		}

	case searchDetail:
		switch msg.String() {
		case "b":
			if s.deps.store.Role() != domain.RoleLearner {
				s.status = "Sign in as a learner to book sessions"
				return s, nil
			}
			s.mode = searchBooking
			s.bkFocus = 0
			s.booking[0].Focus()
			return s, textinput.Blink
		case "backspace", "left", "q":
			s.mode = searchList
			s.detail = nil
			return s, nil
		}

	case searchBooking:
		switch msg.String() {
		case "tab", "down":
			s.booking[s.bkFocus].Blur()
			s.bkFocus = (s.bkFocus + 1) % len(s.booking)
			s.booking[s.bkFocus].Focus()
			return s, nil
		case "shift+tab", "up":
			s.booking[s.bkFocus].Blur()
			s.bkFocus = (s.bkFocus + len(s.booking) - 1) % len(s.booking)
			s.booking[s.bkFocus].Focus()
			return s, nil
		case "enter":
			if s.bkFocus < len(s.booking)-1 {
				s.booking[s.bkFocus].Blur()
				s.bkFocus++
				s.booking[s.bkFocus].Focus()
				return s, nil
			}
			return s.submitBooking()
		}
	}

	return s.updateInputs(msg)
}

func (s *searchScreen) updateInputs(msg tea.Msg) (screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.mode {
	case searchFilters:
		s.filters[s.focus], cmd = s.filters[s.focus].Update(msg)
	case searchBooking:
		s.booking[s.bkFocus], cmd = s.booking[s.bkFocus].Update(msg)
	}
	return s, cmd
}

func (s *searchScreen) submitBooking() (screen, tea.Cmd) {
	if s.detail == nil {
		return s, nil
	}

	req := domain.CreateBookingRequest{
		TutorID: s.detail.ID,
		Subject: strings.TrimSpace(s.booking[bkSubject].Value()),
		Mode:    strings.TrimSpace(s.booking[bkMode].Value()),
		Slot:    strings.TrimSpace(s.booking[bkSlot].Value()),
		Note:    strings.TrimSpace(s.booking[bkNote].Value()),
	}
	if req.Slot == "" {
		s.status = "A slot is required"
		return s, nil
	}

	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return s, func() tea.Msg {
		booking, err := client.CreateBooking(context.Background(), token, req)
		return bookingCreatedMsg{booking: booking, err: err}
	}
}

func (s *searchScreen) view() string {
	var b strings.Builder

	switch s.mode {
	case searchFilters:
		b.WriteString(labelStyle.Render("  Filters") + "\n\n")
		for _, f := range s.filters {
			b.WriteString("  " + f.View() + "\n")
		}
		b.WriteString(helpStyle.Render("\n  tab: next filter │ enter: search"))

	case searchDetail, searchBooking:
		s.viewDetail(&b)

	default:
		b.WriteString(labelStyle.Render("  Tutors") + "\n\n")
		if s.loading {
			b.WriteString(infoStyle.Render("  loading...") + "\n")
		} else if len(s.tutors) == 0 {
			b.WriteString(infoStyle.Render("  No tutors found") + "\n")
		}
		for i, t := range s.tutors {
			cursor := "  "
			style := infoStyle
			if i == s.cursor {
				cursor = "▶ "
				style = activeStyle
			}
			name := domain.UserSummary{FirstName: t.FirstName, LastName: t.LastName}.FullName()
			verified := ""
			if t.IsVerified {
				verified = " ✓"
			}
			line := fmt.Sprintf("%s%-24s%s %-14s %s", cursor, tfstrings.Truncate(name, 24), verified,
				t.City, summaryRating(t))
			b.WriteString(style.Render(line) + "\n")
		}
		b.WriteString(helpStyle.Render("\n  enter: view tutor │ f: filters │ r: refresh │ j/k: navigate"))
	}

	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status))
	}
	return b.String()
}

func (s *searchScreen) viewDetail(b *strings.Builder) {
	p := s.detail
	if p == nil {
		return
	}

	b.WriteString(labelStyle.Render("  "+p.FullName()) + "\n")
	if p.Headline != "" {
		b.WriteString("  " + infoStyle.Render(p.Headline) + "\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "  City: %s   Experience: %d years   Rating: %s\n",
		p.City, p.ExperienceYears, profileRating(p))
	if len(p.Subjects) > 0 {
		names := make([]string, len(p.Subjects))
		for i, sub := range p.Subjects {
			names[i] = sub.Name
		}
		fmt.Fprintf(b, "  Subjects: %s\n", strings.Join(names, ", "))
	}
	if len(p.Availability) > 0 {
		b.WriteString("  Availability:\n")
		for _, slot := range p.Availability {
			fmt.Fprintf(b, "    %-10s %s-%s\n", slot.Weekday(), slot.StartTime, slot.EndTime)
		}
	}
	if len(s.reviews) > 0 {
		fmt.Fprintf(b, "  Reviews (%d):\n", len(s.reviews))
		for _, rev := range s.reviews {
			fmt.Fprintf(b, "    %d★ %s: %s\n", rev.Rating, rev.LearnerName, tfstrings.Truncate(rev.Comment, 50))
		}
	}

	if s.mode == searchBooking {
		b.WriteString("\n" + labelStyle.Render("  Request a session") + "\n")
		for _, in := range s.booking {
			b.WriteString("  " + in.View() + "\n")
		}
		b.WriteString(helpStyle.Render("\n  enter: send request │ tab: next field"))
	} else {
		b.WriteString(helpStyle.Render("\n  b: book session │ backspace: back to list"))
	}
}

func summaryRating(t domain.TutorSummary) string {
	if t.Rating == nil || t.ReviewCount == 0 {
		return "no ratings"
	}
	return fmt.Sprintf("★ %.1f (%d)", *t.Rating, t.ReviewCount)
}

func profileRating(p *domain.TutorProfile) string {
	if p.Rating == nil || p.ReviewCount == 0 {
		return "no ratings"
	}
	return fmt.Sprintf("★ %.1f (%d)", *p.Rating, p.ReviewCount)
}
