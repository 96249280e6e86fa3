package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/api"
	"github.com/team13/tutorfind-cli/internal/domain"
)

// profileScreen manages the tutor's own profile: editable fields plus the
// taught subjects and served districts.
type profileScreen struct {
	deps  deps
	fence fence

	tab int

	profile   *domain.TutorProfile
	subjects  []domain.Subject
	districts []domain.District
	cursor    int

	editing bool
	form    []textinput.Model
	focus   int

	pickInput textinput.Model
	picking   bool

	loading bool
	status  string
}

var profileTabs = []string{"Profile", "Subjects", "Districts"}

// Form field order mirrors the update payload.
const (
	pfHeadline = iota
	pfBio
	pfQualifications
	pfExperience
	pfRate
)

type profileMsg struct {
	seq       int
	profile   *domain.TutorProfile
	subjects  []domain.Subject
	districts []domain.District
	err       error
}

type profileMutatedMsg struct {
	err error
}

func newProfileScreen(d deps) screen {
	placeholders := []string{"headline", "bio", "qualifications", "experience years", "monthly rate"}
	form := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 500
		ti.Width = 48
		form[i] = ti
	}

	pick := textinput.New()
	pick.Placeholder = "id to add"
	pick.CharLimit = 10
	pick.Width = 16

	return &profileScreen{deps: d, form: form, pickInput: pick}
}

func (s *profileScreen) title() string { return "Profile Settings" }

func (s *profileScreen) enter() tea.Cmd {
	if s.deps.store.Role() != domain.RoleTutor {
		return nil
	}
	return s.fetch()
}

// fetch loads the catalogs and the caller's own profile. The backend has no
// "my profile" endpoint, so the profile is found by matching the account id
// in the public tutor list.
func (s *profileScreen) fetch() tea.Cmd {
	seq := s.fence.next()
	s.loading = true

	client := s.deps.client
	userID := int64(0)
	if u := s.deps.store.User(); u != nil {
		userID = u.ID
	}
	return func() tea.Msg {
		subjects, err := client.Subjects(context.Background())
		if err != nil {
			return profileMsg{seq: seq, err: err}
		}
		districts, err := client.Districts(context.Background())
		if err != nil {
			return profileMsg{seq: seq, err: err}
		}
		tutors, err := client.SearchTutors(context.Background(), api.SearchFilters{})
		if err != nil {
			return profileMsg{seq: seq, err: err}
		}
		for _, t := range tutors {
			if t.UserID == userID {
				profile, err := client.TutorProfile(context.Background(), t.ID)
				if err != nil {
					return profileMsg{seq: seq, err: err}
				}
				return profileMsg{seq: seq, profile: profile, subjects: subjects, districts: districts}
			}
		}
		return profileMsg{seq: seq, err: errors.New("no tutor profile found for this account")}
	}
}

func (s *profileScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = ""
		s.profile = msg.profile
		s.subjects = msg.subjects
		s.districts = msg.districts
		s.seedForm()
		return s, nil

	case profileMutatedMsg:
		s.loading = false
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.editing = false
		s.picking = false
		return s, s.fetch()

	case tea.KeyMsg:
		if s.deps.store.Role() != domain.RoleTutor {
			return s, nil
		}
		if s.editing {
			return s.updateForm(msg)
		}
		if s.picking {
			return s.updatePick(msg)
		}
		return s.updateKeys(msg)
	}

	return s, nil
}

func (s *profileScreen) seedForm() {
	if s.profile == nil {
		return
	}
	s.form[pfHeadline].SetValue(s.profile.Headline)
	s.form[pfBio].SetValue(s.profile.Bio)
	s.form[pfQualifications].SetValue(s.profile.Qualifications)
	s.form[pfExperience].SetValue(strconv.Itoa(s.profile.ExperienceYears))
	if s.profile.MonthlyRate != nil {
		s.form[pfRate].SetValue(strconv.FormatFloat(*s.profile.MonthlyRate, 'f', 0, 64))
	} else {
		s.form[pfRate].SetValue("")
	}
}

func (s *profileScreen) updateKeys(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "right", "l":
		s.tab = (s.tab + 1) % len(profileTabs)
		s.cursor = 0
	case "shift+tab", "left", "h":
		s.tab = (s.tab + len(profileTabs) - 1) % len(profileTabs)
		s.cursor = 0
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.tabLen()-1 {
			s.cursor++
		}
	case "e":
		if s.tab == 0 && s.profile != nil {
			s.editing = true
			s.focus = 0
			s.form[0].Focus()
			return s, textinput.Blink
		}
	case "a":
		if s.tab != 0 {
			s.picking = true
			s.pickInput.SetValue("")
			s.pickInput.Focus()
			return s, textinput.Blink
		}
	case "x":
		return s, s.removeSelected()
	case "r":
		return s, s.fetch()
	}
	return s, nil
}

func (s *profileScreen) updateForm(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		s.form[s.focus].Blur()
		s.focus = (s.focus + 1) % len(s.form)
		s.form[s.focus].Focus()
		return s, nil
	case "ctrl+d":
		s.editing = false
		s.seedForm()
		return s, nil
	case "enter":
		if s.focus < len(s.form)-1 {
			s.form[s.focus].Blur()
			s.focus++
			s.form[s.focus].Focus()
			return s, nil
		}
		return s.submitProfile()
	}

	var cmd tea.Cmd
	s.form[s.focus], cmd = s.form[s.focus].Update(msg)
	return s, cmd
}

func (s *profileScreen) updatePick(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+d":
		s.picking = false
		return s, nil
	case "enter":
		id, err := strconv.ParseInt(strings.TrimSpace(s.pickInput.Value()), 10, 64)
		if err != nil {
			s.status = "Enter a numeric id"
			return s, nil
		}
		s.picking = false
		return s, s.add(id)
	}

	var cmd tea.Cmd
	s.pickInput, cmd = s.pickInput.Update(msg)
	return s, cmd
}

func (s *profileScreen) submitProfile() (screen, tea.Cmd) {
	headline := strings.TrimSpace(s.form[pfHeadline].Value())
	bio := strings.TrimSpace(s.form[pfBio].Value())
	quals := strings.TrimSpace(s.form[pfQualifications].Value())

	req := domain.UpdateProfileRequest{
		Headline:       &headline,
		Bio:            &bio,
		Qualifications: &quals,
	}
	if v, err := strconv.Atoi(strings.TrimSpace(s.form[pfExperience].Value())); err == nil {
		req.ExperienceYears = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(s.form[pfRate].Value()), 64); err == nil {
		req.MonthlyRate = &v
	}

	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	return s, func() tea.Msg {
		_, err := client.UpdateTutorProfile(context.Background(), token, req)
		return profileMutatedMsg{err: err}
	}
}

func (s *profileScreen) add(id int64) tea.Cmd {
	s.loading = true
	s.status = ""
	client := s.deps.client
	token := s.deps.token()
	subjects := s.tab == 1
	return func() tea.Msg {
		var err error
		if subjects {
			err = client.AddSubject(context.Background(), token, id)
		} else {
			err = client.AddDistrict(context.Background(), token, id)
		}
		return profileMutatedMsg{err: err}
	}
}

func (s *profileScreen) removeSelected() tea.Cmd {
	if s.profile == nil {
		return nil
	}

	client := s.deps.client
	token := s.deps.token()

	switch s.tab {
	case 1:
		if s.cursor >= len(s.profile.Subjects) {
			return nil
		}
		id := s.profile.Subjects[s.cursor].ID
		s.loading = true
		return func() tea.Msg {
			return profileMutatedMsg{err: client.RemoveSubject(context.Background(), token, id)}
		}
	case 2:
		name := ""
		if s.cursor < len(s.profile.Districts) {
			name = s.profile.Districts[s.cursor]
		}
		var id int64
		for _, d := range s.districts {
			if d.Name == name {
				id = d.ID
				break
			}
		}
		if id == 0 {
			s.status = "District not found in catalog"
			return nil
		}
		s.loading = true
		return func() tea.Msg {
			return profileMutatedMsg{err: client.RemoveDistrict(context.Background(), token, id)}
		}
	}
	return nil
}

func (s *profileScreen) tabLen() int {
	if s.profile == nil {
		return 0
	}
	switch s.tab {
	case 1:
		return len(s.profile.Subjects)
	case 2:
		return len(s.profile.Districts)
	}
	return 0
}

func (s *profileScreen) view() string {
	if s.deps.store.Role() != domain.RoleTutor {
		return accessNotice("tutor")
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, name := range profileTabs {
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
	case s.editing:
		for _, in := range s.form {
			b.WriteString("  " + in.View() + "\n")
		}
		b.WriteString(helpStyle.Render("\n  enter: save │ tab: next field │ ctrl+d: cancel"))

	case s.picking:
		kind := "subject"
		if s.tab == 2 {
			kind = "district"
		}
		b.WriteString("  Add " + kind + " by id (see catalog below)\n")
		b.WriteString("  " + s.pickInput.View() + "\n\n")
		s.viewCatalog(&b)
		b.WriteString(helpStyle.Render("\n  enter: add │ ctrl+d: cancel"))

	case s.tab == 0:
		s.viewProfile(&b)
		b.WriteString(helpStyle.Render("\n  e: edit │ tab: switch │ r: refresh"))

	default:
		s.viewMembership(&b)
		b.WriteString(helpStyle.Render("\n  a: add │ x: remove │ tab: switch │ r: refresh"))
	}

	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status))
	}
	return b.String()
}

func (s *profileScreen) viewProfile(b *strings.Builder) {
	p := s.profile
	if p == nil {
		if !s.loading {
			b.WriteString(infoStyle.Render("  No profile loaded") + "\n")
		}
		return
	}
	fmt.Fprintf(b, "  Headline:   %s\n", p.Headline)
	fmt.Fprintf(b, "  Bio:        %s\n", p.Bio)
	fmt.Fprintf(b, "  Experience: %d years\n", p.ExperienceYears)
	if p.MonthlyRate != nil {
		fmt.Fprintf(b, "  Rate:       %.0f/mo\n", *p.MonthlyRate)
	}
	verified := "no"
	if p.IsVerified {
		verified = "yes"
	}
	fmt.Fprintf(b, "  Verified:   %s\n", verified)
}

func (s *profileScreen) viewMembership(b *strings.Builder) {
	if s.profile == nil {
		return
	}
	if s.tab == 1 {
		if len(s.profile.Subjects) == 0 {
			b.WriteString(infoStyle.Render("  No subjects yet") + "\n")
		}
		for i, sub := range s.profile.Subjects {
			cursor, style := rowStyle(i == s.cursor)
			b.WriteString(style.Render(fmt.Sprintf("%s%-28s %s", cursor, sub.Name, sub.Category)) + "\n")
		}
		return
	}
	if len(s.profile.Districts) == 0 {
		b.WriteString(infoStyle.Render("  No districts yet") + "\n")
	}
	for i, d := range s.profile.Districts {
		cursor, style := rowStyle(i == s.cursor)
		b.WriteString(style.Render(cursor+d) + "\n")
	}
}

func (s *profileScreen) viewCatalog(b *strings.Builder) {
	if s.tab == 1 {
		for _, sub := range s.subjects {
			fmt.Fprintf(b, "  %4d  %-28s %s\n", sub.ID, sub.Name, sub.Category)
		}
		return
	}
	city := ""
	if s.profile != nil {
		city = s.profile.City
	}
	for _, d := range s.districts {
		if city != "" && d.CityName != city {
			continue
		}
		fmt.Fprintf(b, "  %4d  %s\n", d.ID, d.Name)
	}
}
