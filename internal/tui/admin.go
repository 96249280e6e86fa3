package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/team13/tutorfind-cli/internal/domain"
	tfstrings "github.com/team13/tutorfind-cli/internal/strings"
)

// adminScreen is the moderation console. The four panels load as four
// independent fetches: one failing panel shows its own error while the
// others still render.
type adminScreen struct {
	deps  deps
	fence fence

	tab    int
	cursor int

	stats      *domain.AdminStats
	users      []domain.AdminUser
	unverified []domain.UnverifiedTutor
	pending    []domain.Review

	statsErr      string
	usersErr      string
	unverifiedErr string
	pendingErr    string

	loading int
	status  string
}

var adminTabs = []string{"Stats", "Users", "Verification", "Reviews"}

type adminStatsMsg struct {
	seq   int
	stats *domain.AdminStats
	err   error
}

type adminUsersMsg struct {
	seq   int
	users []domain.AdminUser
	err   error
}

type adminUnverifiedMsg struct {
	seq    int
	tutors []domain.UnverifiedTutor
	err    error
}

type adminPendingMsg struct {
	seq     int
	reviews []domain.Review
	err     error
}

type adminActionMsg struct {
	err error
}

func newAdminScreen(d deps) screen {
	return &adminScreen{deps: d}
}

func (s *adminScreen) title() string { return "Admin Console" }

func (s *adminScreen) enter() tea.Cmd {
	if s.deps.store.Role() != domain.RoleAdmin {
		return nil
	}
	return s.fetchAll()
}

// fetchAll issues the four loads separately so each can fail on its own.
func (s *adminScreen) fetchAll() tea.Cmd {
	seq := s.fence.next()
	s.loading = 4

	client := s.deps.client
	token := s.deps.token()
	return tea.Batch(
		func() tea.Msg {
			stats, err := client.AdminStats(context.Background(), token)
			return adminStatsMsg{seq: seq, stats: stats, err: err}
		},
		func() tea.Msg {
			users, err := client.AdminUsers(context.Background(), token)
			return adminUsersMsg{seq: seq, users: users, err: err}
		},
		func() tea.Msg {
			tutors, err := client.AdminUnverifiedTutors(context.Background(), token)
			return adminUnverifiedMsg{seq: seq, tutors: tutors, err: err}
		},
		func() tea.Msg {
			reviews, err := client.AdminPendingReviews(context.Background(), token)
			return adminPendingMsg{seq: seq, reviews: reviews, err: err}
		},
	)
}

func (s *adminScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case adminStatsMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading--
		s.stats, s.statsErr = msg.stats, errText(msg.err)
		return s, nil

	case adminUsersMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading--
		s.users, s.usersErr = msg.users, errText(msg.err)
		s.clampCursor()
		return s, nil

	case adminUnverifiedMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading--
		s.unverified, s.unverifiedErr = msg.tutors, errText(msg.err)
		s.clampCursor()
		return s, nil

	case adminPendingMsg:
		if s.fence.stale(msg.seq) {
			return s, nil
		}
		s.loading--
		s.pending, s.pendingErr = msg.reviews, errText(msg.err)
		s.clampCursor()
		return s, nil

	case adminActionMsg:
		if msg.err != nil {
			s.status = msg.err.Error()
			return s, nil
		}
		s.status = ""
		return s, s.fetchAll()

	case tea.KeyMsg:
		if s.deps.store.Role() != domain.RoleAdmin {
			return s, nil
		}
		return s.updateKeys(msg)
	}

	return s, nil
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (s *adminScreen) updateKeys(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "right", "l":
		s.tab = (s.tab + 1) % len(adminTabs)
		s.cursor = 0
	case "shift+tab", "left", "h":
		s.tab = (s.tab + len(adminTabs) - 1) % len(adminTabs)
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
		return s, s.fetchAll()
	case "v":
		if s.tab == 2 && s.cursor < len(s.unverified) {
			return s, s.action("verify", s.unverified[s.cursor].ID)
		}
	case "a":
		switch s.tab {
		case 1:
			if s.cursor < len(s.users) {
				return s, s.action("activate", s.users[s.cursor].ID)
			}
		case 3:
			if s.cursor < len(s.pending) {
				return s, s.action("approve", s.pending[s.cursor].ID)
			}
		}
	case "x":
		switch s.tab {
		case 1:
			if s.cursor < len(s.users) {
				return s, s.action("deactivate", s.users[s.cursor].ID)
			}
		case 3:
			if s.cursor < len(s.pending) {
				return s, s.action("reject", s.pending[s.cursor].ID)
			}
		}
	}
	return s, nil
}

func (s *adminScreen) action(name string, id int64) tea.Cmd {
	client := s.deps.client
	token := s.deps.token()
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch name {
		case "verify":
			err = client.AdminVerifyTutor(ctx, token, id)
		case "activate":
			err = client.AdminActivateUser(ctx, token, id)
		case "deactivate":
			err = client.AdminDeactivateUser(ctx, token, id)
		case "approve":
			err = client.AdminApproveReview(ctx, token, id)
		case "reject":
			err = client.AdminRejectReview(ctx, token, id, "")
		}
		return adminActionMsg{err: err}
	}
}

func (s *adminScreen) tabLen() int {
	switch s.tab {
	case 1:
		return len(s.users)
	case 2:
		return len(s.unverified)
	case 3:
		return len(s.pending)
	}
	return 0
}

func (s *adminScreen) clampCursor() {
	if s.cursor >= s.tabLen() {
		s.cursor = 0
	}
}

func (s *adminScreen) view() string {
	if s.deps.store.Role() != domain.RoleAdmin {
		return accessNotice("admin")
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, name := range adminTabs {
		if i == s.tab {
			b.WriteString(activeStyle.Render("["+name+"]") + " ")
		} else {
			b.WriteString(infoStyle.Render(" "+name+" ") + " ")
		}
	}
	b.WriteString("\n\n")

	if s.loading > 0 {
		b.WriteString(infoStyle.Render("  loading...") + "\n")
	}

	switch s.tab {
	case 1:
		s.viewPanel(&b, s.usersErr, len(s.users), "No users", func(b *strings.Builder) {
			for i, u := range s.users {
				cursor, style := rowStyle(i == s.cursor)
				name := domain.UserSummary{FirstName: u.FirstName, LastName: u.LastName}.FullName()
				state := "active"
				if !u.Active() {
					state = "inactive"
				}
				line := fmt.Sprintf("%s%4d %-8s %-24s %-28s %s", cursor, u.ID, u.Role,
					tfstrings.Truncate(name, 24), tfstrings.Truncate(u.Email, 28), state)
				b.WriteString(style.Render(line) + "\n")
			}
		})
		b.WriteString(helpStyle.Render("\n  a: activate │ x: deactivate │ tab: switch │ r: refresh"))

	case 2:
		s.viewPanel(&b, s.unverifiedErr, len(s.unverified), "Queue is empty", func(b *strings.Builder) {
			for i, t := range s.unverified {
				cursor, style := rowStyle(i == s.cursor)
				line := fmt.Sprintf("%s%4d %-40s %d years", cursor, t.ID,
					tfstrings.Truncate(t.Headline, 40), t.ExperienceYears)
				b.WriteString(style.Render(line) + "\n")
			}
		})
		b.WriteString(helpStyle.Render("\n  v: verify │ tab: switch │ r: refresh"))

	case 3:
		s.viewPanel(&b, s.pendingErr, len(s.pending), "No pending reviews", func(b *strings.Builder) {
			for i, rev := range s.pending {
				cursor, style := rowStyle(i == s.cursor)
				line := fmt.Sprintf("%s%4d %d★ %-20s %s", cursor, rev.ID, rev.Rating,
					tfstrings.Truncate(rev.LearnerName, 20), tfstrings.Truncate(rev.Comment, 40))
				b.WriteString(style.Render(line) + "\n")
			}
		})
		b.WriteString(helpStyle.Render("\n  a: approve │ x: reject │ tab: switch │ r: refresh"))

	default:
		if s.statsErr != "" {
			b.WriteString("  " + errorStyle.Render(s.statsErr) + "\n")
		} else if s.stats != nil {
			st := s.stats
			fmt.Fprintf(&b, "  Users:       %d (%d tutors, %d learners)\n", st.TotalUsers, st.TotalTutors, st.TotalLearners)
			fmt.Fprintf(&b, "  Verified:    %d of %d tutors\n", st.VerifiedTutors, st.TotalTutors)
			fmt.Fprintf(&b, "  Reviews:     %d (%d pending)\n", st.TotalReviews, st.PendingReviews)
			fmt.Fprintf(&b, "  Bookings:    %d (%d pending, %d accepted)\n", st.TotalBookings, st.PendingBookings, st.AcceptedBookings)
			fmt.Fprintf(&b, "  Classes:     %d (%d open)\n", st.TotalClasses, st.OpenClasses)
			fmt.Fprintf(&b, "  Enrollments: %d (%d active)\n", st.TotalEnrollments, st.ActiveEnrollments)
		}
		b.WriteString(helpStyle.Render("\n  tab: switch │ r: refresh"))
	}

	if s.status != "" {
		b.WriteString("\n  " + warnStyle.Render(s.status))
	}
	return b.String()
}

func (s *adminScreen) viewPanel(b *strings.Builder, errMsg string, n int, empty string, render func(*strings.Builder)) {
	if errMsg != "" {
		b.WriteString("  " + errorStyle.Render(errMsg) + "\n")
		return
	}
	if n == 0 && s.loading == 0 {
		b.WriteString(infoStyle.Render("  "+empty) + "\n")
		return
	}
	render(b)
}
