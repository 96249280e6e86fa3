package tui

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team13/tutorfind-cli/internal/api"
	"github.com/team13/tutorfind-cli/internal/domain"
	"github.com/team13/tutorfind-cli/internal/session"
)

// stubClient serves canned JSON bodies keyed by request path.
type stubClient struct {
	bodies map[string]string
	calls  []string
}

func (sc *stubClient) Do(req *http.Request) (*http.Response, error) {
	sc.calls = append(sc.calls, req.Method+" "+req.URL.Path)
	body, ok := sc.bodies[req.URL.Path]
	if !ok {
		body = "[]"
	}
	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "application/json")
	rec.WriteString(body)
	return rec.Result(), nil
}

func testDeps(t *testing.T, role domain.Role, bodies map[string]string) (deps, *stubClient) {
	t.Helper()
	sc := &stubClient{bodies: bodies}
	store := session.NewAt(filepath.Join(t.TempDir(), "tf_auth.json"))
	if role != domain.RoleNone {
		require.NoError(t, store.Login(domain.UserSummary{ID: 1, Email: "u@x.com", Role: role}, "tok"))
	}
	return deps{client: api.NewWithClient("http://api.test", sc), store: store}, sc
}

func TestFence(t *testing.T) {
	var f fence

	first := f.next()
	second := f.next()

	assert.True(t, f.stale(first))
	assert.False(t, f.stale(second))
}

func TestSearchDiscardsStaleResponse(t *testing.T) {
	d, _ := testDeps(t, domain.RoleNone, nil)
	s := newSearchScreen(d).(*searchScreen)

	// Two requests in flight; the older one resolves last.
	_ = s.fetchTutors()
	_ = s.fetchTutors()

	fresh := []domain.TutorSummary{{ID: 2, FirstName: "New"}}
	_, _ = s.update(tutorsMsg{seq: 2, tutors: fresh})
	_, _ = s.update(tutorsMsg{seq: 1, tutors: []domain.TutorSummary{{ID: 1, FirstName: "Old"}}})

	require.Len(t, s.tutors, 1)
	assert.Equal(t, "New", s.tutors[0].FirstName)
}

func TestAcceptPatchesOnlyMatchingBooking(t *testing.T) {
	d, _ := testDeps(t, domain.RoleTutor, nil)
	s := newTutorBoardScreen(d).(*tutorBoardScreen)

	s.bookings = []domain.Booking{
		{ID: 1, Status: domain.BookingPending, LearnerName: "Ann"},
		{ID: 2, Status: domain.BookingPending, LearnerName: "Bek"},
		{ID: 3, Status: domain.BookingAccepted, LearnerName: "Cara"},
	}

	updated := domain.Booking{ID: 2, Status: domain.BookingAccepted, LearnerName: "Bek", TutorResponse: "see you then"}
	_, cmd := s.update(bookingRespondedMsg{booking: &updated})

	// No refetch: the list is patched in place.
	assert.Nil(t, cmd)
	assert.Equal(t, domain.BookingPending, s.bookings[0].Status)
	assert.Equal(t, domain.BookingAccepted, s.bookings[1].Status)
	assert.Equal(t, "see you then", s.bookings[1].TutorResponse)
	assert.Equal(t, "Cara", s.bookings[2].LearnerName)
}

func TestDropEnrollmentRefetches(t *testing.T) {
	bodies := map[string]string{
		"/api/classes/enrollments/my": `[{"id":5,"className":"Algebra","status":"ACTIVE"}]`,
	}
	d, sc := testDeps(t, domain.RoleLearner, bodies)
	s := newEnrollmentsScreen(d).(*enrollmentsScreen)

	s.enrollments = []domain.Enrollment{
		{ID: 5, ClassName: "Algebra", Status: domain.EnrollmentActive},
		{ID: 6, ClassName: "Physics", Status: domain.EnrollmentActive},
	}

	_, cmd := s.update(enrollmentDroppedMsg{})
	require.NotNil(t, cmd)

	// The refetch command replaces the list with the server's view, not a
	// local patch.
	msg := cmd()
	_, _ = s.update(msg)

	require.Len(t, s.enrollments, 1)
	assert.Equal(t, int64(5), s.enrollments[0].ID)
	assert.Contains(t, sc.calls, "GET /api/classes/enrollments/my")
}

func TestAdminPanelsFailIndependently(t *testing.T) {
	d, _ := testDeps(t, domain.RoleAdmin, nil)
	s := newAdminScreen(d).(*adminScreen)

	seq := s.fence.next()
	_, _ = s.update(adminStatsMsg{seq: seq, err: assert.AnError})
	_, _ = s.update(adminUsersMsg{seq: seq, users: []domain.AdminUser{{ID: 1, Email: "a@x.com"}}})

	assert.NotEmpty(t, s.statsErr)
	assert.Empty(t, s.usersErr)
	assert.Len(t, s.users, 1)
}

func TestMenuEntriesByRole(t *testing.T) {
	loggedOut := visibleEntries(domain.RoleNone)
	learner := visibleEntries(domain.RoleLearner)
	tutor := visibleEntries(domain.RoleTutor)
	admin := visibleEntries(domain.RoleAdmin)

	names := func(entries []menuEntry) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.name
		}
		return out
	}

	assert.Equal(t, []string{"Sign in / Sign up", "Find a Tutor", "Browse Classes"}, names(loggedOut))
	assert.Contains(t, names(learner), "My Sessions")
	assert.NotContains(t, names(learner), "Availability")
	assert.Contains(t, names(tutor), "Availability")
	assert.Contains(t, names(admin), "Admin Console")
	assert.NotContains(t, names(admin), "My Sessions")
}

func TestWrongRoleNotice(t *testing.T) {
	d, _ := testDeps(t, domain.RoleLearner, nil)

	s := newAvailabilityScreen(d)
	assert.Nil(t, s.enter())
	assert.Contains(t, s.view(), "Access restricted")
}

func TestSessionChangeRebuildsMenu(t *testing.T) {
	d, _ := testDeps(t, domain.RoleNone, nil)
	app := New(d.client, d.store)

	require.NoError(t, d.store.Login(domain.UserSummary{ID: 1, Email: "t@x.com", Role: domain.RoleTutor}, "tok"))
	model, _ := app.Update(sessionChangedMsg{})

	got := model.(App)
	found := false
	for _, e := range got.entries {
		if e.name == "Availability" {
			found = true
		}
	}
	assert.True(t, found)
	assert.Nil(t, got.active)
}

var _ tea.Model = App{}
