package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/team13/tutorfind-cli/internal/domain"
)

func f64(v float64) *float64 { return &v }

func TestTutorsPlain(t *testing.T) {
	r := New(false)

	out := r.Tutors([]domain.TutorSummary{
		{ID: 1, FirstName: "Aigerim", LastName: "S", City: "Almaty", Rating: f64(4.8), ReviewCount: 12, MonthlyRate: f64(40000), IsVerified: true},
		{ID: 2, FirstName: "Daniyar", City: "Astana"},
	})

	assert.Contains(t, out, "Tutors (2)")
	assert.Contains(t, out, "Aigerim S")
	assert.Contains(t, out, "★ 4.8 (12)")
	assert.Contains(t, out, "40000/mo")
	assert.Contains(t, out, "no ratings")
	assert.Contains(t, out, "rate on request")
}

func TestTutorsEmpty(t *testing.T) {
	assert.Equal(t, "No tutors found", New(true).Tutors(nil))
}

func TestUser(t *testing.T) {
	r := New(false)

	out := r.User(&domain.UserSummary{ID: 7, Email: "a@x.com", FirstName: "Ann", Role: domain.RoleTutor})
	assert.Contains(t, out, "a@x.com")
	assert.Contains(t, out, "TUTOR")

	assert.Equal(t, "Not logged in", r.User(nil))
}

func TestBookings(t *testing.T) {
	r := New(false)

	out := r.Bookings([]domain.Booking{
		{ID: 3, Status: domain.BookingPending, LearnerName: "Ann", TutorName: "Bek", Subject: "Math", Slot: "MONDAY 10:00"},
	}, true)

	assert.Contains(t, out, "Received Requests (1)")
	assert.Contains(t, out, "Ann")
	assert.NotContains(t, out, "Bek")
}

func TestClassSeats(t *testing.T) {
	r := New(false)

	seats := 2
	out := r.Class(&domain.Class{
		Name: "Algebra Basics", TutorName: "Bek", SubjectName: "Math", ClassType: "GROUP",
		Status: domain.ClassOpen, MaxStudents: 10, CurrentStudents: 8, AvailableSeats: &seats,
		AvailabilitySlot: &domain.AvailabilitySlot{DayOfWeek: "MONDAY", StartTime: "10:00", EndTime: "11:00"},
	})

	assert.Contains(t, out, "2 left (8/10)")
	assert.Contains(t, out, "MONDAY 10:00-11:00")
	assert.Contains(t, out, "free")
}

func TestAdminStats(t *testing.T) {
	out := New(false).AdminStats(&domain.AdminStats{
		TotalUsers: 40, TotalTutors: 15, TotalLearners: 24,
		VerifiedTutors: 9, PendingReviews: 3, TotalReviews: 20,
	})

	assert.Contains(t, out, "Users:       40 (15 tutors, 24 learners)")
	assert.Contains(t, out, "9 of 15 tutors")
	assert.Contains(t, out, "3 pending")
}

func TestAdminUsersInactive(t *testing.T) {
	inactive := false
	out := New(false).AdminUsers([]domain.AdminUser{
		{ID: 1, FirstName: "Ann", Email: "a@x.com", Role: "LEARNER"},
		{ID: 2, FirstName: "Bek", Email: "b@x.com", Role: "TUTOR", IsActive: &inactive},
	})

	assert.Contains(t, out, "inactive")
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★☆", stars(4))
	assert.Equal(t, "☆☆☆☆☆", stars(0))
	assert.Equal(t, "★★★★★", stars(9))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "2.5s", FormatDuration(2500*time.Millisecond))
	assert.Equal(t, "1m30s", FormatDuration(90*time.Second))
}
