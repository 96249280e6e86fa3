// Package render formats domain records for terminal output.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/team13/tutorfind-cli/internal/domain"
	tfstrings "github.com/team13/tutorfind-cli/internal/strings"
)

// Renderer handles output formatting.
type Renderer struct {
	pretty bool
}

// New creates a new renderer.
func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

func (r *Renderer) header(sb *strings.Builder, title string) {
	if r.pretty {
		sb.WriteString(color.CyanString(title + "\n"))
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	} else {
		sb.WriteString(title + "\n")
	}
}

// User formats the logged-in identity for whoami.
func (r *Renderer) User(user *domain.UserSummary) string {
	if user == nil {
		return "Not logged in"
	}

	var sb strings.Builder
	if r.pretty {
		fmt.Fprintf(&sb, "%s %s\n", color.GreenString("●"), user.FullName())
		fmt.Fprintf(&sb, "  Email: %s\n", user.Email)
		fmt.Fprintf(&sb, "  Role:  %s\n", color.YellowString(string(user.Role)))
	} else {
		fmt.Fprintf(&sb, "id=%d email=%s role=%s\n", user.ID, user.Email, user.Role)
	}
	return sb.String()
}

// Tutors formats a tutor search result list.
func (r *Renderer) Tutors(tutors []domain.TutorSummary) string {
	if len(tutors) == 0 {
		return "No tutors found"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Tutors (%d)", len(tutors)))

	for _, t := range tutors {
		name := domain.UserSummary{FirstName: t.FirstName, LastName: t.LastName}.FullName()
		badge := ""
		if t.IsVerified {
			badge = " ✓"
			if r.pretty {
				badge = " " + color.GreenString("✓")
			}
		}

		if r.pretty {
			fmt.Fprintf(&sb, "%4d  %s%s  %s\n", t.ID, color.New(color.Bold).Sprint(name), badge,
				color.HiBlackString(tfstrings.Truncate(t.Headline, 40)))
			fmt.Fprintf(&sb, "      %s  %s  %s\n", t.City, rating(t.Rating, t.ReviewCount), rate(t.MonthlyRate))
		} else {
			fmt.Fprintf(&sb, "%d\t%s%s\t%s\t%s\t%s\n", t.ID, name, badge, t.City,
				rating(t.Rating, t.ReviewCount), rate(t.MonthlyRate))
		}
	}
	return sb.String()
}

// TutorProfile formats a full tutor profile page.
func (r *Renderer) TutorProfile(p *domain.TutorProfile, reviews []domain.Review) string {
	var sb strings.Builder
	r.header(&sb, p.FullName())

	if p.Headline != "" {
		fmt.Fprintf(&sb, "%s\n", p.Headline)
	}
	if p.Bio != "" {
		fmt.Fprintf(&sb, "\n%s\n", tfstrings.WordWrap(p.Bio, 72))
	}

	fmt.Fprintf(&sb, "\nCity:       %s\n", p.City)
	if len(p.Districts) > 0 {
		fmt.Fprintf(&sb, "Districts:  %s\n", strings.Join(p.Districts, ", "))
	}
	if len(p.Subjects) > 0 {
		names := make([]string, len(p.Subjects))
		for i, s := range p.Subjects {
			names[i] = s.Name
		}
		fmt.Fprintf(&sb, "Subjects:   %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(&sb, "Experience: %d years\n", p.ExperienceYears)
	fmt.Fprintf(&sb, "Rate:       %s\n", rate(p.MonthlyRate))
	fmt.Fprintf(&sb, "Rating:     %s\n", rating(p.Rating, p.ReviewCount))
	if p.IsVerified {
		if r.pretty {
			fmt.Fprintf(&sb, "Verified:   %s\n", color.GreenString("yes"))
		} else {
			sb.WriteString("Verified:   yes\n")
		}
	}

	if len(p.Availability) > 0 {
		sb.WriteString("\nAvailability:\n")
		for _, slot := range p.Availability {
			fmt.Fprintf(&sb, "  %-10s %s-%s\n", slot.Weekday(), slot.StartTime, slot.EndTime)
		}
	}

	if len(reviews) > 0 {
		fmt.Fprintf(&sb, "\nReviews (%d):\n", len(reviews))
		for _, rev := range reviews {
			fmt.Fprintf(&sb, "  %s %s: %s\n", stars(rev.Rating), rev.LearnerName,
				tfstrings.Truncate(rev.Comment, 60))
		}
	}
	return sb.String()
}

// Bookings formats a booking list for either side of the request.
func (r *Renderer) Bookings(bookings []domain.Booking, incoming bool) string {
	if len(bookings) == 0 {
		return "No bookings found"
	}

	title := "Sent Requests"
	if incoming {
		title = "Received Requests"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("%s (%d)", title, len(bookings)))

	for _, b := range bookings {
		other := b.TutorName
		if incoming {
			other = b.LearnerName
		}

		if r.pretty {
			fmt.Fprintf(&sb, "%4d  %s  %s  %s  %s\n", b.ID, r.bookingStatus(b.Status), other,
				b.Subject, color.HiBlackString(b.Slot))
		} else {
			fmt.Fprintf(&sb, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.Status, other, b.Subject, b.Slot)
		}
		if b.TutorResponse != "" {
			fmt.Fprintf(&sb, "      response: %s\n", tfstrings.Truncate(b.TutorResponse, 60))
		}
	}
	return sb.String()
}

func (r *Renderer) bookingStatus(status string) string {
	if !r.pretty {
		return status
	}
	switch status {
	case domain.BookingAccepted:
		return color.GreenString("%-8s", status)
	case domain.BookingDeclined:
		return color.RedString("%-8s", status)
	default:
		return color.YellowString("%-8s", status)
	}
}

// Reviews formats the caller's submitted reviews.
func (r *Renderer) Reviews(reviews []domain.Review) string {
	if len(reviews) == 0 {
		return "No reviews found"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("My Reviews (%d)", len(reviews)))

	for _, rev := range reviews {
		status := ""
		if rev.Status != "" {
			status = " [" + rev.Status + "]"
		}
		fmt.Fprintf(&sb, "%4d  %s%s  %s\n", rev.ID, stars(rev.Rating), status,
			tfstrings.Truncate(rev.Comment, 60))
	}
	return sb.String()
}

// FeedbackList formats progress notes.
func (r *Renderer) FeedbackList(items []domain.Feedback, received bool) string {
	if len(items) == 0 {
		return "No feedback found"
	}

	title := "Feedback Given"
	if received {
		title = "Feedback Received"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("%s (%d)", title, len(items)))

	for _, f := range items {
		other := f.LearnerName
		if received {
			other = f.TutorName
		}
		fmt.Fprintf(&sb, "%4d  %s  %s  %s\n", f.ID, f.SessionDate, other,
			tfstrings.Truncate(f.FeedbackText, 50))
	}
	return sb.String()
}

// Feedback formats one full progress note.
func (r *Renderer) Feedback(f *domain.Feedback) string {
	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Feedback #%d", f.ID))

	fmt.Fprintf(&sb, "Tutor:   %s\n", f.TutorName)
	fmt.Fprintf(&sb, "Learner: %s\n", f.LearnerName)
	if f.SubjectName != "" {
		fmt.Fprintf(&sb, "Subject: %s\n", f.SubjectName)
	}
	if f.SessionDate != "" {
		fmt.Fprintf(&sb, "Session: %s\n", f.SessionDate)
	}
	fmt.Fprintf(&sb, "\n%s\n", tfstrings.WordWrap(f.FeedbackText, 72))
	if f.Strengths != "" {
		fmt.Fprintf(&sb, "\nStrengths:\n%s\n", tfstrings.WordWrap(f.Strengths, 72))
	}
	if f.AreasForImprovement != "" {
		fmt.Fprintf(&sb, "\nAreas for improvement:\n%s\n", tfstrings.WordWrap(f.AreasForImprovement, 72))
	}
	return sb.String()
}

// Slots formats an availability slot list.
func (r *Renderer) Slots(slots []domain.AvailabilitySlot) string {
	if len(slots) == 0 {
		return "No availability slots"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Availability (%d)", len(slots)))

	for _, s := range slots {
		fmt.Fprintf(&sb, "%4d  %-10s %s-%s\n", s.Ref(), s.Weekday(), s.StartTime, s.EndTime)
	}
	return sb.String()
}

// Classes formats a class list.
func (r *Renderer) Classes(classes []domain.Class) string {
	if len(classes) == 0 {
		return "No classes found"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Classes (%d)", len(classes)))

	for _, c := range classes {
		if r.pretty {
			fmt.Fprintf(&sb, "%4d  %s  %s  %s\n", c.ID, r.classStatus(c.Status),
				color.New(color.Bold).Sprint(tfstrings.Truncate(c.Name, 36)), c.SubjectName)
			fmt.Fprintf(&sb, "      %s  %d/%d seats  %s\n", c.TutorName,
				c.CurrentStudents, c.MaxStudents, price(c.PricePerSession))
		} else {
			fmt.Fprintf(&sb, "%d\t%s\t%s\t%s\t%d/%d\t%s\n", c.ID, c.Status, c.Name,
				c.SubjectName, c.CurrentStudents, c.MaxStudents, price(c.PricePerSession))
		}
	}
	return sb.String()
}

// Class formats one full class page.
func (r *Renderer) Class(c *domain.Class) string {
	var sb strings.Builder
	r.header(&sb, c.Name)

	if c.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", tfstrings.WordWrap(c.Description, 72))
	}
	fmt.Fprintf(&sb, "Tutor:    %s\n", c.TutorName)
	fmt.Fprintf(&sb, "Subject:  %s\n", c.SubjectName)
	fmt.Fprintf(&sb, "Type:     %s\n", c.ClassType)
	fmt.Fprintf(&sb, "Status:   %s\n", c.Status)
	fmt.Fprintf(&sb, "Seats:    %d left (%d/%d)\n", c.SeatsLeft(), c.CurrentStudents, c.MaxStudents)
	fmt.Fprintf(&sb, "Price:    %s\n", price(c.PricePerSession))
	if c.TotalSessions > 0 {
		fmt.Fprintf(&sb, "Sessions: %d × %d min\n", c.TotalSessions, c.DurationMinutes)
	}
	if c.AvailabilitySlot != nil {
		fmt.Fprintf(&sb, "Schedule: %s %s-%s\n", c.AvailabilitySlot.Weekday(),
			c.AvailabilitySlot.StartTime, c.AvailabilitySlot.EndTime)
	}
	if c.StartDate != "" {
		fmt.Fprintf(&sb, "Dates:    %s → %s\n", c.StartDate, c.EndDate)
	}
	return sb.String()
}

func (r *Renderer) classStatus(status string) string {
	if !r.pretty {
		return status
	}
	switch status {
	case domain.ClassOpen:
		return color.GreenString("%-11s", status)
	case domain.ClassFull, domain.ClassCancelled:
		return color.RedString("%-11s", status)
	default:
		return color.YellowString("%-11s", status)
	}
}

// Enrollments formats the caller's enrollments.
func (r *Renderer) Enrollments(enrollments []domain.Enrollment) string {
	if len(enrollments) == 0 {
		return "No enrollments found"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Enrollments (%d)", len(enrollments)))

	for _, e := range enrollments {
		fmt.Fprintf(&sb, "%4d  %-9s  %s  %s  attended %d\n", e.ID, e.Status,
			tfstrings.Truncate(e.ClassName, 32), e.TutorName, e.SessionsAttended)
	}
	return sb.String()
}

// Roster formats a class roster.
func (r *Renderer) Roster(entries []domain.RosterEntry) string {
	if len(entries) == 0 {
		return "No enrolled learners"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Roster (%d)", len(entries)))

	for _, e := range entries {
		fmt.Fprintf(&sb, "%4d  %-9s  %s  attended %d  %s\n", e.ID, e.Status,
			e.LearnerName, e.SessionsAttended, e.PaymentStatus)
	}
	return sb.String()
}

// AdminStats formats the admin console counters.
func (r *Renderer) AdminStats(s *domain.AdminStats) string {
	var sb strings.Builder
	r.header(&sb, "Platform Stats")

	fmt.Fprintf(&sb, "Users:       %d (%d tutors, %d learners)\n", s.TotalUsers, s.TotalTutors, s.TotalLearners)
	fmt.Fprintf(&sb, "Verified:    %d of %d tutors\n", s.VerifiedTutors, s.TotalTutors)
	fmt.Fprintf(&sb, "Reviews:     %d (%d pending, %d approved, %d rejected)\n",
		s.TotalReviews, s.PendingReviews, s.ApprovedReviews, s.RejectedReviews)
	fmt.Fprintf(&sb, "Bookings:    %d (%d pending, %d accepted)\n",
		s.TotalBookings, s.PendingBookings, s.AcceptedBookings)
	fmt.Fprintf(&sb, "Classes:     %d (%d open, %d full)\n", s.TotalClasses, s.OpenClasses, s.FullClasses)
	fmt.Fprintf(&sb, "Enrollments: %d (%d active)\n", s.TotalEnrollments, s.ActiveEnrollments)
	return sb.String()
}

// AdminUsers formats the admin user list.
func (r *Renderer) AdminUsers(users []domain.AdminUser) string {
	if len(users) == 0 {
		return "No users found"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Users (%d)", len(users)))

	for _, u := range users {
		name := domain.UserSummary{FirstName: u.FirstName, LastName: u.LastName}.FullName()
		status := "active"
		if !u.Active() {
			status = "inactive"
			if r.pretty {
				status = color.RedString("inactive")
			}
		}
		fmt.Fprintf(&sb, "%4d  %-8s  %-24s  %s  %s\n", u.ID, u.Role, name, u.Email, status)
	}
	return sb.String()
}

// UnverifiedTutors formats the admin verification queue.
func (r *Renderer) UnverifiedTutors(tutors []domain.UnverifiedTutor) string {
	if len(tutors) == 0 {
		return "No tutors awaiting verification"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Verification Queue (%d)", len(tutors)))

	for _, t := range tutors {
		fmt.Fprintf(&sb, "%4d  %s  %d years  %s\n", t.ID,
			tfstrings.Truncate(t.Headline, 44), t.ExperienceYears, t.CreatedAt)
	}
	return sb.String()
}

// Subjects formats the subject catalog.
func (r *Renderer) Subjects(subjects []domain.Subject) string {
	if len(subjects) == 0 {
		return "No subjects found"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Subjects (%d)", len(subjects)))

	for _, s := range subjects {
		fmt.Fprintf(&sb, "%4d  %-28s %s\n", s.ID, s.Name, s.Category)
	}
	return sb.String()
}

// SubjectsByCategory formats the subject catalog grouped by category.
func (r *Renderer) SubjectsByCategory(groups map[string][]domain.Subject) string {
	if len(groups) == 0 {
		return "No subjects found"
	}

	categories := make([]string, 0, len(groups))
	for c := range groups {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, c := range categories {
		r.header(&sb, c)
		for _, s := range groups[c] {
			fmt.Fprintf(&sb, "%4d  %s\n", s.ID, s.Name)
		}
	}
	return sb.String()
}

// Cities formats the supported city list.
func (r *Renderer) Cities(cities []domain.City) string {
	if len(cities) == 0 {
		return "No cities found"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Cities (%d)", len(cities)))

	for _, c := range cities {
		fmt.Fprintf(&sb, "%4d  %-24s %s\n", c.ID, c.Name, c.Country)
	}
	return sb.String()
}

// Districts formats a district list.
func (r *Renderer) Districts(districts []domain.District) string {
	if len(districts) == 0 {
		return "No districts found"
	}

	var sb strings.Builder
	r.header(&sb, fmt.Sprintf("Districts (%d)", len(districts)))

	for _, d := range districts {
		fmt.Fprintf(&sb, "%4d  %-24s %s\n", d.ID, d.Name, d.CityName)
	}
	return sb.String()
}

// Success formats a one-line confirmation.
func (r *Renderer) Success(msg string) string {
	if r.pretty {
		return color.GreenString("✓ ") + msg
	}
	return msg
}

// Failure formats a one-line error.
func (r *Renderer) Failure(msg string) string {
	if r.pretty {
		return color.RedString("✗ ") + msg
	}
	return "error: " + msg
}

func rating(val *float64, count int) string {
	if val == nil || count == 0 {
		return "no ratings"
	}
	return fmt.Sprintf("★ %.1f (%d)", *val, count)
}

func rate(val *float64) string {
	if val == nil {
		return "rate on request"
	}
	return fmt.Sprintf("%.0f/mo", *val)
}

func price(val *float64) string {
	if val == nil {
		return "free"
	}
	return fmt.Sprintf("%.0f/session", *val)
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// FormatDuration formats a duration in human-readable form.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
