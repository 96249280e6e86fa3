package domain

// UserSummary is the identity slice returned at login and held in the session.
type UserSummary struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// FullName joins first and last name, tolerating either being empty.
func (u UserSummary) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LoginResponse is the /login payload.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// RegisterRequest is the /register payload.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Age         *int   `json:"age"`
	PhoneNumber string `json:"phoneNumber"`
}

// TutorSummary is one row of a tutor search result.
type TutorSummary struct {
	ID              int64    `json:"id"`
	UserID          int64    `json:"userId"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Headline        string   `json:"headline"`
	Bio             string   `json:"bio"`
	City            string   `json:"city"`
	MonthlyRate     *float64 `json:"monthlyRate"`
	Rating          *float64 `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	ExperienceYears int      `json:"experienceYears"`
	IsVerified      bool     `json:"isVerified"`
}

// SubjectInfo is a subject as embedded in a tutor profile.
type SubjectInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AvailabilitySlot is a tutor-owned recurring weekly window. The profile
// endpoint labels the weekday "day" while the availability endpoints use
// "dayOfWeek"; both are mapped so either response shape fills the slot.
type AvailabilitySlot struct {
	ID        int64  `json:"id"`
	SlotID    int64  `json:"slotId,omitempty"`
	Day       string `json:"day,omitempty"`
	DayOfWeek string `json:"dayOfWeek,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Weekday returns whichever weekday field the server populated.
func (s AvailabilitySlot) Weekday() string {
	if s.DayOfWeek != "" {
		return s.DayOfWeek
	}
	return s.Day
}

// Ref returns the slot's identifier, tolerating the two id field names the
// backend uses across endpoints.
func (s AvailabilitySlot) Ref() int64 {
	if s.ID != 0 {
		return s.ID
	}
	return s.SlotID
}

// TutorProfile is the full tutor profile page payload.
type TutorProfile struct {
	ID              int64              `json:"id"`
	UserID          int64              `json:"userId"`
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	Email           string             `json:"email"`
	PhoneNumber     string             `json:"phoneNumber"`
	Headline        string             `json:"headline"`
	Bio             string             `json:"bio"`
	Qualifications  string             `json:"qualifications"`
	ExperienceYears int                `json:"experienceYears"`
	City            string             `json:"city"`
	Districts       []string           `json:"districts"`
	Subjects        []SubjectInfo      `json:"subjects"`
	MonthlyRate     *float64           `json:"monthlyRate"`
	Rating          *float64           `json:"rating"`
	ReviewCount     int                `json:"reviewCount"`
	IsVerified      bool               `json:"isVerified"`
	IsActive        bool               `json:"isActive"`
	Availability    []AvailabilitySlot `json:"availability"`
}

// FullName joins the tutor's first and last name.
func (p TutorProfile) FullName() string {
	return UserSummary{FirstName: p.FirstName, LastName: p.LastName}.FullName()
}

// UpdateProfileRequest carries the editable tutor profile fields. Nil means
// "clear the field" on the backend, so pointers are deliberate.
type UpdateProfileRequest struct {
	Headline        *string  `json:"headline"`
	Bio             *string  `json:"bio"`
	Qualifications  *string  `json:"qualifications"`
	ExperienceYears *int     `json:"experienceYears"`
	MonthlyRate     *float64 `json:"monthlyRate"`
}

// Booking statuses.
const (
	BookingPending  = "PENDING"
	BookingAccepted = "ACCEPTED"
	BookingDeclined = "DECLINED"
)

// Booking is a learner-initiated session request.
type Booking struct {
	ID            int64    `json:"id"`
	LearnerID     int64    `json:"learnerId"`
	LearnerName   string   `json:"learnerName"`
	LearnerPhone  string   `json:"learnerPhone"`
	TutorID       int64    `json:"tutorId"`
	TutorName     string   `json:"tutorName"`
	Subject       string   `json:"subject"`
	Mode          string   `json:"mode"`
	Slot          string   `json:"slot"`
	LearnerNote   string   `json:"learnerNote"`
	TutorResponse string   `json:"tutorResponse"`
	ProposedPrice *float64 `json:"proposedPrice"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"createdAt"`
	RespondedAt   string   `json:"respondedAt"`
}

// CreateBookingRequest is the POST /api/bookings payload.
type CreateBookingRequest struct {
	TutorID       int64    `json:"tutorId"`
	SubjectID     *int64   `json:"subjectId,omitempty"`
	Subject       string   `json:"subject,omitempty"`
	Mode          string   `json:"mode"`
	Slot          string   `json:"slot"`
	Note          string   `json:"note"`
	ProposedPrice *float64 `json:"proposedPrice,omitempty"`
}

// Review is a learner's public review of a tutor.
type Review struct {
	ID          int64  `json:"id"`
	TutorID     int64  `json:"tutorId"`
	LearnerID   int64  `json:"learnerId"`
	LearnerName string `json:"learnerName"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// CreateReviewRequest is the POST /api/reviews payload.
type CreateReviewRequest struct {
	TutorID   int64  `json:"tutorId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	BookingID *int64 `json:"bookingId,omitempty"`
}

// Feedback is a tutor's private progress note to a learner.
type Feedback struct {
	ID                  int64  `json:"id"`
	TutorID             int64  `json:"tutorId"`
	TutorName           string `json:"tutorName"`
	LearnerID           int64  `json:"learnerId"`
	LearnerName         string `json:"learnerName"`
	BookingID           *int64 `json:"bookingId"`
	SubjectID           *int64 `json:"subjectId"`
	SubjectName         string `json:"subjectName"`
	SessionDate         string `json:"sessionDate"`
	FeedbackText        string `json:"feedbackText"`
	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areasForImprovement"`
	CreatedAt           string `json:"createdAt"`
}

// CreateFeedbackRequest is the POST /api/feedback payload.
type CreateFeedbackRequest struct {
	LearnerID           int64  `json:"learnerId"`
	BookingID           *int64 `json:"bookingId,omitempty"`
	SubjectID           *int64 `json:"subjectId,omitempty"`
	SessionDate         string `json:"sessionDate,omitempty"`
	FeedbackText        string `json:"feedbackText"`
	Strengths           string `json:"strengths,omitempty"`
	AreasForImprovement string `json:"areasForImprovement,omitempty"`
}

// AddAvailabilityRequest is the POST /api/tutors/availability payload.
type AddAvailabilityRequest struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Subject is a teachable subject.
type Subject struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// City is a supported city.
type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// District is a district within a city.
type District struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CityID   int64  `json:"cityId"`
	CityName string `json:"cityName"`
}

// Class statuses.
const (
	ClassOpen       = "OPEN"
	ClassFull       = "FULL"
	ClassInProgress = "IN_PROGRESS"
	ClassCompleted  = "COMPLETED"
	ClassCancelled  = "CANCELLED"
)

// Class is a tutor-created group or individual offering with fixed seats.
type Class struct {
	ID               int64             `json:"id"`
	TutorID          int64             `json:"tutorId"`
	TutorName        string            `json:"tutorName"`
	SubjectID        int64             `json:"subjectId"`
	SubjectName      string            `json:"subjectName"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	ClassType        string            `json:"classType"`
	MaxStudents      int               `json:"maxStudents"`
	CurrentStudents  int               `json:"currentStudents"`
	AvailableSeats   *int              `json:"availableSeats"`
	PricePerSession  *float64          `json:"pricePerSession"`
	TotalSessions    int               `json:"totalSessions"`
	DurationMinutes  int               `json:"durationMinutes"`
	Status           string            `json:"status"`
	StartDate        string            `json:"startDate"`
	EndDate          string            `json:"endDate"`
	CreatedAt        string            `json:"createdAt"`
	AvailabilitySlot *AvailabilitySlot `json:"availabilitySlot"`
}

// SeatsLeft returns the server-supplied available seat count, falling back to
// max-current only when the server omits the explicit field. The client never
// derives any other aggregate.
func (c Class) SeatsLeft() int {
	if c.AvailableSeats != nil {
		return *c.AvailableSeats
	}
	return c.MaxStudents - c.CurrentStudents
}

// CreateClassRequest is the POST /api/classes payload. Scheduling references
// an availability slot by id.
type CreateClassRequest struct {
	SubjectID          int64    `json:"subjectId"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	ClassType          string   `json:"classType"`
	MaxStudents        int      `json:"maxStudents"`
	PricePerSession    *float64 `json:"pricePerSession,omitempty"`
	TotalSessions      *int     `json:"totalSessions,omitempty"`
	DurationMinutes    *int     `json:"durationMinutes,omitempty"`
	AvailabilitySlotID int64    `json:"availabilitySlotId"`
	StartDate          string   `json:"startDate,omitempty"`
	EndDate            string   `json:"endDate,omitempty"`
}

// UpdateClassRequest carries a partial class update; only set fields are sent.
type UpdateClassRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	MaxStudents     *int     `json:"maxStudents,omitempty"`
	PricePerSession *float64 `json:"pricePerSession,omitempty"`
	Status          *string  `json:"status,omitempty"`
}

// Enrollment statuses.
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentDropped   = "DROPPED"
)

// Enrollment is a learner's membership in a class.
type Enrollment struct {
	ID               int64             `json:"id"`
	ClassID          int64             `json:"classId"`
	ClassName        string            `json:"className"`
	LearnerID        int64             `json:"learnerId"`
	LearnerName      string            `json:"learnerName"`
	EnrollmentDate   string            `json:"enrollmentDate"`
	Status           string            `json:"status"`
	SessionsAttended int               `json:"sessionsAttended"`
	PaymentStatus    string            `json:"paymentStatus"`
	AmountPaid       *float64          `json:"amountPaid"`
	TutorID          int64             `json:"tutorId"`
	TutorName        string            `json:"tutorName"`
	SubjectName      string            `json:"subjectName"`
	AvailabilitySlot *AvailabilitySlot `json:"availabilitySlot"`
}

// AdminStats is the aggregate counters block on the admin console.
type AdminStats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalTutors       int `json:"totalTutors"`
	TotalLearners     int `json:"totalLearners"`
	VerifiedTutors    int `json:"verifiedTutors"`
	UnverifiedTutors  int `json:"unverifiedTutors"`
	TotalReviews      int `json:"totalReviews"`
	PendingReviews    int `json:"pendingReviews"`
	ApprovedReviews   int `json:"approvedReviews"`
	RejectedReviews   int `json:"rejectedReviews"`
	TotalBookings     int `json:"totalBookings"`
	PendingBookings   int `json:"pendingBookings"`
	AcceptedBookings  int `json:"acceptedBookings"`
	TotalClasses      int `json:"totalClasses"`
	OpenClasses       int `json:"openClasses"`
	FullClasses       int `json:"fullClasses"`
	TotalEnrollments  int `json:"totalEnrollments"`
	ActiveEnrollments int `json:"activeEnrollments"`
}

// AdminUser is one row of the admin user list.
type AdminUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  *bool  `json:"isActive"`
}

// Active treats a missing isActive field as active, matching the backend.
func (u AdminUser) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// UnverifiedTutor is one row of the admin verification queue.
type UnverifiedTutor struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	Headline        string `json:"headline"`
	ExperienceYears int    `json:"experienceYears"`
	CreatedAt       string `json:"createdAt"`
}

// RosterEntry is one enrolled learner on a class roster.
type RosterEntry struct {
	ID               int64  `json:"id"`
	LearnerName      string `json:"learnerName"`
	Status           string `json:"status"`
	EnrollmentDate   string `json:"enrollmentDate"`
	SessionsAttended int    `json:"sessionsAttended"`
	PaymentStatus    string `json:"paymentStatus"`
}
