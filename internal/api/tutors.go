package api

import (
	"context"
	"fmt"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// SearchFilters narrows a tutor search. Zero-valued fields are omitted from
// the query string.
type SearchFilters struct {
	City      string
	District  string
	Subject   string
	MinPrice  string
	MaxPrice  string
	MinRating string
	SortBy    string
}

// SearchTutors lists tutors matching the filters. Public endpoint.
func (c *Client) SearchTutors(ctx context.Context, f SearchFilters) ([]domain.TutorSummary, error) {
	qs := queryString([]pair{
		{"city", f.City},
		{"district", f.District},
		{"subject", f.Subject},
		{"minPrice", f.MinPrice},
		{"maxPrice", f.MaxPrice},
		{"minRating", f.MinRating},
		{"sortBy", f.SortBy},
	})
	var out []domain.TutorSummary
	if err := c.do(ctx, request{path: "/api/tutors" + qs}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TutorProfile fetches one tutor's full profile. Public endpoint.
func (c *Client) TutorProfile(ctx context.Context, id int64) (*domain.TutorProfile, error) {
	var out domain.TutorProfile
	if err := c.do(ctx, request{path: fmt.Sprintf("/api/tutors/%d", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TutorReviews lists the approved reviews for a tutor. Public endpoint.
func (c *Client) TutorReviews(ctx context.Context, tutorID int64) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, request{path: fmt.Sprintf("/api/tutors/%d/reviews", tutorID)}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateTutorProfile replaces the caller's editable profile fields.
func (c *Client) UpdateTutorProfile(ctx context.Context, token string, req domain.UpdateProfileRequest) (*domain.TutorProfile, error) {
	var out domain.TutorProfile
	if err := c.do(ctx, request{method: "PUT", path: "/api/tutors/profile", token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddSubject attaches a subject to the caller's tutor profile.
func (c *Client) AddSubject(ctx context.Context, token string, subjectID int64) error {
	body := map[string]int64{"subjectId": subjectID}
	return c.do(ctx, request{method: "POST", path: "/api/tutors/subjects", token: token, body: body}, nil)
}

// RemoveSubject detaches a subject from the caller's tutor profile.
func (c *Client) RemoveSubject(ctx context.Context, token string, subjectID int64) error {
	return c.do(ctx, request{method: "DELETE", path: fmt.Sprintf("/api/tutors/subjects/%d", subjectID), token: token}, nil)
}

// AddDistrict attaches a served district to the caller's tutor profile.
func (c *Client) AddDistrict(ctx context.Context, token string, districtID int64) error {
	body := map[string]int64{"districtId": districtID}
	return c.do(ctx, request{method: "POST", path: "/api/tutors/districts", token: token, body: body}, nil)
}

// RemoveDistrict detaches a served district from the caller's tutor profile.
func (c *Client) RemoveDistrict(ctx context.Context, token string, districtID int64) error {
	return c.do(ctx, request{method: "DELETE", path: fmt.Sprintf("/api/tutors/districts/%d", districtID), token: token}, nil)
}
