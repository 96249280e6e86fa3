package api

import (
	"context"
	"fmt"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// ListClasses lists classes, optionally filtered by status. Public endpoint.
func (c *Client) ListClasses(ctx context.Context, status string) ([]domain.Class, error) {
	qs := queryString([]pair{{"status", status}})
	var out []domain.Class
	if err := c.do(ctx, request{path: "/api/classes" + qs}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClassByID fetches one class. Public endpoint.
func (c *Client) ClassByID(ctx context.Context, id int64) (*domain.Class, error) {
	var out domain.Class
	if err := c.do(ctx, request{path: fmt.Sprintf("/api/classes/%d", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClass creates a class scheduled against one of the caller's
// availability slots.
func (c *Client) CreateClass(ctx context.Context, token string, req domain.CreateClassRequest) (*domain.Class, error) {
	var out domain.Class
	if err := c.do(ctx, request{method: "POST", path: "/api/classes", token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClass applies a partial update to one of the caller's classes.
func (c *Client) UpdateClass(ctx context.Context, token string, id int64, req domain.UpdateClassRequest) (*domain.Class, error) {
	var out domain.Class
	if err := c.do(ctx, request{method: "PUT", path: fmt.Sprintf("/api/classes/%d", id), token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClass removes one of the caller's classes.
func (c *Client) DeleteClass(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: "DELETE", path: fmt.Sprintf("/api/classes/%d", id), token: token}, nil)
}

// MyClasses lists the caller's classes.
func (c *Client) MyClasses(ctx context.Context, token string) ([]domain.Class, error) {
	var out []domain.Class
	if err := c.do(ctx, request{path: "/api/classes/my-classes", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClassRoster lists the enrolled learners of one of the caller's classes.
func (c *Client) ClassRoster(ctx context.Context, token string, id int64) ([]domain.RosterEntry, error) {
	var out []domain.RosterEntry
	if err := c.do(ctx, request{path: fmt.Sprintf("/api/classes/%d/roster", id), token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnrollInClass enrolls the caller in a class.
func (c *Client) EnrollInClass(ctx context.Context, token string, id int64) (*domain.Enrollment, error) {
	var out domain.Enrollment
	if err := c.do(ctx, request{method: "POST", path: fmt.Sprintf("/api/classes/%d/enroll", id), token: token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyEnrollments lists the caller's enrollments, optionally filtered by status.
func (c *Client) MyEnrollments(ctx context.Context, token, status string) ([]domain.Enrollment, error) {
	qs := queryString([]pair{{"status", status}})
	var out []domain.Enrollment
	if err := c.do(ctx, request{path: "/api/classes/enrollments/my" + qs, token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DropEnrollment withdraws the caller from a class.
func (c *Client) DropEnrollment(ctx context.Context, token string, enrollmentID int64) error {
	return c.do(ctx, request{method: "DELETE", path: fmt.Sprintf("/api/classes/enrollments/%d", enrollmentID), token: token}, nil)
}
