package api

import (
	"context"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// Subjects lists all teachable subjects. Public endpoint.
func (c *Client) Subjects(ctx context.Context) ([]domain.Subject, error) {
	var out []domain.Subject
	if err := c.do(ctx, request{path: "/api/subjects"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubjectsByCategory lists subjects grouped by category. Public endpoint.
func (c *Client) SubjectsByCategory(ctx context.Context) (map[string][]domain.Subject, error) {
	var out map[string][]domain.Subject
	if err := c.do(ctx, request{path: "/api/subjects/categories"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
