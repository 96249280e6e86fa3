package api

import (
	"context"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// CreateReview submits a review of a tutor. It enters the moderation queue
// as PENDING.
func (c *Client) CreateReview(ctx context.Context, token string, req domain.CreateReviewRequest) (*domain.Review, error) {
	var out domain.Review
	if err := c.do(ctx, request{method: "POST", path: "/api/reviews", token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyReviews lists the caller's submitted reviews, all statuses.
func (c *Client) MyReviews(ctx context.Context, token string) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, request{path: "/api/reviews/my-reviews", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
