package api

import (
	"context"
	"fmt"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// FeedbackReceived lists progress notes written about the caller.
func (c *Client) FeedbackReceived(ctx context.Context, token string) ([]domain.Feedback, error) {
	var out []domain.Feedback
	if err := c.do(ctx, request{path: "/api/feedback/received", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FeedbackGiven lists progress notes the caller has written.
func (c *Client) FeedbackGiven(ctx context.Context, token string) ([]domain.Feedback, error) {
	var out []domain.Feedback
	if err := c.do(ctx, request{path: "/api/feedback/given", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FeedbackByID fetches one progress note.
func (c *Client) FeedbackByID(ctx context.Context, token string, id int64) (*domain.Feedback, error) {
	var out domain.Feedback
	if err := c.do(ctx, request{path: fmt.Sprintf("/api/feedback/%d", id), token: token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFeedback writes a progress note to a learner.
func (c *Client) CreateFeedback(ctx context.Context, token string, req domain.CreateFeedbackRequest) (*domain.Feedback, error) {
	var out domain.Feedback
	if err := c.do(ctx, request{method: "POST", path: "/api/feedback", token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
