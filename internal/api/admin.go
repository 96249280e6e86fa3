package api

import (
	"context"
	"fmt"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// AdminStats fetches the console's aggregate counters.
func (c *Client) AdminStats(ctx context.Context, token string) (*domain.AdminStats, error) {
	var out domain.AdminStats
	if err := c.do(ctx, request{path: "/api/admin/stats", token: token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUsers lists every account.
func (c *Client) AdminUsers(ctx context.Context, token string) ([]domain.AdminUser, error) {
	var out []domain.AdminUser
	if err := c.do(ctx, request{path: "/api/admin/users", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminUnverifiedTutors lists the tutor verification queue.
func (c *Client) AdminUnverifiedTutors(ctx context.Context, token string) ([]domain.UnverifiedTutor, error) {
	var out []domain.UnverifiedTutor
	if err := c.do(ctx, request{path: "/api/admin/tutors/unverified", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminVerifyTutor marks a tutor profile verified.
func (c *Client) AdminVerifyTutor(ctx context.Context, token string, tutorID int64) error {
	return c.do(ctx, request{method: "PUT", path: fmt.Sprintf("/api/admin/tutors/%d/verify", tutorID), token: token}, nil)
}

// AdminUnverifyTutor revokes a tutor profile's verification.
func (c *Client) AdminUnverifyTutor(ctx context.Context, token string, tutorID int64) error {
	return c.do(ctx, request{method: "PUT", path: fmt.Sprintf("/api/admin/tutors/%d/unverify", tutorID), token: token}, nil)
}

// AdminPendingReviews lists reviews awaiting moderation.
func (c *Client) AdminPendingReviews(ctx context.Context, token string) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, request{path: "/api/admin/reviews/pending", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminApproveReview publishes a pending review.
func (c *Client) AdminApproveReview(ctx context.Context, token string, reviewID int64) error {
	return c.do(ctx, request{method: "PUT", path: fmt.Sprintf("/api/admin/reviews/%d/approve", reviewID), token: token}, nil)
}

// AdminRejectReview rejects a pending review, with an optional reason.
func (c *Client) AdminRejectReview(ctx context.Context, token string, reviewID int64, reason string) error {
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	return c.do(ctx, request{method: "PUT", path: fmt.Sprintf("/api/admin/reviews/%d/reject", reviewID), token: token, body: body}, nil)
}

// AdminActivateUser re-enables a deactivated account.
func (c *Client) AdminActivateUser(ctx context.Context, token string, userID int64) error {
	return c.do(ctx, request{method: "PUT", path: fmt.Sprintf("/api/admin/users/%d/activate", userID), token: token}, nil)
}

// AdminDeactivateUser disables an account.
func (c *Client) AdminDeactivateUser(ctx context.Context, token string, userID int64) error {
	return c.do(ctx, request{method: "PUT", path: fmt.Sprintf("/api/admin/users/%d/deactivate", userID), token: token}, nil)
}
