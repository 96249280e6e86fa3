package api

import (
	"context"
	"fmt"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// MyAvailability lists the caller's recurring weekly slots.
func (c *Client) MyAvailability(ctx context.Context, token string) ([]domain.AvailabilitySlot, error) {
	var out []domain.AvailabilitySlot
	if err := c.do(ctx, request{path: "/api/tutors/availability", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddAvailability creates a new weekly slot for the caller.
func (c *Client) AddAvailability(ctx context.Context, token string, req domain.AddAvailabilityRequest) (*domain.AvailabilitySlot, error) {
	var out domain.AvailabilitySlot
	if err := c.do(ctx, request{method: "POST", path: "/api/tutors/availability", token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveAvailability deletes one of the caller's slots.
func (c *Client) RemoveAvailability(ctx context.Context, token string, slotID int64) error {
	return c.do(ctx, request{method: "DELETE", path: fmt.Sprintf("/api/tutors/availability/%d", slotID), token: token}, nil)
}
