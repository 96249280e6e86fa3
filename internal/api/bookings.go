package api

import (
	"context"
	"fmt"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// CreateBooking sends a session request to a tutor.
func (c *Client) CreateBooking(ctx context.Context, token string, req domain.CreateBookingRequest) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, request{method: "POST", path: "/api/bookings", token: token, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookingsSent lists the caller's outgoing bookings, optionally filtered by
// status.
func (c *Client) BookingsSent(ctx context.Context, token, status string) ([]domain.Booking, error) {
	qs := queryString([]pair{{"status", status}})
	var out []domain.Booking
	if err := c.do(ctx, request{path: "/api/bookings/sent" + qs, token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BookingsReceived lists the caller's incoming bookings, optionally filtered
// by status.
func (c *Client) BookingsReceived(ctx context.Context, token, status string) ([]domain.Booking, error) {
	qs := queryString([]pair{{"status", status}})
	var out []domain.Booking
	if err := c.do(ctx, request{path: "/api/bookings/received" + qs, token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AcceptBooking accepts a pending booking, with an optional response note,
// and returns the updated record.
func (c *Client) AcceptBooking(ctx context.Context, token string, id int64, response string) (*domain.Booking, error) {
	return c.respondBooking(ctx, token, id, "accept", response)
}

// DeclineBooking declines a pending booking, with an optional response note,
// and returns the updated record.
func (c *Client) DeclineBooking(ctx context.Context, token string, id int64, response string) (*domain.Booking, error) {
	return c.respondBooking(ctx, token, id, "decline", response)
}

func (c *Client) respondBooking(ctx context.Context, token string, id int64, action, response string) (*domain.Booking, error) {
	var body any
	if response != "" {
		body = map[string]string{"response": response}
	}
	var out domain.Booking
	req := request{method: "PUT", path: fmt.Sprintf("/api/bookings/%d/%s", id, action), token: token, body: body}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
