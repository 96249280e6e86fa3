package api

import (
	"context"
	"fmt"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// Cities lists supported cities. Public endpoint.
func (c *Client) Cities(ctx context.Context) ([]domain.City, error) {
	var out []domain.City
	if err := c.do(ctx, request{path: "/api/locations/cities"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Districts lists all districts. Public endpoint.
func (c *Client) Districts(ctx context.Context) ([]domain.District, error) {
	var out []domain.District
	if err := c.do(ctx, request{path: "/api/locations/districts"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DistrictsByCity lists the districts of one city. Public endpoint.
func (c *Client) DistrictsByCity(ctx context.Context, cityID int64) ([]domain.District, error) {
	var out []domain.District
	if err := c.do(ctx, request{path: fmt.Sprintf("/api/locations/cities/%d/districts", cityID)}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
