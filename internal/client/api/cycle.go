package api

import (
	"context"
	"strconv"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

// CreateCycleEntry validates and records a new cycle entry.
func (c *Client) CreateCycleEntry(ctx context.Context, payload models.CycleEntryCreate) (*models.CycleEntry, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	var out models.CycleEntry
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		Post("/cycle")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCycleEntries returns the device's recent cycle entries.
func (c *Client) ListCycleEntries(ctx context.Context, deviceID string, limit int) ([]models.CycleEntry, error) {
	var out []models.CycleEntry
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/cycle/{deviceID}")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWeather fetches current conditions for the given coordinates.
func (c *Client) GetWeather(ctx context.Context, lat, lon float64) (*models.Weather, error) {
	var out models.Weather
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("lat", strconv.FormatFloat(lat, 'f', -1, 64)).
		SetQueryParam("lon", strconv.FormatFloat(lon, 'f', -1, 64)).
		SetResult(&out).
		Get("/weather")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
