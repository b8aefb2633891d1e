package api

import (
	"context"
	"strconv"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

// CreateDiaryEntry validates and submits a new diary entry.
func (c *Client) CreateDiaryEntry(ctx context.Context, payload models.DiaryEntryCreate) (*models.DiaryEntry, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	var out models.DiaryEntry
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		Post("/diary")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDiaryEntries returns the device's entries, newest first.
func (c *Client) ListDiaryEntries(ctx context.Context, deviceID string, limit, offset int) ([]models.DiaryEntry, error) {
	var out []models.DiaryEntry
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetResult(&out).
		Get("/diary/{deviceID}")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPatterns fetches the aggregate the server derives over the last N days.
func (c *Client) GetPatterns(ctx context.Context, deviceID string, days int) (*models.Patterns, error) {
	var out models.Patterns
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetQueryParam("days", strconv.Itoa(days)).
		SetResult(&out).
		Get("/diary/{deviceID}/patterns")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
