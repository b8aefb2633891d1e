package api

import (
	"context"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

// GetMonthlyRecord fetches the device's monthly pain record. A 404 comes
// back as common.ErrNotFound; callers that treat "no record yet" as a
// normal state should match it with errors.Is.
func (c *Client) GetMonthlyRecord(ctx context.Context, deviceID string) (*models.MonthlyPainRecord, error) {
	var out models.MonthlyPainRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetResult(&out).
		Get("/monthly-record/{deviceID}")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveMonthlyRecord upserts the device's monthly pain record.
func (c *Client) SaveMonthlyRecord(ctx context.Context, deviceID string, payload models.MonthlyPainRecordCreate) (*models.MonthlyPainRecord, error) {
	var out models.MonthlyPainRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetBody(payload).
		SetResult(&out).
		Post("/monthly-record/{deviceID}")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMonthlyRecord discards the record so a fresh cycle can start.
func (c *Client) DeleteMonthlyRecord(ctx context.Context, deviceID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		Delete("/monthly-record/{deviceID}")
	return c.check(resp, err)
}
