package models

import (
	"fmt"

	"github.com/agoramujeres/agora-client/internal/common"
)

// CycleEntry records one menstrual cycle: its start date, an optional end
// date and free-text notes.
type CycleEntry struct {
	ID        string     `json:"id"`
	DeviceID  string     `json:"device_id"`
	StartDate Timestamp  `json:"start_date"`
	EndDate   *Timestamp `json:"end_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt Timestamp  `json:"created_at"`
}

// CycleEntryCreate is the creation payload for a cycle entry.
type CycleEntryCreate struct {
	DeviceID  string     `json:"device_id"`
	StartDate Timestamp  `json:"start_date"`
	EndDate   *Timestamp `json:"end_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// Validate checks the date ordering before the entry is sent.
func (c CycleEntryCreate) Validate() error {
	if c.DeviceID == "" {
		return fmt.Errorf("%w: device id is required", common.ErrValidation)
	}
	if c.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", common.ErrValidation)
	}
	if c.EndDate != nil && c.EndDate.Before(c.StartDate.Time) {
		return fmt.Errorf("%w: end date precedes start date", common.ErrValidation)
	}
	return nil
}
