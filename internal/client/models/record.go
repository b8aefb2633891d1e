package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/agoramujeres/agora-client/internal/common"
)

// PainIntensityNone is the sentinel that removes a date's record instead of
// storing a zero intensity.
const PainIntensityNone = 0

// CycleWindowDays is the fixed length of a monthly pain-record cycle.
const CycleWindowDays = 30

// PainRecord is one day's pain intensity within a monthly record, keyed
// uniquely by date. Intensity is on a 1-5 scale.
type PainRecord struct {
	Date      string `json:"date"`
	Intensity int    `json:"intensity"`
	Notes     string `json:"notes,omitempty"`
}

// MonthlyPainRecord aggregates at most one pain intensity per calendar date
// over a fixed 30-day cycle window.
type MonthlyPainRecord struct {
	DeviceID       string       `json:"device_id"`
	Records        []PainRecord `json:"records"`
	CycleStartDate Timestamp    `json:"cycle_start_date"`
	CreatedAt      *Timestamp   `json:"created_at,omitempty"`
}

// MonthlyPainRecordCreate is the save payload; the server upserts by device.
type MonthlyPainRecordCreate struct {
	Records        []PainRecord `json:"records"`
	CycleStartDate string       `json:"cycle_start_date"`
}

// SetIntensity returns a copy of records with the given date set to
// intensity. PainIntensityNone removes the date's record entirely. The
// result keeps at most one record per date and stays sorted by date.
func SetIntensity(records []PainRecord, date string, intensity int, notes string) ([]PainRecord, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", common.ErrValidation)
	}
	if intensity != PainIntensityNone && (intensity < 1 || intensity > 5) {
		return nil, fmt.Errorf("%w: intensity must be between 1 and 5", common.ErrValidation)
	}

	out := make([]PainRecord, 0, len(records)+1)
	for _, r := range records {
		if r.Date != date {
			out = append(out, r)
		}
	}
	if intensity != PainIntensityNone {
		out = append(out, PainRecord{Date: date, Intensity: intensity, Notes: notes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// CycleEnd returns the last day of the record's 30-day window.
func (m MonthlyPainRecord) CycleEnd() time.Time {
	return m.CycleStartDate.AddDate(0, 0, CycleWindowDays)
}
