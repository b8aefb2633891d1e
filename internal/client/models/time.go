// Package models defines client-side data models for the Ágora backend
// resources: diary entries, chat, entitlement, cycle tracking and the
// monthly pain record.
package models

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts lists the wire formats the backend emits, most specific
// first. The server serializes naive UTC datetimes, so a zone suffix may be
// missing entirely.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a time.Time that tolerates the backend's mixed ISO-8601
// renderings (with or without fractional seconds and zone offset).
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}
