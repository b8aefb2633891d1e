package models

import "fmt"

// EntitlementState is the user's current access tier.
type EntitlementState string

const (
	EntitlementTrial   EntitlementState = "trial"
	EntitlementActive  EntitlementState = "active"
	EntitlementExpired EntitlementState = "expired"
)

// EntitlementSnapshot is the server's answer to a subscription-status
// lookup. The client treats the latest snapshot as ground truth and never
// derives state transitions locally.
type EntitlementSnapshot struct {
	State                 EntitlementState `json:"status"`
	TrialRemainingSeconds *int64           `json:"trial_remaining_seconds,omitempty"`
	UsageSeconds          *int64           `json:"usage_seconds,omitempty"`
}

// Remaining returns the trial seconds left. A missing field while in trial
// is reported as zero; the snapshot still labels the user "in trial" (the
// server response is the source of truth either way).
func (s EntitlementSnapshot) Remaining() int64 {
	if s.TrialRemainingSeconds == nil || *s.TrialRemainingSeconds < 0 {
		return 0
	}
	return *s.TrialRemainingSeconds
}

// ShowPaywall reports whether the UI should route to the subscription flow.
// Derived from the snapshot state only, never from the local countdown.
func (s EntitlementSnapshot) ShowPaywall() bool {
	return s.State == EntitlementExpired
}

// FormatRemaining renders seconds as a trial badge, e.g. 7200 → "2h 0m".
func FormatRemaining(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

// CustomerCreate is the payload for registering a payment customer.
type CustomerCreate struct {
	DeviceID string `json:"device_id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
}

// PaymentIntent is the server's handle for a pending payment.
type PaymentIntent struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}
