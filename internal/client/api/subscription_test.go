package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/common"
)

func TestGetSubscriptionStatus(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantState     models.EntitlementState
		wantRemaining int64
	}{
		{name: "trial with remaining time",
			body:          `{"status":"trial","trial_remaining_seconds":7200}`,
			wantState:     models.EntitlementTrial,
			wantRemaining: 7200},
		{name: "trial without remaining time means zero",
			body:          `{"status":"trial"}`,
			wantState:     models.EntitlementTrial,
			wantRemaining: 0},
		{name: "active subscription",
			body:      `{"status":"active","usage_seconds":120}`,
			wantState: models.EntitlementActive},
		{name: "expired",
			body:      `{"status":"expired"}`,
			wantState: models.EntitlementExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})

			snap, err := c.GetSubscriptionStatus(context.Background(), "d1")
			require.NoError(t, err)
			assert.Equal(t, "/api/subscription/d1", gotPath)
			assert.Equal(t, tt.wantState, snap.State)
			assert.Equal(t, tt.wantRemaining, snap.Remaining())
		})
	}
}

func TestCreateCustomer(t *testing.T) {
	t.Run("valid email", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"customer_id":"cus_123"}`))
		})

		id, err := c.CreateCustomer(context.Background(), models.CustomerCreate{
			DeviceID: "d1", Email: "maria@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "cus_123", id)
	})

	t.Run("invalid email never reaches the server", func(t *testing.T) {
		called := false
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

		_, err := c.CreateCustomer(context.Background(), models.CustomerCreate{
			DeviceID: "d1", Email: "not-an-email",
		})
		assert.True(t, errors.Is(err, common.ErrValidation))
		assert.False(t, called)
	})
}

func TestCreatePaymentIntent(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"client_secret":"pi_secret","payment_intent_id":"pi_1"}`))
	})

	intent, err := c.CreatePaymentIntent(context.Background(), "d1")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "device_id=d1")
	assert.Equal(t, "pi_1", intent.PaymentIntentID)
	assert.Equal(t, "pi_secret", intent.ClientSecret)
}

func TestActivateSubscription(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"active"}`))
	})

	status, err := c.ActivateSubscription(context.Background(), "d1", "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "active", status)
	assert.Contains(t, gotQuery, "device_id=d1")
	assert.Contains(t, gotQuery, "payment_intent_id=pi_1")
}
