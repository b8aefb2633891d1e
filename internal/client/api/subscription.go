package api

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/common"
)

// GetSubscriptionStatus fetches the device's entitlement snapshot. A device
// the server has never seen gets a fresh trial record, so this never 404s
// in practice.
func (c *Client) GetSubscriptionStatus(ctx context.Context, deviceID string) (*models.EntitlementSnapshot, error) {
	var out models.EntitlementSnapshot
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetResult(&out).
		Get("/subscription/{deviceID}")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

type createCustomerResponse struct {
	CustomerID string `json:"customer_id"`
}

// CreateCustomer registers a payment customer for the device. The email is
// validated client-side before any request is sent.
func (c *Client) CreateCustomer(ctx context.Context, payload models.CustomerCreate) (string, error) {
	if _, err := mail.ParseAddress(payload.Email); err != nil {
		return "", fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}

	var out createCustomerResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		Post("/subscription/create-customer")
	if err := c.check(resp, err); err != nil {
		return "", err
	}
	return out.CustomerID, nil
}

// CreatePaymentIntent opens a payment for the device's subscription.
func (c *Client) CreatePaymentIntent(ctx context.Context, deviceID string) (*models.PaymentIntent, error) {
	var out models.PaymentIntent
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("device_id", deviceID).
		SetResult(&out).
		Post("/subscription/create-payment-intent")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

type activateResponse struct {
	Status string `json:"status"`
}

// ActivateSubscription confirms a completed payment and flips the device's
// entitlement to active. Callers should refresh the entitlement snapshot
// afterwards.
func (c *Client) ActivateSubscription(ctx context.Context, deviceID, paymentIntentID string) (string, error) {
	var out activateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("device_id", deviceID).
		SetQueryParam("payment_intent_id", paymentIntentID).
		SetResult(&out).
		Post("/subscription/activate")
	if err := c.check(resp, err); err != nil {
		return "", err
	}
	return out.Status, nil
}
