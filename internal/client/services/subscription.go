package services

import (
	"context"
	"fmt"

	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/client/session"
	"github.com/agoramujeres/agora-client/internal/logging"
)

type subscriptionGateway interface {
	CreateCustomer(ctx context.Context, payload models.CustomerCreate) (string, error)
	CreatePaymentIntent(ctx context.Context, deviceID string) (*models.PaymentIntent, error)
	ActivateSubscription(ctx context.Context, deviceID, paymentIntentID string) (string, error)
}

// entitlementRefresher re-fetches the entitlement snapshot after a purchase
// so the new tier is visible immediately.
type entitlementRefresher interface {
	Refresh(ctx context.Context) error
}

// SubscriptionService drives the purchase flow: register the customer with
// the payment provider, open a payment intent, confirm it out of band, then
// activate the subscription server side.
type SubscriptionService interface {
	Start(ctx context.Context, email, name string) (*models.PaymentIntent, error)
	Activate(ctx context.Context, paymentIntentID string) (string, error)
}

type subscriptionService struct {
	gateway subscriptionGateway
	poller  entitlementRefresher
	sess    *session.Container
	log     logging.Logger
}

func NewSubscriptionService(gateway subscriptionGateway, poller entitlementRefresher, sess *session.Container, log logging.Logger) SubscriptionService {
	return &subscriptionService{
		gateway: gateway,
		poller:  poller,
		sess:    sess,
		log:     log.With("component", "subscription"),
	}
}

// Start registers the customer and opens a payment intent. The returned
// intent carries the client secret the payment sheet needs.
func (s *subscriptionService) Start(ctx context.Context, email, name string) (*models.PaymentIntent, error) {
	payload := models.CustomerCreate{
		DeviceID: s.sess.DeviceID(),
		Email:    email,
		Name:     name,
	}
	customerID, err := s.gateway.CreateCustomer(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	s.log.Debug(ctx, "customer registered", "customer_id", customerID)

	intent, err := s.gateway.CreatePaymentIntent(ctx, s.sess.DeviceID())
	if err != nil {
		return nil, fmt.Errorf("creating payment intent: %w", err)
	}
	return intent, nil
}

// Activate confirms the paid intent server side and refreshes the
// entitlement so the active tier shows without waiting for the next poll.
// A refresh failure is logged, not returned: the activation itself
// succeeded and the poller will catch up.
func (s *subscriptionService) Activate(ctx context.Context, paymentIntentID string) (string, error) {
	status, err := s.gateway.ActivateSubscription(ctx, s.sess.DeviceID(), paymentIntentID)
	if err != nil {
		return "", fmt.Errorf("activating subscription: %w", err)
	}

	if err := s.poller.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "entitlement refresh after activation failed", "error", err)
	}
	return status, nil
}
