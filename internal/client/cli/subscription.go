package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

// Status refreshes and shows the subscription status.
func (a *App) Status(ctx context.Context) error {
	if err := a.poller.Refresh(ctx); err != nil {
		fmt.Println("Could not refresh the status, showing the last known one")
	}

	snap, ok := a.sess.Entitlement()
	if !ok {
		fmt.Println("Subscription status unknown")
		return nil
	}

	switch snap.State {
	case models.EntitlementTrial:
		fmt.Printf("Trial, %s remaining\n", a.poller.Badge())
	case models.EntitlementActive:
		fmt.Println("Subscription active")
	case models.EntitlementExpired:
		fmt.Println("Trial expired. Use 'subscribe' to keep full access.")
	default:
		fmt.Printf("Status: %s\n", snap.State)
	}
	return nil
}

// Subscribe drives the purchase flow: customer registration, payment
// intent, out-of-band confirmation, then server-side activation.
func (a *App) Subscribe(ctx context.Context) error {
	w := os.Stdout

	email, err := GetSimpleText(a.reader, "Email", w)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Name (optional)", w)
	if err != nil {
		return err
	}

	intent, err := a.subscription.Start(ctx, email, name)
	if err != nil {
		fmt.Println("Error starting the subscription:", err)
		return err
	}

	fmt.Printf("Payment intent %s opened.\n", intent.PaymentIntentID)
	fmt.Println("Complete the payment with your provider, then press Enter to activate.")
	if _, err := GetSimpleText(a.reader, "", w); err != nil {
		return err
	}

	status, err := a.subscription.Activate(ctx, intent.PaymentIntentID)
	if err != nil {
		fmt.Println("Error activating the subscription:", err)
		return err
	}
	fmt.Printf("Subscription %s\n", status)
	return nil
}

// Language changes the display language.
func (a *App) Language(ctx context.Context, code string) error {
	if err := a.prefs.SetLanguage(ctx, code); err != nil {
		fmt.Println("Unsupported language:", code)
		return err
	}
	fmt.Println("Language set to", a.sess.Language())
	return nil
}
