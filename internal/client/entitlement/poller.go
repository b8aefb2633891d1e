// Package entitlement keeps the session's entitlement snapshot in sync with
// the server and maintains a purely advisory local trial countdown between
// refreshes.
package entitlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/client/session"
	"github.com/agoramujeres/agora-client/internal/logging"
)

// CountdownTick is how often the advisory trial countdown advances.
const CountdownTick = time.Minute

// statusFetcher is the slice of the gateway this package needs.
type statusFetcher interface {
	GetSubscriptionStatus(ctx context.Context, deviceID string) (*models.EntitlementSnapshot, error)
}

type Poller struct {
	gateway statusFetcher
	sess    *session.Container
	log     logging.Logger

	mu        sync.Mutex
	remaining int64
}

func NewPoller(gateway statusFetcher, sess *session.Container, log logging.Logger) *Poller {
	return &Poller{gateway: gateway, sess: sess, log: log.With("component", "entitlement")}
}

// Refresh fetches the server snapshot and installs it wholesale, resetting
// the local countdown to the server's value. On failure the last-known
// snapshot is retained: a transient error never downgrades the UI state.
func (p *Poller) Refresh(ctx context.Context) error {
	snap, err := p.gateway.GetSubscriptionStatus(ctx, p.sess.DeviceID())
	if err != nil {
		return fmt.Errorf("entitlement refresh: %w", err)
	}

	p.sess.SetEntitlement(*snap)

	p.mu.Lock()
	p.remaining = snap.Remaining()
	p.mu.Unlock()

	return nil
}

// Remaining returns the advisory trial seconds left: the last server value
// minus local countdown ticks, floored at zero.
func (p *Poller) Remaining() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remaining
}

// Badge renders the advisory remaining time for display, e.g. "2h 0m".
func (p *Poller) Badge() string {
	return models.FormatRemaining(p.Remaining())
}

// ShowPaywall is re-derived from the current snapshot on every call, never
// cached independently and never inferred from the local countdown.
func (p *Poller) ShowPaywall() bool {
	snap, ok := p.sess.Entitlement()
	return ok && snap.ShowPaywall()
}

// tick advances the countdown by elapsed wall-clock time while the current
// snapshot says trial. A countdown that reaches zero means "likely expired"
// only; the next refresh is authoritative and may restore time.
func (p *Poller) tick(elapsed time.Duration) {
	snap, ok := p.sess.Entitlement()
	if !ok || snap.State != models.EntitlementTrial {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.remaining -= int64(elapsed.Seconds())
	if p.remaining < 0 {
		p.remaining = 0
	}
}

// Watch refreshes the snapshot on a fixed interval until ctx is done.
// Refresh failures are logged and swallowed.
func (p *Poller) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			refreshCtx, cancel := context.WithTimeout(ctx, interval)
			if err := p.Refresh(refreshCtx); err != nil {
				p.log.Warn(ctx, "entitlement refresh failed, keeping last snapshot", "error", err)
			}
			cancel()
		case <-ctx.Done():
			return
		}
	}
}

// StartCountdown advances the advisory countdown once per CountdownTick
// until ctx is done.
func (p *Poller) StartCountdown(ctx context.Context) {
	ticker := time.NewTicker(CountdownTick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.tick(CountdownTick)
		case <-ctx.Done():
			return
		}
	}
}
