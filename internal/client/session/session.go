// Package session holds the process-wide in-memory client state: device
// identifier, display language and the last-known entitlement snapshot.
//
// The container is an explicit injected object, constructed once at startup
// and passed to every consumer. It performs no I/O itself; persistence of
// the language preference and refreshing of the entitlement snapshot are
// delegated to the services that own those concerns.
package session

import (
	"sync"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

// Container is safe for use from multiple goroutines. All mutations are
// last-write-wins; the entitlement snapshot is an advisory cache, not a
// source of truth, so racing refreshes simply overwrite each other.
type Container struct {
	mu          sync.RWMutex
	deviceID    string
	language    string
	entitlement *models.EntitlementSnapshot
	listeners   []func()
}

func New(deviceID, language string) *Container {
	return &Container{deviceID: deviceID, language: language}
}

func (c *Container) DeviceID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceID
}

func (c *Container) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// Entitlement returns the current best-known snapshot. ok is false until
// the first refresh of this process completes.
func (c *Container) Entitlement() (models.EntitlementSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entitlement == nil {
		return models.EntitlementSnapshot{}, false
	}
	return *c.entitlement, true
}

func (c *Container) SetLanguage(code string) {
	c.mu.Lock()
	c.language = code
	c.mu.Unlock()
	c.notify()
}

// SetEntitlement installs a snapshot wholesale, replacing whatever was
// there before.
func (c *Container) SetEntitlement(s models.EntitlementSnapshot) {
	c.mu.Lock()
	c.entitlement = &s
	c.mu.Unlock()
	c.notify()
}

// Subscribe registers fn to run after every mutation. Listeners must not
// block; they are invoked synchronously on the mutating goroutine.
func (c *Container) Subscribe(fn func()) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

func (c *Container) notify() {
	c.mu.RLock()
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
