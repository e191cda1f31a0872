package throttle

import (
	"fmt"
	"sync"
	"time"
)

// AntiSpam tracks the creation gate and per-category cooldowns in process
// memory. The state is a UX throttle, not a security boundary, so losing it
// on restart is acceptable.
type AntiSpam struct {
	mu         sync.Mutex
	gateWindow time.Duration
	cooldown   time.Duration
	gates      map[string]time.Time
	cooldowns  map[string]time.Time
	now        func() time.Time
}

func NewAntiSpam(gateWindow, cooldown time.Duration) *AntiSpam {
	return &AntiSpam{
		gateWindow: gateWindow,
		cooldown:   cooldown,
		gates:      make(map[string]time.Time),
		cooldowns:  make(map[string]time.Time),
		now:        time.Now,
	}
}

// CheckGate reports whether a creation attempt by (guildID, userID) is
// allowed right now. An allowed attempt immediately re-arms the gate, so two
// calls inside the window always deny the second.
func (a *AntiSpam) CheckGate(guildID, userID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := gateKey(guildID, userID)
	now := a.now()
	if expiry, ok := a.gates[key]; ok && now.Before(expiry) {
		return false
	}
	a.gates[key] = now.Add(a.gateWindow)
	return true
}

// CheckCooldown returns the remaining cooldown for (guildID, categoryID,
// userID), or zero when no cooldown is active.
func (a *AntiSpam) CheckCooldown(guildID string, categoryID uint, userID string) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := cooldownKey(guildID, categoryID, userID)
	expiry, ok := a.cooldowns[key]
	if !ok {
		return 0
	}
	remaining := expiry.Sub(a.now())
	if remaining <= 0 {
		delete(a.cooldowns, key)
		return 0
	}
	return remaining
}

// StartCooldown arms the per-category cooldown. Called only after a ticket
// was actually created.
func (a *AntiSpam) StartCooldown(guildID string, categoryID uint, userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := cooldownKey(guildID, categoryID, userID)
	a.cooldowns[key] = a.now().Add(a.cooldown)
}

// Prune drops expired entries. Called periodically so long-lived processes do
// not accumulate one entry per user forever.
func (a *AntiSpam) Prune() {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	for k, expiry := range a.gates {
		if !now.Before(expiry) {
			delete(a.gates, k)
		}
	}
	for k, expiry := range a.cooldowns {
		if !now.Before(expiry) {
			delete(a.cooldowns, k)
		}
	}
}

func gateKey(guildID, userID string) string {
	return guildID + ":" + userID
}

func cooldownKey(guildID string, categoryID uint, userID string) string {
	return fmt.Sprintf("%s:%d:%s", guildID, categoryID, userID)
}
