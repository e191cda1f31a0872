package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAntiSpam_CheckGate(t *testing.T) {
	t.Run("first attempt passes, immediate retry denied", func(t *testing.T) {
		a, _ := newTestAntiSpam(5*time.Second, time.Minute)

		assert.True(t, a.CheckGate("guild-1", "user-1"))
		assert.False(t, a.CheckGate("guild-1", "user-1"))
	})

	t.Run("gate expires after the window", func(t *testing.T) {
		a, clock := newTestAntiSpam(5*time.Second, time.Minute)

		assert.True(t, a.CheckGate("guild-1", "user-1"))
		clock.advance(6 * time.Second)
		assert.True(t, a.CheckGate("guild-1", "user-1"))
	})

	t.Run("denied attempt does not re-arm the gate", func(t *testing.T) {
		a, clock := newTestAntiSpam(5*time.Second, time.Minute)

		assert.True(t, a.CheckGate("guild-1", "user-1"))
		clock.advance(4 * time.Second)
		assert.False(t, a.CheckGate("guild-1", "user-1"))
		clock.advance(2 * time.Second)
		assert.True(t, a.CheckGate("guild-1", "user-1"))
	})

	t.Run("gates are per guild and user", func(t *testing.T) {
		a, _ := newTestAntiSpam(5*time.Second, time.Minute)

		assert.True(t, a.CheckGate("guild-1", "user-1"))
		assert.True(t, a.CheckGate("guild-2", "user-1"))
		assert.True(t, a.CheckGate("guild-1", "user-2"))
	})
}

func TestAntiSpam_Cooldown(t *testing.T) {
	t.Run("no cooldown before creation", func(t *testing.T) {
		a, _ := newTestAntiSpam(5*time.Second, time.Minute)

		assert.Zero(t, a.CheckCooldown("guild-1", 1, "user-1"))
	})

	t.Run("cooldown active after start", func(t *testing.T) {
		a, clock := newTestAntiSpam(5*time.Second, time.Minute)

		a.StartCooldown("guild-1", 1, "user-1")
		clock.advance(30 * time.Second)
		assert.Equal(t, 30*time.Second, a.CheckCooldown("guild-1", 1, "user-1"))
	})

	t.Run("cooldown expires", func(t *testing.T) {
		a, clock := newTestAntiSpam(5*time.Second, time.Minute)

		a.StartCooldown("guild-1", 1, "user-1")
		clock.advance(61 * time.Second)
		assert.Zero(t, a.CheckCooldown("guild-1", 1, "user-1"))
	})

	t.Run("cooldowns are per category", func(t *testing.T) {
		a, _ := newTestAntiSpam(5*time.Second, time.Minute)

		a.StartCooldown("guild-1", 1, "user-1")
		assert.Zero(t, a.CheckCooldown("guild-1", 2, "user-1"))
	})
}

func TestAntiSpam_Prune(t *testing.T) {
	a, clock := newTestAntiSpam(5*time.Second, time.Minute)

	a.CheckGate("guild-1", "user-1")
	a.StartCooldown("guild-1", 1, "user-1")
	clock.advance(2 * time.Minute)
	a.Prune()

	a.mu.Lock()
	defer a.mu.Unlock()
	assert.Empty(t, a.gates)
	assert.Empty(t, a.cooldowns)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestAntiSpam(gate, cooldown time.Duration) (*AntiSpam, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	a := NewAntiSpam(gate, cooldown)
	a.now = func() time.Time { return clock.t }
	return a, clock
}
