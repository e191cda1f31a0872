package platform

import "sync"

// guildLocks hands out one mutex per guild, created lazily on first use.
// Serializing channel creation per guild keeps a burst of opens in one guild
// from hammering the same platform rate-limit bucket, while leaving other
// guilds untouched.
type guildLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newGuildLocks() *guildLocks {
	return &guildLocks{locks: make(map[string]*sync.Mutex)}
}

func (g *guildLocks) get(guildID string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	l, ok := g.locks[guildID]
	if !ok {
		l = &sync.Mutex{}
		g.locks[guildID] = l
	}
	return l
}
