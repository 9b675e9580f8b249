// Package confirm implements the double-confirmation gate for
// destructive bulk actions: the first invocation arms a pending entry
// scoped to (guild, actor), the second within the TTL confirms it.
package confirm

import (
	"sync"
	"time"
)

// DefaultTTL is the window within which the confirming action must
// arrive.
const DefaultTTL = 15 * time.Second

// Table is an expiring set of pending confirmations. Expiry is
// cooperative: each entry carries a timer that removes it, and a
// confirmation arriving first cancels the timer.
type Table struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[string]*time.Timer
}

func New(ttl time.Duration) *Table {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Table{
		ttl:     ttl,
		pending: make(map[string]*time.Timer),
	}
}

func key(guildID, actorID string) string {
	return guildID + "_" + actorID
}

// Confirm reports whether a pending entry for (guild, actor) existed.
// If one did, it is consumed and its expiry cancelled; if not, a new
// entry is armed and false is returned, meaning the caller should ask
// the actor to repeat the action.
func (t *Table) Confirm(guildID, actorID string) bool {
	k := key(guildID, actorID)

	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.pending[k]; ok {
		timer.Stop()
		delete(t.pending, k)
		return true
	}

	t.pending[k] = time.AfterFunc(t.ttl, func() {
		t.mu.Lock()
		delete(t.pending, k)
		t.mu.Unlock()
	})
	return false
}

// Pending reports whether (guild, actor) currently has an armed entry.
func (t *Table) Pending(guildID, actorID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.pending[key(guildID, actorID)]
	return ok
}
