package tui

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Player is one connected SSH session.
type Player struct {
	ID        uuid.UUID
	User      string
	Remote    string
	Connected time.Time

	seq uint64
}

// PlayerRegistry tracks connected players.
// Thread-safe for concurrent access.
type PlayerRegistry struct {
	mu      sync.RWMutex
	players map[uuid.UUID]Player
	seq     uint64
}

// NewPlayerRegistry creates an empty registry.
func NewPlayerRegistry() *PlayerRegistry {
	return &PlayerRegistry{
		players: make(map[uuid.UUID]Player),
	}
}

// Register adds a player and returns its id.
func (r *PlayerRegistry) Register(user, remote string) uuid.UUID {
	p := Player{
		ID:        uuid.New(),
		User:      user,
		Remote:    remote,
		Connected: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.seq = r.seq
	r.players[p.ID] = p
	return p.ID
}

// Unregister removes a player. Unknown ids are ignored.
func (r *PlayerRegistry) Unregister(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, id)
}

// Count returns the number of connected players.
func (r *PlayerRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// List returns the connected players, longest connected first.
func (r *PlayerRegistry) List() []Player {
	r.mu.RLock()
	out := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].seq < out[j].seq
	})
	return out
}
