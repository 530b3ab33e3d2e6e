package app

import (
	"sync"

	"github.com/dkeye/Duet/internal/core"
	"github.com/dkeye/Duet/internal/domain"
)

// History stores the per-pair chat log for the process lifetime.
// Append-only, keyed by the direction-independent PairKey; no eviction.
type History struct {
	mu     sync.RWMutex
	byPair map[domain.PairKey][]domain.Message
}

func NewHistory() *History {
	return &History{byPair: make(map[domain.PairKey][]domain.Message)}
}

func (h *History) Append(from, to core.SessionID, msg domain.Message) {
	key := domain.NewPairKey(domain.UserID(from), domain.UserID(to))
	h.mu.Lock()
	defer h.mu.Unlock()
	h.byPair[key] = append(h.byPair[key], msg)
}

// Get returns the stored sequence for the pair in send order, or an
// empty sequence if the pair never exchanged messages. The returned
// slice is a copy.
func (h *History) Get(a, b core.SessionID) []domain.Message {
	key := domain.NewPairKey(domain.UserID(a), domain.UserID(b))
	h.mu.RLock()
	defer h.mu.RUnlock()
	msgs := h.byPair[key]
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out
}
