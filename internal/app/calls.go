package app

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duet/internal/core"
)

var (
	ErrCalleeBusy = errors.New("callee already in a call")
	ErrCallerBusy = errors.New("caller already in a call")
)

// CallManager holds the pairwise call relation. Invariant: the peer map
// is symmetric — peer[a] == b implies peer[b] == a — and every session
// appears at most once, so a session is in at most one call.
type CallManager struct {
	mu   sync.RWMutex
	peer map[core.SessionID]core.SessionID
}

func NewCallManager() *CallManager {
	return &CallManager{peer: make(map[core.SessionID]core.SessionID)}
}

// Begin admits a call between caller and callee, pairing both sides
// atomically. Admission fails without any state change when either side
// is already paired; checking the caller too keeps the symmetry
// invariant safe.
func (m *CallManager) Begin(caller, callee core.SessionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, busy := m.peer[callee]; busy {
		return ErrCalleeBusy
	}
	if _, busy := m.peer[caller]; busy {
		return ErrCallerBusy
	}
	m.peer[caller] = callee
	m.peer[callee] = caller
	log.Info().Str("module", "app.calls").Str("caller", string(caller)).Str("callee", string(callee)).Msg("call admitted")
	return nil
}

// End removes both directions of the pairing between a and b, tolerant
// of entries that are already absent.
func (m *CallManager) End(a, b core.SessionID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.peer, a)
	delete(m.peer, b)
	log.Info().Str("module", "app.calls").Str("a", string(a)).Str("b", string(b)).Msg("call torn down")
}

// Drop removes sid's pairing, if any, and reports the peer that was on
// the other side. Used on disconnect, where only one side is known.
func (m *CallManager) Drop(sid core.SessionID) (core.SessionID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.peer[sid]
	if !ok {
		return "", false
	}
	delete(m.peer, sid)
	delete(m.peer, p)
	log.Info().Str("module", "app.calls").Str("sid", string(sid)).Str("peer", string(p)).Msg("call dropped")
	return p, true
}

func (m *CallManager) PeerOf(sid core.SessionID) (core.SessionID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.peer[sid]
	return p, ok
}

func (m *CallManager) InCall(sid core.SessionID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.peer[sid]
	return ok
}
