package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duet/internal/core"
	"github.com/dkeye/Duet/internal/domain"
)

type sessionEntry struct {
	User   *domain.User
	Conn   core.SignalConnection
	Cancel context.CancelFunc
}

// Registry owns the connection table: which sessions are online, their
// declared username and their signal endpoint. A session appears here
// on Bind and disappears on Remove; a username appears only after
// SetUsername.
type Registry struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[core.SessionID]*sessionEntry)}
}

func (r *Registry) Bind(sid core.SessionID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sid] = &sessionEntry{Conn: conn, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound session")
}

// SetUsername declares or overwrites the username for a live session.
// Unknown sessions are ignored.
func (r *Registry) SetUsername(sid core.SessionID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok {
		return
	}
	if e.User == nil {
		e.User = domain.NewUser(domain.UserID(sid), name)
	} else {
		e.User.Username = name
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("username", name).Msg("set username")
}

func (r *Registry) Get(sid core.SessionID) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok || e.User == nil {
		return nil, false
	}
	return e.User, true
}

// Remove drops the session entry. Removing an absent sid is a no-op.
func (r *Registry) Remove(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("removed session")
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// EmitTo delivers a frame to one session. Unknown recipients are a
// no-op; a saturated peer drops the frame.
func (r *Registry) EmitTo(sid core.SessionID, f core.Frame) {
	r.mu.RLock()
	e, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok {
		return
	}
	if err := e.Conn.TrySend(f); err != nil {
		log.Warn().Err(err).Str("module", "app.registry").Str("sid", string(sid)).Msg("emit dropped")
	}
}

// Broadcast delivers a frame to every bound session, named or not.
func (r *Registry) Broadcast(f core.Frame) {
	r.mu.RLock()
	conns := make([]core.SignalConnection, 0, len(r.sessions))
	for _, e := range r.sessions {
		conns = append(conns, e.Conn)
	}
	r.mu.RUnlock()
	for _, c := range conns {
		if err := c.TrySend(f); err != nil {
			log.Warn().Err(err).Str("module", "app.registry").Msg("broadcast dropped")
		}
	}
}

// Snapshot projects the presence view: every session that declared a
// username, with its in-call flag computed at snapshot time. Order is
// unspecified.
func (r *Registry) Snapshot(inCall func(core.SessionID) bool) []core.PresenceDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.PresenceDTO, 0, len(r.sessions))
	for sid, e := range r.sessions {
		if e.User == nil {
			continue
		}
		out = append(out, core.PresenceDTO{
			ID:       e.User.ID,
			Username: e.User.Username,
			InCall:   inCall(sid),
		})
	}
	return out
}

// Cancel fires the session's context cancel func, if any.
func (r *Registry) Cancel(sid core.SessionID) bool {
	r.mu.RLock()
	e, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	return true
}
