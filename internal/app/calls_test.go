package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Duet/internal/core"
)

// requireSymmetric checks the pairing invariant: every entry has its
// mirror and nobody is paired twice.
func requireSymmetric(t *testing.T, m *CallManager) {
	t.Helper()
	m.mu.RLock()
	defer m.mu.RUnlock()
	for a, b := range m.peer {
		back, ok := m.peer[b]
		require.True(t, ok, "peer[%s]=%s has no mirror entry", a, b)
		require.Equal(t, a, back, "peer map not symmetric for %s", a)
	}
}

func TestCallBegin(t *testing.T) {
	m := NewCallManager()

	require.NoError(t, m.Begin("alice", "bob"))

	assert.True(t, m.InCall("alice"))
	assert.True(t, m.InCall("bob"))
	p, ok := m.PeerOf("alice")
	require.True(t, ok)
	assert.Equal(t, core.SessionID("bob"), p)
	requireSymmetric(t, m)
}

func TestCallBeginCalleeBusy(t *testing.T) {
	m := NewCallManager()
	require.NoError(t, m.Begin("alice", "bob"))

	err := m.Begin("carol", "bob")
	assert.ErrorIs(t, err, ErrCalleeBusy)

	// No mutation: the alice/bob pairing is intact and carol stays idle.
	p, ok := m.PeerOf("bob")
	require.True(t, ok)
	assert.Equal(t, core.SessionID("alice"), p)
	assert.False(t, m.InCall("carol"))
	requireSymmetric(t, m)
}

func TestCallBeginCallerBusy(t *testing.T) {
	m := NewCallManager()
	require.NoError(t, m.Begin("alice", "bob"))

	err := m.Begin("alice", "carol")
	assert.ErrorIs(t, err, ErrCallerBusy)

	assert.False(t, m.InCall("carol"))
	p, _ := m.PeerOf("alice")
	assert.Equal(t, core.SessionID("bob"), p)
	requireSymmetric(t, m)
}

func TestCallEnd(t *testing.T) {
	m := NewCallManager()
	require.NoError(t, m.Begin("alice", "bob"))

	m.End("alice", "bob")

	assert.False(t, m.InCall("alice"))
	assert.False(t, m.InCall("bob"))
	requireSymmetric(t, m)
}

func TestCallEndAbsentPair(t *testing.T) {
	m := NewCallManager()
	// Tearing down a pairing that never existed is a no-op.
	m.End("alice", "bob")
	assert.False(t, m.InCall("alice"))
}

func TestCallDrop(t *testing.T) {
	m := NewCallManager()
	require.NoError(t, m.Begin("alice", "bob"))

	peer, ok := m.Drop("alice")
	require.True(t, ok)
	assert.Equal(t, core.SessionID("bob"), peer)
	assert.False(t, m.InCall("alice"))
	assert.False(t, m.InCall("bob"))

	_, ok = m.Drop("alice")
	assert.False(t, ok)
}

func TestCallReadmissionAfterTeardown(t *testing.T) {
	m := NewCallManager()
	require.NoError(t, m.Begin("alice", "bob"))
	m.End("alice", "bob")

	require.NoError(t, m.Begin("carol", "bob"))
	p, _ := m.PeerOf("bob")
	assert.Equal(t, core.SessionID("carol"), p)
	requireSymmetric(t, m)
}
