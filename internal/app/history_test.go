package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Duet/internal/domain"
)

func TestHistoryEmptyPair(t *testing.T) {
	h := NewHistory()
	msgs := h.Get("alice", "bob")
	assert.Empty(t, msgs)
	assert.NotNil(t, msgs)
}

func TestHistoryRoundTrip(t *testing.T) {
	h := NewHistory()

	h.Append("alice", "bob", domain.Message{From: "alice", SenderName: "Alice", Body: "hi"})
	h.Append("bob", "alice", domain.Message{From: "bob", SenderName: "Bob", Body: "hey"})
	h.Append("alice", "bob", domain.Message{From: "alice", SenderName: "Alice", Body: "how are you"})

	// Either side retrieves the identical sequence, in send order.
	fromAlice := h.Get("alice", "bob")
	fromBob := h.Get("bob", "alice")
	assert.Equal(t, fromAlice, fromBob)

	require.Len(t, fromAlice, 3)
	assert.Equal(t, "hi", fromAlice[0].Body)
	assert.Equal(t, "hey", fromAlice[1].Body)
	assert.Equal(t, "how are you", fromAlice[2].Body)
}

func TestHistoryPairIsolation(t *testing.T) {
	h := NewHistory()

	h.Append("alice", "bob", domain.Message{From: "alice", SenderName: "Alice", Body: "for bob"})
	h.Append("alice", "carol", domain.Message{From: "alice", SenderName: "Alice", Body: "for carol"})

	require.Len(t, h.Get("alice", "bob"), 1)
	require.Len(t, h.Get("carol", "alice"), 1)
	assert.Equal(t, "for carol", h.Get("carol", "alice")[0].Body)
}

func TestHistoryReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Append("alice", "bob", domain.Message{From: "alice", SenderName: "Alice", Body: "hi"})

	got := h.Get("alice", "bob")
	got[0].Body = "tampered"

	assert.Equal(t, "hi", h.Get("alice", "bob")[0].Body)
}
