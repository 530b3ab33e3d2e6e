package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeySymmetry(t *testing.T) {
	a := UserID("conn-a")
	b := UserID("conn-b")

	assert.Equal(t, NewPairKey(a, b), NewPairKey(b, a))
}

func TestPairKeyDistinctPairs(t *testing.T) {
	assert.NotEqual(t, NewPairKey("a", "b"), NewPairKey("a", "c"))
	assert.NotEqual(t, NewPairKey("a", "b"), NewPairKey("b", "c"))
}

func TestPairKeyNoDelimiterCollision(t *testing.T) {
	// IDs containing a separator-looking character must not collide
	// the way joined strings would ("a:b"+"c" vs "a"+"b:c").
	assert.NotEqual(t, NewPairKey("a:b", "c"), NewPairKey("a", "b:c"))
}

func TestPairKeySelfPair(t *testing.T) {
	assert.Equal(t, NewPairKey("x", "x"), NewPairKey("x", "x"))
}
