package domain

// Message is one chat message as stored and as delivered.
type Message struct {
	From       UserID `json:"from"`
	SenderName string `json:"senderName"`
	Body       string `json:"message"`
}

// PairKey identifies the conversation between two users regardless of
// direction. Fields are kept in a fixed order so the key is the same
// comparable value for (a, b) and (b, a); a composite key avoids the
// delimiter collisions of joined strings.
type PairKey struct {
	lo, hi UserID
}

func NewPairKey(a, b UserID) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{lo: a, hi: b}
}
