package world

import "sync/atomic"

// ObjectIDGenerator hands out entity identities for one dungeon.
// IDs start at 1; 0 is never issued and marks an unset identity.
type ObjectIDGenerator struct {
	next atomic.Uint32
}

// NewObjectIDGenerator creates a generator whose first ID is 1.
func NewObjectIDGenerator() *ObjectIDGenerator {
	return &ObjectIDGenerator{}
}

// Next returns the next unique ID.
// Thread-safe via atomic increment.
func (g *ObjectIDGenerator) Next() uint32 {
	return g.next.Add(1)
}

// Issued returns how many IDs were handed out so far.
func (g *ObjectIDGenerator) Issued() uint32 {
	return g.next.Load()
}
