// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// ObjectKind distinguishes the two things an EntityID may stand for:
// a constructed entity, or a reservation pending construction.
type ObjectKind int

// Object kinds.
const (
	ObjectReserved ObjectKind = iota
	ObjectEntity
)

// EntityID is an opaque, process-unique handle (spec.md §3 "Entity
// identifier"). Two EntityIDs are equal iff they name the same entity;
// callers must not construct one by hand.
type EntityID struct {
	kind ObjectKind
	seq  int64  // process-wide monotonic counter value at allocation time.
	salt uint64 // xxhash of (session nonce, DE sequence number), for log disambiguation.
}

// Kind reports whether id currently names a reservation or a constructed
// entity.
func (id EntityID) Kind() ObjectKind { return id.kind }

// IsZero reports whether id is the zero value (never allocated).
func (id EntityID) IsZero() bool { return id.seq == 0 }

var globalCounter int64

// IDGenerator allocates and tracks EntityIDs for one file session (spec.md
// §4.7 "Pass 1", §5 "Shared resources"). The underlying sequence counter
// is process-wide and safe for concurrent use by independent sessions;
// each generator additionally tracks its own live set so it can release
// identifiers that are reserved but never constructed.
type IDGenerator struct {
	mu      sync.Mutex
	nonce   uint64
	live    map[int64]EntityID
}

// NewIDGenerator creates a generator for one reader/writer session. nonce
// should distinguish concurrent sessions (e.g. derived from the input
// path); it only affects the salt used for log disambiguation, never
// identity or equality.
func NewIDGenerator(sessionNonce string) *IDGenerator {
	return &IDGenerator{
		nonce: xxhash.Sum64String(sessionNonce),
		live:  make(map[int64]EntityID),
	}
}

func (g *IDGenerator) salt(deSequence int) uint64 {
	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(g.nonce >> (8 * i))
	}
	for i := 0; i < 8; i++ {
		buf[8+i] = byte(uint64(deSequence) >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}

// Reserve allocates an identifier for a DE record not yet constructed
// into an entity (spec.md §4.7 "Pass 1", keyed by DE sequence number).
func (g *IDGenerator) Reserve(deSequence int) EntityID {
	g.mu.Lock()
	defer g.mu.Unlock()
	seq := atomic.AddInt64(&globalCounter, 1)
	id := EntityID{kind: ObjectReserved, seq: seq, salt: g.salt(deSequence)}
	g.live[seq] = id
	return id
}

// Promote marks a reserved identifier as now naming a constructed entity
// (spec.md §4.7 "Pass 2") in the generator's live set. The returned copy
// has kind ObjectEntity and so does not compare equal to id; Resolve
// keeps keying entities by the reserved id.
func (g *IDGenerator) Promote(id EntityID) EntityID {
	g.mu.Lock()
	defer g.mu.Unlock()
	id.kind = ObjectEntity
	g.live[id.seq] = id
	return id
}

// Release drops id from the live set. Called for reserved identifiers
// whose entity was never constructed, and for every identifier when the
// resolved model is dropped (spec.md §3 "Lifecycles").
func (g *IDGenerator) Release(id EntityID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.live, id.seq)
}

// Generate allocates a fresh identifier not tied to any DE sequence
// number, for programmatically constructed entities.
func (g *IDGenerator) Generate() EntityID {
	g.mu.Lock()
	defer g.mu.Unlock()
	seq := atomic.AddInt64(&globalCounter, 1)
	id := EntityID{kind: ObjectEntity, seq: seq, salt: g.salt(0)}
	g.live[seq] = id
	return id
}
