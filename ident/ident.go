// Package ident provides the interned identifier used throughout a
// placement run. An Id is a dense 32-bit index into a context-local
// string table; interning the same string twice returns the same Id.
package ident

import "fmt"

// Id is an interned identifier. The zero value is the null identifier
// and never denotes a registered string.
type Id uint32

// Null is the distinguished empty identifier, matching index 0.
const Null Id = 0

// IsNull reports whether id is the null identifier.
func (id Id) IsNull() bool {
	return id == Null
}

// Interner maps strings to dense Ids and back, for a single design
// context. It is single-writer: callers outside the owning context
// must not mutate it concurrently.
type Interner struct {
	// toID maps a string to its Id.
	toID map[string]Id
	// strings is append-only; index i holds the string for Id(i)
	// (slot 0 is reserved for Null and is never populated).
	strings []string
}

// NewInterner creates an empty interner with the null slot reserved.
func NewInterner() *Interner {
	return &Interner{
		toID:    make(map[string]Id),
		strings: make([]string, 1), // index 0 reserved for Null
	}
}

// Intern returns the Id for s, registering it if this is the first
// time s has been seen. O(1) amortised.
func (in *Interner) Intern(s string) Id {
	if id, ok := in.toID[s]; ok {
		return id
	}

	id := Id(len(in.strings))
	in.strings = append(in.strings, s)
	in.toID[s] = id

	return id
}

// String returns the string for id. Panics if id is out of range or
// Null, since a valid Id is always the result of a prior Intern call.
func (in *Interner) String(id Id) string {
	if id == Null || int(id) >= len(in.strings) {
		panic(fmt.Sprintf("ident: Id %d is not registered in this interner", id))
	}
	return in.strings[id]
}

// Len returns the number of interned strings, excluding the null slot.
func (in *Interner) Len() int {
	return len(in.strings) - 1
}

// Mix32 is the xorshift32 mixing function the design checksum (C6) and
// the architecture catalog's per-object checksums are built from: the
// three xorshift32 steps x ^= x<<13; x ^= x>>17; x ^= x<<5, applied in
// sequence, each to the result of the one before. Shared here since both arch
// and design already depend on this package.
func Mix32(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

// InitializeAdd bulk pre-registers a string at a caller-chosen index,
// used by an architecture catalog to verify its build-time bel/wire
// name tables line up with runtime interner numbering. It fails if idx
// is not the next free slot, or if s is already interned under a
// different index.
func (in *Interner) InitializeAdd(s string, idx Id) error {
	if existing, ok := in.toID[s]; ok {
		return fmt.Errorf("ident: %q already interned as %d, cannot re-add at %d", s, existing, idx)
	}

	want := Id(len(in.strings))
	if idx != want {
		return fmt.Errorf("ident: %q expected at next-free slot %d, got %d", s, want, idx)
	}

	in.strings = append(in.strings, s)
	in.toID[s] = idx

	return nil
}
