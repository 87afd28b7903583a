// Package strintern implements hash-consed string interning: equal
// literals share one object, so later passes can compare strings by
// pointer identity.
package strintern

import (
	"hash/fnv"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/arena"
)

// String is an interned, immutable string with a pre-computed hash.
// Two Intern calls with equal bytes return the identical *String pointer.
type String struct {
	Value string
	Hash  uint32
}

// Interner is a hash-consing table keyed by (len, hash, content), owning
// the interned strings for one compiler state's arena.
type Interner struct {
	arena *arena.Arena
	table map[string]*String
}

// New returns an interner backed by the given arena.
func New(a *arena.Arena) *Interner {
	return &Interner{arena: a, table: make(map[string]*String)}
}

func hashBytes(b []byte) uint32 {
	h := fnv.New32a()
	h.Write(b)
	return h.Sum32()
}

// Intern returns the shared String for the given bytes, allocating a new
// one only the first time content of that exact length and bytes is seen.
func (in *Interner) Intern(b []byte) *String {
	key := string(b) // the map key copy; on a hit we discard it and reuse the stored String
	if s, ok := in.table[key]; ok {
		return s
	}
	s := &String{Value: key, Hash: hashBytes(b)}
	in.arena.Alloc()
	in.table[key] = s
	return s
}

// InternString is a convenience wrapper for Go string inputs.
func (in *Interner) InternString(s string) *String {
	return in.Intern([]byte(s))
}

// Len returns how many distinct strings have been interned so far.
func (in *Interner) Len() int {
	return len(in.table)
}
