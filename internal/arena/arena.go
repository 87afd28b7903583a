// Package arena provides a region-allocation discipline: every AST
// node, symbol, scope and interned string produced by a single parse
// shares one lifetime and is released in one event.
//
// Go's garbage collector already reclaims memory, so this is not a bump
// allocator in the C sense (see original_source/src/parser.c's
// raviX_allocator_allocate) — it is a bookkeeping object that counts
// allocations and asserts the "single deallocation event" discipline:
// once Destroy is called, a further Alloc panics.
package arena

import "sync/atomic"

// Arena owns a single compiler-state's allocations. It keeps one count
// of the allocations recorded through Alloc and can be atomically marked
// destroyed so stale use is easy to catch.
type Arena struct {
	destroyed int32
	allocs    int64
}

// New returns a fresh, live arena.
func New() *Arena {
	return &Arena{}
}

// Alloc records one allocation and panics if the arena was already
// destroyed — mirroring the C allocator's "objects live until the
// compiler state is destroyed" invariant.
func (a *Arena) Alloc() {
	if atomic.LoadInt32(&a.destroyed) != 0 {
		panic("arena: allocation after destroy")
	}
	atomic.AddInt64(&a.allocs, 1)
}

// Destroy releases the arena. All objects allocated from it become
// invalid; the caller must not dereference them afterwards. Safe to call
// more than once.
func (a *Arena) Destroy() {
	atomic.StoreInt32(&a.destroyed, 1)
}

// Live reports whether the arena has not yet been destroyed.
func (a *Arena) Live() bool {
	return atomic.LoadInt32(&a.destroyed) == 0
}

// Allocs returns the number of objects allocated so far, for diagnostics.
func (a *Arena) Allocs() int64 {
	return atomic.LoadInt64(&a.allocs)
}
