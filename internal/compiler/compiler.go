// Package compiler wires the front-end stages (lexer, parser, lowering,
// walker, printer) behind a language-neutral public surface:
// create_compiler_state / parse / lower / walk / print /
// destroy_compiler_state / intern_string.
//
// Grounded on funxy's own compile-unit-handle pattern
// (_examples/funvibe-funxy/internal/ext's per-session config object,
// google/uuid used throughout the pack's test fixtures as an opaque
// correlation id) adapted to a single-state-per-parse model: one State
// owns one arena, one interner, and at most one AST. Two compiler-state
// objects are fully independent of each other.
package compiler

import (
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/arena"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/config"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/lexer"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/lowering"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/parser"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/printer"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/walker"
)

// State is the opaque compiler-state handle returned by
// create_compiler_state. It owns the arena and string interner shared
// by every parse run on it, and the AST of the latest successful parse.
type State struct {
	ID uuid.UUID

	cfg      config.CompilerConfig
	arena    *arena.Arena
	interner *strintern.Interner

	// MainFunction is the AST rooted at the implicit variadic main chunk,
	// populated by Parse. Nil until a successful parse has run.
	MainFunction *ast.FunctionExpr

	// Lowered holds the result of the most recent Lower call.
	Lowered lowering.Result

	destroyed bool
}

// NewState creates a compiler-state handle, the Go equivalent of
// create_compiler_state. cfg supplies the implementation-defined
// limits; pass config.Default() for the source's hard-coded values.
func NewState(cfg config.CompilerConfig) *State {
	a := arena.New()
	return &State{
		ID:       uuid.New(),
		cfg:      cfg,
		arena:    a,
		interner: strintern.New(a),
	}
}

// Parse implements the parse operation: it tokenizes source, drives the
// parser, and stores the resulting AST on the state. A non-nil error
// means the parse failed with a single fatal diagnostic; any partial
// AST built before the failure is left in the arena and discarded on
// compiler-state destruction — here that just means the caller never
// sees it, since MainFunction is only set on success.
func (s *State) Parse(source, displayName string) error {
	if s.destroyed {
		panic("compiler: Parse called on a destroyed State")
	}
	lex := lexer.New(source)
	main, err := parser.Parse(lex, s.arena, s.interner, s.cfg, displayName)
	if err != nil {
		return err
	}
	s.MainFunction = main
	return nil
}

// Lower implements the lower operation: it runs the lowering pass over
// the parsed chunk, which rewrites no for-in loop and records every one
// in Lowered.Unlowered. Must be called after a successful Parse.
func (s *State) Lower() error {
	if s.destroyed {
		panic("compiler: Lower called on a destroyed State")
	}
	if s.MainFunction == nil {
		return errors.New("compiler: Lower called before a successful Parse")
	}
	s.Lowered = lowering.Lower(s.MainFunction)
	return nil
}

// Walk implements the walk operation: a single event-driven pass over
// the parsed chunk via v.
func (s *State) Walk(v walker.Visitor) {
	if s.destroyed {
		panic("compiler: Walk called on a destroyed State")
	}
	if s.MainFunction == nil {
		return
	}
	walker.Walk(s.MainFunction, v)
}

// Print implements the print operation: a deterministic pretty-print
// of the parsed chunk to w.
func (s *State) Print(w io.Writer) error {
	if s.destroyed {
		panic("compiler: Print called on a destroyed State")
	}
	if s.MainFunction == nil {
		return nil
	}
	_, err := io.WriteString(w, printer.Print(s.MainFunction))
	return err
}

// InternString implements the intern_string operation, exposing the
// state's interner to embedders that need to build symbols or literals
// outside the parser.
func (s *State) InternString(b []byte) *strintern.String {
	if s.destroyed {
		panic("compiler: InternString called on a destroyed State")
	}
	return s.interner.Intern(b)
}

// Destroy implements destroy_compiler_state: it releases the arena
// backing every AST node, symbol, scope and interned string this state
// produced. Safe to call more than once.
func (s *State) Destroy() {
	if s.destroyed {
		return
	}
	s.arena.Destroy()
	s.MainFunction = nil
	s.destroyed = true
}

// Allocs reports how many arena allocations this state has recorded so
// far, for diagnostics/tests. Only the interner records allocations, one
// per distinct string.
func (s *State) Allocs() int64 {
	return s.arena.Allocs()
}
