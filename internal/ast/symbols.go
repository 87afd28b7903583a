package ast

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/types"
)

// SymbolKind discriminates the four symbol variants.
type SymbolKind int

const (
	SymLocal SymbolKind = iota
	SymGlobal
	SymUpvalue
	SymLabel
)

func (k SymbolKind) String() string {
	switch k {
	case SymLocal:
		return "local"
	case SymGlobal:
		return "global"
	case SymUpvalue:
		return "upvalue"
	case SymLabel:
		return "label"
	default:
		return "?"
	}
}

// UpvalueInfo is the payload carried only by SymUpvalue symbols.
type UpvalueInfo struct {
	Target *Symbol      // the captured LOCAL; at every level of a multi-level capture this is the original LOCAL
	Func   *FunctionExpr // the function this up-value belongs to
	Index  int           // zero-based insertion position within Func.Upvalues
}

// Symbol is a resolved name binding. Exactly one of the kind-specific
// fields is meaningful, depending on Kind.
type Symbol struct {
	Kind SymbolKind
	Name *strintern.String
	Typ  types.Type // LOCAL/UPVALUE carry their value type; GLOBAL is always ANY; LABEL unused

	// Scope is the defining block scope, a non-owning back-pointer.
	// Meaningful for LOCAL and LABEL only.
	Scope *Scope

	// Upvalue is non-nil only when Kind == SymUpvalue.
	Upvalue *UpvalueInfo
}

func (s *Symbol) Type() types.Type { return s.Typ }

// NewLocal builds a LOCAL symbol of the given type, scoped to sc.
func NewLocal(name *strintern.String, typ types.Type, sc *Scope) *Symbol {
	return &Symbol{Kind: SymLocal, Name: name, Typ: typ, Scope: sc}
}

// NewGlobal builds a fresh GLOBAL symbol, always typed ANY. Globals are
// never added to any scope's symbol list.
func NewGlobal(name *strintern.String) *Symbol {
	return &Symbol{Kind: SymGlobal, Name: name, Typ: types.Any}
}

// NewLabel builds a LABEL symbol scoped to sc.
func NewLabel(name *strintern.String, sc *Scope) *Symbol {
	return &Symbol{Kind: SymLabel, Name: name, Scope: sc}
}

// NewUpvalue builds an UPVALUE aliasing target, owned by fn at index idx.
// Its type is the captured local's type.
func NewUpvalue(target *Symbol, fn *FunctionExpr, idx int) *Symbol {
	return &Symbol{
		Kind: SymUpvalue,
		Name: target.Name,
		Typ:  target.Typ,
		Upvalue: &UpvalueInfo{
			Target: target,
			Func:   fn,
			Index:  idx,
		},
	}
}

// Scope is a lexical block: an ordered symbol list (append-order, searched
// in reverse for shadowing), a back-pointer to its owning function, and a
// parent scope pointer. The parent may belong to an enclosing function:
// the scope chain is not necessarily contained within one function.
type Scope struct {
	Symbols []*Symbol
	Func    *FunctionExpr
	Parent  *Scope
}

// NewScope opens a scope nested in parent, owned by fn. If fn has no
// MainBlock yet, the new scope becomes it.
func NewScope(fn *FunctionExpr, parent *Scope) *Scope {
	sc := &Scope{Func: fn, Parent: parent}
	if fn.MainBlock == nil {
		fn.MainBlock = sc
	}
	return sc
}

// Declare appends sym to the scope's symbol list (append order; lookups
// scan in reverse so the most recent declaration of a name shadows
// earlier ones in the same scope).
func (s *Scope) Declare(sym *Symbol) {
	s.Symbols = append(s.Symbols, sym)
}

// LookupLocal scans this scope's symbol list in reverse insertion order
// for a LOCAL named name, implementing the "latest shadowing wins" rule.
// It does not walk parent scopes or cross function boundaries; the
// parser composes that traversal itself.
func (s *Scope) LookupLocal(name *strintern.String) *Symbol {
	for i := len(s.Symbols) - 1; i >= 0; i-- {
		sym := s.Symbols[i]
		if sym.Kind == SymLocal && sym.Name == name {
			return sym
		}
	}
	return nil
}
