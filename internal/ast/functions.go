package ast

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
)

// FunctionExpr is both an expression (`function ... end` is a
// simpleexp) and the owner of a function-level scope chain. The
// top-level chunk is represented by one of these with Parent == nil and
// IsVararg == true.
type FunctionExpr struct {
	ExprBase

	Params   []*Symbol       // parameter locals, in declaration order
	IsVararg bool            // '...' present and last in the parameter list
	IsMethod bool            // true for `function T:m()`, synthesizes a leading `self` param

	Children []*FunctionExpr // nested function expressions, in appearance order
	Upvalues []*Symbol       // this function's up-value list, 0-based insertion order
	Locals   []*Symbol       // flat list of every local declared anywhere in this function

	MainBlock *Scope // the first scope opened inside this function
	Body      []Statement

	Parent *FunctionExpr // non-owning; nil only for the main chunk
}

func NewFunctionExpr(tok token.Token, parent *FunctionExpr) *FunctionExpr {
	return &FunctionExpr{ExprBase: NewExprBase(tok), Parent: parent}
}

// AddLocal records sym in both its declaring scope and this function's
// flat Locals list: a declaration adds its symbol to the current
// scope's symbol list *and* to the current function's flat locals list.
func (f *FunctionExpr) AddLocal(sym *Symbol, sc *Scope) {
	sc.Declare(sym)
	f.Locals = append(f.Locals, sym)
}

// AddUpvalue appends sym to this function's up-value list. The caller is
// responsible for setting sym.Upvalue.Index to len(f.Upvalues) before
// calling, keeping index and position in lockstep.
func (f *FunctionExpr) AddUpvalue(sym *Symbol) {
	f.Upvalues = append(f.Upvalues, sym)
}

// FindUpvalueByName returns the existing up-value in this function
// capturing name, or nil. Used by the resolver to avoid creating
// duplicate up-values for one captured local (no duplicates by
// captured-local identity); since names are interned, matching by name
// pointer is equivalent to matching by captured-local identity for the
// purposes of this one resolution chain.
func (f *FunctionExpr) FindUpvalueByName(name *strintern.String) *Symbol {
	for _, uv := range f.Upvalues {
		if uv.Name == name {
			return uv
		}
	}
	return nil
}
