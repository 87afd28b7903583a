package parser

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/types"
)

// openScope opens a new block scope nested in the parser's current
// scope, owned by the current function.
func (p *Parser) openScope() *ast.Scope {
	sc := ast.NewScope(p.curFunc, p.curScope)
	p.curScope = sc
	return sc
}

// closeScope restores the parent scope.
func (p *Parser) closeScope() {
	p.curScope = p.curScope.Parent
}

// declareLocal adds a fresh LOCAL symbol named name, typed typ, to the
// current scope and the current function's flat locals list. It
// enforces the configured maximum local-variable count.
func (p *Parser) declareLocal(tok token.Token, name *strintern.String, typ types.Type) *ast.Symbol {
	if len(p.curFunc.Locals) >= p.cfg.MaxVars {
		p.fail(tok, "too many local variables (limit is %d)", p.cfg.MaxVars)
		return nil
	}
	sym := ast.NewLocal(name, typ, p.curScope)
	p.curFunc.AddLocal(sym, p.curScope)
	return sym
}

// declareLabel adds a fresh LABEL symbol to the current scope.
func (p *Parser) declareLabel(name *strintern.String) *ast.Symbol {
	sym := ast.NewLabel(name, p.curScope)
	p.curScope.Declare(sym)
	return sym
}

// resolveInFunction walks the function-nesting chain outward looking for
// name, one recursive call per enclosing function. At each level it
// first searches the scopes belonging to fn, then an already-present
// up-value of the same name (so a second reference from the same
// function reuses the existing up-value instead of duplicating it),
// then recurses into fn.Parent starting from the scope at which the
// nested function was opened. Every intervening function's up-value
// must alias the root LOCAL directly, never a sibling up-value one
// level further in, so the value threaded back down the recursion is
// always the originally captured LOCAL: when the recursive call
// returns a LOCAL it is used as-is, and when it returns an already
// existing UPVALUE its own target (itself always a LOCAL, by the same
// rule applied when that up-value was created) is unwrapped and reused.
// Returns nil if the name is not bound in any enclosing function (the
// caller then makes a GLOBAL).
func (p *Parser) resolveInFunction(fn *ast.FunctionExpr, scope *ast.Scope, name *strintern.String) *ast.Symbol {
	for sc := scope; sc != nil && sc.Func == fn; sc = sc.Parent {
		if sym := sc.LookupLocal(name); sym != nil {
			return sym
		}
	}
	if sym := fn.FindUpvalueByName(name); sym != nil {
		return sym
	}
	if fn.Parent == nil {
		return nil
	}
	var enclosingScope *ast.Scope
	for sc := scope; sc != nil; sc = sc.Parent {
		if sc.Func != fn {
			enclosingScope = sc
			break
		}
	}
	outer := p.resolveInFunction(fn.Parent, enclosingScope, name)
	if outer == nil {
		return nil
	}
	target := outer
	if target.Kind == ast.SymUpvalue {
		target = target.Upvalue.Target
	}
	uv := ast.NewUpvalue(target, fn, len(fn.Upvalues))
	fn.AddUpvalue(uv)
	return uv
}

// resolveName builds a SymbolRef for name at the current parse position,
// resolving it to a LOCAL, an UPVALUE (creating the capture chain as
// needed), or a fresh GLOBAL.
func (p *Parser) resolveName(tok token.Token, name *strintern.String) *ast.SymbolRef {
	sym := p.resolveInFunction(p.curFunc, p.curScope, name)
	if sym == nil {
		sym = ast.NewGlobal(name)
	}
	return ast.NewSymbolRef(tok, sym)
}
