package parser

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/types"
)

// parseChunk implements `chunk := statlist EOS`. The implicit main
// chunk is a vararg function with no parameters and no parent; its
// first scope is therefore its own MainBlock, so the top-level
// statement list is parsed directly into that scope with no extra
// nesting.
func (p *Parser) parseChunk() *ast.FunctionExpr {
	tok := p.cur
	main := ast.NewFunctionExpr(tok, nil)
	main.SetType(types.Type{Tag: types.FUNCTION})
	main.IsVararg = true

	p.curFunc = main
	p.curScope = nil
	p.openScope()
	p.declareLocal(tok, p.intern("..."), types.Any)
	if p.failing() {
		return nil
	}

	main.Body = p.parseStatList()
	if p.failing() {
		return nil
	}
	if !p.expect(token.EOS) {
		return nil
	}
	p.closeScope()
	return main
}

// parseFuncBody parses a parameter list followed by a body statement
// list up to `end`. tok anchors the FunctionExpr (the `function`
// keyword token); the caller has already consumed it. When isMethod is
// true a synthetic `self` parameter is injected first.
func (p *Parser) parseFuncBody(tok token.Token, isMethod bool) *ast.FunctionExpr {
	fn := ast.NewFunctionExpr(tok, p.curFunc)
	fn.SetType(types.Type{Tag: types.FUNCTION})
	fn.IsMethod = isMethod
	if p.curFunc != nil {
		p.curFunc.Children = append(p.curFunc.Children, fn)
	}

	parentFunc, parentScope := p.curFunc, p.curScope
	restore := func() { p.curFunc, p.curScope = parentFunc, parentScope }

	p.curFunc = fn
	p.curScope = nil
	p.openScope() // becomes fn.MainBlock

	if isMethod {
		self := p.declareLocal(tok, p.intern("self"), types.Any)
		if p.failing() {
			restore()
			return nil
		}
		fn.Params = append(fn.Params, self)
	}

	if !p.expect(token.Type('(')) {
		restore()
		return nil
	}
	if !p.curIs(token.Type(')')) {
		for {
			if p.curIs(token.DOTS) {
				fn.IsVararg = true
				p.advance()
				break
			}
			if !p.curIs(token.NAME) {
				p.fail(p.cur, "expected parameter name")
				restore()
				return nil
			}
			ptok := p.cur
			pname := p.intern(p.cur.SemInfo.StrVal)
			p.advance()
			ptyp := p.parseOptionalTypeAnnotation()
			if p.failing() {
				restore()
				return nil
			}
			sym := p.declareLocal(ptok, pname, ptyp)
			if p.failing() {
				restore()
				return nil
			}
			fn.Params = append(fn.Params, sym)
			if !p.curIs(token.Type(',')) {
				break
			}
			p.advance()
		}
	}
	if !p.expect(token.Type(')')) {
		restore()
		return nil
	}

	if fn.IsVararg {
		p.declareLocal(tok, p.intern("..."), types.Any)
		if p.failing() {
			restore()
			return nil
		}
	}

	fn.Body = p.parseStatList()
	if p.failing() {
		restore()
		return nil
	}
	if !p.expect(token.END) {
		restore()
		return nil
	}

	restore()
	return fn
}

// parseFuncName implements `funcname := name ('.' name)* (':' name)?`.
// The returned method name is non-nil only for the colon-suffixed
// method form.
func (p *Parser) parseFuncName() ([]*strintern.String, *strintern.String) {
	if !p.curIs(token.NAME) {
		p.fail(p.cur, "expected function name")
		return nil, nil
	}
	path := []*strintern.String{p.intern(p.cur.SemInfo.StrVal)}
	p.advance()
	for p.curIs(token.Type('.')) {
		p.advance()
		if !p.curIs(token.NAME) {
			p.fail(p.cur, "expected name after '.' in function name")
			return nil, nil
		}
		path = append(path, p.intern(p.cur.SemInfo.StrVal))
		p.advance()
	}
	var method *strintern.String
	if p.curIs(token.Type(':')) {
		p.advance()
		if !p.curIs(token.NAME) {
			p.fail(p.cur, "expected method name after ':'")
			return nil, nil
		}
		method = p.intern(p.cur.SemInfo.StrVal)
		p.advance()
	}
	return path, method
}
