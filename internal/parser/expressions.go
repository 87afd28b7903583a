package parser

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/types"
)

// parseSimpleExpr implements the simpleexp production.
func (p *Parser) parseSimpleExpr() ast.Expression {
	switch p.cur.Type {
	case token.FLT:
		lit := ast.NewFloatLiteral(p.cur, p.cur.SemInfo.FltVal)
		lit.SetType(types.Type{Tag: types.FLOAT})
		p.advance()
		return lit
	case token.INT:
		lit := ast.NewIntegerLiteral(p.cur, p.cur.SemInfo.IntVal)
		lit.SetType(types.Type{Tag: types.INTEGER})
		p.advance()
		return lit
	case token.STRING:
		lit := ast.NewStringLiteral(p.cur, p.intern(p.cur.SemInfo.StrVal))
		lit.SetType(types.Type{Tag: types.STRING})
		p.advance()
		return lit
	case token.NIL:
		lit := ast.NewNilLiteral(p.cur)
		lit.SetType(types.Type{Tag: types.NIL})
		p.advance()
		return lit
	case token.TRUE:
		lit := ast.NewBoolLiteral(p.cur, true)
		lit.SetType(types.Type{Tag: types.BOOLEAN})
		p.advance()
		return lit
	case token.FALSE:
		lit := ast.NewBoolLiteral(p.cur, false)
		lit.SetType(types.Type{Tag: types.BOOLEAN})
		p.advance()
		return lit
	case token.DOTS:
		// '...' resolves like any other name; a vararg function declares
		// a pseudo-local named "..." in its main block when its body is
		// parsed (see parseFuncBody), mirroring the mainstream
		// interpreter's own treatment of vararg references as ordinary
		// name lookups.
		tok := p.cur
		p.advance()
		return p.resolveName(tok, p.intern("..."))
	case token.Type('{'):
		return p.parseTableConstructor()
	case token.FUNCTION:
		tok := p.cur
		p.advance()
		return p.parseFuncBody(tok, false)
	default:
		return p.parseSuffixedExpr()
	}
}

// parsePrimaryExpr implements `primary := name | '(' expr ')'`.
func (p *Parser) parsePrimaryExpr() ast.Expression {
	switch p.cur.Type {
	case token.NAME:
		tok := p.cur
		name := p.intern(p.cur.SemInfo.StrVal)
		p.advance()
		return p.resolveName(tok, name)
	case token.Type('('):
		p.advance()
		e := p.parseExpression()
		if p.failing() {
			return nil
		}
		if !p.expect(token.Type(')')) {
			return nil
		}
		return e
	default:
		p.fail(p.cur, "unexpected symbol near %s", p.cur.Type.String())
		return nil
	}
}

// parseSuffixedExpr implements the suffixedexp production, always
// wrapping the primary expression in a SuffixedExpr node (even with an
// empty suffix list) so the walker's EV_SUFFIXED_EXPRESSION_START/END and
// EV_PRIMARY_EXPRESSION_START/END pairs fire uniformly.
func (p *Parser) parseSuffixedExpr() ast.Expression {
	tok := p.cur
	primary := p.parsePrimaryExpr()
	if p.failing() {
		return nil
	}
	var suffixes []ast.Suffix
	for {
		switch p.cur.Type {
		case token.Type('.'):
			p.advance()
			if !p.curIs(token.NAME) {
				p.fail(p.cur, "expected field name after '.'")
				return nil
			}
			name := p.intern(p.cur.SemInfo.StrVal)
			fs := ast.NewFieldSelector(p.cur, name)
			p.advance()
			suffixes = append(suffixes, fs)
		case token.Type('['):
			btok := p.cur
			p.advance()
			key := p.parseExpression()
			if p.failing() {
				return nil
			}
			if !p.expect(token.Type(']')) {
				return nil
			}
			suffixes = append(suffixes, ast.NewComputedIndex(btok, key))
		case token.Type(':'):
			p.advance()
			if !p.curIs(token.NAME) {
				p.fail(p.cur, "expected method name after ':'")
				return nil
			}
			methodName := p.intern(p.cur.SemInfo.StrVal)
			ctok := p.cur
			p.advance()
			args := p.parseCallArgs()
			if p.failing() {
				return nil
			}
			suffixes = append(suffixes, ast.NewFunctionCallSuffix(ctok, methodName, args))
		case token.Type('('), token.Type('{'), token.STRING:
			ctok := p.cur
			args := p.parseCallArgs()
			if p.failing() {
				return nil
			}
			suffixes = append(suffixes, ast.NewFunctionCallSuffix(ctok, nil, args))
		default:
			return ast.NewSuffixedExpr(tok, primary, suffixes)
		}
	}
}

// parseCallArgs implements the `args` production.
func (p *Parser) parseCallArgs() []ast.Expression {
	switch p.cur.Type {
	case token.Type('('):
		p.advance()
		if p.curIs(token.Type(')')) {
			p.advance()
			return nil
		}
		args := p.parseExprList()
		if p.failing() {
			return nil
		}
		if !p.expect(token.Type(')')) {
			return nil
		}
		return args
	case token.Type('{'):
		tbl := p.parseTableConstructor()
		if p.failing() {
			return nil
		}
		return []ast.Expression{tbl}
	case token.STRING:
		lit := ast.NewStringLiteral(p.cur, p.intern(p.cur.SemInfo.StrVal))
		lit.SetType(types.Type{Tag: types.STRING})
		p.advance()
		return []ast.Expression{lit}
	default:
		p.fail(p.cur, "function arguments expected")
		return nil
	}
}

// parseExprList parses a comma-separated expression list (`explist`).
func (p *Parser) parseExprList() []ast.Expression {
	e := p.parseExpression()
	if p.failing() {
		return nil
	}
	list := []ast.Expression{e}
	for p.curIs(token.Type(',')) {
		p.advance()
		e := p.parseExpression()
		if p.failing() {
			return nil
		}
		list = append(list, e)
	}
	return list
}

// parseTableConstructor implements the table_ctor production.
func (p *Parser) parseTableConstructor() *ast.TableConstructor {
	tok := p.cur
	p.advance()
	var fields []*ast.IndexedAssign
	for !p.curIs(token.Type('}')) {
		fld := p.parseTableField()
		if p.failing() {
			return nil
		}
		fields = append(fields, fld)
		if p.curIs(token.Type(',')) || p.curIs(token.Type(';')) {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(token.Type('}')) {
		return nil
	}
	return ast.NewTableConstructor(tok, fields)
}

// parseTableField implements the field production: a keyed
// `[expr] = expr`, a record-style `name = expr`, or a bare positional
// expr.
func (p *Parser) parseTableField() *ast.IndexedAssign {
	if p.curIs(token.Type('[')) {
		tok := p.cur
		p.advance()
		key := p.parseExpression()
		if p.failing() {
			return nil
		}
		if !p.expect(token.Type(']')) {
			return nil
		}
		if !p.expect(token.Type('=')) {
			return nil
		}
		val := p.parseExpression()
		if p.failing() {
			return nil
		}
		return ast.NewIndexedAssign(tok, key, val)
	}
	if p.curIs(token.NAME) && p.peekIs(token.Type('=')) {
		tok := p.cur
		name := p.intern(p.cur.SemInfo.StrVal)
		keyLit := ast.NewStringLiteral(tok, name)
		keyLit.SetType(types.Type{Tag: types.STRING})
		p.advance() // name
		p.advance() // '='
		val := p.parseExpression()
		if p.failing() {
			return nil
		}
		return ast.NewIndexedAssign(tok, keyLit, val)
	}
	tok := p.cur
	val := p.parseExpression()
	if p.failing() {
		return nil
	}
	return ast.NewIndexedAssign(tok, nil, val)
}
