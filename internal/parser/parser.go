// Package parser implements a single-pass recursive-descent parser: it
// drives the lexer with one-token lookahead, builds the internal/ast
// node tree, and performs scope/symbol resolution as it goes.
//
// Grounded in control-flow style on
// _examples/funvibe-funxy/internal/parser/expressions_core.go
// (cur/peek token fields, prefix/infix parse-function maps, nextToken
// advancing both) and in grammar/semantics on
// original_source/src/parser.c.
//
// Failure semantics are a result-typed rewrite of the source's
// setjmp/longjmp escape: every parse method returns nil on the first
// syntax error and leaves it recorded on the Parser; callers check
// Parser.Err() (or the nil result) and propagate without attempting
// recovery. There is no error recovery across statements.
package parser

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/arena"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/config"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/diag"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/lexer"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
)

// Parser holds all per-parse state: lexer cursor, arena/interner
// ownership, the current function/scope the resolver is building into,
// and the first fatal error, if any.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	arena    *arena.Arena
	interner *strintern.Interner
	cfg      config.CompilerConfig

	displayName string
	depth       int
	err         *diag.Error

	curFunc  *ast.FunctionExpr
	curScope *ast.Scope
}

// New returns a Parser ready to parse source through lex, owned by a,
// interning strings via in, reporting depth-limit/size-limit errors
// per cfg. displayName is used only in diagnostics.
func New(lex *lexer.Lexer, a *arena.Arena, in *strintern.Interner, cfg config.CompilerConfig, displayName string) *Parser {
	p := &Parser{lex: lex, arena: a, interner: in, cfg: cfg, displayName: displayName}
	p.advance()
	p.advance()
	return p
}

// Err returns the first fatal diagnostic recorded during parsing, or nil.
func (p *Parser) Err() *diag.Error { return p.err }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
	for p.peek.Type == token.NEWLINE {
		p.peek = p.lex.NextToken()
	}
	if p.cur.Type == token.NEWLINE {
		p.advance()
	}
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expect consumes the current token if it has type t, otherwise records
// a fatal syntax error naming what was expected and returns false.
func (p *Parser) expect(t token.Type) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.fail(p.cur, "expected %s, got %s", t.String(), p.cur.Type.String())
	return false
}

// fail records the first fatal syntax error; subsequent calls are
// no-ops, since only one fatal syntax error is ever recorded per parse.
func (p *Parser) fail(tok token.Token, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	e := diag.NewSyntaxError(tok, format, args...)
	e.DisplayName = p.displayName
	p.err = e
}

// failing reports whether a fatal error has already been recorded; parse
// methods use this to short-circuit without doing further work.
func (p *Parser) failing() bool { return p.err != nil }

const maxRecursionMargin = "expression or statement nesting too deep"

// enterRecursion increments the nesting depth guard and records a fatal
// error if cfg.MaxRecursionDepth is exceeded. parseSubExpression calls
// this and defers the paired leaveRecursion; parseStatList brackets each
// statement with the pair.
func (p *Parser) enterRecursion() bool {
	p.depth++
	if p.depth > p.cfg.MaxRecursionDepth {
		p.fail(p.cur, maxRecursionMargin)
		return false
	}
	return true
}

func (p *Parser) leaveRecursion() { p.depth-- }

// intern interns s via the parser's string interner, for names carried
// in SemInfo.
func (p *Parser) intern(s string) *strintern.String {
	return p.interner.InternString(s)
}

// Parse parses one complete chunk (`chunk := statlist EOS`) and returns
// the main-chunk function expression. On a syntax error it returns a nil
// function together with the first fatal diagnostic.
func Parse(lex *lexer.Lexer, a *arena.Arena, in *strintern.Interner, cfg config.CompilerConfig, displayName string) (*ast.FunctionExpr, *diag.Error) {
	p := New(lex, a, in, cfg, displayName)
	main := p.parseChunk()
	if p.err != nil {
		return nil, p.err
	}
	return main, nil
}
