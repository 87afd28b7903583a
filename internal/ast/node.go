// Package ast defines the typed AST node model, including the
// Symbol/Scope types used for lexical resolution.
//
// Symbol and Scope live in this package rather than a separate
// internal/symbols package; see DESIGN.md for why (Scope -> FunctionExpr
// -> Scope is a genuine two-directional cycle).
//
// Grounded in structure on _examples/funvibe-funxy/internal/ast/ast_core.go
// (TokenLiteral/GetToken accessor conventions, nil-receiver safety) and in
// semantics on original_source/include/ravi_ast.h.
//
// The original C implementation discriminates node kinds with a single
// enum where expression tags are numerically greater than statement
// tags, an artifact of its layout. There is no numeric Kind ordering
// here: Statement and Expression are distinct marker interfaces and
// dispatch is by Go type, not by comparing an integer tag.
package ast

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/types"
)

// Node is the base interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is a Node appearing in a statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node with a static type: every expression has a type,
// defaulting to ANY.
type Expression interface {
	Node
	expressionNode()
	Type() types.Type
	SetType(types.Type)
}

// Suffix is one element of a suffixed expression's suffix list: a field
// selector, a computed index, or a function/method call.
type Suffix interface {
	Expression
	suffixNode()
}

// StmtBase supplies the boilerplate every statement node shares.
type StmtBase struct {
	Token token.Token
}

func (b *StmtBase) statementNode()       {}
func (b *StmtBase) TokenLiteral() string { return b.Token.Lexeme }
func (b *StmtBase) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// ExprBase supplies the boilerplate every expression node shares: its
// defining token and its static type, which starts at types.Any.
type ExprBase struct {
	Token token.Token
	Typ   types.Type
}

func (b *ExprBase) expressionNode()      {}
func (b *ExprBase) TokenLiteral() string { return b.Token.Lexeme }
func (b *ExprBase) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}
func (b *ExprBase) Type() types.Type     { return b.Typ }
func (b *ExprBase) SetType(t types.Type) { b.Typ = t }

// NewExprBase builds an ExprBase defaulted to types.Any, since every
// expression node carries a type.
func NewExprBase(tok token.Token) ExprBase {
	return ExprBase{Token: tok, Typ: types.Any}
}
