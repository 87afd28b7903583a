package ast

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
)

// NilLiteral is the `nil` literal.
type NilLiteral struct{ ExprBase }

func NewNilLiteral(tok token.Token) *NilLiteral {
	return &NilLiteral{ExprBase: NewExprBase(tok)}
}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	ExprBase
	Value bool
}

func NewBoolLiteral(tok token.Token, v bool) *BoolLiteral {
	return &BoolLiteral{ExprBase: NewExprBase(tok), Value: v}
}

// IntegerLiteral is an INT token value.
type IntegerLiteral struct {
	ExprBase
	Value int64
}

func NewIntegerLiteral(tok token.Token, v int64) *IntegerLiteral {
	return &IntegerLiteral{ExprBase: NewExprBase(tok), Value: v}
}

// FloatLiteral is an FLT token value.
type FloatLiteral struct {
	ExprBase
	Value float64
}

func NewFloatLiteral(tok token.Token, v float64) *FloatLiteral {
	return &FloatLiteral{ExprBase: NewExprBase(tok), Value: v}
}

// StringLiteral holds an interned string. Pointer-identity comparison
// relies on Value being the same *strintern.String for equal content.
type StringLiteral struct {
	ExprBase
	Value *strintern.String
}

func NewStringLiteral(tok token.Token, v *strintern.String) *StringLiteral {
	return &StringLiteral{ExprBase: NewExprBase(tok), Value: v}
}
