package parser

import (
	"strings"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
)

// unaryPriority is the binding power a unary operator's operand parses
// at.
const unaryPriority = 12

type binOpInfo struct {
	op          ast.BinaryOp
	left, right int
}

// binOpTable is the operator-precedence table:
//
//	+ -      10,10        * %      11,11      ^ (R)   14,13
//	/ //     11,11        & | ~    6,4,5       << >>   7,7
//	..  (R)  9,8          == < <= ~= > >=      3,3
//	and      2,2          or       1,1         unary   12
var binOpTable = map[token.Type]binOpInfo{
	token.Type('+'): {ast.OpAdd, 10, 10},
	token.Type('-'): {ast.OpSub, 10, 10},
	token.Type('*'): {ast.OpMul, 11, 11},
	token.Type('%'): {ast.OpMod, 11, 11},
	token.Type('^'): {ast.OpPow, 14, 13},
	token.Type('/'): {ast.OpDiv, 11, 11},
	token.IDIV:      {ast.OpIDiv, 11, 11},
	token.Type('&'): {ast.OpBAnd, 6, 6},
	token.Type('|'): {ast.OpBOr, 4, 4},
	token.Type('~'): {ast.OpBXor, 5, 5},
	token.SHL:       {ast.OpShl, 7, 7},
	token.SHR:       {ast.OpShr, 7, 7},
	token.CONCAT:    {ast.OpConcat, 9, 8},
	token.EQ:        {ast.OpEq, 3, 3},
	token.Type('<'): {ast.OpLt, 3, 3},
	token.LE:        {ast.OpLe, 3, 3},
	token.NE:        {ast.OpNe, 3, 3},
	token.Type('>'): {ast.OpGt, 3, 3},
	token.GE:        {ast.OpGe, 3, 3},
	token.AND:       {ast.OpAnd, 2, 2},
	token.OR:        {ast.OpOr, 1, 1},
}

var unaryOpTable = map[token.Type]ast.UnaryOp{
	token.Type('-'): ast.OpMinus,
	token.Type('~'): ast.OpBitNot,
	token.NOT:       ast.OpNot,
	token.Type('#'): ast.OpLen,
}

var castOpTable = map[token.Type]ast.UnaryOp{
	token.TO_INTEGER:  ast.OpToInteger,
	token.TO_NUMBER:   ast.OpToNumber,
	token.TO_INTARRAY: ast.OpToIntArray,
	token.TO_NUMARRAY: ast.OpToNumArray,
	token.TO_TABLE:    ast.OpToTable,
	token.TO_STRING:   ast.OpToString,
	token.TO_CLOSURE:  ast.OpToClosure,
}

// tryUnaryOp reports whether the current token starts a unary operator,
// and if so which one. A NAME token whose lexeme starts with '@' is the
// user-type cast form `@dotted.name`; the lexer carries the dotted name
// in SemInfo.StrVal (see internal/lexer's readAtToken).
func (p *Parser) tryUnaryOp() (op ast.UnaryOp, userTypeName string, ok bool) {
	if op, ok := unaryOpTable[p.cur.Type]; ok {
		return op, "", true
	}
	if op, ok := castOpTable[p.cur.Type]; ok {
		return op, "", true
	}
	if p.cur.Type == token.NAME && strings.HasPrefix(p.cur.Lexeme, "@") {
		return ast.OpToUserData, p.cur.SemInfo.StrVal, true
	}
	return 0, "", false
}

// parseExpression parses a full expression (`expr := subexpr(0)`).
func (p *Parser) parseExpression() ast.Expression {
	return p.parseSubExpression(0)
}

// parseSubExpression implements subexpr(k): consume an optional unary
// operator recursing at unaryPriority, then greedily consume binary
// operators whose left precedence is strictly greater than limit,
// recursing at the operator's right precedence.
func (p *Parser) parseSubExpression(limit int) ast.Expression {
	if !p.enterRecursion() {
		return nil
	}
	defer p.leaveRecursion()

	var left ast.Expression
	if op, userType, ok := p.tryUnaryOp(); ok {
		tok := p.cur
		p.advance()
		operand := p.parseSubExpression(unaryPriority)
		if p.failing() {
			return nil
		}
		u := ast.NewUnaryExpr(tok, op, operand)
		u.UserTypeName = userType
		left = u
	} else {
		left = p.parseSimpleExpr()
		if p.failing() {
			return nil
		}
	}

	for {
		info, ok := binOpTable[p.cur.Type]
		if !ok || info.left <= limit {
			break
		}
		tok := p.cur
		p.advance()
		right := p.parseSubExpression(info.right)
		if p.failing() {
			return nil
		}
		left = ast.NewBinaryExpr(tok, info.op, left, right)
	}
	return left
}
