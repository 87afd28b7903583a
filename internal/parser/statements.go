package parser

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/types"
)

// isBlockFollow reports whether the current token terminates a
// statement list without being consumed by it.
func (p *Parser) isBlockFollow() bool {
	switch p.cur.Type {
	case token.EOS, token.END, token.ELSE, token.ELSEIF, token.UNTIL:
		return true
	}
	return false
}

// parseStatList implements `statlist := (stat)* (return_stat)?`, parsed
// directly into whatever scope is already open;
// callers that need a fresh nested scope use parseBlock instead.
func (p *Parser) parseStatList() []ast.Statement {
	var stmts []ast.Statement
	for !p.isBlockFollow() {
		if p.curIs(token.RETURN) {
			stmts = append(stmts, p.parseReturnStmt())
			break
		}
		if !p.enterRecursion() {
			return nil
		}
		stmt := p.parseStatement()
		p.leaveRecursion()
		if p.failing() {
			return nil
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// parseBlock opens a fresh nested scope, parses a statement list into
// it, and closes it again (`block := statlist`, which introduces a new
// scope). Function bodies do not use this: their first scope already
// serves as MainBlock, so their top-level statement list is parsed with
// parseStatList directly.
func (p *Parser) parseBlock() []ast.Statement {
	p.openScope()
	stmts := p.parseStatList()
	p.closeScope()
	return stmts
}

// parseStatement dispatches on the current token to one of the
// statement productions. A bare ';' is consumed and produces no node.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.Type(';'):
		p.advance()
		return nil
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.DO:
		return p.parseDoStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.REPEAT:
		return p.parseRepeatStmt()
	case token.FUNCTION:
		return p.parseFunctionStmt()
	case token.LOCAL:
		return p.parseLocalStmt()
	case token.DBCOLON:
		return p.parseLabelStmt()
	case token.BREAK:
		return p.parseBreakStmt()
	case token.GOTO:
		return p.parseGotoStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseReturnStmt implements `return [explist] [';']`; it is always the
// terminal statement of the list that invoked it.
func (p *Parser) parseReturnStmt() ast.Statement {
	tok := p.cur
	p.advance()
	var exprs []ast.Expression
	if !p.isBlockFollow() && !p.curIs(token.Type(';')) {
		exprs = p.parseExprList()
		if p.failing() {
			return nil
		}
	}
	if p.curIs(token.Type(';')) {
		p.advance()
	}
	return &ast.ReturnStmt{StmtBase: ast.StmtBase{Token: tok}, Exprs: exprs}
}

// parseLabelStmt implements `'::' name '::'`.
func (p *Parser) parseLabelStmt() ast.Statement {
	tok := p.cur
	p.advance() // '::'
	if !p.curIs(token.NAME) {
		p.fail(p.cur, "expected label name")
		return nil
	}
	name := p.intern(p.cur.SemInfo.StrVal)
	p.advance()
	if !p.expect(token.DBCOLON) {
		return nil
	}
	sym := p.declareLabel(name)
	return &ast.LabelStmt{StmtBase: ast.StmtBase{Token: tok}, Sym: sym}
}

// parseGotoStmt implements `'goto' name`.
func (p *Parser) parseGotoStmt() ast.Statement {
	tok := p.cur
	p.advance()
	if !p.curIs(token.NAME) {
		p.fail(p.cur, "expected label name after 'goto'")
		return nil
	}
	name := p.intern(p.cur.SemInfo.StrVal)
	p.advance()
	return &ast.GotoStmt{StmtBase: ast.StmtBase{Token: tok}, Name: name}
}

// parseBreakStmt desugars `break` into a goto targeting a reserved
// "break" label name, rather than introducing a distinct AST statement
// kind, matching the grammar's treatment of it as one more `stat`
// alternative with goto-like (unresolved-target) semantics. Resolving
// the implicit target to the nearest enclosing loop's exit point is
// left to a later pass, exactly as ordinary goto targets are.
func (p *Parser) parseBreakStmt() ast.Statement {
	tok := p.cur
	p.advance()
	return &ast.GotoStmt{StmtBase: ast.StmtBase{Token: tok}, Name: p.intern("break")}
}

// parseDoStmt implements `'do' block 'end'`.
func (p *Parser) parseDoStmt() ast.Statement {
	tok := p.cur
	p.advance()
	body := p.parseBlock()
	if p.failing() {
		return nil
	}
	if !p.expect(token.END) {
		return nil
	}
	return &ast.DoStmt{StmtBase: ast.StmtBase{Token: tok}, Body: body}
}

// parseWhileStmt implements `'while' expr 'do' block 'end'`.
func (p *Parser) parseWhileStmt() ast.Statement {
	tok := p.cur
	p.advance()
	cond := p.parseExpression()
	if p.failing() {
		return nil
	}
	if !p.expect(token.DO) {
		return nil
	}
	body := p.parseBlock()
	if p.failing() {
		return nil
	}
	if !p.expect(token.END) {
		return nil
	}
	return &ast.WhileStmt{StmtBase: ast.StmtBase{Token: tok}, Condition: cond, Body: body}
}

// parseRepeatStmt implements `'repeat' statlist 'until' expr`. The
// until-condition is parsed before the loop's scope is closed, so it
// may reference locals the body declared.
func (p *Parser) parseRepeatStmt() ast.Statement {
	tok := p.cur
	p.advance()
	p.openScope()
	body := p.parseStatList()
	if p.failing() {
		p.closeScope()
		return nil
	}
	if !p.expect(token.UNTIL) {
		p.closeScope()
		return nil
	}
	cond := p.parseExpression()
	p.closeScope()
	if p.failing() {
		return nil
	}
	return &ast.RepeatStmt{StmtBase: ast.StmtBase{Token: tok}, Body: body, Condition: cond}
}

// parseIfStmt implements `'if' expr 'then' block ('elseif' expr 'then'
// block)* ('else' block)? 'end'`.
func (p *Parser) parseIfStmt() ast.Statement {
	tok := p.cur
	p.advance() // 'if'
	var clauses []*ast.TestThenBlock
	for {
		ctok := p.cur
		cond := p.parseExpression()
		if p.failing() {
			return nil
		}
		if !p.expect(token.THEN) {
			return nil
		}
		body := p.parseBlock()
		if p.failing() {
			return nil
		}
		clauses = append(clauses, &ast.TestThenBlock{Token: ctok, Condition: cond, Body: body})
		if p.curIs(token.ELSEIF) {
			p.advance()
			continue
		}
		break
	}
	var elseBody []ast.Statement
	if p.curIs(token.ELSE) {
		p.advance()
		elseBody = p.parseBlock()
		if p.failing() {
			return nil
		}
	}
	if !p.expect(token.END) {
		return nil
	}
	return &ast.IfStmt{StmtBase: ast.StmtBase{Token: tok}, Clauses: clauses, Else: elseBody}
}

// parseForStmt reads the shared `'for' name` prefix and dispatches on
// the following token ('=' for numeric, otherwise generic).
func (p *Parser) parseForStmt() ast.Statement {
	tok := p.cur
	p.advance() // 'for'
	if !p.curIs(token.NAME) {
		p.fail(p.cur, "expected name after 'for'")
		return nil
	}
	firstTok := p.cur
	firstName := p.intern(p.cur.SemInfo.StrVal)
	p.advance()
	if p.curIs(token.Type('=')) {
		return p.parseForNumStmt(tok, firstTok, firstName)
	}
	return p.parseForInStmt(tok, firstTok, firstName)
}

// parseForNumStmt implements `name '=' expr ',' expr (',' expr)? 'do'
// block 'end'`. The control variable is declared in its own scope
// around the body.
func (p *Parser) parseForNumStmt(tok, nameTok token.Token, name *strintern.String) ast.Statement {
	p.advance() // '='
	start := p.parseExpression()
	if p.failing() {
		return nil
	}
	if !p.expect(token.Type(',')) {
		return nil
	}
	limit := p.parseExpression()
	if p.failing() {
		return nil
	}
	var step ast.Expression
	if p.curIs(token.Type(',')) {
		p.advance()
		step = p.parseExpression()
		if p.failing() {
			return nil
		}
	}
	if !p.expect(token.DO) {
		return nil
	}
	p.openScope()
	sym := p.declareLocal(nameTok, name, types.Any)
	if p.failing() {
		p.closeScope()
		return nil
	}
	body := p.parseStatList()
	p.closeScope()
	if p.failing() {
		return nil
	}
	if !p.expect(token.END) {
		return nil
	}
	return &ast.ForNumStmt{StmtBase: ast.StmtBase{Token: tok}, Sym: sym, Start: start, Limit: limit, Step: step, Body: body}
}

// parseForInStmt implements `name (',' name)* 'in' explist 'do' block
// 'end'`. All control variables share one dedicated scope around the
// body.
func (p *Parser) parseForInStmt(tok, nameTok token.Token, name *strintern.String) ast.Statement {
	names := []*strintern.String{name}
	nameToks := []token.Token{nameTok}
	for p.curIs(token.Type(',')) {
		p.advance()
		if !p.curIs(token.NAME) {
			p.fail(p.cur, "expected name in for-in variable list")
			return nil
		}
		nameToks = append(nameToks, p.cur)
		names = append(names, p.intern(p.cur.SemInfo.StrVal))
		p.advance()
	}
	if !p.expect(token.IN) {
		return nil
	}
	exprs := p.parseExprList()
	if p.failing() {
		return nil
	}
	if !p.expect(token.DO) {
		return nil
	}
	p.openScope()
	syms := make([]*ast.Symbol, 0, len(names))
	for i, n := range names {
		sym := p.declareLocal(nameToks[i], n, types.Any)
		if p.failing() {
			p.closeScope()
			return nil
		}
		syms = append(syms, sym)
	}
	body := p.parseStatList()
	p.closeScope()
	if p.failing() {
		return nil
	}
	if !p.expect(token.END) {
		return nil
	}
	return &ast.ForInStmt{StmtBase: ast.StmtBase{Token: tok}, Symbols: syms, Exprs: exprs, Body: body}
}

// parseFunctionStmt implements `'function' funcname funcbody` sugar.
func (p *Parser) parseFunctionStmt() ast.Statement {
	tok := p.cur
	p.advance() // 'function'
	path, method := p.parseFuncName()
	if p.failing() {
		return nil
	}
	fn := p.parseFuncBody(tok, method != nil)
	if p.failing() {
		return nil
	}
	return &ast.FunctionStmt{StmtBase: ast.StmtBase{Token: tok}, Path: path, MethodName: method, Func: fn}
}

// parseLocalStmt implements `'local'` followed by either the
// `'function' name funcbody` sugar or a plain name-declaration list.
func (p *Parser) parseLocalStmt() ast.Statement {
	tok := p.cur
	p.advance() // 'local'
	if p.curIs(token.FUNCTION) {
		return p.parseLocalFunctionStmt(tok)
	}
	return p.parseLocalVarStmt(tok)
}

// parseLocalFunctionStmt implements `'local' 'function' name funcbody`.
// The name is declared before the body is parsed so the function can
// call itself recursively (matching the mainstream interpreter's
// treatment of this one case, the sole exception to "locals are visible
// only after their declaring statement ends").
func (p *Parser) parseLocalFunctionStmt(tok token.Token) ast.Statement {
	ftok := p.cur
	p.advance() // 'function'
	if !p.curIs(token.NAME) {
		p.fail(p.cur, "expected function name after 'local function'")
		return nil
	}
	nameTok := p.cur
	name := p.intern(p.cur.SemInfo.StrVal)
	p.advance()
	sym := p.declareLocal(nameTok, name, types.Type{Tag: types.FUNCTION})
	if p.failing() {
		return nil
	}
	fn := p.parseFuncBody(ftok, false)
	if p.failing() {
		return nil
	}
	return &ast.LocalStmt{
		StmtBase: ast.StmtBase{Token: tok},
		Symbols:  []*ast.Symbol{sym},
		Exprs:    []ast.Expression{fn},
	}
}

// parseLocalVarStmt implements the plain `'local' name_decl_list ['='
// explist]` form. Any RHS expressions are parsed and resolved before the
// new locals are declared, so e.g. `local x = x` resolves its RHS `x`
// to an outer binding.
func (p *Parser) parseLocalVarStmt(tok token.Token) ast.Statement {
	var names []*strintern.String
	var nameToks []token.Token
	var decTypes []types.Type
	for {
		if !p.curIs(token.NAME) {
			p.fail(p.cur, "expected variable name")
			return nil
		}
		nameToks = append(nameToks, p.cur)
		names = append(names, p.intern(p.cur.SemInfo.StrVal))
		p.advance()
		t := p.parseOptionalTypeAnnotation()
		if p.failing() {
			return nil
		}
		decTypes = append(decTypes, t)
		if !p.curIs(token.Type(',')) {
			break
		}
		p.advance()
	}
	var exprs []ast.Expression
	if p.curIs(token.Type('=')) {
		p.advance()
		exprs = p.parseExprList()
		if p.failing() {
			return nil
		}
	}
	syms := make([]*ast.Symbol, 0, len(names))
	for i, n := range names {
		sym := p.declareLocal(nameToks[i], n, decTypes[i])
		if p.failing() {
			return nil
		}
		syms = append(syms, sym)
	}
	return &ast.LocalStmt{StmtBase: ast.StmtBase{Token: tok}, Symbols: syms, Exprs: exprs}
}

// parseExprStmt implements the expression-statement: either a
// multi-assignment (one or more suffixed expressions, '=', an
// expression list) or a single suffixed expression standing alone as a
// call statement. Whether a no-assignment form is actually a function
// call is left to a later semantic pass.
func (p *Parser) parseExprStmt() ast.Statement {
	tok := p.cur
	first := p.parseSuffixedExpr()
	if p.failing() {
		return nil
	}
	lhs := []ast.Expression{first}
	for p.curIs(token.Type(',')) {
		p.advance()
		e := p.parseSuffixedExpr()
		if p.failing() {
			return nil
		}
		lhs = append(lhs, e)
	}
	if p.curIs(token.Type('=')) {
		p.advance()
		rhs := p.parseExprList()
		if p.failing() {
			return nil
		}
		return &ast.ExprStmt{StmtBase: ast.StmtBase{Token: tok}, Lhs: lhs, Rhs: rhs}
	}
	if len(lhs) != 1 {
		p.fail(tok, "syntax error: unexpected ','")
		return nil
	}
	return &ast.ExprStmt{StmtBase: ast.StmtBase{Token: tok}, Rhs: lhs}
}
