package ast

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
)

// ReturnStmt is `return [explist]`; must be the last statement in a
// block.
type ReturnStmt struct {
	StmtBase
	Exprs []Expression
}

// LocalStmt is `local name_decl_list [= explist]`. Symbols are only
// visible in the enclosing scope after this statement. `local function
// name funcbody` is also a LocalStmt, with one symbol and the function as
// its one expression; that symbol is visible inside the function body.
type LocalStmt struct {
	StmtBase
	Symbols []*Symbol
	Exprs   []Expression
}

// FunctionStmt is `function funcname funcbody` sugar: funcname is a
// dotted path with an optional trailing method name.
type FunctionStmt struct {
	StmtBase
	Path       []*strintern.String
	MethodName *strintern.String // non-nil for `function T:m()`
	Func       *FunctionExpr
}

// LabelStmt is `::name::`.
type LabelStmt struct {
	StmtBase
	Sym *Symbol
}

// GotoStmt is `goto name`.
type GotoStmt struct {
	StmtBase
	Name *strintern.String
}

// DoStmt is a `do ... end` block, introducing its own scope.
type DoStmt struct {
	StmtBase
	Body []Statement
}

// ExprStmt is an expression-statement. When Lhs is empty, Rhs holds
// exactly one suffixed expression that must be a function call (checked
// by a later semantic pass, not here); otherwise it is a
// multi-assignment, Lhs = Rhs element-wise.
type ExprStmt struct {
	StmtBase
	Lhs []Expression
	Rhs []Expression
}

// TestThenBlock is one `(condition, then-body)` pair of an if/elseif
// chain. It is not itself a Statement; IfStmt owns a list of these.
type TestThenBlock struct {
	Token     token.Token
	Condition Expression
	Body      []Statement
}

// IfStmt is `if`/`elseif`*/`else`? — a non-empty chain of condition/body
// pairs followed by an optional else block.
type IfStmt struct {
	StmtBase
	Clauses []*TestThenBlock
	Else    []Statement // nil when there is no else clause
}

// WhileStmt is `while condition do body end`.
type WhileStmt struct {
	StmtBase
	Condition Expression
	Body      []Statement
}

// RepeatStmt is `repeat body until condition`. The condition is parsed
// inside the loop body's scope, so it may reference locals the body
// declares.
type RepeatStmt struct {
	StmtBase
	Body      []Statement
	Condition Expression
}

// ForNumStmt is the numeric `for name = init, limit[, step] do body end`
// form. Step is nil when omitted. Sym is a fresh LOCAL of type ANY
// scoped to the loop.
type ForNumStmt struct {
	StmtBase
	Sym          *Symbol
	Start, Limit Expression
	Step         Expression
	Body         []Statement
}

// ForInStmt is the generic `for name(, name)* in explist do body end`
// form. A dedicated scope holds Symbols.
type ForInStmt struct {
	StmtBase
	Symbols []*Symbol
	Exprs   []Expression
	Body    []Statement
}
