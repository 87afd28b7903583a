// Package lowering implements the single post-parse lowering pass: a
// full tree walk over the for-in loops that a desugaring would rewrite.
// No loop is rewritten; each for-in loop is reported as unlowered.
//
// Grounded on original_source/src/ast_lower.c: a hand-written recursive
// descent over statements/expressions, independent of the event-driven
// walker (internal/walker), exactly mirroring the original's structure
// of two parallel traversal mechanisms. raviX_ast_lower's only rewrite,
// lower_for_in_statement, is an empty function body in the original —
// for-in lowering was never finished upstream. Rather than silently
// leaving that unlowered (which a caller could easily fail to notice),
// Lower reports every for-in statement it could not rewrite in the
// returned Result, so the gap is visible rather than silent.
package lowering

import "github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"

// Result reports what the lowering pass found.
type Result struct {
	// Unlowered holds every for-in statement the pass walked over
	// without being able to rewrite, in traversal order.
	Unlowered []*ast.ForInStmt
}

// Lower walks fn's body and records every for-in statement reachable
// from it (including inside nested function bodies) in
// Result.Unlowered, leaving each one as parsed. It never returns
// an error: an unrewritable for-in loop is reported via Result, not
// treated as a failure, matching the original's behavior of leaving
// the node untouched and continuing.
func Lower(fn *ast.FunctionExpr) Result {
	var r Result
	lowerExpression(fn, &r)
	return r
}

func lowerExpression(e ast.Expression, r *Result) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.FunctionExpr:
		lowerStatementList(n.Body, r)
	case *ast.SuffixedExpr:
		lowerExpression(n.Primary, r)
		for _, s := range n.Suffixes {
			lowerExpression(s, r)
		}
	case *ast.FunctionCallSuffix:
		lowerExpressionList(n.Args, r)
	case *ast.ComputedIndex:
		lowerExpression(n.Key, r)
	case *ast.FieldSelector:
		// no sub-expressions beyond the base, handled by the caller
	case *ast.BinaryExpr:
		lowerExpression(n.Left, r)
		lowerExpression(n.Right, r)
	case *ast.UnaryExpr:
		lowerExpression(n.Expr, r)
	case *ast.IndexedAssign:
		if n.Key != nil {
			lowerExpression(n.Key, r)
		}
		lowerExpression(n.Value, r)
	case *ast.TableConstructor:
		for _, f := range n.Fields {
			lowerExpression(f, r)
		}
	case *ast.SymbolRef, *ast.NilLiteral, *ast.BoolLiteral, *ast.IntegerLiteral,
		*ast.FloatLiteral, *ast.StringLiteral:
		// leaves; nothing to lower
	}
}

func lowerExpressionList(list []ast.Expression, r *Result) {
	for _, e := range list {
		lowerExpression(e, r)
	}
}

func lowerStatementList(list []ast.Statement, r *Result) {
	for _, s := range list {
		lowerStatement(s, r)
	}
}

func lowerStatement(s ast.Statement, r *Result) {
	switch n := s.(type) {
	case *ast.ReturnStmt:
		lowerExpressionList(n.Exprs, r)
	case *ast.LocalStmt:
		lowerExpressionList(n.Exprs, r)
	case *ast.FunctionStmt:
		lowerExpression(n.Func, r)
	case *ast.LabelStmt, *ast.GotoStmt:
		// no sub-nodes
	case *ast.DoStmt:
		lowerStatementList(n.Body, r)
	case *ast.ExprStmt:
		lowerExpressionList(n.Lhs, r)
		lowerExpressionList(n.Rhs, r)
	case *ast.IfStmt:
		for _, c := range n.Clauses {
			lowerExpression(c.Condition, r)
			lowerStatementList(c.Body, r)
		}
		lowerStatementList(n.Else, r)
	case *ast.WhileStmt:
		lowerExpression(n.Condition, r)
		lowerStatementList(n.Body, r)
	case *ast.RepeatStmt:
		lowerStatementList(n.Body, r)
		lowerExpression(n.Condition, r)
	case *ast.ForNumStmt:
		lowerExpression(n.Start, r)
		lowerExpression(n.Limit, r)
		if n.Step != nil {
			lowerExpression(n.Step, r)
		}
		lowerStatementList(n.Body, r)
	case *ast.ForInStmt:
		lowerForInStatement(n, r)
	}
}

// lowerForInStatement is the stub named in original_source/src/ast_lower.c
// (lower_for_in_statement), left empty there too: rewriting for-in loops
// into explicit iterator-protocol calls is not implemented, so the
// statement is recorded as unlowered and otherwise left as parsed.
func lowerForInStatement(n *ast.ForInStmt, r *Result) {
	lowerExpressionList(n.Exprs, r)
	lowerStatementList(n.Body, r)
	r.Unlowered = append(r.Unlowered, n)
}
