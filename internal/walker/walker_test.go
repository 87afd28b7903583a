package walker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/arena"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/config"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/lexer"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/parser"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/types"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/walker"
)

func parseChunk(t *testing.T, src string) *ast.FunctionExpr {
	t.Helper()
	a := arena.New()
	in := strintern.New(a)
	fn, err := parser.Parse(lexer.New(src), a, in, config.Default(), "test")
	require.Nil(t, err)
	return fn
}

// recorder collects every event kind in the order Walk emits them; the
// tests pair them up themselves (END = START+1).
type recorder struct {
	kinds []walker.EventKind
}

func (r *recorder) HandleEvent(kind walker.EventKind, typ types.Type) {
	r.kinds = append(r.kinds, kind)
}

func (r *recorder) HandleLiteral(kind walker.EventKind, lit walker.LiteralEvent) {
	r.kinds = append(r.kinds, kind)
}

func (r *recorder) HandleUnaryExpr(kind walker.EventKind, typ types.Type, op ast.UnaryOp) {
	r.kinds = append(r.kinds, kind)
}

func (r *recorder) HandleBinaryExpr(kind walker.EventKind, typ types.Type, op ast.BinaryOp) {
	r.kinds = append(r.kinds, kind)
}

func TestWalkBracketsWithStartAndEndChunk(t *testing.T) {
	fn := parseChunk(t, "local x = 1\n")
	r := &recorder{}
	walker.Walk(fn, r)

	require.NotEmpty(t, r.kinds)
	assert.Equal(t, walker.EvStartChunk, r.kinds[0])
	assert.Equal(t, walker.EvEndChunk, r.kinds[len(r.kinds)-1])
}

// Every START event kind k used by the walker for paired events must be
// immediately balanced somewhere by k+1.
func TestEveryStartEventHasMatchingEndSomewhere(t *testing.T) {
	fn := parseChunk(t, `
local function outer(a, b)
  local t = { a, b, 1, 2.5 }
  if a > b then
    return a
  elseif a == b then
    return 0
  else
    return b
  end
  for i = 1, 10 do
    t[i] = -i
  end
  for k, v in pairs(t) do
    print(k, v)
  end
  while a < b do
    a = a + 1
  end
  repeat
    b = b - 1
  until b == 0
  return t.foo, t:bar(1, 2)
end
`)
	r := &recorder{}
	walker.Walk(fn, r)

	counts := map[walker.EventKind]int{}
	for _, k := range r.kinds {
		counts[k]++
	}
	starts := []walker.EventKind{
		walker.EvStartChunk, walker.EvStatementStart, walker.EvSuffixedExpressionStart,
		walker.EvPrimaryExpressionStart, walker.EvBinaryExpressionStart, walker.EvUnaryExpressionStart,
		walker.EvFunctionCallStart, walker.EvFunctionArgStart, walker.EvReturnExprStart,
		walker.EvLocalRhsExprStart, walker.EvForNumExpressionStart, walker.EvForInExpressionStart,
		walker.EvIndexedAssignStart, walker.EvIndexStart, walker.EvValueStart, walker.EvYIndexStart,
		walker.EvStartTableConstructor,
	}
	for _, start := range starts {
		if counts[start] == 0 {
			continue
		}
		assert.Equalf(t, counts[start], counts[start+1], "event kind %v start/end count mismatch", start)
	}
}

func TestUnaryAndBinaryExprCarryTheirOperator(t *testing.T) {
	fn := parseChunk(t, "local x = -1 + 2\n")
	var sawUnary, sawBinary bool

	v := &opRecorder{}
	walker.Walk(fn, v)
	for _, op := range v.unaryOps {
		sawUnary = sawUnary || op == ast.OpMinus
	}
	for _, op := range v.binaryOps {
		sawBinary = sawBinary || op == ast.OpAdd
	}
	assert.True(t, sawUnary)
	assert.True(t, sawBinary)
}

type opRecorder struct {
	unaryOps  []ast.UnaryOp
	binaryOps []ast.BinaryOp
}

func (o *opRecorder) HandleEvent(kind walker.EventKind, typ types.Type) {}
func (o *opRecorder) HandleLiteral(kind walker.EventKind, lit walker.LiteralEvent) {}
func (o *opRecorder) HandleUnaryExpr(kind walker.EventKind, typ types.Type, op ast.UnaryOp) {
	if kind == walker.EvUnaryExpressionStart {
		o.unaryOps = append(o.unaryOps, op)
	}
}
func (o *opRecorder) HandleBinaryExpr(kind walker.EventKind, typ types.Type, op ast.BinaryOp) {
	if kind == walker.EvBinaryExpressionStart {
		o.binaryOps = append(o.binaryOps, op)
	}
}

func TestLiteralEventsCarryValues(t *testing.T) {
	fn := parseChunk(t, "local a, b, c, d = 1, 2.5, true, 'hi'\n")
	lits := &literalRecorder{}
	walker.Walk(fn, lits)

	require.Len(t, lits.events, 4)
	assert.Equal(t, int64(1), lits.events[0].IntVal)
	assert.Equal(t, 2.5, lits.events[1].FltVal)
	assert.True(t, lits.events[2].BoolVal)
	assert.Equal(t, "hi", lits.events[3].StrVal.Value)
}

type literalRecorder struct {
	events []walker.LiteralEvent
}

func (l *literalRecorder) HandleEvent(kind walker.EventKind, typ types.Type) {}
func (l *literalRecorder) HandleLiteral(kind walker.EventKind, lit walker.LiteralEvent) {
	if kind == walker.EvLiteral {
		l.events = append(l.events, lit)
	}
}
func (l *literalRecorder) HandleUnaryExpr(kind walker.EventKind, typ types.Type, op ast.UnaryOp)    {}
func (l *literalRecorder) HandleBinaryExpr(kind walker.EventKind, typ types.Type, op ast.BinaryOp) {}

func TestForInStatementWalksExprsAndBody(t *testing.T) {
	fn := parseChunk(t, `
for k, v in pairs(t) do
  print(k)
end
`)
	r := &recorder{}
	walker.Walk(fn, r)

	var sawForIn, sawFnCall bool
	for _, k := range r.kinds {
		if k == walker.EvForInExpressionStart {
			sawForIn = true
		}
		if k == walker.EvFunctionCallStart {
			sawFnCall = true
		}
	}
	assert.True(t, sawForIn)
	assert.True(t, sawFnCall)
}
