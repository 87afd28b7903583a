package compiler_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/ast"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/compiler"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/config"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/types"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/walker"
)

type countingVisitor struct {
	events int
}

func (c *countingVisitor) HandleEvent(kind walker.EventKind, typ types.Type) { c.events++ }
func (c *countingVisitor) HandleLiteral(kind walker.EventKind, lit walker.LiteralEvent) {
	c.events++
}
func (c *countingVisitor) HandleUnaryExpr(kind walker.EventKind, typ types.Type, op ast.UnaryOp) {
	c.events++
}
func (c *countingVisitor) HandleBinaryExpr(kind walker.EventKind, typ types.Type, op ast.BinaryOp) {
	c.events++
}

func TestStateLifecycle(t *testing.T) {
	s := compiler.NewState(config.Default())
	defer s.Destroy()

	require.NoError(t, s.Parse("local x = 1\nreturn x\n", "lifecycle.rvc"))
	require.NoError(t, s.Lower())

	v := &countingVisitor{}
	s.Walk(v)
	assert.Greater(t, v.events, 0)

	var sb strings.Builder
	require.NoError(t, s.Print(&sb))
	assert.Contains(t, sb.String(), "return")
}

func TestLowerBeforeParseFails(t *testing.T) {
	s := compiler.NewState(config.Default())
	defer s.Destroy()
	assert.Error(t, s.Lower())
}

func TestEachStateHasADistinctID(t *testing.T) {
	s1 := compiler.NewState(config.Default())
	s2 := compiler.NewState(config.Default())
	defer s1.Destroy()
	defer s2.Destroy()
	assert.NotEqual(t, s1.ID, s2.ID)
}

func TestInternStringReturnsStableIdentity(t *testing.T) {
	s := compiler.NewState(config.Default())
	defer s.Destroy()

	a := s.InternString([]byte("shared"))
	b := s.InternString([]byte("shared"))
	assert.Same(t, a, b)
}

func TestParseSyntaxErrorLeavesMainFunctionUnset(t *testing.T) {
	s := compiler.NewState(config.Default())
	defer s.Destroy()

	err := s.Parse("local = \n", "bad.rvc")
	assert.Error(t, err)

	var sb strings.Builder
	require.NoError(t, s.Print(&sb))
	assert.Empty(t, sb.String())
}

func TestOperationsPanicAfterDestroy(t *testing.T) {
	s := compiler.NewState(config.Default())
	require.NoError(t, s.Parse("return 1\n", "x.rvc"))
	s.Destroy()
	s.Destroy() // idempotent

	assert.Panics(t, func() { _ = s.Parse("return 1\n", "x.rvc") })
	assert.Panics(t, func() { _ = s.Lower() })
	assert.Panics(t, func() { s.Walk(&countingVisitor{}) })
	assert.Panics(t, func() { var sb strings.Builder; _ = s.Print(&sb) })
	assert.Panics(t, func() { s.InternString([]byte("x")) })
}

func TestAllocsGrowsAsParseProducesNodes(t *testing.T) {
	s := compiler.NewState(config.Default())
	defer s.Destroy()

	before := s.Allocs()
	require.NoError(t, s.Parse("local a, b, c = 1, 2, 3\nreturn a + b + c\n", "allocs.rvc"))
	assert.Greater(t, s.Allocs(), before)
}

func TestLowerReportsUnloweredForInThroughState(t *testing.T) {
	s := compiler.NewState(config.Default())
	defer s.Destroy()

	require.NoError(t, s.Parse("for k in pairs(t) do print(k) end\n", "forin.rvc"))
	require.NoError(t, s.Lower())
	assert.Len(t, s.Lowered.Unlowered, 1)
}
