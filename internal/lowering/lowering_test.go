package lowering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/arena"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/config"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/lexer"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/lowering"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/parser"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
)

func mustParse(t *testing.T, src string) *lowering.Result {
	t.Helper()
	a := arena.New()
	in := strintern.New(a)
	fn, err := parser.Parse(lexer.New(src), a, in, config.Default(), "test")
	require.Nil(t, err)
	r := lowering.Lower(fn)
	return &r
}

func TestLowerReportsEveryForInAsUnlowered(t *testing.T) {
	r := mustParse(t, `
for k, v in pairs(t) do
  print(k, v)
end
`)
	require.Len(t, r.Unlowered, 1)
}

func TestLowerFindsForInNestedInsideFunctionBodies(t *testing.T) {
	r := mustParse(t, `
local function each(t)
  for k, v in pairs(t) do
    print(k, v)
  end
end
`)
	require.Len(t, r.Unlowered, 1)
}

func TestLowerFindsMultipleForInLoops(t *testing.T) {
	r := mustParse(t, `
for a in f() do
  print(a)
end
for b in g() do
  print(b)
end
`)
	assert.Len(t, r.Unlowered, 2)
}

func TestLowerWithNoForInReportsNothing(t *testing.T) {
	r := mustParse(t, `
local x = 1
while x < 10 do
  x = x + 1
end
return x
`)
	assert.Empty(t, r.Unlowered)
}

func TestLowerDescendsIntoIfAndDoBlocks(t *testing.T) {
	r := mustParse(t, `
do
  if true then
    for k in pairs(t) do
      print(k)
    end
  end
end
`)
	require.Len(t, r.Unlowered, 1)
}
