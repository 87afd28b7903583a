package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/arena"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/config"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/lexer"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/parser"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/printer"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
)

func mustPrint(t *testing.T, src string) string {
	t.Helper()
	a := arena.New()
	in := strintern.New(a)
	fn, err := parser.Parse(lexer.New(src), a, in, config.Default(), "test")
	require.Nil(t, err)
	return printer.Print(fn)
}

func TestPrintIsDeterministicAcrossRuns(t *testing.T) {
	src := "local x, y = 1, 2\nreturn x + y\n"
	out1 := mustPrint(t, src)
	out2 := mustPrint(t, src)
	assert.Equal(t, out1, out2)
}

func TestPrintIncludesLocalsAndUpvaluesSections(t *testing.T) {
	out := mustPrint(t, `
local function outer()
  local a = 1
  local function inner()
    return a
  end
  return inner
end
`)
	assert.Contains(t, out, "-- locals")
	assert.Contains(t, out, "-- upvalues")
}

func TestPrintRendersLiterals(t *testing.T) {
	out := mustPrint(t, "local a, b, c, d = 1, 2.5, true, 'hi'\n")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "'hi'")
}

func TestPrintRendersControlFlowKeywords(t *testing.T) {
	out := mustPrint(t, `
if x then
  return 1
elseif y then
  return 2
else
  return 3
end
`)
	assert.True(t, strings.Contains(out, "if"))
	assert.True(t, strings.Contains(out, "elseif"))
	assert.True(t, strings.Contains(out, "else"))
}

func TestPrintIndentsNestedBlocksDeeper(t *testing.T) {
	out := mustPrint(t, `
while x do
  if y then
    return 1
  end
end
`)
	lines := strings.Split(out, "\n")
	var whileIndent, ifIndent int
	for _, l := range lines {
		trimmed := strings.TrimLeft(l, " ")
		if trimmed == "while" {
			whileIndent = len(l) - len(trimmed)
		}
		if trimmed == "if" {
			ifIndent = len(l) - len(trimmed)
		}
	}
	assert.Greater(t, ifIndent, whileIndent)
}

func TestPrintFunctionStmtShowsDottedPath(t *testing.T) {
	out := mustPrint(t, `
function M.foo()
  return 1
end
`)
	assert.Contains(t, out, "M.foo")
}
