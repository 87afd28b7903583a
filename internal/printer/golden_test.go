package printer_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/arena"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/config"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/lexer"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/parser"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/printer"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/strintern"
)

// TestPrintMatchesGoldenFixtures drives the printer against every
// "<case>.in"/"<case>.out" pair bundled in testdata/golden.txtar,
// checking its output is deterministic against fixed expected text
// rather than just reflexively against itself.
func TestPrintMatchesGoldenFixtures(t *testing.T) {
	data, err := os.ReadFile("testdata/golden.txtar")
	require.NoError(t, err)
	archive := txtar.Parse(data)

	cases := map[string]string{}
	for _, f := range archive.Files {
		name := strings.TrimSuffix(strings.TrimSuffix(f.Name, ".in"), ".out")
		if strings.HasSuffix(f.Name, ".in") {
			cases[name+".in"] = string(f.Data)
		} else if strings.HasSuffix(f.Name, ".out") {
			cases[name+".out"] = string(f.Data)
		}
	}

	seen := 0
	for _, f := range archive.Files {
		if !strings.HasSuffix(f.Name, ".in") {
			continue
		}
		name := strings.TrimSuffix(f.Name, ".in")
		want, ok := cases[name+".out"]
		require.True(t, ok, "missing %s.out fixture", name)

		a := arena.New()
		in := strintern.New(a)
		fn, perr := parser.Parse(lexer.New(cases[name+".in"]), a, in, config.Default(), name)
		require.Nil(t, perr, "case %s", name)

		got := printer.Print(fn)
		assert.Equal(t, want, got, "case %s", name)
		seen++
	}
	require.Equal(t, 2, seen, "expected exactly the two bundled golden cases")
}
