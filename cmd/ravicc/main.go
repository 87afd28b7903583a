// Command ravicc is the CLI harness for the compiler front-end: it
// parses a source file (or stdin), optionally lowers and prints the
// resulting AST, and reports a single fatal diagnostic on failure.
//
// Grounded on _examples/funvibe-funxy/cmd/funxy/main.go's manual
// os.Args flag scanning (no flag library in the teacher's own CLI) and
// its isatty-gated color handling for diagnostics.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/compiler"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/config"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ravicc [-print] [-lower] [-config path.yaml] [file]")
	fmt.Fprintln(os.Stderr, "  reads from stdin if file is omitted")
}

func main() {
	var (
		doPrint    bool
		doLower    bool
		configPath string
		sourcePath string
	)

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-print", "--print":
			doPrint = true
		case "-lower", "--lower":
			doLower = true
		case "-config", "--config":
			if i+1 >= len(args) {
				usage()
				os.Exit(2)
			}
			i++
			configPath = args[i]
		case "-h", "-help", "--help":
			usage()
			return
		default:
			if sourcePath != "" {
				usage()
				os.Exit(2)
			}
			sourcePath = args[i]
		}
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	displayName := "<stdin>"
	var src []byte
	var err error
	if sourcePath != "" {
		displayName = sourcePath
		src, err = os.ReadFile(sourcePath)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fatal(err)
	}

	state := compiler.NewState(cfg)
	defer state.Destroy()

	if err := state.Parse(string(src), displayName); err != nil {
		fatal(err)
	}

	if doLower {
		if err := state.Lower(); err != nil {
			fatal(err)
		}
		for _, stmt := range state.Lowered.Unlowered {
			fmt.Fprintf(os.Stderr, "%s: warning: for-in loop left unlowered\n", displayName)
			_ = stmt
		}
	}

	if doPrint {
		if err := state.Print(os.Stdout); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	if colorTTY() {
		fmt.Fprintf(os.Stderr, "\x1b[31merror:\x1b[0m %s\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}
	os.Exit(1)
}

func colorTTY() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
