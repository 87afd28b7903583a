// Package config loads the compiler's implementation-defined limits from
// YAML, the way the teacher's internal/ext.Config loads funxy.yaml.
//
// Grounded on _examples/funvibe-funxy/internal/ext/config.go (yaml tags,
// Load-from-path pattern, zero-value-safe defaults) using
// gopkg.in/yaml.v3, which both funxy and nspcc-dev-neo-go depend on.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CompilerConfig holds the implementation-defined limits: MAXVARS
// (excessive local count) and the user-type-name length cap (overlong
// dotted identifiers), plus a recursion-depth guard for the
// recursive-descent parser.
type CompilerConfig struct {
	// MaxVars is MAXVARS: the maximum number of locals one function may
	// declare before the parser reports a syntax error.
	MaxVars int `yaml:"max_vars"`

	// MaxUserTypeNameLen caps the length of a dotted user-type name in a
	// type annotation or `@` cast.
	MaxUserTypeNameLen int `yaml:"max_user_type_name_len"`

	// MaxRecursionDepth caps parseExpression/parseStatement nesting so a
	// pathological input fails with a syntax error instead of a stack
	// overflow.
	MaxRecursionDepth int `yaml:"max_recursion_depth"`
}

// Default returns the limits the original implementation hard-codes.
func Default() CompilerConfig {
	return CompilerConfig{
		MaxVars:            200,
		MaxUserTypeNameLen: 256,
		MaxRecursionDepth:  200,
	}
}

// Load reads a YAML file at path and overlays it onto Default(). Missing
// keys keep their default value.
func Load(path string) (CompilerConfig, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
