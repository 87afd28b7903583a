package parser

import (
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/types"
)

// parseOptionalTypeAnnotation parses the `(':' type_spec)?` suffix of a
// local declaration, defaulting to ANY when absent.
func (p *Parser) parseOptionalTypeAnnotation() types.Type {
	if !p.curIs(token.Type(':')) {
		return types.Any
	}
	p.advance()
	return p.parseTypeSpec()
}

// parseTypeSpec parses a type_spec: one of the canonical scalar keywords
// (optionally followed by `[]` for integer/number array types) or a
// dotted user-type identifier.
func (p *Parser) parseTypeSpec() types.Type {
	if !p.curIs(token.NAME) {
		p.fail(p.cur, "expected a type name, got %s", p.cur.Type.String())
		return types.Any
	}
	tok := p.cur
	first := p.cur.SemInfo.StrVal
	p.advance()

	if t, ok := types.FromKeyword(first); ok {
		if t.Tag == types.INTEGER || t.Tag == types.FLOAT {
			if p.curIs(token.Type('[')) && p.peekIs(token.Type(']')) {
				p.advance()
				p.advance()
				arr, _ := types.ArrayOf(t.Tag)
				return arr
			}
		}
		return t
	}

	name := first
	for p.curIs(token.Type('.')) {
		p.advance()
		if !p.curIs(token.NAME) {
			p.fail(p.cur, "expected identifier after '.' in type name")
			return types.Any
		}
		name += "." + p.cur.SemInfo.StrVal
		p.advance()
	}
	if len(name) > p.cfg.MaxUserTypeNameLen {
		p.fail(tok, "user type name %q exceeds the %d-character limit", name, p.cfg.MaxUserTypeNameLen)
		return types.Any
	}
	return types.UserData(name)
}
