package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
)

func TestLookupIdentClassifiesKeywords(t *testing.T) {
	assert.Equal(t, token.LOCAL, token.LookupIdent("local"))
	assert.Equal(t, token.FUNCTION, token.LookupIdent("function"))
	assert.Equal(t, token.NAME, token.LookupIdent("notakeyword"))
}

func TestNamedTokensStartAtOffset(t *testing.T) {
	assert.True(t, token.AND >= token.TokenOffset)
	assert.True(t, token.Type('+') < token.TokenOffset)
}

func TestIsReservedCoversOnlyKeywordRange(t *testing.T) {
	assert.True(t, token.LOCAL.IsReserved())
	assert.True(t, token.WHILE.IsReserved())
	assert.False(t, token.NAME.IsReserved())
	assert.False(t, token.EOS.IsReserved())
}

func TestTypeStringRendersPunctuationAsItself(t *testing.T) {
	assert.Equal(t, "+", token.Type('+').String())
}

func TestTypeStringRendersKeywords(t *testing.T) {
	assert.Equal(t, "local", token.LOCAL.String())
	assert.Equal(t, "@integer", token.TO_INTEGER.String())
}

func TestTokenStringIncludesPositionAndLexeme(t *testing.T) {
	tok := token.Token{Type: token.NAME, Lexeme: "x", Line: 3, Column: 7}
	s := tok.String()
	assert.True(t, strings.Contains(s, "x"))
	assert.True(t, strings.Contains(s, "3:7"))
}
