package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vippsas/layeredspan/token"
)

func TestTextTag_String(t *testing.T) {
	assert.Equal(t, "Word", token.Word.String())
	assert.Equal(t, "Number", token.Number.String())
	assert.Equal(t, "Punctuation", token.Punctuation.String())
	assert.Equal(t, "Whitespace", token.Whitespace.String())
	assert.Equal(t, "Symbol", token.Symbol.String())
}

func TestTextTag_String_OutOfRange(t *testing.T) {
	assert.Equal(t, "TextTag(0)", token.TextTag(0).String())
}

func TestToken_String(t *testing.T) {
	tok := token.Token{Text: "hi", Tag: token.Word}
	assert.Equal(t, `"hi"/Word`, tok.String())
}
