package tokenize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/layeredspan/token"
	"github.com/vippsas/layeredspan/tokenize"
)

func texts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func tags(toks []token.Token) []token.TextTag {
	out := make([]token.TextTag, len(toks))
	for i, t := range toks {
		out[i] = t.Tag
	}
	return out
}

func TestDefault_Tokenize_WordsAndWhitespace(t *testing.T) {
	var tok tokenize.Default
	toks := tok.Tokenize("Tenant shall not assign")

	assert.Equal(t, []string{"Tenant", " ", "shall", " ", "not", " ", "assign"}, texts(toks))
	assert.Equal(t, []token.TextTag{
		token.Word, token.Whitespace, token.Word, token.Whitespace, token.Word, token.Whitespace, token.Word,
	}, tags(toks))
}

func TestDefault_Tokenize_Numbers(t *testing.T) {
	var tok tokenize.Default
	toks := tok.Tokenize("a 12 3.14 end")
	require.Len(t, toks, 7)
	assert.Equal(t, "12", toks[2].Text)
	assert.Equal(t, token.Number, toks[2].Tag)
	assert.Equal(t, "3.14", toks[4].Text)
	assert.Equal(t, token.Number, toks[4].Tag)
}

func TestDefault_Tokenize_Punctuation(t *testing.T) {
	var tok tokenize.Default
	toks := tok.Tokenize("hi, there.")
	var puncts []string
	for _, tk := range toks {
		if tk.Tag == token.Punctuation {
			puncts = append(puncts, tk.Text)
		}
	}
	assert.Equal(t, []string{",", "."}, puncts)
}

func TestDefault_Tokenize_IndicesAndByteRangesCoverInput(t *testing.T) {
	var tok tokenize.Default
	input := "go fast"
	toks := tok.Tokenize(input)
	require.NotEmpty(t, toks)
	for i, tk := range toks {
		assert.Equal(t, i, tk.Index)
	}
	assert.Equal(t, 0, toks[0].Bytes.Start)
	last := toks[len(toks)-1]
	assert.Equal(t, len(input), last.Bytes.End)
}

func TestDefault_Tokenize_EmptyLine(t *testing.T) {
	var tok tokenize.Default
	assert.Empty(t, tok.Tokenize(""))
}

func TestDefault_Tokenize_UnderscoreIsWordContinuation(t *testing.T) {
	var tok tokenize.Default
	toks := tok.Tokenize("snake_case")
	require.Len(t, toks, 1)
	assert.Equal(t, token.Word, toks[0].Tag)
	assert.Equal(t, "snake_case", toks[0].Text)
}
