package interp_test

import (
	"testing"

	"github.com/abrishk26/rlox/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTokens(t *testing.T) {
	type TestCase struct {
		Desc   string
		Source string
		Want   []interp.TokenType
	}
	testCases := []TestCase{
		{
			Desc:   "variable declaration",
			Source: `var x = 10;`,
			Want: []interp.TokenType{
				interp.Var, interp.Identifier, interp.Equal, interp.Number,
				interp.Semicolon, interp.EOF,
			},
		},
		{
			Desc:   "two character operators",
			Source: `a <= b != c >= d == e`,
			Want: []interp.TokenType{
				interp.Identifier, interp.LessEqual, interp.Identifier,
				interp.BangEqual, interp.Identifier, interp.GreaterEqual,
				interp.Identifier, interp.EqualEqual, interp.Identifier,
				interp.EOF,
			},
		},
		{
			Desc:   "keywords",
			Source: `and class else false fun for if nil or return super this true var while`,
			Want: []interp.TokenType{
				interp.And, interp.Class, interp.Else, interp.False,
				interp.Fun, interp.For, interp.If, interp.Nil, interp.Or,
				interp.Return, interp.Super, interp.This, interp.True,
				interp.Var, interp.While, interp.EOF,
			},
		},
		{
			Desc: "comments are skipped",
			Source: `// a comment
var x;`,
			Want: []interp.TokenType{
				interp.Var, interp.Identifier, interp.Semicolon, interp.EOF,
			},
		},
		{
			Desc:   "keyword prefixed identifier",
			Source: `orange`,
			Want:   []interp.TokenType{interp.Identifier, interp.EOF},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.Desc, func(t *testing.T) {
			tokens, errs := interp.NewScanner(testCase.Source).ScanTokens()
			require.Empty(t, errs)
			got := make([]interp.TokenType, len(tokens))
			for i, token := range tokens {
				got[i] = token.Type
			}
			assert.Equal(t, testCase.Want, got)
		})
	}
}

func TestScanLiterals(t *testing.T) {
	assert := assert.New(t)

	tokens, errs := interp.NewScanner(`"hello" 12.5`).ScanTokens()
	assert.Empty(errs)
	assert.Equal(interp.Str("hello"), tokens[0].Literal)
	assert.Equal("hello", tokens[0].Lexeme)
	assert.Equal(interp.Num(12.5), tokens[1].Literal)
}

func TestScanErrors(t *testing.T) {
	type TestCase struct {
		Desc   string
		Source string
		Want   string
	}
	testCases := []TestCase{
		{
			Desc:   "unexpected character",
			Source: `var x = @;`,
			Want:   "[line: 1] Error: Unexpected character.",
		},
		{
			Desc:   "unterminated string",
			Source: `var s = "oops`,
			Want:   "[line: 1] Error: Unterminated string.",
		},
		{
			Desc: "error on later line",
			Source: `var x = 1;
var y = ~;`,
			Want: "[line: 2] Error: Unexpected character.",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.Desc, func(t *testing.T) {
			_, errs := interp.NewScanner(testCase.Source).ScanTokens()
			require.Len(t, errs, 1)
			assert.Equal(t, testCase.Want, errs[0].Error())
		})
	}
}

// A string literal may span lines, the token keeps the line the string
// ends on.
func TestScanMultilineString(t *testing.T) {
	assert := assert.New(t)

	tokens, errs := interp.NewScanner("\"a\nb\"").ScanTokens()
	assert.Empty(errs)
	assert.Equal(interp.Str("ab"), tokens[0].Literal)
	assert.Equal(2, tokens[0].Line)
}
