package lang_test

import (
	"strings"
	"testing"

	"github.com/abrishk26/rlox/lang"
	"github.com/stretchr/testify/assert"
)

func TestLib(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"print", "println", "input", "clock"} {
		item, ok := lang.Lib[name]
		assert.True(ok, name)
		assert.Equal(name, item.Name)
		assert.NotEmpty(item.Desc)
		assert.True(strings.HasPrefix(item.Signature, name))
	}
}

func TestDoc(t *testing.T) {
	assert := assert.New(t)

	doc := lang.Lib["println"].Doc()
	assert.True(strings.HasPrefix(doc, "```rlox\nprintln(values...)\n```"))
	assert.Contains(doc, "newline")
}

func TestKeywordsMatchScanner(t *testing.T) {
	want := []string{
		"and", "class", "else", "false", "fun", "for", "if", "nil", "or",
		"return", "super", "this", "true", "var", "while",
	}
	assert.Len(t, lang.Keywords, len(want))
	for _, keyword := range want {
		assert.Contains(t, lang.Keywords, keyword)
	}
}
