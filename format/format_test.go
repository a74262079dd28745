package format_test

import (
	"context"
	"testing"

	"github.com/abrishk26/rlox/format"
	"github.com/abrishk26/rlox/parser"
	"github.com/abrishk26/rlox/protocol"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
)

func TestGetIndentationEdits(t *testing.T) {
	assert := assert.New(t)

	sourceCode := []byte(`fun add(a, b) {
  return a + b;
}
println(add(1, 2));`)
	rootNode, err := sitter.ParseCtx(context.Background(), sourceCode, parser.GetLanguage())
	assert.NoError(err)

	want := []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 0},
				End:   protocol.Position{Line: 1, Character: 2},
			},
			NewText: "    ",
		},
	}
	assert.Equal(want, format.GetIndentationEdits(rootNode))
}

func TestGetIndentationEditsFormatted(t *testing.T) {
	assert := assert.New(t)

	sourceCode := []byte(`var total = 0;
while (total < 3) {
    total = total + 1;
}`)
	rootNode, err := sitter.ParseCtx(context.Background(), sourceCode, parser.GetLanguage())
	assert.NoError(err)

	assert.Empty(format.GetIndentationEdits(rootNode))
}

func TestGetTrailingWhitespaceEdits(t *testing.T) {
	assert := assert.New(t)

	sourceCode := []byte("var x = 1;   \nvar y = 2;\nprintln(x + y);\t\n")
	want := []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 10},
				End:   protocol.Position{Line: 0, Character: 13},
			},
		},
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 2, Character: 15},
				End:   protocol.Position{Line: 2, Character: 16},
			},
		},
	}
	assert.Equal(want, format.GetTrailingWhitespaceEdits(sourceCode))
}

func TestGetTrailingWhitespaceEditsClean(t *testing.T) {
	assert.Empty(t, format.GetTrailingWhitespaceEdits([]byte("var x = 1;\n")))
}
