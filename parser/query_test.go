package parser_test

import (
	"context"
	"testing"

	rlox "github.com/abrishk26/rlox/parser"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
)

func TestFindFuncDefinition(t *testing.T) {
	assert := assert.New(t)

	sourceCode := []byte(`var unused = 1;
fun add(a, b) { return a + b; }`)
	want := rlox.Range{
		Start: rlox.Point{Row: 1, Column: 4},
		End:   rlox.Point{Row: 1, Column: 7},
	}
	got, err := rlox.FindFuncDefinition("add", sourceCode)
	assert.NoError(err)
	assert.Equal(want, got)

	_, err = rlox.FindFuncDefinition("missing", sourceCode)
	assert.ErrorIs(err, rlox.ErrNoDefinition)
}

func TestFindVarDefinition(t *testing.T) {
	assert := assert.New(t)

	sourceCode := []byte(`var count = 0;
count = count + 1;`)
	want := rlox.Range{
		Start: rlox.Point{Row: 0, Column: 4},
		End:   rlox.Point{Row: 0, Column: 9},
	}
	got, err := rlox.FindVarDefinition("count", sourceCode)
	assert.NoError(err)
	assert.Equal(want, got)
}

func TestFindIdentifier(t *testing.T) {
	assert := assert.New(t)

	sourceCode := []byte(`var count = 0;
count = count + 1;`)
	n, err := sitter.ParseCtx(context.Background(), sourceCode, rlox.GetLanguage())
	assert.NoError(err)

	got, err := rlox.FindIdentifier(n, sourceCode, 1, 9)
	assert.NoError(err)
	assert.Equal("count", got)

	_, err = rlox.FindIdentifier(n, sourceCode, 1, 6)
	assert.ErrorIs(err, rlox.ErrNoDefinition)
}
