package parser_test

import (
	"context"
	"testing"

	rlox "github.com/abrishk26/rlox/parser"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
)

// Verifies that the compiled grammar artifact can be bound into a usable
// parser. If the artifact is malformed or was generated against an
// incompatible runtime version, construction fails here.
func TestCanLoadGrammar(t *testing.T) {
	language := rlox.GetLanguage()
	if language == nil {
		t.Errorf("Error loading Rlox grammar")
		return
	}
	p := sitter.NewParser()
	p.SetLanguage(language)
	tree, err := p.ParseCtx(context.Background(), nil, []byte(""))
	if err != nil || tree == nil {
		t.Errorf("Error loading Rlox grammar")
	}

	// The grammar handle is an immutable process-wide value, loading it
	// again must behave the same.
	if rlox.GetLanguage() == nil {
		t.Errorf("Error loading Rlox grammar")
	}
}

func TestGrammar(t *testing.T) {
	assert := assert.New(t)

	n, err := sitter.ParseCtx(context.Background(), []byte("var answer = 42;"), rlox.GetLanguage())
	assert.NoError(err)
	assert.Equal(
		"(program (var_declaration name: (identifier) value: (number)))",
		n.String(),
	)
}
