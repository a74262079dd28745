// Package format produces LSP text edits that normalise the layout of rlox
// source: statement indentation and trailing whitespace.
package format

import (
	"strings"

	"github.com/abrishk26/rlox/parser"
	"github.com/abrishk26/rlox/protocol"
	sitter "github.com/smacker/go-tree-sitter"
)

const indentWidth = 4

// GetIndentationEdits walks the syntax tree and returns an edit for every
// statement whose leading indentation does not match its block depth.
func GetIndentationEdits(node *sitter.Node) []protocol.TextEdit {
	result := []protocol.TextEdit{}
	stack := parser.NewStack()
	stack.Push(node)
	for stack.HasItems() {
		currentNode, _ := stack.Pop()
		if isIndentedNodeType(currentNode.Type()) {
			indentLevel := 0
			currentParent := currentNode.Parent()
			for currentParent != nil {
				if currentParent.Type() == "block" || currentParent.Type() == "class_body" {
					indentLevel++
				}
				currentParent = currentParent.Parent()
			}
			targetIndentation := indentLevel * indentWidth
			currentIndentation := currentNode.StartPoint().Column
			if targetIndentation != int(currentIndentation) {
				result = append(
					result,
					protocol.TextEdit{
						Range: protocol.Range{
							Start: protocol.Position{
								Line:      uint(currentNode.StartPoint().Row),
								Character: 0,
							},
							End: protocol.Position{
								Line:      uint(currentNode.StartPoint().Row),
								Character: uint(currentNode.StartPoint().Column),
							},
						},
						NewText: strings.Repeat(" ", targetIndentation),
					},
				)
			}
		}
		for i := 0; i < int(currentNode.ChildCount()); i++ {
			stack.Push(currentNode.Child(i))
		}
	}
	return result
}

func isIndentedNodeType(nodeType string) bool {
	for _, indentedType := range []string{
		"var_declaration",
		"fun_declaration",
		"class_declaration",
		"if_statement",
		"while_statement",
		"for_statement",
		"return_statement",
		"expression_statement",
	} {
		if nodeType == indentedType {
			return true
		}
	}
	return false
}

// GetTrailingWhitespaceEdits returns an edit removing the trailing spaces
// on every line that has them.
func GetTrailingWhitespaceEdits(sourceCode []byte) []protocol.TextEdit {
	result := []protocol.TextEdit{}
	lines := strings.Split(string(sourceCode), "\n")
	for idx, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if len(trimmed) == len(line) {
			continue
		}
		result = append(
			result,
			protocol.TextEdit{
				Range: protocol.Range{
					Start: protocol.Position{
						Line:      uint(idx),
						Character: uint(len(trimmed)),
					},
					End: protocol.Position{
						Line:      uint(idx),
						Character: uint(len(line)),
					},
				},
			},
		)
	}
	return result
}
