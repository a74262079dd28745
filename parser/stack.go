package parser

import sitter "github.com/smacker/go-tree-sitter"

// LIFO stack of syntax tree nodes for iterative tree walks.
type Stack struct {
	items []*sitter.Node
}

func NewStack() Stack {
	return Stack{}
}

func (s *Stack) Push(node *sitter.Node) {
	s.items = append(s.items, node)
}

// Pops the top node off of the stack. The second return value is false when
// the stack is empty.
func (s *Stack) Pop() (*sitter.Node, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	node := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return node, true
}

func (s *Stack) HasItems() bool {
	return len(s.items) > 0
}
