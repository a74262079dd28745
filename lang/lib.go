// Package lang holds documentation metadata for the rlox language: the
// built in functions available in every program and the reserved keywords.
// The language server uses it for hover and completion content.
package lang

import "github.com/abrishk26/rlox/protocol"

type LibItem struct {
	Name      string
	Signature string
	Desc      string
}

// Lib maps a built in function name to its documentation.
var Lib = map[string]LibItem{
	"print": {
		Name:      "print",
		Signature: "print(values...)",
		Desc:      "Writes the values to standard output joined by single spaces, without a trailing newline.",
	},
	"println": {
		Name:      "println",
		Signature: "println(values...)",
		Desc:      "Writes the values to standard output joined by single spaces, followed by a newline.",
	},
	"input": {
		Name:      "input",
		Signature: "input(prompt?)",
		Desc:      "Reads a line from standard input and returns it without the line terminator. When a prompt is given it is printed first, without a newline.",
	},
	"clock": {
		Name:      "clock",
		Signature: "clock()",
		Desc:      "Returns the number of seconds since the Unix epoch as a number.",
	},
}

// Keywords reserved by the language, with a short description each.
var Keywords = map[string]string{
	"and":    "Logical and, short-circuits when the left operand is falsey.",
	"class":  "Declares a class.",
	"else":   "The branch taken when an if condition is falsey.",
	"false":  "The boolean false literal.",
	"fun":    "Declares a function.",
	"for":    "C style loop with initializer, condition and increment clauses.",
	"if":     "Conditional statement.",
	"nil":    "The absence of a value.",
	"or":     "Logical or, short-circuits when the left operand is truthy.",
	"return": "Returns from the enclosing function, optionally with a value.",
	"super":  "Reserved for superclass access.",
	"this":   "Reserved for instance access.",
	"true":   "The boolean true literal.",
	"var":    "Declares a variable.",
	"while":  "Loops while the condition is truthy.",
}

// Doc renders the hover markdown for a built in function.
func (item LibItem) Doc() string {
	return protocol.CreateDocMarkdownString(item.Signature, item.Desc)
}
