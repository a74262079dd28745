package interp

import (
	"fmt"
	"strings"
)

// FormatExpr renders an expression back to readable source-like text with
// explicit grouping, used by the tokens/ast debugging commands and REPL.
func FormatExpr(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		if s, ok := e.Value.(Str); ok {
			return fmt.Sprintf("%q", string(s))
		}
		return e.Value.String()
	case *GroupingExpr:
		return fmt.Sprintf("(%s)", FormatExpr(e.Expression))
	case *UnaryExpr:
		return fmt.Sprintf("(%s%s)", e.Operator.Type, FormatExpr(e.Right))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", FormatExpr(e.Left), e.Operator.Type, FormatExpr(e.Right))
	case *LogicalExpr:
		return fmt.Sprintf("(%s %s %s)", FormatExpr(e.Left), e.Operator.Type, FormatExpr(e.Right))
	case *VariableExpr:
		return e.Name.Lexeme
	case *AssignExpr:
		return fmt.Sprintf("(%s = %s)", e.Name.Lexeme, FormatExpr(e.Value))
	case *CallExpr:
		args := make([]string, len(e.Arguments))
		for i, arg := range e.Arguments {
			args[i] = FormatExpr(arg)
		}
		return fmt.Sprintf("%s(%s)", FormatExpr(e.Callee), strings.Join(args, ", "))
	case *GetExpr:
		return fmt.Sprintf("%s.%s", FormatExpr(e.Object), e.Name.Lexeme)
	case *SetExpr:
		return fmt.Sprintf("(%s.%s = %s)", FormatExpr(e.Object), e.Name.Lexeme, FormatExpr(e.Value))
	}
	return fmt.Sprintf("<%T>", expr)
}

func (t Token) String() string {
	if t.Lexeme != "" && t.Type != EOF {
		return fmt.Sprintf("%s %q [line %d]", t.Type, t.Lexeme, t.Line)
	}
	return fmt.Sprintf("%s [line %d]", t.Type, t.Line)
}
