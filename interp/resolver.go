package interp

import "fmt"

// A static resolution error with the line it occurred on.
type ResolveError struct {
	Line    int
	Message string
}

func (e ResolveError) Error() string {
	return fmt.Sprintf("%s [Line: %d]", e.Message, e.Line)
}

type functionType int

const (
	functionTypeNone functionType = iota
	functionTypeFunction
)

// Resolver walks the statements before interpretation, binding every
// variable use to the lexical depth of its declaration and rejecting
// programs that misuse scopes.
type Resolver struct {
	scopes          []map[string]bool
	interpreter     *Interpreter
	currentFunction functionType
	errs            []error
}

func NewResolver(interpreter *Interpreter) *Resolver {
	return &Resolver{interpreter: interpreter}
}

// Resolve resolves a whole program and returns every error found.
func (r *Resolver) Resolve(stmts []Stmt) []error {
	r.resolveStmts(stmts)
	return r.errs
}

// ResolveExpr resolves a single expression, as entered at the REPL.
func (r *Resolver) ResolveExpr(expr Expr) []error {
	r.resolveExpr(expr)
	return r.errs
}

func (r *Resolver) resolveStmts(stmts []Stmt) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *ExprStmt:
		r.resolveExpr(s.Expression)

	case *VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *FuncStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionTypeFunction)

	case *ClassStmt:
		r.declare(s.Name)
		r.define(s.Name)
		for _, method := range s.Methods {
			r.resolveFunction(method, functionTypeFunction)
		}

	case *ReturnStmt:
		if r.currentFunction == functionTypeNone {
			r.error(s.Keyword.Line, "Can't return from top-level code.")
			return
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	}
}

func (r *Resolver) resolveExpr(expr Expr) {
	switch e := expr.(type) {
	case *LiteralExpr:

	case *GroupingExpr:
		r.resolveExpr(e.Expression)

	case *UnaryExpr:
		r.resolveExpr(e.Right)

	case *BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.error(e.Name.Line, "Can't read local variable in its own initializer.")
				return
			}
		}
		r.resolveLocal(e, e.Name)

	case *AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *GetExpr:
		r.resolveExpr(e.Object)

	case *SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	}
}

func (r *Resolver) resolveFunction(fn *FuncStmt, t functionType) {
	enclosing := r.currentFunction
	r.currentFunction = t
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.currentFunction = enclosing
}

func (r *Resolver) resolveLocal(expr Expr, name Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interpreter.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
	// Not found in any scope, assumed global.
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.error(name.Line, "Already a variable with this name in this scope.")
		return
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) error(line int, message string) {
	r.errs = append(r.errs, ResolveError{Line: line, Message: message})
}
