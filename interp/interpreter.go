package interp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// A runtime error carrying the token it occurred at.
type RuntimeError struct {
	Token   Token
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("Runtime Error: %s - [Line: %d]", e.Message, e.Token.Line)
}

// Interpreter is a tree walking evaluator. Output from print/println and
// input for input() go through the writer and reader it was constructed
// with so scripts stay testable.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[Expr]int
	stdout  io.Writer
	stdin   *bufio.Reader
}

func NewInterpreter(stdout io.Writer, stdin io.Reader) *Interpreter {
	globals := NewEnvironment(nil)
	in := &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[Expr]int),
		stdout:  stdout,
		stdin:   bufio.NewReader(stdin),
	}
	for _, native := range natives() {
		globals.Define(native.Name, native)
	}
	return in
}

// Resolve records the lexical distance between a variable use and its
// declaration. Called by the resolver before interpretation.
func (in *Interpreter) Resolve(expr Expr, depth int) {
	in.locals[expr] = depth
}

// Interpret executes the statements in order and stops at the first runtime
// error.
func (in *Interpreter) Interpret(stmts []Stmt) error {
	for _, stmt := range stmts {
		if _, _, err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate evaluates a single expression, used by the REPL.
func (in *Interpreter) Evaluate(expr Expr) (Object, error) {
	return in.evaluate(expr)
}

// execute runs a statement. The second return value reports that a return
// statement fired, the first carries its value up to the enclosing call.
func (in *Interpreter) execute(stmt Stmt) (Object, bool, error) {
	switch s := stmt.(type) {
	case *ExprStmt:
		_, err := in.evaluate(s.Expression)
		return nil, false, err

	case *VarStmt:
		var value Object = NilValue{}
		if s.Initializer != nil {
			var err error
			if value, err = in.evaluate(s.Initializer); err != nil {
				return nil, false, err
			}
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil, false, nil

	case *BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))

	case *IfStmt:
		condition, err := in.evaluate(s.Condition)
		if err != nil {
			return nil, false, err
		}
		if isTruthy(condition) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil, false, nil

	case *WhileStmt:
		for {
			condition, err := in.evaluate(s.Condition)
			if err != nil {
				return nil, false, err
			}
			if !isTruthy(condition) {
				return nil, false, nil
			}
			value, returned, err := in.execute(s.Body)
			if err != nil || returned {
				return value, returned, err
			}
		}

	case *FuncStmt:
		function := Function{
			Name:    s.Name.Lexeme,
			Params:  s.Params,
			Body:    s.Body,
			Closure: in.env,
		}
		in.env.Define(s.Name.Lexeme, function)
		return nil, false, nil

	case *ClassStmt:
		in.env.Define(s.Name.Lexeme, ClassValue{Name: s.Name.Lexeme})
		return nil, false, nil

	case *ReturnStmt:
		var value Object = NilValue{}
		if s.Value != nil {
			var err error
			if value, err = in.evaluate(s.Value); err != nil {
				return nil, false, err
			}
		}
		return value, true, nil
	}
	return nil, false, nil
}

// executeBlock runs statements in the given environment and restores the
// previous one afterwards. A return fired inside the block bubbles up.
func (in *Interpreter) executeBlock(stmts []Stmt, env *Environment) (Object, bool, error) {
	prev := in.env
	in.env = env
	defer func() { in.env = prev }()

	for _, stmt := range stmts {
		value, returned, err := in.execute(stmt)
		if err != nil || returned {
			return value, returned, err
		}
	}
	return nil, false, nil
}

func (in *Interpreter) evaluate(expr Expr) (Object, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil

	case *GroupingExpr:
		return in.evaluate(e.Expression)

	case *VariableExpr:
		return in.lookUpVariable(e.Name, e)

	case *AssignExpr:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			return in.env.AssignAt(distance, e.Name, value)
		}
		return in.globals.Assign(e.Name, value)

	case *LogicalExpr:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == Or {
			if isTruthy(left) {
				return left, nil
			}
		} else {
			if !isTruthy(left) {
				return left, nil
			}
		}
		return in.evaluate(e.Right)

	case *UnaryExpr:
		right, err := in.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Operator.Type {
		case Minus:
			n, ok := right.(Num)
			if !ok {
				return nil, RuntimeError{Token: e.Operator, Message: "operands must be numbers."}
			}
			return -n, nil
		case Bang:
			return Bool(!isTruthy(right)), nil
		}
		return nil, RuntimeError{Token: e.Operator, Message: "unknown unary operator."}

	case *BinaryExpr:
		return in.evaluateBinary(e)

	case *CallExpr:
		return in.evaluateCall(e)

	case *GetExpr:
		object, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*Instance)
		if !ok {
			return nil, RuntimeError{Token: e.Name, Message: "Only instances have properties."}
		}
		return instance.Get(e.Name)

	case *SetExpr:
		object, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*Instance)
		if !ok {
			return nil, RuntimeError{Token: e.Name, Message: "Only instances have fields."}
		}
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		instance.Set(e.Name.Lexeme, value)
		return value, nil
	}
	return nil, fmt.Errorf("unhandled expression %T", expr)
}

func (in *Interpreter) evaluateBinary(e *BinaryExpr) (Object, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	numbers := func() (Num, Num, error) {
		l, lok := left.(Num)
		r, rok := right.(Num)
		if !lok || !rok {
			return 0, 0, RuntimeError{Token: e.Operator, Message: "operands must be two numbers."}
		}
		return l, r, nil
	}

	switch e.Operator.Type {
	case Plus:
		switch l := left.(type) {
		case Num:
			r, ok := right.(Num)
			if !ok {
				return nil, RuntimeError{Token: e.Operator, Message: "operands must be two numbers."}
			}
			return l + r, nil
		case Str:
			r, ok := right.(Str)
			if !ok {
				return nil, RuntimeError{Token: e.Operator, Message: "operands must be two strings."}
			}
			return l + r, nil
		}
		return nil, RuntimeError{Token: e.Operator, Message: "operands must be two numbers or two strings."}
	case Minus:
		l, r, err := numbers()
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case Star:
		l, r, err := numbers()
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case Slash:
		l, r, err := numbers()
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case Greater:
		l, r, err := numbers()
		if err != nil {
			return nil, err
		}
		return Bool(l > r), nil
	case GreaterEqual:
		l, r, err := numbers()
		if err != nil {
			return nil, err
		}
		return Bool(l >= r), nil
	case Less:
		l, r, err := numbers()
		if err != nil {
			return nil, err
		}
		return Bool(l < r), nil
	case LessEqual:
		l, r, err := numbers()
		if err != nil {
			return nil, err
		}
		return Bool(l <= r), nil
	case EqualEqual:
		return Bool(objectsEqual(left, right)), nil
	case BangEqual:
		return Bool(!objectsEqual(left, right)), nil
	}
	return nil, RuntimeError{Token: e.Operator, Message: "unknown binary operator."}
}

func (in *Interpreter) evaluateCall(e *CallExpr) (Object, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Object, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		value, err := in.evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	switch fn := callee.(type) {
	case Function:
		if len(args) != len(fn.Params) {
			return nil, RuntimeError{
				Token:   e.Paren,
				Message: fmt.Sprintf("expect %d arguments, got %d", len(fn.Params), len(args)),
			}
		}
		env := NewEnvironment(fn.Closure)
		for i, param := range fn.Params {
			env.Define(param.Lexeme, args[i])
		}
		value, returned, err := in.executeBlock(fn.Body, env)
		if err != nil {
			return nil, err
		}
		if !returned {
			return NilValue{}, nil
		}
		return value, nil

	case Native:
		return fn.Call(in, e.Paren, args)

	case ClassValue:
		return NewInstance(fn), nil
	}
	return nil, RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
}

func (in *Interpreter) lookUpVariable(name Token, expr Expr) (Object, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.env.GetAt(distance, name)
	}
	return in.globals.Get(name)
}

// Built in functions available in every program.
func natives() []Native {
	return []Native{
		{
			Name: "print",
			Call: func(in *Interpreter, _ Token, args []Object) (Object, error) {
				fmt.Fprint(in.stdout, joinArgs(args))
				return NilValue{}, nil
			},
		},
		{
			Name: "println",
			Call: func(in *Interpreter, _ Token, args []Object) (Object, error) {
				fmt.Fprintln(in.stdout, joinArgs(args))
				return NilValue{}, nil
			},
		},
		{
			Name: "input",
			Call: func(in *Interpreter, name Token, args []Object) (Object, error) {
				if len(args) > 1 {
					return nil, RuntimeError{
						Token:   name,
						Message: fmt.Sprintf("expect 0 or 1 arguments, got %d", len(args)),
					}
				}
				if len(args) == 1 {
					fmt.Fprint(in.stdout, args[0].String())
				}
				line, err := in.stdin.ReadString('\n')
				if err != nil && line == "" {
					return nil, RuntimeError{Token: name, Message: err.Error()}
				}
				return Str(strings.TrimRight(line, "\r\n")), nil
			},
		},
		{
			Name: "clock",
			Call: func(_ *Interpreter, _ Token, _ []Object) (Object, error) {
				return Num(float64(time.Now().UnixMilli()) / 1000), nil
			},
		},
	}
}

// Arguments to print/println are joined by a single space.
func joinArgs(args []Object) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
