package interp

import (
	"fmt"
	"strconv"
)

// Object is a runtime rlox value. The concrete types are Num, Str, Bool,
// NilValue, Function, Native, ClassValue and Instance.
type Object interface {
	fmt.Stringer
}

type Num float64

func (n Num) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

type Str string

func (s Str) String() string {
	return string(s)
}

type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// NilValue is the rlox nil value. The zero value is ready to use,
// uninitialised variables hold it.
type NilValue struct{}

func (NilValue) String() string {
	return "nil"
}

// A user defined function together with the environment it closed over.
type Function struct {
	Name    string
	Params  []Token
	Body    []Stmt
	Closure *Environment
}

func (Function) String() string {
	return "<user defined> fn"
}

// A built in function implemented in Go.
type Native struct {
	Name string
	Call func(in *Interpreter, name Token, args []Object) (Object, error)
}

func (Native) String() string {
	return "native fn"
}

type ClassValue struct {
	Name string
}

func (c ClassValue) String() string {
	return c.Name
}

// An instance of an rlox class. Fields are shared between copies so that
// assignments through any reference are visible everywhere.
type Instance struct {
	Class  ClassValue
	fields map[string]Object
}

func NewInstance(class ClassValue) *Instance {
	return &Instance{Class: class, fields: make(map[string]Object)}
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}

func (i *Instance) Get(name Token) (Object, error) {
	if value, ok := i.fields[name.Lexeme]; ok {
		return value, nil
	}
	return nil, RuntimeError{Token: name, Message: fmt.Sprintf("Undefined property %s", name.Lexeme)}
}

func (i *Instance) Set(name string, value Object) {
	i.fields[name] = value
}

// Nil and false are falsey, everything else is truthy.
func isTruthy(o Object) bool {
	switch v := o.(type) {
	case Bool:
		return bool(v)
	case NilValue:
		return false
	case nil:
		return false
	default:
		return true
	}
}

func objectsEqual(left, right Object) bool {
	switch l := left.(type) {
	case Num:
		r, ok := right.(Num)
		return ok && l == r
	case Str:
		r, ok := right.(Str)
		return ok && l == r
	case Bool:
		r, ok := right.(Bool)
		return ok && l == r
	case NilValue:
		_, ok := right.(NilValue)
		return ok
	default:
		return left == right
	}
}
