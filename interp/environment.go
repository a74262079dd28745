package interp

// Environment is a lexical scope mapping names to values, chained to the
// scope that encloses it.
type Environment struct {
	values    map[string]Object
	enclosing *Environment
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]Object), enclosing: enclosing}
}

// Define binds a name in this scope, shadowing any enclosing binding.
func (e *Environment) Define(name string, value Object) {
	e.values[name] = value
}

// Get looks a name up through the enclosing chain.
func (e *Environment) Get(name Token) (Object, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, RuntimeError{Token: name, Message: "Undefined variable."}
}

// Assign sets an existing binding, searching through the enclosing chain.
func (e *Environment) Assign(name Token, value Object) (Object, error) {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return nil, RuntimeError{Token: name, Message: "Undefined variable."}
}

// GetAt reads a binding a known number of scopes up the chain. The distance
// comes from the resolver which has already proven the binding exists.
func (e *Environment) GetAt(distance int, name Token) (Object, error) {
	return e.ancestor(distance).Get(name)
}

func (e *Environment) AssignAt(distance int, name Token, value Object) (Object, error) {
	return e.ancestor(distance).Assign(name, value)
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance && env.enclosing != nil; i++ {
		env = env.enclosing
	}
	return env
}
