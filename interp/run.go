package interp

import "io"

// Check runs the static half of the pipeline: scan, parse and resolve
// against a throwaway interpreter. The statements are only usable when no
// errors are returned.
func Check(source string) ([]Stmt, []error) {
	stmts, _, errs := analyze(source, NewInterpreter(io.Discard, emptyReader{}))
	return stmts, errs
}

// Run scans, parses, resolves and executes source. Static errors are all
// returned at once, a runtime error is returned alone.
func Run(source string, stdout io.Writer, stdin io.Reader) []error {
	interpreter := NewInterpreter(stdout, stdin)
	stmts, ok, errs := analyze(source, interpreter)
	if !ok {
		return errs
	}
	if err := interpreter.Interpret(stmts); err != nil {
		return []error{err}
	}
	return nil
}

func analyze(source string, interpreter *Interpreter) ([]Stmt, bool, []error) {
	scanner := NewScanner(source)
	tokens, errs := scanner.ScanTokens()
	if len(errs) > 0 {
		return nil, false, errs
	}
	stmts, parseErrs := NewParser(tokens).Parse()
	if len(parseErrs) > 0 {
		return nil, false, parseErrs
	}
	if resolveErrs := NewResolver(interpreter).Resolve(stmts); len(resolveErrs) > 0 {
		return nil, false, resolveErrs
	}
	return stmts, true, nil
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
