package interp_test

import (
	"testing"

	"github.com/abrishk26/rlox/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveErrors(t *testing.T) {
	type TestCase struct {
		Desc   string
		Source string
		Want   string
	}
	testCases := []TestCase{
		{
			Desc: "duplicate declaration in scope",
			Source: `{
    var a = 1;
    var a = 2;
}`,
			Want: "Already a variable with this name in this scope. [Line: 3]",
		},
		{
			Desc: "variable read in its own initializer",
			Source: `{
    var a = a;
}`,
			Want: "Can't read local variable in its own initializer. [Line: 2]",
		},
		{
			Desc:   "return at top level",
			Source: `return 1;`,
			Want:   "Can't return from top-level code. [Line: 1]",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.Desc, func(t *testing.T) {
			_, errs := interp.Check(testCase.Source)
			require.Len(t, errs, 1)
			assert.Equal(t, testCase.Want, errs[0].Error())
		})
	}
}

func TestResolveAllows(t *testing.T) {
	type TestCase struct {
		Desc   string
		Source string
	}
	testCases := []TestCase{
		{
			Desc: "shadowing across scopes",
			Source: `var a = 1;
{
    var a = 2;
}`,
		},
		{
			Desc: "duplicate declaration at global scope",
			Source: `var a = 1;
var a = 2;`,
		},
		{
			Desc:   "return inside a function",
			Source: `fun f() { return 1; }`,
		},
		{
			Desc: "parameters are scoped to the function",
			Source: `fun f(a) { return a; }
fun g(a) { return a; }`,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.Desc, func(t *testing.T) {
			_, errs := interp.Check(testCase.Source)
			assert.Empty(t, errs)
		})
	}
}
