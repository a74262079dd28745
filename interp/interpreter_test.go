package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abrishk26/rlox/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	type TestCase struct {
		Desc   string
		Source string
		Stdin  string
		Want   string
	}
	testCases := []TestCase{
		{
			Desc:   "println joins arguments with spaces",
			Source: `println("hello", "world", 42);`,
			Want:   "hello world 42\n",
		},
		{
			Desc:   "print does not append a newline",
			Source: `print("a"); print("b");`,
			Want:   "ab",
		},
		{
			Desc:   "arithmetic precedence",
			Source: `println(1 + 2 * 3 - 4 / 2);`,
			Want:   "5\n",
		},
		{
			Desc:   "comparison chain from the repl example",
			Source: `println(10 * 10 < 900 != false);`,
			Want:   "true\n",
		},
		{
			Desc:   "string concatenation",
			Source: `println("foo" + "bar");`,
			Want:   "foobar\n",
		},
		{
			Desc:   "unary operators",
			Source: `println(-5); println(!nil); println(!!0);`,
			Want:   "-5\ntrue\ntrue\n",
		},
		{
			Desc: "variables and assignment",
			Source: `var x = 1;
x = x + 1;
println(x);`,
			Want: "2\n",
		},
		{
			Desc: "block scoping shadows",
			Source: `var a = "outer";
{
    var a = "inner";
    println(a);
}
println(a);`,
			Want: "inner\nouter\n",
		},
		{
			Desc: "if else",
			Source: `if (1 > 2) { println("then"); } else { println("else"); }`,
			Want: "else\n",
		},
		{
			Desc: "logical operators short circuit",
			Source: `println(nil or "fallback");
println(false and missing());`,
			Want: "fallback\nfalse\n",
		},
		{
			Desc: "while loop",
			Source: `var i = 0;
while (i < 3) {
    println(i);
    i = i + 1;
}`,
			Want: "0\n1\n2\n",
		},
		{
			Desc:   "for loop",
			Source: `for (var i = 0; i < 3; i = i + 1) { print(i); }`,
			Want:   "012",
		},
		{
			Desc: "function call and return",
			Source: `fun add(a, b) { return a + b; }
println(add(1, 2));`,
			Want: "3\n",
		},
		{
			Desc: "function without return yields nil",
			Source: `fun noop() {}
println(noop());`,
			Want: "nil\n",
		},
		{
			Desc: "recursion",
			Source: `fun fib(n) {
    if (n < 2) { return n; }
    return fib(n - 1) + fib(n - 2);
}
println(fib(10));`,
			Want: "55\n",
		},
		{
			Desc: "closures capture their environment",
			Source: `fun makeCounter() {
    var i = 0;
    fun count() {
        i = i + 1;
        println(i);
    }
    return count;
}
var counter = makeCounter();
counter();
counter();`,
			Want: "1\n2\n",
		},
		{
			Desc: "return inside loop",
			Source: `fun firstAbove(limit) {
    for (var i = 0; true; i = i + 1) {
        if (i > limit) { return i; }
    }
}
println(firstAbove(3));`,
			Want: "4\n",
		},
		{
			Desc: "class instances hold fields",
			Source: `class Point {}
var p = Point();
p.x = 1;
p.y = 2;
println(p.x + p.y);
println(p);`,
			Want: "3\nPoint instance\n",
		},
		{
			Desc:   "input reads a line and echoes prompt",
			Source: `println(input("name? "));`,
			Stdin:  "gopher\n",
			Want:   "name? gopher\n",
		},
		{
			Desc:   "value display",
			Source: `println(1.5, true, nil, "s");`,
			Want:   "1.5 true nil s\n",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.Desc, func(t *testing.T) {
			out := bytes.NewBuffer(nil)
			errs := interp.Run(testCase.Source, out, strings.NewReader(testCase.Stdin))
			require.Empty(t, errs)
			assert.Equal(t, testCase.Want, out.String())
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	type TestCase struct {
		Desc   string
		Source string
		Want   string
	}
	testCases := []TestCase{
		{
			Desc:   "adding number and string",
			Source: `1 + "a";`,
			Want:   "Runtime Error: operands must be two numbers. - [Line: 1]",
		},
		{
			Desc:   "adding string and number",
			Source: `"a" + 1;`,
			Want:   "Runtime Error: operands must be two strings. - [Line: 1]",
		},
		{
			Desc:   "adding booleans",
			Source: `true + false;`,
			Want:   "Runtime Error: operands must be two numbers or two strings. - [Line: 1]",
		},
		{
			Desc:   "comparing strings",
			Source: `"a" < "b";`,
			Want:   "Runtime Error: operands must be two numbers. - [Line: 1]",
		},
		{
			Desc:   "negating a string",
			Source: `-"a";`,
			Want:   "Runtime Error: operands must be numbers. - [Line: 1]",
		},
		{
			Desc:   "undefined variable",
			Source: `println(missing);`,
			Want:   "Runtime Error: Undefined variable. - [Line: 1]",
		},
		{
			Desc:   "assigning undefined variable",
			Source: `missing = 1;`,
			Want:   "Runtime Error: Undefined variable. - [Line: 1]",
		},
		{
			Desc:   "calling a non callable",
			Source: `var x = 1; x();`,
			Want:   "Runtime Error: Can only call functions and classes. - [Line: 1]",
		},
		{
			Desc: "arity mismatch",
			Source: `fun one(a) {}
one(1, 2);`,
			Want: "Runtime Error: expect 1 arguments, got 2 - [Line: 2]",
		},
		{
			Desc: "undefined property",
			Source: `class Point {}
var p = Point();
println(p.x);`,
			Want: "Runtime Error: Undefined property x - [Line: 3]",
		},
		{
			Desc:   "property access on non instance",
			Source: `var x = 1; x.field;`,
			Want:   "Runtime Error: Only instances have properties. - [Line: 1]",
		},
		{
			Desc:   "too many input arguments",
			Source: `input("a", "b");`,
			Want:   "Runtime Error: expect 0 or 1 arguments, got 2 - [Line: 1]",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.Desc, func(t *testing.T) {
			out := bytes.NewBuffer(nil)
			errs := interp.Run(testCase.Source, out, strings.NewReader(""))
			require.Len(t, errs, 1)
			assert.Equal(t, testCase.Want, errs[0].Error())
		})
	}
}

// Equality works across value kinds without coercion.
func TestEquality(t *testing.T) {
	out := bytes.NewBuffer(nil)
	errs := interp.Run(`println(1 == 1, 1 == "1", nil == nil, "a" != "b", true == 1);`, out, strings.NewReader(""))
	require.Empty(t, errs)
	assert.Equal(t, "true false true true false\n", out.String())
}
