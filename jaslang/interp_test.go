package jaslang

import (
	"errors"
	"strings"
	"testing"
)

func run(t *testing.T, input string) Value {
	t.Helper()
	value, err := RunSource("test", input, Options{})
	if err != nil {
		t.Fatalf("%q: %v", input, err)
	}
	return value
}

func runErr(t *testing.T, input string) error {
	t.Helper()
	_, err := RunSource("test", input, Options{})
	if err == nil {
		t.Fatalf("%q: want error", input)
	}
	if !errors.Is(err, ErrRuntime) {
		t.Fatalf("%q: not a runtime error: %v", input, err)
	}
	return err
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{"2 + 3 * 4", float64(14)},
		{"(2 + 3) * 4", float64(20)},
		{"2 ** 3", float64(8)},
		{"(1 + 2) ** (3 - 1)", float64(9)},
		{"10 % 3", float64(1)},
		{"10 / 4", float64(2.5)},
		// right operand reparse makes chains lean right
		{"1 - 2 - 3", float64(2)},
		{"-5", float64(-5)},
		{"-2 + 3", float64(-5)}, // unary takes the full expression
		{"!0", true},
		{"!1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{`"a" == "a"`, true},
		{`"a" == "b"`, false},
		{"1 == \"1\"", false},
		{"null == null", true},
		{"1 < 2", true},
		{"2 <= 2", true},
		{"3 > 4", false},
		{"4 >= 4", true},
	}
	for _, test := range tests {
		got := run(t, test.input)
		if !valuesEqual(got, test.want) {
			t.Fatalf("%q: got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestUnaryMinusNonNumber(t *testing.T) {
	// unary minus on a non-number yields -1, a kept quirk
	if got := run(t, `-"abc"`); got != float64(-1) {
		t.Fatalf("got %v", got)
	}
	if got := run(t, "-null"); got != float64(-1) {
		t.Fatalf("got %v", got)
	}
}

func TestDivisionByZero(t *testing.T) {
	err := runErr(t, "5 / 0")
	if !strings.Contains(err.Error(), "division by zero") {
		t.Fatal(err)
	}
}

func TestInvalidBinaryOperation(t *testing.T) {
	err := runErr(t, `1 + "a"`)
	if !strings.Contains(err.Error(), "invalid binary operation") {
		t.Fatal(err)
	}
}

func TestLastValue(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{"1; 2; 3", float64(3)},
		{"1 + 1;", float64(2)}, // trailing semicolon is void, last value survives
		{"let a = 1", Void{}},  // declarations produce no value
		{";;", Void{}},
		{`"done"`, "done"},
	}
	for _, test := range tests {
		got := run(t, test.input)
		if _, void := test.want.(Void); void {
			if _, ok := got.(Void); !ok {
				t.Fatalf("%q: got %v, want void", test.input, got)
			}
			continue
		}
		if !valuesEqual(got, test.want) {
			t.Fatalf("%q: got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestVariables(t *testing.T) {
	if got := run(t, "let a = 2; let b = 3; a * b"); got != float64(6) {
		t.Fatalf("got %v", got)
	}
	if got := run(t, "let a = 1; a = 5; a"); got != float64(5) {
		t.Fatalf("got %v", got)
	}
	// a mutable declaration without initializer binds null
	if got := run(t, "var a; a"); got != nil {
		t.Fatalf("got %v", got)
	}
	// undefined reads yield null
	if got := run(t, "missing"); got != nil {
		t.Fatalf("got %v", got)
	}
}

func TestAssignmentErrors(t *testing.T) {
	err := runErr(t, "missing = 1")
	if !strings.Contains(err.Error(), "undefined variable") {
		t.Fatal(err)
	}
	err = runErr(t, "const a = 1; a = 2")
	if !strings.Contains(err.Error(), "assignment to constant") {
		t.Fatal(err)
	}
}

func TestBlockScoping(t *testing.T) {
	// inner declarations do not leak; shadowed outer bindings are restored
	got := run(t, `
		let a = 1;
		{
			let a = 2;
			let b = 3;
		}
		a
	`)
	if got != float64(1) {
		t.Fatalf("got %v", got)
	}
	if got := run(t, "{ let b = 3 } b"); got != nil {
		t.Fatalf("leaked: %v", got)
	}
	// assignment inside a block reaches the outer binding
	if got := run(t, "let a = 1; { a = 2 } a"); got != float64(2) {
		t.Fatalf("got %v", got)
	}
}

func TestFunctionCalls(t *testing.T) {
	got := run(t, "function add(a, b) { return a + b } add(2, 3);")
	if got != float64(5) {
		t.Fatalf("got %v", got)
	}
	// no return statement yields null
	if got := run(t, "function f() { 1 + 1 } f()"); got != nil {
		t.Fatalf("got %v", got)
	}
	// bare return yields null
	if got := run(t, "function f() { return; } f()"); got != nil {
		t.Fatalf("got %v", got)
	}
	// return stops the body
	got = run(t, "function f() { return 1; return 2 } f()")
	if got != float64(1) {
		t.Fatalf("got %v", got)
	}
}

func TestCallArgumentMismatch(t *testing.T) {
	// extras are evaluated then dropped, missing parameters stay unbound
	if got := run(t, "function f(a) { return a } f(1, 2, 3)"); got != float64(1) {
		t.Fatalf("got %v", got)
	}
	if got := run(t, "function f(a, b) { return b } f(1)"); got != nil {
		t.Fatalf("got %v", got)
	}
}

func TestCallScopeIsolation(t *testing.T) {
	// parameters do not leak into the caller's scope
	if got := run(t, "function f(p) { return p } f(1); p"); got != nil {
		t.Fatalf("leaked: %v", got)
	}
	// parameters shadow outer bindings without mutating them
	got := run(t, "let x = 1; function f(x) { return x * 10 } f(5); x")
	if got != float64(1) {
		t.Fatalf("got %v", got)
	}
}

func TestNotAFunction(t *testing.T) {
	err := runErr(t, "let a = 1; a()")
	if !strings.Contains(err.Error(), "is not a function") {
		t.Fatal(err)
	}
}

func TestClosureCapture(t *testing.T) {
	// closures share their defining environment and observe later mutations
	got := run(t, `
		let counter = 0;
		function bump() { counter = counter + 1; return counter }
		bump();
		bump();
		bump()
	`)
	if got != float64(3) {
		t.Fatalf("got %v", got)
	}
}

func TestIf(t *testing.T) {
	got := run(t, "let r = 0; if (1 < 2) { r = 1 } else { r = 2 } r")
	if got != float64(1) {
		t.Fatalf("got %v", got)
	}
	got = run(t, "let r = 0; if (1 > 2) { r = 1 } else { r = 2 } r")
	if got != float64(2) {
		t.Fatalf("got %v", got)
	}
	// no else branch, false condition: nothing happens
	got = run(t, "let r = 9; if (0) { r = 1 } r")
	if got != float64(9) {
		t.Fatalf("got %v", got)
	}
}

func TestWhile(t *testing.T) {
	got := run(t, `
		let sum = 0;
		let i = 1;
		while (i <= 10) {
			sum = sum + i;
			i = i + 1;
		}
		sum
	`)
	if got != float64(55) {
		t.Fatalf("got %v", got)
	}
}

func TestBreakContinue(t *testing.T) {
	// break crosses the nested block and stops the nearest loop
	got := run(t, `
		let i = 0;
		while (true) {
			i = i + 1;
			{
				if (i >= 3) { break }
			}
		}
		i
	`)
	if got != float64(3) {
		t.Fatalf("got %v", got)
	}
	// the grouping is load-bearing: without it the right-operand reparse
	// would read i % (2 == 0)
	got = run(t, `
		let odds = 0;
		let i = 0;
		while (i < 10) {
			i = i + 1;
			if ((i % 2) == 0) { continue }
			odds = odds + 1;
		}
		odds
	`)
	if got != float64(5) {
		t.Fatalf("got %v", got)
	}
}

func TestReturnCrossesLoops(t *testing.T) {
	got := run(t, `
		function firstOver(limit) {
			let i = 0;
			while (true) {
				i = i + 7;
				if (i > limit) { return i }
			}
		}
		firstOver(20)
	`)
	if got != float64(21) {
		t.Fatalf("got %v", got)
	}
}

func TestStrayControlFlow(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"return 1", "return outside function"},
		{"break", "break outside loop"},
		{"continue", "continue outside loop"},
		{"function f() { break } f()", "break outside loop"},
	}
	for _, test := range tests {
		err := runErr(t, test.input)
		if !strings.Contains(err.Error(), test.message) {
			t.Fatalf("%q: got %v", test.input, err)
		}
	}
}

func TestCallDepthLimit(t *testing.T) {
	_, err := RunSource("test", "function f() { return f() } f()", Options{MaxCallDepth: 16})
	if err == nil {
		t.Fatal("want error")
	}
	if !strings.Contains(err.Error(), "call depth limit") {
		t.Fatal(err)
	}
}

func TestLiteralEvaluationIdempotent(t *testing.T) {
	in := NewInterp(Options{})
	lit := &Literal{Kind: LiteralNumber, Num: 42}
	for range 3 {
		v, err := in.eval(lit, in.Global())
		if err != nil {
			t.Fatal(err)
		}
		if v != float64(42) {
			t.Fatalf("got %v", v)
		}
	}
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{float64(1), true},
		{float64(0.5), true},
		{float64(0), false},
		{float64(-1), false},
		{"x", true},
		{"", false},
		{true, true},
		{false, false},
		{nil, false},
		{Void{}, false},
		{&Closure{}, true},
	}
	for _, test := range tests {
		if got := Truthy(test.value); got != test.want {
			t.Fatalf("%v: got %v", test.value, got)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{float64(5), "5"},
		{float64(2.5), "2.5"},
		{"hi", `"hi"`},
		{true, "true"},
		{nil, "null"},
		{Void{}, "void"},
		{&Closure{Name: "f"}, "function f"},
	}
	for _, test := range tests {
		if got := FormatValue(test.value); got != test.want {
			t.Fatalf("%v: got %q, want %q", test.value, got, test.want)
		}
	}
}
