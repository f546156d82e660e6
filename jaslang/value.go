package jaslang

import "strconv"

// Value is any of: float64 (number), string, bool, nil (null), *Closure
// (function), or Void.
type Value = any

// Void marks "no value produced". It never escapes into a variable binding
// and never leaves a call; it only surfaces as the result of a run that
// produced no expression value.
type Void struct{}

// Closure is a function value. Env points at the environment the function
// was declared in, shared rather than copied, so the function observes later
// mutations of captured variables.
type Closure struct {
	Name       string
	Parameters []string
	Body       []Stmt
	Env        *Env
}

// Truthy converts a value for conditional and logical contexts. Numbers are
// true only when greater than zero; zero and negatives are false.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case float64:
		return v > 0
	case string:
		return len(v) > 0
	case bool:
		return v
	case *Closure:
		return true
	}
	return false // null, void
}

func TypeName(v Value) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case float64:
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	case *Closure:
		return "function"
	case Void:
		return "void"
	}
	return "unknown"
}

func FormatValue(v Value) string {
	if v == nil {
		return "null"
	}
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return "\"" + v + "\""
	case bool:
		return strconv.FormatBool(v)
	case *Closure:
		if v.Name != "" {
			return "function " + v.Name
		}
		return "function"
	case Void:
		return "void"
	}
	return "unknown"
}

func valuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case float64:
		b, ok := b.(float64)
		return ok && a == b
	case string:
		b, ok := b.(string)
		return ok && a == b
	case bool:
		b, ok := b.(bool)
		return ok && a == b
	case *Closure:
		return a == b
	}
	return false
}
