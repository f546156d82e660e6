package jaslang

// Env is one lexical scope: a mapping from names to bindings plus a pointer
// to the enclosing scope. Lookup and assignment walk the chain innermost-out
// and stop at the first scope defining the name.
type Env struct {
	Parent *Env
	Vars   map[string]binding
}

type binding struct {
	Value   Value
	Mutable bool
}

func NewEnv() *Env {
	return &Env{}
}

func (e *Env) Get(name string) (Value, bool) {
	if b, ok := e.Vars[name]; ok {
		return b.Value, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Define binds name in this scope, shadowing any outer binding.
func (e *Env) Define(name string, val Value, mutable bool) {
	if e.Vars == nil {
		e.Vars = make(map[string]binding)
	}
	e.Vars[name] = binding{
		Value:   val,
		Mutable: mutable,
	}
}

// Set mutates the innermost binding of name. It reports whether a binding
// was found and, if found but immutable, that the assignment was refused.
func (e *Env) Set(name string, val Value) (found bool, immutable bool) {
	if b, ok := e.Vars[name]; ok {
		if !b.Mutable {
			return true, true
		}
		b.Value = val
		e.Vars[name] = b
		return true, false
	}
	if e.Parent != nil {
		return e.Parent.Set(name, val)
	}
	return false, false
}

func (e *Env) NewChild() *Env {
	return &Env{
		Parent: e,
	}
}
