package jaslang

// RunSource drives the full pipeline for one source text: tokenize, parse,
// interpret. The result is Void when the program produced no value.
func RunSource(name string, content string, opts Options) (Value, error) {
	source := NewSource(name, content)
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	stmts, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}
	return NewInterp(opts).Run(stmts)
}
