package jaslang

import "strconv"

// Tokenizer scans source content left to right in a single pass. It works on
// byte offsets so every token's Start/End span reproduces its lexeme exactly.
type Tokenizer struct {
	source  *Source
	tokens  []Token
	start   int
	current int
	line    int
	col     int

	startLine int
	startCol  int
}

func Tokenize(source *Source) ([]Token, error) {
	t := &Tokenizer{
		source: source,
		line:   1,
		col:    1,
	}
	return t.tokenize()
}

func (t *Tokenizer) tokenize() ([]Token, error) {
	for !t.atEnd() {
		t.start = t.current
		t.startLine = t.line
		t.startCol = t.col
		c := t.advance()

		switch {

		case c == '(':
			t.add(TokenLParen)
		case c == ')':
			t.add(TokenRParen)
		case c == '{':
			t.add(TokenLBrace)
		case c == '}':
			t.add(TokenRBrace)
		case c == '[':
			t.add(TokenLBracket)
		case c == ']':
			t.add(TokenRBracket)
		case c == ',':
			t.add(TokenComma)
		case c == '.':
			t.add(TokenDot)
		case c == ';':
			t.add(TokenSemicolon)
		case c == ':':
			t.add(TokenColon)
		case c == '?':
			t.add(TokenQuestion)
		case c == '+':
			t.add(TokenPlus)
		case c == '-':
			t.add(TokenMinus)
		case c == '%':
			t.add(TokenPercent)

		case c == '*':
			if t.peek() == '*' {
				t.advance()
				t.add(TokenPower)
			} else {
				t.add(TokenStar)
			}

		case c == '/':
			if t.peek() == '/' {
				t.comment()
			} else {
				t.add(TokenSlash)
			}

		case c == '=':
			if t.peek() == '=' {
				t.advance()
				t.add(TokenEqualEqual)
			} else {
				t.add(TokenEqual)
			}

		case c == '!':
			if t.peek() == '=' {
				t.advance()
				t.add(TokenBangEqual)
			} else {
				t.add(TokenBang)
			}

		case c == '<':
			if t.peek() == '=' {
				t.advance()
				t.add(TokenLesserEqual)
			} else {
				t.add(TokenLesser)
			}

		case c == '>':
			if t.peek() == '=' {
				t.advance()
				t.add(TokenGreaterEqual)
			} else {
				t.add(TokenGreater)
			}

		case c == '&':
			if t.peek() != '&' {
				return nil, lexError(t.startPos(), "unexpected character %q", string(c))
			}
			t.advance()
			t.add(TokenAnd)

		case c == '|':
			if t.peek() != '|' {
				return nil, lexError(t.startPos(), "unexpected character %q", string(c))
			}
			t.advance()
			t.add(TokenOr)

		case c == ' ', c == '\r', c == '\t', c == '\n':
			// no token

		case c >= '0' && c <= '9':
			if err := t.number(); err != nil {
				return nil, err
			}

		case c == '"':
			if err := t.str(); err != nil {
				return nil, err
			}

		case isIdentStart(c):
			t.identifier()

		default:
			return nil, lexError(t.startPos(), "unexpected character %q", string(c))
		}
	}

	t.start = t.current
	t.startLine = t.line
	t.startCol = t.col
	t.add(TokenEOF)

	return t.tokens, nil
}

func (t *Tokenizer) atEnd() bool {
	return t.current >= len(t.source.Content)
}

func (t *Tokenizer) peek() byte {
	if t.atEnd() {
		return 0
	}
	return t.source.Content[t.current]
}

func (t *Tokenizer) advance() byte {
	c := t.source.Content[t.current]
	t.current++
	if c == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return c
}

func (t *Tokenizer) startPos() Pos {
	return Pos{
		Source: t.source,
		Line:   t.startLine,
		Column: t.startCol,
	}
}

func (t *Tokenizer) add(kind TokenKind) {
	t.addValue(kind, nil)
}

func (t *Tokenizer) addValue(kind TokenKind, value any) {
	t.tokens = append(t.tokens, Token{
		Kind:   kind,
		Lexeme: t.source.Content[t.start:t.current],
		Value:  value,
		Pos:    t.startPos(),
		Start:  t.start,
		End:    t.current,
	})
}

func (t *Tokenizer) number() error {
	for isDigit(t.peek()) || t.peek() == '.' {
		t.advance()
	}
	text := t.source.Content[t.start:t.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return lexError(t.startPos(), "invalid number literal %q", text)
	}
	t.addValue(TokenNumber, value)
	return nil
}

// str scans a double-quoted string. No escape sequences are recognized.
func (t *Tokenizer) str() error {
	for !t.atEnd() && t.peek() != '"' {
		t.advance()
	}
	if t.atEnd() {
		return lexError(t.startPos(), "unterminated string")
	}
	t.advance() // closing quote
	t.addValue(TokenString, t.source.Content[t.start+1:t.current-1])
	return nil
}

func (t *Tokenizer) identifier() {
	for isIdentPart(t.peek()) {
		t.advance()
	}
	text := t.source.Content[t.start:t.current]
	kind, ok := keywords[text]
	if !ok {
		t.addValue(TokenIdentifier, nil)
		return
	}
	switch kind {
	case TokenBoolean:
		t.addValue(TokenBoolean, text == "true")
	default:
		t.addValue(kind, nil)
	}
}

// comment captures a // line comment as a token, keeping source fidelity for
// downstream consumers.
func (t *Tokenizer) comment() {
	for !t.atEnd() && t.peek() != '\n' {
		t.advance()
	}
	t.add(TokenLineComment)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
