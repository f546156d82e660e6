package jaslang

// Token is one classified lexical unit. Lexeme is the exact source text,
// Start and End are byte offsets into the source content, so
// Content[Start:End] == Lexeme always holds. Value carries the decoded
// payload for number, string and boolean tokens.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Value  any
	Pos    Pos
	Start  int
	End    int
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	// literals
	TokenNumber
	TokenString
	TokenBoolean
	TokenNull

	TokenIdentifier

	// keywords
	TokenLet
	TokenConst
	TokenVar
	TokenFunction
	TokenReturn
	TokenIf
	TokenElse
	TokenFor
	TokenWhile
	TokenBreak
	TokenContinue
	TokenThrow
	TokenTypeof

	// operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenPower
	TokenEqual
	TokenEqualEqual
	TokenBangEqual
	TokenBang
	TokenAnd
	TokenOr
	TokenQuestion
	TokenLesser
	TokenLesserEqual
	TokenGreater
	TokenGreaterEqual

	// punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenDot
	TokenSemicolon
	TokenColon

	TokenLineComment
	TokenEOF
)

var keywords = map[string]TokenKind{
	"function": TokenFunction,
	"let":      TokenLet,
	"const":    TokenConst,
	"var":      TokenVar,
	"return":   TokenReturn,
	"if":       TokenIf,
	"else":     TokenElse,
	"for":      TokenFor,
	"while":    TokenWhile,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"throw":    TokenThrow,
	"typeof":   TokenTypeof,
	"null":     TokenNull,
	"true":     TokenBoolean,
	"false":    TokenBoolean,
}

var tokenKindNames = [...]string{
	TokenInvalid:      "invalid",
	TokenNumber:       "number",
	TokenString:       "string",
	TokenBoolean:      "boolean",
	TokenNull:         "null",
	TokenIdentifier:   "identifier",
	TokenLet:          "let",
	TokenConst:        "const",
	TokenVar:          "var",
	TokenFunction:     "function",
	TokenReturn:       "return",
	TokenIf:           "if",
	TokenElse:         "else",
	TokenFor:          "for",
	TokenWhile:        "while",
	TokenBreak:        "break",
	TokenContinue:     "continue",
	TokenThrow:        "throw",
	TokenTypeof:       "typeof",
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenStar:         "*",
	TokenSlash:        "/",
	TokenPercent:      "%",
	TokenPower:        "**",
	TokenEqual:        "=",
	TokenEqualEqual:   "==",
	TokenBangEqual:    "!=",
	TokenBang:         "!",
	TokenAnd:          "&&",
	TokenOr:           "||",
	TokenQuestion:     "?",
	TokenLesser:       "<",
	TokenLesserEqual:  "<=",
	TokenGreater:      ">",
	TokenGreaterEqual: ">=",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenLBrace:       "{",
	TokenRBrace:       "}",
	TokenLBracket:     "[",
	TokenRBracket:     "]",
	TokenComma:        ",",
	TokenDot:          ".",
	TokenSemicolon:    ";",
	TokenColon:        ":",
	TokenLineComment:  "comment",
	TokenEOF:          "end of input",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}
