package fenlang

import "fmt"

// Token is a classified, contiguous span of source bytes. Text aliases
// the buffer passed to NewLexer, never a copy, so the buffer must
// outlive every token taken from it.
type Token struct {
	Kind TokenKind
	Text []byte
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	// bracket kinds, laid out in open/close pairs per family
	TokenParenOpen
	TokenParenClose
	TokenCurlyOpen
	TokenCurlyClose
	TokenSquareOpen
	TokenSquareClose

	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar
	TokenColon
	TokenAssign
	TokenSmaller
	TokenBigger

	TokenArrow

	TokenLet
	TokenMut
	TokenFn

	TokenIdent
	TokenInteger

	// TokenEOF is the token for a NUL byte in the source. It does not
	// end production; see Lexer.Next for the end-of-sequence signal.
	TokenEOF
)

var kindNames = [...]string{
	TokenInvalid:     "Invalid",
	TokenParenOpen:   "ParenOpen",
	TokenParenClose:  "ParenClose",
	TokenCurlyOpen:   "CurlyOpen",
	TokenCurlyClose:  "CurlyClose",
	TokenSquareOpen:  "SquareOpen",
	TokenSquareClose: "SquareClose",
	TokenComma:       "Comma",
	TokenDot:         "Dot",
	TokenMinus:       "Minus",
	TokenPlus:        "Plus",
	TokenSemicolon:   "Semicolon",
	TokenSlash:       "Slash",
	TokenStar:        "Star",
	TokenColon:       "Colon",
	TokenAssign:      "Assign",
	TokenSmaller:     "Smaller",
	TokenBigger:      "Bigger",
	TokenArrow:       "Arrow",
	TokenLet:         "Let",
	TokenMut:         "Mut",
	TokenFn:          "Fn",
	TokenIdent:       "Ident",
	TokenInteger:     "Integer",
	TokenEOF:         "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Bracket is a bracket family, independent of open/close state.
type Bracket uint8

const (
	BracketParen Bracket = iota
	BracketCurly
	BracketSquare
)

func (b Bracket) String() string {
	switch b {
	case BracketParen:
		return "paren"
	case BracketCurly:
		return "curly"
	case BracketSquare:
		return "square"
	}
	return fmt.Sprintf("Bracket(%d)", uint8(b))
}

type BracketState uint8

const (
	BracketOpen BracketState = iota
	BracketClose
)

// Kind returns the token kind for the family in the given state.
func (b Bracket) Kind(state BracketState) TokenKind {
	return TokenParenOpen + TokenKind(b)*2 + TokenKind(state)
}

// Bracket reports the family and state encoded in a bracket kind.
func (k TokenKind) Bracket() (Bracket, BracketState, bool) {
	if k < TokenParenOpen || k > TokenSquareClose {
		return 0, 0, false
	}
	n := k - TokenParenOpen
	return Bracket(n / 2), BracketState(n % 2), true
}

var bracketBytes = [...]byte{
	'(', ')',
	'{', '}',
	'[', ']',
}

func (k TokenKind) bracketByte() byte {
	return bracketBytes[k-TokenParenOpen]
}

var keywords = map[string]TokenKind{
	"let": TokenLet,
	"mut": TokenMut,
	"fn":  TokenFn,
}
