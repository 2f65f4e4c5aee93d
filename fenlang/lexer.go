package fenlang

import "io"

// Lexer is a pull-based token producer over an immutable byte buffer.
// It is not safe for concurrent use; give each input its own Lexer.
type Lexer struct {
	source   []byte
	position int
	brackets []TokenKind
}

func NewLexer(source []byte) *Lexer {
	return &Lexer{
		source: source,
	}
}

// Next returns the next token. At the end of the buffer it returns
// io.EOF if all brackets are closed, or UnclosedBracketError naming
// the innermost open bracket. A non-EOF error is terminal, the Lexer
// must be discarded.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	if l.position >= len(l.source) {
		if len(l.brackets) > 0 {
			return Token{}, UnclosedBracketError{
				Kind: l.brackets[len(l.brackets)-1],
			}
		}
		return Token{}, io.EOF
	}
	return l.scanToken()
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.source) {
		switch l.source[l.position] {
		case ' ', '\t', '\n':
			l.position++
		default:
			return
		}
	}
}

func (l *Lexer) scanToken() (Token, error) {
	start := l.position
	b := l.source[l.position]
	l.position++

	switch b {

	case '(':
		return l.openBracket(BracketParen, start), nil
	case ')':
		return l.closeBracket(BracketParen, start)
	case '{':
		return l.openBracket(BracketCurly, start), nil
	case '}':
		return l.closeBracket(BracketCurly, start)
	case '[':
		return l.openBracket(BracketSquare, start), nil
	case ']':
		return l.closeBracket(BracketSquare, start)

	case ',':
		return l.token(TokenComma, start), nil
	case '.':
		return l.token(TokenDot, start), nil
	case '-':
		return l.scanMinus(start)
	case '+':
		return l.token(TokenPlus, start), nil
	case ';':
		return l.token(TokenSemicolon, start), nil
	case '/':
		return l.token(TokenSlash, start), nil
	case '*':
		return l.token(TokenStar, start), nil
	case ':':
		return l.token(TokenColon, start), nil
	case '=':
		return l.token(TokenAssign, start), nil
	case '<':
		return l.token(TokenSmaller, start), nil
	case '>':
		return l.token(TokenBigger, start), nil

	case 0:
		return l.token(TokenEOF, start), nil

	default:
		if isLetter(b) {
			return l.scanIdent(start), nil
		}
		if isDigit(b) {
			return l.scanInteger(start), nil
		}
		return Token{}, UnknownTokenError{
			Byte: b,
		}
	}
}

func (l *Lexer) openBracket(bracket Bracket, start int) Token {
	kind := bracket.Kind(BracketOpen)
	l.brackets = append(l.brackets, kind)
	return l.token(kind, start)
}

func (l *Lexer) closeBracket(bracket Bracket, start int) (Token, error) {
	kind := bracket.Kind(BracketClose)
	if len(l.brackets) == 0 {
		return Token{}, MismatchedBracketError{
			Found: kind,
		}
	}
	top := l.brackets[len(l.brackets)-1]
	openFamily, _, _ := top.Bracket()
	if openFamily != bracket {
		return Token{}, MismatchedBracketError{
			Expected: openFamily.Kind(BracketClose),
			Found:    kind,
		}
	}
	l.brackets = l.brackets[:len(l.brackets)-1]
	return l.token(kind, start), nil
}

// scanMinus disambiguates Minus from Arrow by speculatively scanning
// the token starting at the very next byte. Only an immediately
// adjacent Bigger forms an Arrow; anything else, including whitespace
// or a longer token beginning with '>', rolls back to a plain Minus.
// The rollback also reverts any bracket pushed or popped by the probe.
func (l *Lexer) scanMinus(start int) (Token, error) {
	if l.position < len(l.source) {
		m := l.save()
		next, err := l.scanToken()
		if err == nil && next.Kind == TokenBigger {
			return l.token(TokenArrow, start), nil
		}
		l.restore(m)
	}
	return l.token(TokenMinus, start), nil
}

type mark struct {
	position int
	brackets int
}

func (l *Lexer) save() mark {
	return mark{
		position: l.position,
		brackets: len(l.brackets),
	}
}

// restore undoes a speculative scan. Re-extending the slice recovers a
// popped entry: a single probe scans one token, so it pops at most
// once and never pushes over the popped slot before restore runs.
func (l *Lexer) restore(m mark) {
	l.position = m.position
	l.brackets = l.brackets[:m.brackets]
}

func (l *Lexer) scanIdent(start int) Token {
	for l.position < len(l.source) && isLetterOrDigit(l.source[l.position]) {
		l.position++
	}
	if kind, ok := keywords[string(l.source[start:l.position])]; ok {
		return l.token(kind, start)
	}
	return l.token(TokenIdent, start)
}

func (l *Lexer) scanInteger(start int) Token {
	for l.position < len(l.source) && isDigit(l.source[l.position]) {
		l.position++
	}
	return l.token(TokenInteger, start)
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	return Token{
		Kind: kind,
		Text: l.source[start:l.position],
	}
}

// Tokens is a range-over-func iterator. It stops after yielding the
// first error; io.EOF is not yielded.
func (l *Lexer) Tokens(yield func(Token, error) bool) {
	for {
		token, err := l.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			yield(Token{}, err)
			return
		}
		if !yield(token, nil) {
			return
		}
	}
}

// Collect tokenizes the whole buffer. On error it returns the tokens
// produced before the failure along with the error.
func Collect(source []byte) ([]Token, error) {
	lexer := NewLexer(source)
	var tokens []Token
	for {
		token, err := lexer.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetterOrDigit(b byte) bool {
	return isLetter(b) || isDigit(b)
}
