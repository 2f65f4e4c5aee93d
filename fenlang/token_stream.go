package fenlang

import "io"

// TokenStream is the parser-facing view of a token source. Current
// returns the token at the cursor without consuming it; io.EOF
// signals end of sequence.
type TokenStream interface {
	Current() (Token, error)
	Consume()
}

// LexerStream adapts a Lexer into a peekable stream. The first error
// is sticky: lexer failures are terminal, so the stream never asks
// the lexer again after one.
type LexerStream struct {
	lexer   *Lexer
	current Token
	filled  bool
	err     error
}

var _ TokenStream = new(LexerStream)

func NewLexerStream(lexer *Lexer) *LexerStream {
	return &LexerStream{
		lexer: lexer,
	}
}

func (l *LexerStream) Current() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	if !l.filled {
		token, err := l.lexer.Next()
		if err != nil {
			l.err = err
			return Token{}, err
		}
		l.current = token
		l.filled = true
	}
	return l.current, nil
}

func (l *LexerStream) Consume() {
	if l.err != nil {
		return
	}
	l.filled = false
}

type SliceTokenStream struct {
	tokens []Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (Token, error) {
	if s.idx >= len(s.tokens) {
		return Token{}, io.EOF
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
