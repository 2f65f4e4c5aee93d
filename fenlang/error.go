package fenlang

import "fmt"

// LexError is the closed set of scan failures. Every non-EOF error
// returned by Lexer.Next is one of UnknownTokenError,
// MismatchedBracketError, UnclosedBracketError.
type LexError interface {
	error
	lexError()
}

type UnknownTokenError struct {
	Byte byte
}

var _ LexError = UnknownTokenError{}

func (u UnknownTokenError) lexError() {}

func (u UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %q", u.Byte)
}

// MismatchedBracketError reports a closing bracket whose family does
// not match the innermost open bracket. Expected is TokenInvalid when
// the closer arrived with no bracket open at all.
type MismatchedBracketError struct {
	Expected TokenKind
	Found    TokenKind
}

var _ LexError = MismatchedBracketError{}

func (m MismatchedBracketError) lexError() {}

func (m MismatchedBracketError) Error() string {
	if m.Expected == TokenInvalid {
		return fmt.Sprintf("mismatched bracket: unexpected %q", m.Found.bracketByte())
	}
	return fmt.Sprintf("mismatched bracket: expected %q, got %q",
		m.Expected.bracketByte(), m.Found.bracketByte())
}

// UnclosedBracketError reports source that ended while brackets were
// still open. Kind is the innermost unclosed opener.
type UnclosedBracketError struct {
	Kind TokenKind
}

var _ LexError = UnclosedBracketError{}

func (u UnclosedBracketError) lexError() {}

func (u UnclosedBracketError) Error() string {
	return fmt.Sprintf("unclosed bracket %q", u.Kind.bracketByte())
}
