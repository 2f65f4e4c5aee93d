package fenlang

import (
	"io"
	"testing"
)

func TestLexerStream(t *testing.T) {
	stream := NewLexerStream(NewLexer([]byte("a + b")))

	// Current does not consume
	first, err := stream.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := stream.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Kind != again.Kind || string(first.Text) != string(again.Text) {
		t.Fatalf("expected the same token, got %v and %v", first, again)
	}

	var kinds []TokenKind
	for {
		token, err := stream.Current()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kinds = append(kinds, token.Kind)
		stream.Consume()
	}
	expected := []TokenKind{TokenIdent, TokenPlus, TokenIdent}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(kinds))
	}
	for i, kind := range expected {
		if kinds[i] != kind {
			t.Errorf("token %d: expected %v, got %v", i, kind, kinds[i])
		}
	}

	// end is stable
	if _, err := stream.Current(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	stream.Consume()
	if _, err := stream.Current(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestLexerStreamStickyError(t *testing.T) {
	stream := NewLexerStream(NewLexer([]byte("{")))

	token, err := stream.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Kind != TokenCurlyOpen {
		t.Fatalf("expected CurlyOpen, got %v", token.Kind)
	}
	stream.Consume()

	expected := UnclosedBracketError{Kind: TokenCurlyOpen}
	if _, err := stream.Current(); err != expected {
		t.Fatalf("expected %v, got %v", expected, err)
	}
	stream.Consume()
	if _, err := stream.Current(); err != expected {
		t.Fatalf("expected %v again, got %v", expected, err)
	}
}

func TestSliceTokenStream(t *testing.T) {
	tokens, err := Collect([]byte("1 + 2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stream := NewSliceTokenStream(tokens)

	for i := range tokens {
		token, err := stream.Current()
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if token.Kind != tokens[i].Kind {
			t.Errorf("step %d: expected %v, got %v", i, tokens[i].Kind, token.Kind)
		}
		stream.Consume()
	}

	if _, err := stream.Current(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	stream.Consume()
	if _, err := stream.Current(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
