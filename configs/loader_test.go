package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
format?: "text" | "json"
aliases?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var format string
	err := loader.AssignFirst("format", &format)
	if err != nil {
		t.Fatal(err)
	}
	if format != "json" {
		t.Fatalf("got %q", format)
	}

	var aliases []string
	err = loader.AssignFirst("aliases", &aliases)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", aliases); str != "[lex tok]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &aliases)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var formats []string
	for value, err := range loader.IterCueValues("format") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		formats = append(formats, s)
	}
	if str := fmt.Sprintf("%v", formats); str != "[json text]" {
		t.Fatalf("got %q", str)
	}

	formats = formats[:0]
	for format := range All[string](loader, "format") {
		formats = append(formats, format)
	}
	if str := fmt.Sprintf("%v", formats); str != "[json text]" {
		t.Fatalf("got %q", str)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var n int
	err := loader.AssignFirst("colour", &n)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}
