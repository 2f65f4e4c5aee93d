package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/reusee/fen/fenconfigs"
	"github.com/reusee/fen/fenlang"
)

type dumpFunc func(w io.Writer, tokens []fenlang.Token) error

func newDumper(format fenconfigs.DumpFormat) (dumpFunc, error) {
	switch format {
	case "text":
		return dumpText, nil
	case "json":
		return dumpJSON, nil
	}
	return nil, fmt.Errorf("unknown dump format: %s", format)
}

func dumpText(w io.Writer, tokens []fenlang.Token) error {
	for _, token := range tokens {
		if _, err := fmt.Fprintf(w, "%s\t%q\n", token.Kind, token.Text); err != nil {
			return err
		}
	}
	return nil
}

type tokenJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func dumpJSON(w io.Writer, tokens []fenlang.Token) error {
	list := make([]tokenJSON, 0, len(tokens))
	for _, token := range tokens {
		list = append(list, tokenJSON{
			Kind: token.Kind.String(),
			Text: string(token.Text),
		})
	}
	return json.NewEncoder(w).Encode(list)
}

func printStats(w io.Writer, tokens []fenlang.Token) {
	counts := make(map[string]int)
	for _, token := range tokens {
		counts[token.Kind.String()]++
	}
	fmt.Fprintf(w, "tokens: %d\n", len(tokens))
	for _, name := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(w, "  %s: %d\n", name, counts[name])
	}
}
