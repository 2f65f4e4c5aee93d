package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/reusee/fen/fenlang"
)

func runREPL(historyFile string, dump dumpFunc) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "fen> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}
		// a fresh lexer per line, errors do not end the session
		tokens, err := fenlang.Collect([]byte(line))
		if dumpErr := dump(os.Stdout, tokens); dumpErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", dumpErr)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
