package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/fen/cmds"
	"github.com/reusee/fen/debugs"
	"github.com/reusee/fen/fenconfigs"
	"github.com/reusee/fen/fenlang"
	"github.com/reusee/fen/logs"
	"github.com/reusee/fen/modes"
	"github.com/reusee/fen/syncs"
	"golang.org/x/term"
)

var (
	exprs   = cmds.Collect[string]("-e")
	doRepl  = cmds.Switch("-repl")
	doStats = cmds.Switch("-stats")
	doTap   = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		lexFile LexFile,
		lexSource LexSource,
		jobs fenconfigs.Jobs,
		format fenconfigs.DumpFormat,
		historyFile fenconfigs.HistoryFile,
		tap debugs.Tap,
	) {
		dump, err := newDumper(format)
		ce(err)

		type job struct {
			name string
			path string
			src  []byte
		}
		var jobList []job
		for _, path := range files {
			jobList = append(jobList, job{
				name: path,
				path: path,
			})
		}
		for i, expr := range *exprs {
			jobList = append(jobList, job{
				name: fmt.Sprintf("expr %d", i+1),
				src:  []byte(expr),
			})
		}
		if stdin := getStdinContent(); stdin != nil {
			jobList = append(jobList, job{
				name: "stdin",
				src:  stdin,
			})
		}

		if *doRepl || len(jobList) == 0 {
			runREPL(string(historyFile), dump)
			return
		}

		ctx, _ = newSpan(ctx, "")

		type result struct {
			tokens []fenlang.Token
			err    error
		}
		results := make([]result, len(jobList))
		sem := syncs.NewSemaphore(int(jobs))
		var wg sync.WaitGroup
		for i, j := range jobList {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem.Acquire()
				defer sem.Release()
				if j.path != "" {
					results[i].tokens, results[i].err = lexFile(ctx, j.path)
				} else {
					results[i].tokens, results[i].err = lexSource(ctx, j.name, j.src)
				}
			}()
		}
		wg.Wait()

		failed := false
		for i, j := range jobList {
			if len(jobList) > 1 {
				pt("== %s\n", j.name)
			}
			ce(dump(os.Stdout, results[i].tokens))
			if *doStats {
				printStats(os.Stdout, results[i].tokens)
			}
			if err := results[i].err; err != nil {
				failed = true
				fmt.Fprintf(os.Stderr, "%s: %v\n", j.name, err)
				logger.ErrorContext(ctx, "lex failed",
					"name", j.name,
					"error", err,
				)
			}
		}

		if *doTap {
			byName := make(map[string]any)
			for i, j := range jobList {
				tokens := make([]any, 0, len(results[i].tokens))
				for _, token := range results[i].tokens {
					tokens = append(tokens, map[string]any{
						"kind": token.Kind.String(),
						"text": string(token.Text),
					})
				}
				byName[j.name] = tokens
			}
			tap(ctx, "tokens", map[string]any{
				"tokens": byName,
				"lex": func(src string) []string {
					var lines []string
					lexer := fenlang.NewLexer([]byte(src))
					for token, err := range lexer.Tokens {
						if err != nil {
							lines = append(lines, "error: "+err.Error())
							break
						}
						lines = append(lines, fmt.Sprintf("%v %q", token.Kind, token.Text))
					}
					return lines
				},
			})
		}

		if failed {
			os.Exit(-1)
		}
	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
