package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/fen/fenlang"
	"github.com/reusee/fen/logs"
)

type LexSource func(ctx context.Context, name string, source []byte) ([]fenlang.Token, error)

func (Module) LexSource(
	logger logs.Logger,
	newSpan logs.NewSpan,
) LexSource {
	return func(ctx context.Context, name string, source []byte) ([]fenlang.Token, error) {
		ctx, _ = newSpan(ctx, "")
		logger.DebugContext(ctx, "lex",
			"name", name,
			"bytes", len(source),
		)
		tokens, err := fenlang.Collect(source)
		if err != nil {
			return tokens, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "lexed",
			"name", name,
			"tokens", len(tokens),
		)
		return tokens, nil
	}
}

type LexFile func(ctx context.Context, path string) ([]fenlang.Token, error)

func (Module) LexFile(
	lexSource LexSource,
) LexFile {
	return func(ctx context.Context, path string) ([]fenlang.Token, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, wrap(err)
		}
		if len(content) > 0 && !isTextContent(content) {
			return nil, fmt.Errorf("%s: not a text file", path)
		}
		return lexSource(ctx, path, content)
	}
}
