package lexing

import (
	"context"
	"io"
	"os"

	"github.com/reusee/decaf/lex"
	"github.com/reusee/decaf/logs"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// StdinName names standard input on the command line and in diagnostics.
const StdinName = "-"

type LexReader func(ctx context.Context, name string, r io.Reader, maxErrors int) (Result, error)

func (Module) LexReader(
	logger logs.Logger,
) LexReader {
	return func(ctx context.Context, name string, r io.Reader, maxErrors int) (Result, error) {
		return collect(ctx, logger, lex.NewLexer(name, r), maxErrors)
	}
}

// LexFile lexes the file at path, or stdin for StdinName. The file is closed
// on every exit path.
type LexFile func(ctx context.Context, path string, maxErrors int) (Result, error)

func (Module) LexFile(
	logger logs.Logger,
	lexReader LexReader,
) LexFile {
	return func(ctx context.Context, path string, maxErrors int) (Result, error) {
		if path == StdinName {
			return lexReader(ctx, path, os.Stdin, maxErrors)
		}
		f, err := os.Open(path)
		if err != nil {
			return Result{}, wrap(err)
		}
		lexer := lex.OpenLexer(path, f)
		defer lexer.Close()
		return collect(ctx, logger, lexer, maxErrors)
	}
}

func collect(ctx context.Context, logger logs.Logger, lexer *lex.Lexer, maxErrors int) (Result, error) {
	ctx = logs.WithSource(ctx, lexer.Name())
	result, err := Collect(lexer, maxErrors)
	if err != nil {
		logger.ErrorContext(ctx, "read failed",
			"error", err,
		)
		return result, logs.WrapSource(ctx, err)
	}
	logger.DebugContext(ctx, "lexed",
		"tokens", len(result.Tokens),
		"diagnostics", len(result.Diagnostics),
		"truncated", result.Truncated,
	)
	return result, nil
}
