package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestLoggerSource(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithSource(context.Background(), "foo.decaf")
		logger.InfoContext(ctx, "lexed", "tokens", 3)
		logger.With("phase", "lex").InfoContext(ctx, "grouped")

		out := buf.String()
		if !strings.Contains(out, "lex.source=foo.decaf") {
			t.Fatalf("got %v", out)
		}
		if !strings.Contains(out, "tokens=3") {
			t.Fatalf("got %v", out)
		}
		if !strings.Contains(out, "phase=lex") {
			t.Fatalf("got %v", out)
		}
	})
}

func TestWrapSource(t *testing.T) {
	errFoo := errors.New("foo")
	if err := WrapSource(context.Background(), errFoo); err != errFoo {
		t.Fatalf("got %v", err)
	}
	ctx := WithSource(context.Background(), "a.decaf")
	err := WrapSource(ctx, errFoo)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "a.decaf: foo" {
		t.Fatalf("got %v", err)
	}
	if WrapSource(ctx, nil) != nil {
		t.Fatal()
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("lex.source"); got != "LEX_SOURCE" {
		t.Fatalf("got %v", got)
	}
}
