package debugs

import (
	"context"
	"strings"
	"testing"

	"github.com/reusee/decaf/lex"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func lexAll(t *testing.T, src string) []lex.Token {
	var tokens []lex.Token
	for token, err := range lex.NewLexer("query.decaf", strings.NewReader(src)).Tokens() {
		if err != nil {
			t.Fatal(err)
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func TestQuery(t *testing.T) {
	tokens := lexAll(t, "int bar; bar += 1;")

	dscope.New(new(Module)).Call(func(
		query Query,
	) {
		ctx := context.Background()

		value, err := query(ctx, `len([t for t in tokens if t["type"] == "IDENTIFIER"])`, tokens)
		if err != nil {
			t.Fatal(err)
		}
		if value.String() != "2" {
			t.Fatalf("got %v", value)
		}

		value, err = query(ctx, `tokens[-1]["type"]`, tokens)
		if err != nil {
			t.Fatal(err)
		}
		if value != starlark.String("EOF") {
			t.Fatalf("got %v", value)
		}

		value, err = query(ctx, `[t["column"] for t in tokens[:3]]`, tokens)
		if err != nil {
			t.Fatal(err)
		}
		if value.String() != "[1, 5, 8]" {
			t.Fatalf("got %v", value)
		}

		if _, err := query(ctx, `tokens[`, tokens); err == nil {
			t.Fatal("should error")
		}
	})
}
