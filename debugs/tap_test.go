package debugs

import (
	"testing"

	"github.com/reusee/decaf/lex"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"tokens": []lex.Token{{Type: lex.TokenEOF}},
		})
	})
}
