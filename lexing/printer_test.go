package lexing

import (
	"bytes"
	"testing"

	"github.com/reusee/decaf/lex"
)

func TestPrintText(t *testing.T) {
	tokens := []lex.Token{
		{Type: lex.TokenIdentifier, Pos: lex.Pos{Line: 1, Column: 1}, Text: "num"},
		{Type: lex.PunctuatorPlusEqual, Pos: lex.Pos{Line: 1, Column: 5}},
		{Type: lex.TokenEOF},
	}
	buf := new(bytes.Buffer)
	if err := PrintText(buf, tokens, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "IDENTIFIER num\nPUNCTUATOR_PLUS_EQUAL\nEOF\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	tokens := []lex.Token{
		{Type: lex.TokenIntLiteral, Pos: lex.Pos{Line: 2, Column: 3}, Text: "0x1F"},
		{Type: lex.TokenEOF},
	}
	buf := new(bytes.Buffer)
	if err := PrintJSON(buf, "a.decaf", tokens, true); err != nil {
		t.Fatal(err)
	}
	expected := `{"source":"a.decaf","type":"INT_LITERAL","line":2,"column":3,"text":"0x1F"}` + "\n" +
		`{"source":"a.decaf","type":"EOF"}` + "\n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}
}
