package lexing

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/decaf/lex"
)

type tokenRecord struct {
	Source string `json:"source"`
	Type   string `json:"type"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
	Text   string `json:"text,omitempty"`
}

// PrintText writes one token per line: position, type name, then text.
func PrintText(w io.Writer, tokens []lex.Token, showPositions bool) error {
	for _, token := range tokens {
		var sb strings.Builder
		if showPositions {
			fmt.Fprintf(&sb, "%d:%d ", token.Pos.Line, token.Pos.Column)
		}
		sb.WriteString(token.Type.String())
		if token.Text != "" {
			sb.WriteByte(' ')
			sb.WriteString(token.Text)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintJSON writes one JSON object per token.
func PrintJSON(w io.Writer, source string, tokens []lex.Token, showPositions bool) error {
	encoder := json.NewEncoder(w)
	for _, token := range tokens {
		record := tokenRecord{
			Source: source,
			Type:   token.Type.String(),
			Text:   token.Text,
		}
		if showPositions {
			record.Line = token.Pos.Line
			record.Column = token.Pos.Column
		}
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}
	return nil
}
