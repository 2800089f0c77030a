package lexing

import (
	"github.com/reusee/decaf/lex"
)

type Result struct {
	Source      string
	Tokens      []lex.Token
	Diagnostics []Diagnostic
	// Truncated is set when lexing stopped at the error limit
	Truncated bool
}

// Collect drains l. Invalid tokens are recorded and skipped until maxErrors
// of them were seen (0 means no limit). An IO error is recorded and
// returned.
func Collect(l *lex.Lexer, maxErrors int) (ret Result, err error) {
	ret.Source = l.Name()
	errorCount := 0
	for token, err := range l.Tokens() {
		if err != nil {
			ret.Diagnostics = append(ret.Diagnostics, NewDiagnostic(l.Name(), err))
			if lex.IsIO(err) {
				return ret, err
			}
			errorCount++
			if maxErrors > 0 && errorCount >= maxErrors {
				ret.Truncated = true
				return ret, nil
			}
			continue
		}
		ret.Tokens = append(ret.Tokens, token)
	}
	return ret, nil
}
