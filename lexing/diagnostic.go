package lexing

import (
	"errors"
	"fmt"

	"github.com/reusee/decaf/lex"
)

// Diagnostic is a lexing error attributed to an input.
type Diagnostic struct {
	Source  string
	Kind    lex.ErrorKind
	Pos     lex.Pos
	Message string
}

func NewDiagnostic(source string, err error) Diagnostic {
	var lexErr *lex.LexingError
	if errors.As(err, &lexErr) {
		return Diagnostic{
			Source:  source,
			Kind:    lexErr.Kind,
			Pos:     lexErr.Pos,
			Message: lexErr.Message,
		}
	}
	return Diagnostic{
		Source:  source,
		Kind:    lex.ErrorKindIO,
		Message: err.Error(),
	}
}

func (d Diagnostic) String() string {
	if d.Pos == (lex.Pos{}) {
		return fmt.Sprintf("%s: %s", d.Source, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", d.Source, d.Pos.Line, d.Pos.Column, d.Message)
}
