package lex

import "fmt"

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexical unit. Text is set only for identifiers and integer
// literals.
type Token struct {
	Type TokenType
	Pos  Pos
	Text string
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s(%s) at %s", t.Type, t.Text, t.Pos)
	}
	return fmt.Sprintf("%s at %s", t.Type, t.Pos)
}
