package lex

type commentState uint8

const (
	startingSlash commentState = iota
	singleLine
	multipleLine
	endingAsterisk
	finish
)

// skipComment runs after a '/' at pos has been consumed. It reports ok=false
// with a slash token when the slash does not open a comment.
func (l *Lexer) skipComment(pos Pos) (tok Token, ok bool, err error) {
	state := startingSlash
	for state != finish {
		c, err := l.src.next()
		if err != nil {
			return tok, false, err
		}

		switch state {

		case startingSlash:
			switch c {
			case '/':
				state = singleLine
			case '*':
				state = multipleLine
			default:
				l.src.pushback()
				return Token{
					Type: PunctuatorSlash,
					Pos:  pos,
				}, false, nil
			}

		case singleLine:
			if c == '\n' || c == eof {
				state = finish
			}

		case multipleLine:
			if c == '*' {
				state = endingAsterisk
			} else if c == eof {
				return tok, false, invalidToken(pos, "unterminated /* comment")
			}

		case endingAsterisk:
			if c == '/' {
				state = finish
			} else {
				state = multipleLine
			}

		}
	}
	return tok, true, nil
}
