package lex

import (
	"io"
	"iter"
	"strings"
)

// Lexer turns a Decaf byte stream into tokens. It is not safe for concurrent
// use.
type Lexer struct {
	name   string
	src    *source
	closer io.Closer
}

// NewLexer reads from r without taking ownership of it.
func NewLexer(name string, r io.Reader) *Lexer {
	return &Lexer{
		name: name,
		src:  newSource(r),
	}
}

// OpenLexer takes ownership of rc. Close releases it.
func OpenLexer(name string, rc io.ReadCloser) *Lexer {
	return &Lexer{
		name:   name,
		src:    newSource(rc),
		closer: rc,
	}
}

func (l *Lexer) Name() string {
	return l.name
}

func (l *Lexer) Close() error {
	if l.closer == nil {
		return nil
	}
	closer := l.closer
	l.closer = nil
	return closer.Close()
}

func (l *Lexer) NextToken() (Token, error) {
	c, err := l.src.next()
	if err != nil {
		return Token{}, err
	}

	for isSpace(c) || c == '/' {
		if c == '/' {
			tok, ok, err := l.skipComment(l.src.pos())
			if err != nil {
				return Token{}, err
			}
			if !ok {
				return tok, nil
			}
		}
		c, err = l.src.next()
		if err != nil {
			return Token{}, err
		}
	}

	if c == eof {
		return Token{
			Type: TokenEOF,
		}, nil
	}

	pos := l.src.pos()

	switch {
	case isAlpha(c):
		return l.scanWord(pos, c)
	case isDigit(c):
		return l.scanIntLiteral(pos, c)
	}
	return l.scanPunctuator(pos, c)
}

// scanAlnum collects c and the alphanumeric run after it.
func (l *Lexer) scanAlnum(c int) (string, error) {
	var sb strings.Builder
	sb.WriteByte(byte(c))
	for {
		c, err := l.src.next()
		if err != nil {
			return "", err
		}
		if !isAlnum(c) {
			break
		}
		sb.WriteByte(byte(c))
	}
	l.src.pushback()
	return sb.String(), nil
}

func (l *Lexer) scanWord(pos Pos, c int) (Token, error) {
	word, err := l.scanAlnum(c)
	if err != nil {
		return Token{}, err
	}
	if t, ok := KeywordType(word); ok {
		return Token{
			Type: t,
			Pos:  pos,
		}, nil
	}
	return Token{
		Type: TokenIdentifier,
		Pos:  pos,
		Text: word,
	}, nil
}

func (l *Lexer) scanIntLiteral(pos Pos, c int) (Token, error) {
	literal, err := l.scanAlnum(c)
	if err != nil {
		return Token{}, err
	}
	if !isValidIntLiteral(literal) {
		return Token{}, invalidToken(pos, "invalid integer literal '%s'", literal)
	}
	return Token{
		Type: TokenIntLiteral,
		Pos:  pos,
		Text: literal,
	}, nil
}

func (l *Lexer) scanPunctuator(pos Pos, c int) (Token, error) {
	next, err := l.src.next()
	if err != nil {
		return Token{}, err
	}

	if next != eof {
		if t, ok := PunctuatorType(string([]byte{byte(c), byte(next)})); ok {
			return Token{
				Type: t,
				Pos:  pos,
			}, nil
		}
		l.src.pushback()
	}

	t, ok := PunctuatorType(string([]byte{byte(c)}))
	if !ok {
		return Token{}, invalidToken(pos, "unrecognized token '%s'", displayByte(c))
	}
	return Token{
		Type: t,
		Pos:  pos,
	}, nil
}

// Tokens yields every token and error up to and including the EOF token.
// Invalid token errors are yielded and lexing goes on; an IO error ends the
// sequence.
func (l *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.NextToken()
			if err != nil {
				if !yield(tok, err) {
					return
				}
				if IsIO(err) {
					return
				}
				continue
			}
			if !yield(tok, nil) {
				return
			}
			if tok.Type == TokenEOF {
				return
			}
		}
	}
}
