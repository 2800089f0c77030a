package lex

import (
	"bufio"
	"errors"
	"io"
)

const (
	eof   = -1
	start = 1 << 8
)

// source is a byte cursor with one character of pushback.
type source struct {
	reader *bufio.Reader

	lastChar int
	lastErr  error
	unget    bool

	line   int
	column int
}

func newSource(r io.Reader) *source {
	return &source{
		reader:   bufio.NewReader(r),
		lastChar: start,
		line:     1,
	}
}

// pos is the position of the last delivered character.
func (s *source) pos() Pos {
	return Pos{
		Line:   s.line,
		Column: s.column,
	}
}

func (s *source) next() (int, error) {
	if s.unget || s.lastChar == eof {
		s.unget = false
		if s.lastErr != nil {
			return eof, ioError(s.lastErr)
		}
		return s.lastChar, nil
	}

	b, err := s.reader.ReadByte()

	if s.lastChar == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}

	if err != nil {
		s.lastChar = eof
		if errors.Is(err, io.EOF) {
			return eof, nil
		}
		s.lastErr = err
		return eof, ioError(err)
	}

	s.lastChar = int(b)
	return s.lastChar, nil
}

func (s *source) pushback() {
	if s.lastChar != start {
		s.unget = true
	}
}
