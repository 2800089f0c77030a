package lex

import (
	"errors"
	"fmt"
)

type ErrorKind uint8

const (
	ErrorKindInvalidToken ErrorKind = iota
	ErrorKindIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidToken:
		return "INVALID_TOKEN"
	case ErrorKindIO:
		return "IO"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

type LexingError struct {
	Kind    ErrorKind
	Message string
	Pos     Pos
	// Err is the reader error behind an IO error
	Err error
}

func (e *LexingError) Error() string {
	if e.Pos == (Pos{}) {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func (e *LexingError) Unwrap() error {
	return e.Err
}

func ioError(err error) *LexingError {
	return &LexingError{
		Kind:    ErrorKindIO,
		Message: err.Error(),
		Err:     err,
	}
}

func invalidToken(pos Pos, format string, args ...any) *LexingError {
	return &LexingError{
		Kind:    ErrorKindInvalidToken,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func IsInvalidToken(err error) bool {
	var lexErr *LexingError
	return errors.As(err, &lexErr) && lexErr.Kind == ErrorKindInvalidToken
}

func IsIO(err error) bool {
	var lexErr *LexingError
	return errors.As(err, &lexErr) && lexErr.Kind == ErrorKindIO
}
