package lex

import "fmt"

func isSpace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(c int) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c int) bool {
	return isAlpha(c) || isDigit(c)
}

func isHexDigit(c int) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// displayByte renders c for messages, escaping bytes outside printable ASCII.
func displayByte(c int) string {
	if c < ' ' || c > '~' {
		return fmt.Sprintf(`\x%02x`, c)
	}
	return string([]byte{byte(c)})
}
