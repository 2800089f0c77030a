package lex

import "strings"

// isValidIntLiteral checks a greedily captured literal. Anything containing
// "0x" is judged as hexadecimal from index 2 on.
func isValidIntLiteral(literal string) bool {
	if strings.Contains(literal, "0x") {
		if len(literal) == 2 {
			return false
		}
		for i := 2; i < len(literal); i++ {
			if !isHexDigit(int(literal[i])) {
				return false
			}
		}
		return true
	}

	for i := 0; i < len(literal); i++ {
		if !isDigit(int(literal[i])) {
			return false
		}
	}
	return true
}
