package lex

import (
	"fmt"
	"iter"
)

type TokenType uint16

const (
	TokenEOF TokenType = iota
	TokenUnknown
	TokenIdentifier
	TokenIntLiteral
	TokenBooleanLiteral
	TokenCharLiteral
	TokenStringLiteral

	PunctuatorPlus
	PunctuatorMinus
	PunctuatorAsterisk
	PunctuatorSlash
	PunctuatorPercent
	PunctuatorLess
	PunctuatorGreater
	PunctuatorLessEqual
	PunctuatorGreaterEqual
	PunctuatorEqualEqual
	PunctuatorNotEqual
	PunctuatorAndAnd
	PunctuatorOrOr
	PunctuatorNot
	PunctuatorEqual
	PunctuatorPlusEqual
	PunctuatorMinusEqual
	PunctuatorPlusPlus
	PunctuatorMinusMinus
	PunctuatorLeftParen
	PunctuatorRightParen
	PunctuatorLeftBracket
	PunctuatorRightBracket
	PunctuatorLeftBrace
	PunctuatorRightBrace
	PunctuatorComma
	PunctuatorSemicolon
	PunctuatorQuestion
	PunctuatorColon

	KeywordBool
	KeywordBreak
	KeywordImport
	KeywordContinue
	KeywordElse
	KeywordFalse
	KeywordFor
	KeywordWhile
	KeywordIf
	KeywordInt
	KeywordReturn
	KeywordLen
	KeywordTrue
	KeywordVoid

	numTokenTypes
)

type family uint8

const (
	familyToken family = iota
	familyPunctuator
	familyKeyword
)

type tokenTypeDef struct {
	typ      TokenType
	family   family
	name     string
	spelling string
}

// tokenTypeDefs is the only place spellings are written down.
// Entries must follow the declaration order of the constants above.
var tokenTypeDefs = [...]tokenTypeDef{
	{TokenEOF, familyToken, "EOF", ""},
	{TokenUnknown, familyToken, "UNKNOWN", ""},
	{TokenIdentifier, familyToken, "IDENTIFIER", "IDENTIFIER"},
	{TokenIntLiteral, familyToken, "INT_LITERAL", "INTLITERAL"},
	{TokenBooleanLiteral, familyToken, "BOOLEAN_LITERAL", "BOOLEANLITERAL"},
	{TokenCharLiteral, familyToken, "CHAR_LITERAL", "CHARLITERAL"},
	{TokenStringLiteral, familyToken, "STRING_LITERAL", "STRINGLITERAL"},

	{PunctuatorPlus, familyPunctuator, "PLUS", "+"},
	{PunctuatorMinus, familyPunctuator, "MINUS", "-"},
	{PunctuatorAsterisk, familyPunctuator, "ASTERISK", "*"},
	{PunctuatorSlash, familyPunctuator, "SLASH", "/"},
	{PunctuatorPercent, familyPunctuator, "PERCENT", "%"},
	{PunctuatorLess, familyPunctuator, "LESS", "<"},
	{PunctuatorGreater, familyPunctuator, "GREATER", ">"},
	{PunctuatorLessEqual, familyPunctuator, "LESS_EQUAL", "<="},
	{PunctuatorGreaterEqual, familyPunctuator, "GREATER_EQUAL", ">="},
	{PunctuatorEqualEqual, familyPunctuator, "EQUAL_EQUAL", "=="},
	{PunctuatorNotEqual, familyPunctuator, "NOT_EQUAL", "!="},
	{PunctuatorAndAnd, familyPunctuator, "AND_AND", "&&"},
	{PunctuatorOrOr, familyPunctuator, "OR_OR", "||"},
	{PunctuatorNot, familyPunctuator, "NOT", "!"},
	{PunctuatorEqual, familyPunctuator, "EQUAL", "="},
	{PunctuatorPlusEqual, familyPunctuator, "PLUS_EQUAL", "+="},
	{PunctuatorMinusEqual, familyPunctuator, "MINUS_EQUAL", "-="},
	{PunctuatorPlusPlus, familyPunctuator, "PLUS_PLUS", "++"},
	{PunctuatorMinusMinus, familyPunctuator, "MINUS_MINUS", "--"},
	{PunctuatorLeftParen, familyPunctuator, "LEFT_PAREN", "("},
	{PunctuatorRightParen, familyPunctuator, "RIGHT_PAREN", ")"},
	{PunctuatorLeftBracket, familyPunctuator, "LEFT_BRACKET", "["},
	{PunctuatorRightBracket, familyPunctuator, "RIGHT_BRACKET", "]"},
	{PunctuatorLeftBrace, familyPunctuator, "LEFT_BRACE", "{"},
	{PunctuatorRightBrace, familyPunctuator, "RIGHT_BRACE", "}"},
	{PunctuatorComma, familyPunctuator, "COMMA", ","},
	{PunctuatorSemicolon, familyPunctuator, "SEMICOLON", ";"},
	{PunctuatorQuestion, familyPunctuator, "QUESTION", "?"},
	{PunctuatorColon, familyPunctuator, "COLON", ":"},

	{KeywordBool, familyKeyword, "BOOL", "bool"},
	{KeywordBreak, familyKeyword, "BREAK", "break"},
	{KeywordImport, familyKeyword, "IMPORT", "import"},
	{KeywordContinue, familyKeyword, "CONTINUE", "continue"},
	{KeywordElse, familyKeyword, "ELSE", "else"},
	{KeywordFalse, familyKeyword, "FALSE", "false"},
	{KeywordFor, familyKeyword, "FOR", "for"},
	{KeywordWhile, familyKeyword, "WHILE", "while"},
	{KeywordIf, familyKeyword, "IF", "if"},
	{KeywordInt, familyKeyword, "INT", "int"},
	{KeywordReturn, familyKeyword, "RETURN", "return"},
	{KeywordLen, familyKeyword, "LEN", "len"},
	{KeywordTrue, familyKeyword, "TRUE", "true"},
	{KeywordVoid, familyKeyword, "VOID", "void"},
}

var (
	keywordTypes    = make(map[string]TokenType)
	punctuatorTypes = make(map[string]TokenType)
)

func init() {
	if len(tokenTypeDefs) != int(numTokenTypes) {
		panic(fmt.Errorf("token type table has %d entries, want %d", len(tokenTypeDefs), numTokenTypes))
	}
	for i, def := range tokenTypeDefs {
		if def.typ != TokenType(i) {
			panic(fmt.Errorf("token type table entry %d is %s", i, def.name))
		}
		var table map[string]TokenType
		switch def.family {
		case familyPunctuator:
			table = punctuatorTypes
		case familyKeyword:
			table = keywordTypes
		default:
			continue
		}
		if def.spelling == "" {
			panic(fmt.Errorf("%s has no spelling", def.name))
		}
		if prev, ok := table[def.spelling]; ok {
			panic(fmt.Errorf("spelling %q used by both %s and %s", def.spelling, prev, def.typ))
		}
		table[def.spelling] = def.typ
	}
}

func (t TokenType) String() string {
	if t >= numTokenTypes {
		return fmt.Sprintf("TokenType(%d)", uint16(t))
	}
	def := tokenTypeDefs[t]
	switch def.family {
	case familyPunctuator:
		return "PUNCTUATOR_" + def.name
	case familyKeyword:
		return "KEYWORD_" + def.name
	}
	return def.name
}

// DisplayName returns the canonical spelling of punctuators and keywords and
// the category name of literal markers. EOF and UNKNOWN have none.
func (t TokenType) DisplayName() (string, bool) {
	if t >= numTokenTypes {
		return "", false
	}
	spelling := tokenTypeDefs[t].spelling
	return spelling, spelling != ""
}

func (t TokenType) IsKeyword() bool {
	return t < numTokenTypes && tokenTypeDefs[t].family == familyKeyword
}

func (t TokenType) IsPunctuator() bool {
	return t < numTokenTypes && tokenTypeDefs[t].family == familyPunctuator
}

func KeywordType(text string) (TokenType, bool) {
	t, ok := keywordTypes[text]
	return t, ok
}

// PunctuatorType matches both one and two character spellings.
func PunctuatorType(text string) (TokenType, bool) {
	t, ok := punctuatorTypes[text]
	return t, ok
}

func TokenTypes() iter.Seq[TokenType] {
	return func(yield func(TokenType) bool) {
		for t := range numTokenTypes {
			if !yield(t) {
				return
			}
		}
	}
}
