// Package lexer classifies the whitespace-delimited tokens of a SNOL command line.
package lexer

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the lexical class of a token.
type Kind int

const (
	Invalid Kind = iota
	IntLiteral
	FloatLiteral
	Identifier
	Operator
	Keyword
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case IntLiteral:
		return "int"
	case FloatLiteral:
		return "float"
	case Identifier:
		return "identifier"
	case Operator:
		return "operator"
	case Keyword:
		return "keyword"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// MarshalText lets tokens be dumped as JSON with readable kinds.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Keywords of the language. They are matched case-sensitively.
const (
	KeywordPrint = "PRINT"
	KeywordBeg   = "BEG"
	KeywordExit  = "EXIT!"
)

var (
	intPattern        = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern      = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
)

// Token is a classified piece of a command line.
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Classify returns the lexical class of tok.
// Numeric literals win over everything else, then operators, keywords and identifiers.
func Classify(tok string) Kind {
	switch {
	case intPattern.MatchString(tok):
		return IntLiteral
	case floatPattern.MatchString(tok):
		return FloatLiteral
	case IsOperator(tok):
		return Operator
	case IsKeyword(tok):
		return Keyword
	case IsIdentifier(tok):
		return Identifier
	default:
		return Invalid
	}
}

// IsNumber reports whether tok is an integer or float literal.
func IsNumber(tok string) bool {
	return intPattern.MatchString(tok) || floatPattern.MatchString(tok)
}

// IsIdentifier reports whether tok is a syntactically valid variable name:
// an ASCII letter followed by letters or digits.
// Keywords made of letters (PRINT, BEG) are valid identifiers too.
func IsIdentifier(tok string) bool {
	return identifierPattern.MatchString(tok)
}

// IsOperator reports whether tok is one of the binary operators + - * / %.
func IsOperator(tok string) bool {
	switch tok {
	case "+", "-", "*", "/", "%":
		return true
	}
	return false
}

// IsKeyword reports whether tok is a reserved command word.
func IsKeyword(tok string) bool {
	switch tok {
	case KeywordPrint, KeywordBeg, KeywordExit:
		return true
	}
	return false
}

// Tokenize splits s on whitespace and classifies every piece.
func Tokenize(s string) []Token {
	fields := strings.Fields(s)
	toks := make([]Token, 0, len(fields))
	for _, f := range fields {
		toks = append(toks, Token{Kind: Classify(f), Text: f})
	}
	return toks
}
