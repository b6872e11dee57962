package stringutils

import (
	"strings"
	"unicode"
)

// CutKeyword reports whether line starts with keyword followed by at least one
// whitespace character, and returns the trimmed remainder.
// Example: CutKeyword("PRINT  x", "PRINT") -> "x", true; CutKeyword("PRINTx", "PRINT") -> "", false
func CutKeyword(line, keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(line, keyword)
	if !ok || rest == "" {
		return "", false
	}
	r := []rune(rest)[0]
	if !unicode.IsSpace(r) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// TrimLine strips a trailing line terminator ("\n" or "\r\n") and any
// surrounding whitespace.
func TrimLine(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return strings.TrimSpace(s)
}

// Bracket wraps s the way the interpreter quotes names in messages.
// Example: "x" -> "[x]"
func Bracket(s string) string {
	return "[" + s + "]"
}
