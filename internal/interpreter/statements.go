package interpreter

import (
	"github.com/podhmo/snol/internal/lexer"
	"github.com/podhmo/snol/internal/metadata"
)

// Statements describes the accepted statement forms in the order Execute tries them.
func Statements() []*metadata.StatementMetadata {
	return []*metadata.StatementMetadata{
		{
			Name:        "assignment",
			Syntax:      "<name> = <operand> [<op> <operand>]",
			Description: "Store a literal, a copy of a variable, or one binary operation (+ - * / %) in <name>.",
			Example:     "total = count * 2",
		},
		{
			Name:        "exit",
			Syntax:      lexer.KeywordExit,
			Description: "End the session.",
		},
		{
			Name:        "print",
			Syntax:      lexer.KeywordPrint + " <name|literal>",
			Description: "Show a value; floats are shown with two decimals.",
			Example:     "PRINT total",
		},
		{
			Name:        "beg",
			Syntax:      lexer.KeywordBeg + " <name>",
			Description: "Ask for a number and store it in <name>.",
			Example:     "BEG count",
		},
	}
}
