package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/podhmo/snol/internal/metadata"
)

// GenerateHelp returns a formatted help message built from CommandMetadata.
func GenerateHelp(cmdMeta *metadata.CommandMetadata) string {
	if cmdMeta == nil {
		return "<error>" // Handle nil case gracefully
	}

	var sb strings.Builder
	generateHelp(&sb, cmdMeta)
	return sb.String()
}

func generateHelp(w io.Writer, cmdMeta *metadata.CommandMetadata) {
	fmt.Fprintf(w, "%s - %s\n\n", cmdMeta.Name, strings.ReplaceAll(cmdMeta.Description, "\n", "\n"+strings.Repeat(" ", len(cmdMeta.Name)+3)))
	if cmdMeta.Usage != "" {
		fmt.Fprintf(w, "Usage:\n  %s %s\n\n", cmdMeta.Name, cmdMeta.Usage)
	} else {
		fmt.Fprintf(w, "Usage:\n  %s\n\n", cmdMeta.Name)
	}

	if len(cmdMeta.Statements) > 0 {
		fmt.Fprintln(w, "Statements:")
		maxSyntaxLen := 0
		for _, st := range cmdMeta.Statements {
			if l := len(st.Syntax); l > maxSyntaxLen {
				maxSyntaxLen = l
			}
		}
		for _, st := range cmdMeta.Statements {
			fmt.Fprintf(w, "  %-*s  %s", maxSyntaxLen, st.Syntax, st.Description)
			if st.Example != "" {
				fmt.Fprintf(w, " (e.g. %q)", st.Example)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Flags:")

	// Find max length of option names for alignment (include -h, --help)
	maxNameLen := len("h, --help")
	for _, opt := range cmdMeta.Options {
		if l := len(opt.Name); l > maxNameLen {
			maxNameLen = l
		}
	}

	for _, opt := range cmdMeta.Options {
		typeName := strings.ToLower(opt.TypeName)
		if typeName == "bool" {
			typeName = "" // bool flags take no value
		}
		typeIndicator := fmt.Sprintf("%-6s", typeName)
		helpText := strings.ReplaceAll(opt.HelpText, "\n", "\n"+strings.Repeat(" ", maxNameLen+12))
		fmt.Fprintf(w, "  --%-*s %s %s", maxNameLen, opt.Name, typeIndicator, helpText)
		if s := opt.DefaultValueAsString(); s != "" {
			fmt.Fprintf(w, " (default: %q)", s)
		} else if opt.DefaultValueAsBool() {
			fmt.Fprint(w, " (default: true)")
		}
		if opt.EnvVar != "" {
			fmt.Fprintf(w, " (env: %s)", opt.EnvVar)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "")
	helpName := "h, --help"
	helpText := "Show this help message and exit"
	fmt.Fprintf(w, "  -%-*s %s\n", maxNameLen+8, helpName, helpText)
}
