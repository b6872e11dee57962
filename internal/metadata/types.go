package metadata

// CommandMetadata holds everything the help generator needs to describe
// the snol command: its flags and the statement forms of the language.
type CommandMetadata struct {
	Name        string // Name of the command (e.g., "snol")
	Description string // Overall help description for the command
	Usage       string // Usage line without the command name (e.g., "[flags] [script.snol]")
	Options     []*OptionMetadata
	Statements  []*StatementMetadata
}

// OptionMetadata holds information about a single command-line option.
type OptionMetadata struct {
	Name         string // Flag name without dashes (e.g., "config")
	TypeName     string // "string" or "bool"
	HelpText     string // Description for the option
	DefaultValue any    // Default value (nil or zero value means none shown)
	EnvVar       string // Environment variable consulted by the option, if any
}

// DefaultValueAsBool checks if the DefaultValue is a boolean and true.
func (om *OptionMetadata) DefaultValueAsBool() bool {
	if b, ok := om.DefaultValue.(bool); ok {
		return b
	}
	return false
}

// DefaultValueAsString returns the DefaultValue when it is a string, "" otherwise.
func (om *OptionMetadata) DefaultValueAsString() string {
	if s, ok := om.DefaultValue.(string); ok {
		return s
	}
	return ""
}

// StatementMetadata describes one statement form accepted by the interpreter.
type StatementMetadata struct {
	Name        string // Short name (e.g., "assignment")
	Syntax      string // Surface form (e.g., "BEG <name>")
	Description string
	Example     string // A complete line using the form
}
