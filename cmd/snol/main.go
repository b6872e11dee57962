package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/podhmo/snol"
	"github.com/podhmo/snol/internal/help"
	"github.com/podhmo/snol/internal/interpreter"
	"github.com/podhmo/snol/internal/lexer"
	"github.com/podhmo/snol/internal/metadata"
)

// Options holds the configuration of one `snol run` invocation,
// typically derived from its command-line arguments.
type Options struct {
	ConfigFile string // Path to a YAML settings file (e.g., "snol.yaml")
	Echo       bool   // Print every successful assignment
	Quiet      bool   // Omit banner, prompts and exit message
	ScriptFile string // Script to read commands from; stdin when empty
}

func main() {
	// debug mode: if DEBUG environment variable is set, enable debug logging
	if _, ok := os.LookupEnv("DEBUG"); ok {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := dispatch(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("Error running snol", "error", err)
		os.Exit(1)
	}
}

// dispatch picks the subcommand. Without a known subcommand name the
// arguments belong to "run", so `snol`, `snol -quiet` and `snol script.snol` all start a session.
func dispatch(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	sub := "run"
	if len(args) > 0 {
		switch args[0] {
		case "run", "tokens", "help":
			sub, args = args[0], args[1:]
		}
	}

	switch sub {
	case "run":
		opts := &Options{}
		runCmd := newRunFlagSet(opts, stderr)
		if err := runCmd.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		if runCmd.NArg() > 1 {
			runCmd.Usage()
			return fmt.Errorf("at most one script file can be given, got %d", runCmd.NArg())
		}
		opts.ScriptFile = runCmd.Arg(0)
		return runSession(ctx, opts, stdin, stdout)

	case "tokens":
		tokensCmd := flag.NewFlagSet("tokens", flag.ContinueOnError)
		tokensCmd.SetOutput(stderr)
		tokensCmd.Usage = func() {
			fmt.Fprintf(stderr, "Usage: snol tokens <script.snol>\n\nPrints one JSON object per token.\n")
		}
		if err := tokensCmd.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		if tokensCmd.NArg() < 1 {
			tokensCmd.Usage()
			return errors.New("script file must be specified for tokens")
		}
		f, err := os.Open(tokensCmd.Arg(0))
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		return writeTokens(ctx, f, stdout)

	default: // help
		fmt.Fprint(stdout, help.GenerateHelp(commandMetadata()))
		return nil
	}
}

func runOptions() []*metadata.OptionMetadata {
	return []*metadata.OptionMetadata{
		{Name: "config", TypeName: "string", HelpText: "YAML file overriding banner, prompts and prefixes", EnvVar: "SNOL_CONFIG"},
		{Name: "echo", TypeName: "bool", HelpText: "Print every successful assignment", DefaultValue: false},
		{Name: "quiet", TypeName: "bool", HelpText: "Only print results and errors (for piped scripts)", DefaultValue: false},
	}
}

func commandMetadata() *metadata.CommandMetadata {
	return &metadata.CommandMetadata{
		Name:        "snol",
		Description: "Simple Number-Only Language interpreter.\nCommands are read from the script file, or from stdin when none is given.",
		Usage:       "[run] [flags] [script.snol]\n  snol tokens <script.snol>\n  snol help",
		Options:     runOptions(),
		Statements:  interpreter.Statements(),
	}
}

// newRunFlagSet registers the flags described by runOptions.
func newRunFlagSet(opts *Options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	for _, om := range runOptions() {
		switch om.TypeName {
		case "string":
			def := om.DefaultValueAsString()
			if v, ok := os.LookupEnv(om.EnvVar); ok && om.EnvVar != "" {
				def = v
			}
			fs.StringVar(stringField(opts, om.Name), om.Name, def, om.HelpText)
		case "bool":
			fs.BoolVar(boolField(opts, om.Name), om.Name, om.DefaultValueAsBool(), om.HelpText)
		}
	}
	fs.Usage = func() {
		fmt.Fprint(stderr, help.GenerateHelp(commandMetadata()))
	}
	return fs
}

func stringField(opts *Options, name string) *string {
	switch name {
	case "config":
		return &opts.ConfigFile
	}
	panic(fmt.Sprintf("unknown string option %q", name))
}

func boolField(opts *Options, name string) *bool {
	switch name {
	case "echo":
		return &opts.Echo
	case "quiet":
		return &opts.Quiet
	}
	panic(fmt.Sprintf("unknown bool option %q", name))
}

func runSession(ctx context.Context, opts *Options, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if opts.ScriptFile != "" {
		f, err := os.Open(opts.ScriptFile)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	var sessionOpts []snol.Option
	if opts.ConfigFile != "" {
		sessionOpts = append(sessionOpts, snol.WithConfigFile(opts.ConfigFile))
	}
	if opts.Echo {
		sessionOpts = append(sessionOpts, snol.EchoAssignments())
	}
	if opts.Quiet {
		sessionOpts = append(sessionOpts, snol.Quiet())
	}

	slog.InfoContext(ctx, "SNOL: session started", "script", opts.ScriptFile, "config", opts.ConfigFile, "echo", opts.Echo, "quiet", opts.Quiet)
	if err := snol.Run(ctx, in, stdout, sessionOpts...); err != nil {
		return fmt.Errorf("session aborted: %w", err)
	}
	slog.InfoContext(ctx, "SNOL: session finished")
	return nil
}

type tokenRecord struct {
	Line int `json:"line"`
	lexer.Token
}

// writeTokens prints the classification of every token of r as JSON lines.
func writeTokens(ctx context.Context, r io.Reader, w io.Writer) error {
	enc := json.NewEncoder(w)
	lr := interpreter.NewLineReader(r)
	for n := 1; ; n++ {
		line, err := lr.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read line %d: %w", n, err)
		}
		for _, tok := range lexer.Tokenize(line) {
			if err := enc.Encode(tokenRecord{Line: n, Token: tok}); err != nil {
				return fmt.Errorf("failed to encode token %q: %w", tok.Text, err)
			}
		}
	}
}
