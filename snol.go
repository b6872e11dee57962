// Package snol runs sessions of SNOL, a Simple Number-Only Language.
// A session reads one command per line (assignments, PRINT, BEG and EXIT!)
// and keeps its variables in memory until the session ends.
// Run is the entry point shared by the `snol` command and embedding programs.
package snol

import (
	"context"
	"io"

	"github.com/podhmo/snol/internal/config"
	"github.com/podhmo/snol/internal/interpreter"
)

// Option customizes a session started by Run.
type Option interface {
	isOption() // Ensures only defined Option types can be used.
}

// -- Option implementations --

// ConfigFileOption loads session settings from a YAML file.
type ConfigFileOption struct {
	Path string
}

func (ConfigFileOption) isOption() {}

// WithConfigFile returns an Option that reads settings from the YAML file at path.
// Unknown keys in the file are rejected.
func WithConfigFile(path string) Option {
	return ConfigFileOption{Path: path}
}

// EchoAssignmentsOption prints every successful assignment.
type EchoAssignmentsOption struct{}

func (EchoAssignmentsOption) isOption() {}

// EchoAssignments returns an Option that prints "[name] = value" after each assignment.
func EchoAssignments() Option {
	return EchoAssignmentsOption{}
}

// QuietOption suppresses the banner, prompts and exit message.
type QuietOption struct{}

func (QuietOption) isOption() {}

// Quiet returns an Option suited for piped scripts: only PRINT output,
// BEG requests and errors are written.
func Quiet() Option {
	return QuietOption{}
}

// Run executes one session, reading commands from in and writing to out.
// It returns nil when the session ends with EXIT! or at the end of input.
// A config file that cannot be loaded, a cancelled ctx and a failed read
// are returned as errors; mistakes in commands are reported on out instead.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}
	s := interpreter.New(cfg, interpreter.NewLineReader(in), out)
	return s.Run(ctx)
}

func buildConfig(opts []Option) (*config.Config, error) {
	cfg := config.Default()
	for _, opt := range opts {
		if o, ok := opt.(ConfigFileOption); ok {
			loaded, err := config.Load(o.Path)
			if err != nil {
				return nil, err
			}
			cfg = loaded
		}
	}
	for _, opt := range opts {
		switch opt.(type) {
		case EchoAssignmentsOption:
			cfg.EchoAssignments = true
		case QuietOption:
			cfg = cfg.Quiet()
		}
	}
	return cfg, nil
}
