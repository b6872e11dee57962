// Package interpreter executes SNOL command lines against a session-owned variable store.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/podhmo/snol/internal/config"
	"github.com/podhmo/snol/internal/lexer"
	"github.com/podhmo/snol/internal/store"
	"github.com/podhmo/snol/internal/utils/stringutils"
	"github.com/podhmo/snol/internal/value"
)

// Status tells the caller whether the session goes on after a command.
type Status int

const (
	StatusContinue   Status = iota // Read the next command
	StatusExit                     // EXIT! was given
	StatusEndOfInput               // The line source ran dry while BEG was waiting
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusExit:
		return "exit"
	case StatusEndOfInput:
		return "end-of-input"
	default:
		return fmt.Sprintf("unknown_status_%d", int(s))
	}
}

// Session is one run of the interpreter. It owns the variable store; nothing
// is shared between sessions. A Session is not safe for concurrent use.
type Session struct {
	cfg   *config.Config
	store *store.Store
	in    LineReader
	out   io.Writer
}

// New creates a session reading from in and writing to out.
// A nil cfg means config.Default().
func New(cfg *config.Config, in LineReader, out io.Writer) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Session{
		cfg:   cfg,
		store: store.New(),
		in:    in,
		out:   out,
	}
}

// Store exposes the session's variables.
func (s *Session) Store() *store.Store {
	return s.store
}

// Execute classifies one command line and runs it.
// Forms are tried in this order: assignment (the line contains "="), EXIT!,
// PRINT, BEG. Blank lines do nothing.
func (s *Session) Execute(ctx context.Context, line string) (Status, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return StatusContinue, nil
	}

	if strings.Contains(line, "=") {
		slog.DebugContext(ctx, "dispatch", "statement", "assignment", "line", line)
		return StatusContinue, s.execAssignment(ctx, line)
	}
	if line == lexer.KeywordExit {
		slog.DebugContext(ctx, "dispatch", "statement", "exit")
		return StatusExit, nil
	}
	if arg, ok := stringutils.CutKeyword(line, lexer.KeywordPrint); ok && arg != "" {
		slog.DebugContext(ctx, "dispatch", "statement", "print", "arg", arg)
		return StatusContinue, s.execPrint(arg)
	}
	if arg, ok := stringutils.CutKeyword(line, lexer.KeywordBeg); ok && arg != "" {
		slog.DebugContext(ctx, "dispatch", "statement", "beg", "arg", arg)
		return s.execBeg(ctx, arg)
	}

	slog.DebugContext(ctx, "dispatch", "statement", "unknown", "line", line)
	switch line {
	case lexer.KeywordPrint:
		return StatusContinue, fmt.Errorf("%w: missing argument after PRINT", ErrUnknownCommand)
	case lexer.KeywordBeg:
		return StatusContinue, fmt.Errorf("%w: missing variable name after BEG", ErrUnknownCommand)
	}
	return StatusContinue, fmt.Errorf("%w: %s does not match any valid command of the language", ErrUnknownCommand, stringutils.Bracket(line))
}

// execAssignment handles "<name> = <operand>" and "<name> = <operand> <op> <operand>".
func (s *Session) execAssignment(ctx context.Context, line string) error {
	target, rhs, _ := strings.Cut(line, "=")
	target = strings.TrimSpace(target)
	if !lexer.IsIdentifier(target) {
		return fmt.Errorf("%w: %s", ErrInvalidIdentifier, stringutils.Bracket(target))
	}

	var (
		v   value.Value
		err error
	)
	switch fields := strings.Fields(rhs); len(fields) {
	case 3:
		v, err = s.Evaluate(fields[0], fields[1], fields[2])
	case 1:
		v, err = s.Resolve(fields[0])
	default:
		return fmt.Errorf("%w: %s must be <operand> or <operand> <operator> <operand>", ErrMalformedAssignment, stringutils.Bracket(strings.TrimSpace(rhs)))
	}
	if err != nil {
		return err
	}

	s.set(ctx, target, v)
	if s.cfg.EchoAssignments {
		s.printValue(target, v)
	}
	return nil
}

func (s *Session) execPrint(arg string) error {
	v, err := s.Resolve(arg)
	if err != nil {
		return err
	}
	s.printValue(arg, v)
	return nil
}

// execBeg validates the name before prompting, then reads exactly one line.
// The variable is only touched when that line is a valid number.
func (s *Session) execBeg(ctx context.Context, name string) (Status, error) {
	if !lexer.IsIdentifier(name) {
		return StatusContinue, fmt.Errorf("%w: %s", ErrInvalidIdentifier, stringutils.Bracket(name))
	}

	fmt.Fprintf(s.out, "%sPlease enter value for %s\n", s.cfg.OutputPrefix, stringutils.Bracket(name))
	fmt.Fprint(s.out, s.cfg.InputPrompt)

	raw, err := s.in.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			slog.DebugContext(ctx, "end of input while waiting for BEG value", "name", name)
			return StatusEndOfInput, nil
		}
		return StatusContinue, &ReadError{Err: err}
	}

	input := strings.TrimSpace(raw)
	if !lexer.IsNumber(input) {
		return StatusContinue, fmt.Errorf("%w: %s", ErrInvalidNumberFormat, stringutils.Bracket(input))
	}
	v, err := value.ParseLiteral(input)
	if err != nil {
		return StatusContinue, fmt.Errorf("%w: %w", ErrInvalidNumberFormat, err)
	}
	s.set(ctx, name, v)
	return StatusContinue, nil
}

func (s *Session) set(ctx context.Context, name string, v value.Value) {
	if created := s.store.Upsert(name, v); created {
		slog.DebugContext(ctx, fmt.Sprintf("defined variable %s", name), "kind", v.Kind(), "value", value.Format(v))
	} else {
		slog.DebugContext(ctx, fmt.Sprintf("updated variable %s", name), "kind", v.Kind(), "value", value.Format(v))
	}
}

func (s *Session) printValue(label string, v value.Value) {
	fmt.Fprintf(s.out, "%s%s = %s\n", s.cfg.OutputPrefix, stringutils.Bracket(label), value.Format(v))
}
