package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/podhmo/snol/internal/utils/stringutils"
)

// Run is the read-execute loop. Each failing command is reported as one line
// prefixed with cfg.ErrorPrefix and the loop goes on. Run returns nil after EXIT!
// or at end of input, ctx.Err() when ctx is done between commands, and a
// *ReadError when the line source fails.
func (s *Session) Run(ctx context.Context) error {
	if s.cfg.Banner != "" {
		fmt.Fprintln(s.out, s.cfg.Banner)
	}

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.cfg.Prompt)

		raw, err := s.in.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				slog.DebugContext(ctx, "end of input", "commands", n-1)
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return &ReadError{Err: err}
		}

		line := stringutils.TrimLine(raw)
		if line == "" {
			continue
		}

		status, err := s.Execute(ctx, line)
		if err != nil {
			var readErr *ReadError
			if errors.As(err, &readErr) {
				return err
			}
			slog.DebugContext(ctx, "command failed", "command", n, "error", err)
			fmt.Fprintf(s.out, "%s%s\n", s.cfg.ErrorPrefix, err)
		}

		switch status {
		case StatusExit:
			if s.cfg.ExitMessage != "" {
				fmt.Fprintln(s.out, s.cfg.ExitMessage)
			}
			return nil
		case StatusEndOfInput:
			return nil
		}
	}
}
