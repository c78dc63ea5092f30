// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
)

// Func runs one command against an open CLI
type Func[T any] func(ctx context.Context, c *cli.CLI, p *FlagParser) (T, error)

// Output describes how a command's result is printed outside JSON mode
type Output[T any] struct {
	// Human renders the readable form
	Human func(w io.Writer, result T)
	// IDs lists the ids printed in quiet mode; nil prints nothing
	IDs func(result T) []string
}

// Command wraps common command execution logic.
// Returns a cobra RunE compatible function.
func Command[T any](fn Func[T], out Output[T]) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := cli.NewFormatter(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("error closing CLI", "error", err)
			}
		}()

		result, err := fn(ctx, cliInstance, NewFlagParser(cmd))
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.Quiet && !formatter.JSON {
			if out.IDs == nil {
				return nil
			}
			return formatter.IDs(out.IDs(result))
		}

		var human func(io.Writer)
		if out.Human != nil {
			human = func(w io.Writer) { out.Human(w, result) }
		}
		return formatter.Success(result, human)
	}
}
