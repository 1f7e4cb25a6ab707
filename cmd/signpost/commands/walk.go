package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/signpost/shell"
	"github.com/xy-planning-network/signpost/view"
)

const (
	backArg    = "<"
	forwardArg = ">"
)

func walkCmd(e *env) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "walk LOCATION...",
		Short: "Navigate a shell through each location, printing the active view",
		Long: `Navigate a shell through each location, printing the active view.
A location is a path relative to the base (/cyk?word=ab),
a full address as typed into a location bar (https://example.com/app/cyk or /#/fsm),
"<" to go back, or ">" to go forward.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := e.file.ShellOptions(e.catalog)
			if err != nil {
				return err
			}

			s, err := shell.New(e.table, append(opts, shell.WithLogger(e.l))...)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			nav, err := s.Start(ctx, start)
			if err := report(out, s, "start", nav, err); err != nil {
				return err
			}

			for _, arg := range args {
				switch arg {
				case backArg:
					nav, err = s.Back(ctx)
				case forwardArg:
					nav, err = s.Forward(ctx)
				default:
					if isAddress(arg) {
						nav, err = s.Visit(ctx, arg)
						break
					}

					nav, err = s.Navigate(ctx, arg)
				}

				if err := report(out, s, arg, nav, err); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "address the client is loaded at (default the base)")
	return cmd
}

// isAddress reports whether loc is a full address rather than a route path.
func isAddress(loc string) bool {
	return strings.Contains(loc, "://") || strings.Contains(loc, "#")
}

// report prints the outcome of one step.
// Only errors a View returned stop the walk.
func report(out io.Writer, s *shell.Shell, step string, nav shell.Navigation, err error) error {
	fmt.Fprintf(out, "== %s\n", step)
	switch {
	case errors.Is(err, shell.ErrNoHistory):
		fmt.Fprintln(out, "no history in that direction")
	case err != nil:
		return err
	case !nav.Matched && nav.View == nil:
		fmt.Fprintf(out, "no match for %s\n", nav.Location)
	}

	if r, ok := s.Active().(view.Renderer); ok {
		if err := r.Render(out); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "address: %s\n", s.History().Location())
	return nil
}
