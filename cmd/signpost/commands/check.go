package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the route table and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.file.NavigationMode()
			if err != nil {
				return err
			}

			fb, err := e.file.FallbackView(e.catalog)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode: %s\n", m)
			if e.file.Base != "" {
				fmt.Fprintf(out, "base: %s\n", e.file.Base)
			}

			if fb != nil {
				fmt.Fprintf(out, "fallback: %s\n", fb.Name())
			}

			for i, r := range e.table.Routes() {
				fmt.Fprintf(out, "%d. %s\n", i+1, r)
			}

			fmt.Fprintf(out, "ok: %d routes\n", e.table.Len())
			return nil
		},
	}
}
