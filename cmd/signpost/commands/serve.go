package commands

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/signpost/ranger"
)

func serveCmd(e *env) *cobra.Command {
	var dist string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the static host serving the client and its deep links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []ranger.RangerOption{
				ranger.WithContext(cmd.Context()),
				ranger.WithRoutes(e.file),
			}
			if dist != "" {
				opts = append(opts, ranger.WithDistDir(dist))
			}

			rng, err := ranger.New(opts...)
			if err != nil {
				return err
			}

			return rng.Guide()
		},
	}

	cmd.Flags().StringVar(&dist, "dist", "", "directory holding the client's build output (default $DIST_DIR)")
	return cmd
}
