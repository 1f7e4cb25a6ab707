package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/signpost"
)

func resolveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH...",
		Short: "Print the route each path resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range args {
				m, ok := e.table.Match(p)
				if !ok {
					fmt.Fprintf(out, "%s -> no match\n", p)
					continue
				}

				fmt.Fprintf(out, "%s -> %s (%s)%s\n", p, m.Name, m.View.Name(), formatParams(m.Params))
			}

			return nil
		},
	}
}

func pathForCmd(e *env) *cobra.Command {
	var params []string
	cmd := &cobra.Command{
		Use:   "path-for NAME...",
		Short: "Print the path registered under each route name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseParams(params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range args {
				path, err := e.table.Build(name, p)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s -> %s\n", name, path)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&params, "param", nil, "value for a :name segment, as name=value (repeatable)")
	return cmd
}

func parseParams(pairs []string) (signpost.Params, error) {
	p := make(signpost.Params, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: param %q is not name=value", signpost.ErrNotValid, pair)
		}

		p[k] = v
	}

	return p, nil
}

func formatParams(p signpost.Params) string {
	if len(p) == 0 {
		return ""
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+p[k])
	}

	return " {" + strings.Join(pairs, ", ") + "}"
}
