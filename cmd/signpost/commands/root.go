package commands

import (
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/config"
	"github.com/xy-planning-network/signpost/logger"
	"github.com/xy-planning-network/signpost/route"
	"github.com/xy-planning-network/signpost/view"
)

// env holds what every command shares once flags are parsed.
type env struct {
	routes string
	mode   string
	base   string

	file    config.File
	catalog view.Catalog
	table   *route.Table
	l       logger.Logger
}

func Execute() error {
	return NewRoot().Execute()
}

// NewRoot constructs the signpost command with every subcommand attached.
func NewRoot() *cobra.Command {
	e := new(env)
	root := &cobra.Command{
		Use:           "signpost",
		Short:         "Resolve and walk client-side route tables",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&e.routes, "routes", "", "TOML or YAML route file (default $SIGNPOST_ROUTES or the built-in table)")
	root.PersistentFlags().StringVar(&e.mode, "mode", "", "navigation mode, history or hash (overrides the route file)")
	root.PersistentFlags().StringVar(&e.base, "base", "", "path the client is mounted under (overrides the route file)")

	root.AddCommand(checkCmd(e), resolveCmd(e), pathForCmd(e), walkCmd(e), serveCmd(e))
	return root
}

// load reads the route file and registers its table.
func (e *env) load(stderr io.Writer) error {
	e.l = logger.New(
		logger.WithLogger(log.New(stderr, "", log.LstdFlags)),
		logger.WithLevel(signpost.EnvVarOrLogLevel("LOG_LEVEL", logger.LogLevelWarn)),
	)

	var err error
	if e.routes != "" {
		e.file, err = config.Load(e.routes)
	} else {
		e.file, err = config.FromEnv()
	}
	if err != nil {
		return err
	}

	if e.mode != "" {
		e.file.Mode = e.mode
	}

	if e.base != "" {
		e.file.Base = e.base
	}

	e.catalog = view.DefaultCatalog()
	e.table, err = e.file.Table(e.catalog)
	return err
}
