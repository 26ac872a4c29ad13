// Package commands defines the apiprop cobra commands and their flag
// bindings.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-apiprop/internal/config"
	"github.com/goliatone/go-apiprop/internal/logger"
)

// Root returns the root command. Persistent flags land in a config.Config
// that the subcommands layer over the environment and config file.
func Root() *cobra.Command {
	flags := &config.Config{}

	cmd := &cobra.Command{
		Use:           "apiprop",
		Short:         "Build API property schemas from catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.File, "config", "", "YAML config file (env APIPROP_CONFIG)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.Bool("pretty", false, "human readable log output")
	pf.StringVar(&flags.Dialect, "dialect", "", "schema dialect: openapi or jsonschema")

	cmd.AddCommand(Build(flags))
	cmd.AddCommand(Wizard(flags))
	cmd.AddCommand(Version())

	return cmd
}

// resolve layers the bound flags over env, file and defaults, builds the
// logger the command writes to and stores it on the command context.
func resolve(cmd *cobra.Command, flags *config.Config) (*config.Config, *logger.Logger, error) {
	layer := *flags
	layer.Pretty = changedBool(cmd, "pretty")
	layer.Validate = changedBool(cmd, "validate")

	cfg, err := config.Load(layer, environ)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.PrettyLogs(),
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(log.WithContext(ctx))
	return cfg, log, nil
}

// changedBool returns the flag value when it was set on the command line and
// nil otherwise, so unset flags do not hide env or file values.
func changedBool(cmd *cobra.Command, name string) *bool {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

// environ overrides the process environment in tests.
var environ map[string]string
