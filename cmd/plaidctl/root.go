package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/plaid"
	"github.com/adamwoolhether/plaid/config"
)

const (
	envFileFlagName  = "env-file"
	baseURLFlagName  = "base-url"
	logLevelFlagName = "log-level"
)

// app holds the state shared by every subcommand.
type app struct {
	envFiles []string
	baseURL  string
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := app{}

	rootCmd := &cobra.Command{
		Use:           "plaidctl",
		Short:         "Talk to the Plaid API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("%s: %w", logLevelFlagName, err)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, envFileFlagName, nil, "Read configuration from these .env files (default .env when present)")
	flags.StringVar(&a.baseURL, baseURLFlagName, "", "Override the API base URL, e.g. a local fake-server")
	flags.StringVar(&a.logLevel, logLevelFlagName, "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		a.categoriesCmd(),
		a.institutionsCmd(),
		a.itemCmd(),
		a.accountsCmd(),
		a.balancesCmd(),
		a.transactionsCmd(),
		a.sandboxCmd(),
		a.fakeServerCmd(),
	)

	return rootCmd
}

// client builds a client from the environment, the .env files and the
// global flags.
func (a *app) client() (*plaid.Client, error) {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return nil, err
	}

	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}

	return cfg.Client(plaid.WithLogger(a.logger))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// run builds a client, calls fn and prints its result.
func run[T any](a *app, cmd *cobra.Command, fn func(c *plaid.Client) (*T, error)) error {
	c, err := a.client()
	if err != nil {
		return err
	}

	resp, err := fn(c)
	if err != nil {
		st := plaid.StatusOf(err)
		a.logger.Debug("call failed", "kind", st.Kind, "message", st.Message)
		return err
	}

	return printJSON(cmd, resp)
}
