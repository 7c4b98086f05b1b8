package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/reference/embedded"
	"github.com/protocolo-ceremonial/flagplan/internal/app"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/logging"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel      string
	countriesFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "flagplan",
		Short: "Plan the order of flags for ceremonial events",
		Long: `flagplan computes where each flag goes at an official event: the host's
position, the order of the guest delegations, the briefings for the protocol
staff and the preparation timeline.

Reference data comes from the built-in country table unless --countries
points to a YAML table with the same layout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.countriesFile, "countries", "", "Path to a YAML country table (default: built-in table)")

	cmd.AddCommand(
		newPlanCmd(opts),
		newCountriesCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// planner builds the plan service over the selected reference table. Logs go
// to the command's stderr so stdout carries only the requested output.
func (o *rootOptions) planner(cmd *cobra.Command) (*app.PlanService, error) {
	if _, err := logging.ParseLevel(o.logLevel); err != nil {
		return nil, err
	}
	logger := logging.New(o.logLevel, "text", cmd.ErrOrStderr())

	var (
		table *embedded.Client
		err   error
	)
	if o.countriesFile == "" {
		table, err = embedded.New()
	} else {
		table, err = embedded.NewFromFile(o.countriesFile)
	}
	if err != nil {
		return nil, fmt.Errorf("loading country table: %w", err)
	}

	logger.Debug("reference table loaded", "source", table.Source())
	return app.NewPlanService(table, logger), nil
}
