package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meridian-hq/vigil/pkg/cli"
	"meridian-hq/vigil/pkg/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vigil",
	Short: "Vigil - governance validator for the market-observation pipeline",
	Long: `Vigil validates market-observation data against governance policy.

It provides two independent, stateless validators backed by one policy table:
  - Frame admissibility: is a set of signal types allowed in an analytical frame?
  - Observation schema: do candidate observation records conform to the
    canonical schema (required fields, closed enums, provenance discipline)?

Every check reports the complete set of violations found, so an entire batch
can be fixed in one pass.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps the two error classes onto exit
// codes: violations found (1) versus validation never ran (2).
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		os.Exit(cli.ExitOK)
	}

	var verdictErr *cli.VerdictError
	if errors.As(err, &verdictErr) {
		// The violation report has already been written.
		os.Exit(cli.ExitViolations)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(cli.ExitOperational)
}

// loadConfig loads the effective configuration for a command run. The
// default config path is optional; an explicitly given one must exist.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadOptional("vigil.yaml")
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default vigil.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
