package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meridian-hq/vigil/pkg/artifact"
	"meridian-hq/vigil/pkg/cli"
	"meridian-hq/vigil/pkg/policy"
	"meridian-hq/vigil/pkg/schema"
	"meridian-hq/vigil/pkg/verdict"
)

var observationsCmd = &cobra.Command{
	Use:   "observations",
	Short: "Observation schema operations",
}

var observationsCheckFlags struct {
	file   string
	dir    string
	format string
}

var observationsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate observation records against the canonical schema",
	Long: `Validate candidate observation records sourced from a file or a directory.

A file must hold a top-level JSON or YAML array of observation objects. A
directory is validated file by file; an unreadable or unparseable file is an
operational failure reported separately and never suppresses evaluation of
its parseable siblings.

Every record is checked independently and every violation is reported, so an
entire batch can be remediated in one pass.

Examples:
  # Validate a single artifact file
  vigil observations check --file observations.json

  # Validate a directory of artifact files
  vigil observations check --dir drops/

  # JSON report for CI/CD
  vigil observations check --file observations.json --format json`,
	RunE: runObservationsCheck,
}

func init() {
	rootCmd.AddCommand(observationsCmd)
	observationsCmd.AddCommand(observationsCheckCmd)

	observationsCheckCmd.Flags().StringVarP(&observationsCheckFlags.file, "file", "f", "", "observation artifact file")
	observationsCheckCmd.Flags().StringVarP(&observationsCheckFlags.dir, "dir", "d", "", "directory of observation artifact files")
	observationsCheckCmd.Flags().StringVar(&observationsCheckFlags.format, "format", "text", "output format: text, json")
}

func runObservationsCheck(cmd *cobra.Command, args []string) error {
	if observationsCheckFlags.file == "" && observationsCheckFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}
	if observationsCheckFlags.file != "" && observationsCheckFlags.dir != "" {
		return fmt.Errorf("--file and --dir are mutually exclusive")
	}

	format, err := cli.ParseFormat(observationsCheckFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	v := schema.NewValidator(policy.Default())

	var verd verdict.Verdict
	var failures []artifact.ReadFailure

	if observationsCheckFlags.file != "" {
		verd, err = v.CheckFile(observationsCheckFlags.file)
	} else {
		verd, failures, err = v.CheckDir(observationsCheckFlags.dir, cfg.Artifact.Extensions)
	}
	if err != nil {
		return &cli.OperationalError{Err: err}
	}

	if err := writeVerdict(os.Stdout, verd, format); err != nil {
		return err
	}

	// Read failures are operational: even an all-valid verdict must not look
	// like success when some files were never evaluated.
	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(os.Stderr, "Read failure:", failure.Error())
		}
		return &cli.OperationalError{
			Err: fmt.Errorf("%d artifact file(s) could not be evaluated", len(failures)),
		}
	}

	if !verd.OK() {
		return &cli.VerdictError{Violations: len(verd.Violations)}
	}
	return nil
}
