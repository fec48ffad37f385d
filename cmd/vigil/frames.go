package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"meridian-hq/vigil/pkg/admission"
	"meridian-hq/vigil/pkg/cli"
	"meridian-hq/vigil/pkg/policy"
	"meridian-hq/vigil/pkg/verdict"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Frame admissibility operations",
}

var framesCheckFlags struct {
	frame   string
	signals []string
	format  string
}

var framesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check signal-type admissibility for a frame",
	Long: `Check whether a set of signal types is admissible for an analytical frame.

An unknown frame is rejected outright; for a known frame every signal type is
checked independently against the frame's allowed set, in input order. An
empty signal list is vacuously admissible.

Examples:
  # Admissible
  vigil frames check --frame market_aggressiveness --signal price_observed

  # Not admissible: visibility_observed is not allowed in this frame
  vigil frames check --frame market_aggressiveness --signal visibility_observed

  # JSON report for CI/CD
  vigil frames check --frame efficiency_stress --signal input_proxy_observed --format json`,
	RunE: runFramesCheck,
}

var framesListFlags struct {
	format string
}

var framesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the frame→signal policy table",
	Long:  `Print every frame in the closed frame set with its allowed signal types.`,
	RunE:  runFramesList,
}

func init() {
	rootCmd.AddCommand(framesCmd)
	framesCmd.AddCommand(framesCheckCmd)
	framesCmd.AddCommand(framesListCmd)

	framesCheckCmd.Flags().StringVar(&framesCheckFlags.frame, "frame", "", "frame identifier to check")
	framesCheckCmd.Flags().StringArrayVar(&framesCheckFlags.signals, "signal", nil, "signal type (repeatable)")
	framesCheckCmd.Flags().StringVar(&framesCheckFlags.format, "format", "text", "output format: text, json")
	_ = framesCheckCmd.MarkFlagRequired("frame")

	framesListCmd.Flags().StringVar(&framesListFlags.format, "format", "text", "output format: text, json")
}

func runFramesCheck(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(framesCheckFlags.format)
	if err != nil {
		return err
	}

	v := admission.NewValidator(policy.Default())
	verd := v.Check(framesCheckFlags.frame, framesCheckFlags.signals)

	if err := writeVerdict(os.Stdout, verd, format); err != nil {
		return err
	}
	if !verd.OK() {
		return &cli.VerdictError{Violations: len(verd.Violations)}
	}
	return nil
}

// framePolicy is one row of the policy table as shown by `frames list`.
type framePolicy struct {
	Frame              string   `json:"frame"`
	AllowedSignalTypes []string `json:"allowed_signal_types"`
}

type framePolicyTable []framePolicy

func (t framePolicyTable) MarshalCLIText(w io.Writer) error {
	for _, row := range t {
		if _, err := fmt.Fprintf(w, "%s:\n", row.Frame); err != nil {
			return err
		}
		for _, st := range row.AllowedSignalTypes {
			if _, err := fmt.Fprintf(w, "  - %s\n", st); err != nil {
				return err
			}
		}
	}
	return nil
}

func runFramesList(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(framesListFlags.format)
	if err != nil {
		return err
	}

	pol := policy.Default()
	table := make(framePolicyTable, 0, len(pol.Frames()))
	for _, frame := range pol.Frames() {
		allowed, err := pol.AllowedSignalTypes(string(frame))
		if err != nil {
			return err
		}
		row := framePolicy{Frame: string(frame)}
		for _, st := range allowed {
			row.AllowedSignalTypes = append(row.AllowedSignalTypes, string(st))
		}
		table = append(table, row)
	}

	return cli.NewFormatter(format).FormatTo(os.Stdout, table)
}

// writeVerdict renders a verdict in the requested format: bare token plus
// violation lines for text, a full report for JSON.
func writeVerdict(w io.Writer, verd verdict.Verdict, format cli.OutputFormat) error {
	if format == cli.FormatJSON {
		return verdict.NewReport(verd).WriteJSON(w)
	}
	return verdict.WriteText(w, verd)
}
