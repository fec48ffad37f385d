package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"meridian-hq/vigil/pkg/cli"
	"meridian-hq/vigil/pkg/policy"
	"meridian-hq/vigil/pkg/schema"
	"meridian-hq/vigil/pkg/telemetry/health"
	"meridian-hq/vigil/pkg/telemetry/logging"
	"meridian-hq/vigil/pkg/telemetry/metrics"
	"meridian-hq/vigil/pkg/watch"
)

var observationsWatchFlags struct {
	dir      string
	schedule string
}

var observationsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously validate an observation artifact directory",
	Long: `Watch an artifact directory and re-validate it on every change.

Validation runs once at startup, then again after each burst of file events
(debounced), and optionally on a cron schedule to catch changes the file
notifier missed. Results are logged; when metrics are enabled a Prometheus
endpoint exposes check counts, violation counts and read failures.

Runs until interrupted.

Examples:
  # Watch a directory of observation drops
  vigil observations watch --dir drops/

  # Add an hourly sweep on top of file events
  vigil observations watch --dir drops/ --schedule "0 * * * *"`,
	RunE: runObservationsWatch,
}

func init() {
	observationsCmd.AddCommand(observationsWatchCmd)

	observationsWatchCmd.Flags().StringVarP(&observationsWatchFlags.dir, "dir", "d", "", "directory of observation artifact files")
	observationsWatchCmd.Flags().StringVar(&observationsWatchFlags.schedule, "schedule", "", "cron expression for periodic sweeps (overrides config)")
	_ = observationsWatchCmd.MarkFlagRequired("dir")
}

func runObservationsWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Telemetry.Logging, nil)
	if err != nil {
		return err
	}

	schedule := cfg.Watch.SweepSchedule
	if observationsWatchFlags.schedule != "" {
		schedule = observationsWatchFlags.schedule
	}

	var vm *metrics.ValidationMetrics
	if cfg.Telemetry.Metrics.Enabled {
		vm = metrics.NewValidationMetrics(cfg.Telemetry.Metrics)

		checker := health.New(0)
		checker.RegisterCheck("artifact_dir", func(ctx context.Context) error {
			_, err := os.ReadDir(observationsWatchFlags.dir)
			return err
		})

		mux := http.NewServeMux()
		mux.Handle(cfg.Telemetry.Metrics.Path, vm.Handler())
		health.Register(mux, checker)
		server := &http.Server{
			Addr:              cfg.Telemetry.Metrics.ListenAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics endpoint listening",
				"address", cfg.Telemetry.Metrics.ListenAddress,
				"path", cfg.Telemetry.Metrics.Path,
			)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics endpoint failed", "error", err)
			}
		}()
	}

	v := schema.NewValidator(policy.Default())
	dir := observationsWatchFlags.dir
	extensions := cfg.Artifact.Extensions

	revalidate := func() error {
		start := time.Now()
		verd, failures, err := v.CheckDir(dir, extensions)
		if err != nil {
			return err
		}

		if vm != nil {
			vm.RecordCheck("schema", verd, time.Since(start))
			vm.RecordReadFailures(len(failures))
		}

		for _, failure := range failures {
			logger.Error("artifact read failure", "path", failure.Path, "error", failure.Err)
		}
		if verd.OK() {
			logger.Info("validation passed", "dir", dir, "token", string(verd.Token))
		} else {
			logger.Warn("validation failed",
				"dir", dir,
				"token", string(verd.Token),
				"violations", len(verd.Violations),
			)
			for _, viol := range verd.Violations {
				logger.Warn("violation",
					"field", viol.Field,
					"expected", viol.Expected,
					"actual", viol.Actual,
					"location", viol.Location,
				)
			}
		}
		return nil
	}

	watcher, err := watch.New(watch.Config{
		Dir:              dir,
		DebounceInterval: cfg.Watch.DebounceInterval,
		Extensions:       extensions,
		SweepSchedule:    schedule,
	}, logger)
	if err != nil {
		return err
	}

	ctx := cli.SetupSignalHandler()
	if err := watcher.Run(ctx, revalidate); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
