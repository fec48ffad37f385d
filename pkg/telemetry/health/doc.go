// Package health provides liveness and readiness probes for the watch
// process.
//
// Liveness answers whenever the process is running. Readiness additionally
// runs registered component checks, such as whether the watched artifact
// directory is still accessible:
//
//	checker := health.New(5 * time.Second)
//	checker.RegisterCheck("artifact_dir", func(ctx context.Context) error {
//	    _, err := os.ReadDir(dir)
//	    return err
//	})
//
//	mux := http.NewServeMux()
//	health.Register(mux, checker)
package health
