// Package watch implements continuous conformance checking: it re-validates
// a directory artifact whenever files change (fsnotify, debounced) and,
// optionally, on a cron schedule as a reconciliation sweep.
//
// The watcher holds no validation state of its own; each trigger runs the
// caller-supplied revalidate function, which performs a full stateless
// validation pass.
package watch
