package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultExtensions lists the artifact file extensions recognized when reading
// a directory.
var DefaultExtensions = []string{".json", ".yaml", ".yml"}

// ErrNotArray is returned when an artifact file parses as structured data but
// its root is not an array of observations; such a file cannot be normalized
// into candidates at all.
var ErrNotArray = errors.New("artifact root is not an array of observations")

// ErrNoArtifacts is returned when a directory contains no artifact files.
var ErrNoArtifacts = errors.New("no artifact files found")

// Candidate is one normalized (location, record-candidate) pair. Location
// identifies the originating file and array index, or "inline[i]" for
// in-memory input, and is carried verbatim into violation entries.
type Candidate struct {
	Location string
	Value    any
}

// ReadFailure records an operational failure for a single artifact file inside
// a directory artifact: the file could not be read or parsed, so none of its
// records were evaluated. Read failures are surfaced beside the verdict, never
// folded into the violation list.
type ReadFailure struct {
	Path string
	Err  error
}

func (f ReadFailure) Error() string {
	return fmt.Sprintf("artifact %s: %v", f.Path, f.Err)
}

// Inline normalizes an in-memory collection of records.
func Inline(records []map[string]any) []Candidate {
	candidates := make([]Candidate, len(records))
	for i, rec := range records {
		candidates[i] = Candidate{
			Location: fmt.Sprintf("inline[%d]", i),
			Value:    rec,
		}
	}
	return candidates
}

// FromFile normalizes one artifact file containing a top-level array of
// observation objects. A missing, unreadable, or unparseable file, or a root
// that is not an array, is an operational error distinct from any schema
// violation.
func FromFile(path string) ([]Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %q: %w", path, err)
	}

	records, err := decodeArray(path, data)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, len(records))
	for i, rec := range records {
		candidates[i] = Candidate{
			Location: fmt.Sprintf("%s[%d]", path, i),
			Value:    rec,
		}
	}
	return candidates, nil
}

// FromDir normalizes every artifact file in a directory, in lexical file
// order. Files that cannot be read or parsed are collected as ReadFailures
// while parseable siblings are still normalized, so one malformed file never
// suppresses evaluation of the rest. The error return covers the directory
// itself: unreadable, or containing no artifact files at all.
func FromDir(dir string, extensions []string) ([]Candidate, []ReadFailure, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read artifact directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if hasExtension(name, extensions) {
			files = append(files, filepath.Join(dir, name))
		}
	}

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w in %q", ErrNoArtifacts, dir)
	}

	var candidates []Candidate
	var failures []ReadFailure
	for _, file := range files {
		fileCandidates, err := FromFile(file)
		if err != nil {
			failures = append(failures, ReadFailure{Path: file, Err: err})
			continue
		}
		candidates = append(candidates, fileCandidates...)
	}

	return candidates, failures, nil
}

// decodeArray parses data as JSON or YAML depending on the file extension and
// requires a top-level array.
func decodeArray(path string, data []byte) ([]any, error) {
	var root any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse artifact %q: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse artifact %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("artifact %q has unsupported extension (expected one of %s)",
			path, strings.Join(DefaultExtensions, ", "))
	}

	records, ok := root.([]any)
	if !ok {
		return nil, fmt.Errorf("artifact %q: %w", path, ErrNotArray)
	}
	return records, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
