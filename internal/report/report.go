// Package report persists scan reports and emits CI-facing outputs.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/CPADelaney/project-nyx/internal/scanner"
)

// DefaultPath is the report filename used when none is configured.
const DefaultPath = "import_scan_report.json"

// githubOutputFallback receives GitHub Actions output lines when the
// GITHUB_OUTPUT environment variable is unset (local runs).
const githubOutputFallback = "github_output.txt"

// Write serializes the report as a single indented JSON object at path.
func Write(r *scanner.Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}

// Load reads a previously written report back from disk.
func Load(path string) (*scanner.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	var r scanner.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return &r, nil
}

// GitHubOutputPath resolves the output sink for Actions key=value lines:
// the file named by GITHUB_OUTPUT, or a fixed local fallback when unset.
func GitHubOutputPath() string {
	if path := os.Getenv("GITHUB_OUTPUT"); path != "" {
		return path
	}
	return githubOutputFallback
}

// AppendGitHubOutput appends the scan's summary counters to path in the
// GitHub Actions key=value output format.
func AppendGitHubOutput(r *scanner.Report, path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output sink %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	_, err = fmt.Fprintf(f, "files_with_imports=%d\ntotal_imports=%d\nfiles_updated=%d\n",
		r.FilesWithOldImports, r.TotalImportsFound, r.FilesUpdated)
	if err != nil {
		return fmt.Errorf("failed to append output lines: %w", err)
	}
	return nil
}
