package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/CPADelaney/project-nyx/internal/scanner"
)

func sampleReport() *scanner.Report {
	return &scanner.Report{
		ScanID:              "test-scan",
		BaseDir:             ".",
		ScannedAt:           time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Duration:            "12ms",
		TotalFilesScanned:   4,
		FilesWithOldImports: 2,
		TotalImportsFound:   3,
		FilesUpdated:        1,
		Files: []scanner.FileReport{
			{
				File: "a.py",
				ImportsFound: []scanner.ImportOccurrence{
					{
						Type:    scanner.OccurrenceFromImport,
						Module:  "tracking.goal_generator",
						Classes: []string{"GoalGenerator"},
						Line:    1,
						Match:   "from tracking.goal_generator import GoalGenerator",
					},
				},
				UsageUpdates: []scanner.UsageUpdate{},
			},
		},
	}
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	want := sampleReport()

	if err := Write(want, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ScanID != want.ScanID || got.TotalImportsFound != want.TotalImportsFound {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Files) != 1 || got.Files[0].ImportsFound[0].Module != "tracking.goal_generator" {
		t.Errorf("per-file breakdown lost: %+v", got.Files)
	}
}

// The wire format keeps the established snake_case field names so existing
// report consumers keep working.
func TestWriteFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := Write(sampleReport(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{
		"total_files_scanned",
		"files_with_old_imports",
		"total_imports_found",
		"files_updated",
		"files",
	} {
		if _, ok := raw[key]; !ok {
			t.Errorf("report missing field %q", key)
		}
	}

	files := raw["files"].([]interface{})
	entry := files[0].(map[string]interface{})
	for _, key := range []string{"file", "imports_found", "usage_updates"} {
		if _, ok := entry[key]; !ok {
			t.Errorf("file entry missing field %q", key)
		}
	}
	if _, ok := entry["update_result"]; ok {
		t.Error("update_result present for a dry-run file entry")
	}
}

func TestLoadMissingReport(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing report")
	}
}

func TestAppendGitHubOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gh_output")

	if err := AppendGitHubOutput(sampleReport(), path); err != nil {
		t.Fatalf("AppendGitHubOutput: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "files_with_imports=2\ntotal_imports=3\nfiles_updated=1\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}

	// Appending twice must not truncate earlier lines.
	if err := AppendGitHubOutput(sampleReport(), path); err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want+want {
		t.Errorf("second append truncated sink: %q", data)
	}
}

func TestGitHubOutputPathEnv(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "/tmp/custom_output")
	if got := GitHubOutputPath(); got != "/tmp/custom_output" {
		t.Errorf("GitHubOutputPath = %q", got)
	}

	t.Setenv("GITHUB_OUTPUT", "")
	if got := GitHubOutputPath(); got != "github_output.txt" {
		t.Errorf("fallback path = %q", got)
	}
}
