// Package scanner finds references to deprecated tracking modules in a
// source tree and optionally rewrites their import statements to the
// consolidated tracking-system accessor.
//
// Detection is deliberately text-pattern based rather than built on a
// syntax tree: the deprecated import surface is two fixed statement shapes,
// and regex matching keeps the tool independent of any one parser's edge
// cases. Upgrading to a full parser would change which occurrences match.
package scanner

import "time"

// Occurrence syntactic forms, as recorded in the report.
const (
	// OccurrenceFromImport is a selective import of named members
	// ("from tracking.x import A, B").
	OccurrenceFromImport = "from_import"
	// OccurrenceImport is a direct module import ("import tracking.x").
	OccurrenceImport = "import"
)

// Usage update suggestion kinds.
const (
	UsageInitialization = "initialization"
	UsageMethodCall     = "method_call"
)

// UnifiedAccessorImport is the canonical statement that replaces every
// recognized deprecated import, regardless of form. Which component was in
// use is surfaced through usage update suggestions instead.
const UnifiedAccessorImport = "from tracking.tracking_system import get_tracking_system"

// UnifiedAccessorInit is the suggested replacement for constructing a
// deprecated class directly.
const UnifiedAccessorInit = "tracking_system = get_tracking_system()"

// ImportOccurrence is one detected reference to a deprecated module inside
// one file. Occurrences are only recorded after a successful mapping-table
// lookup; unknown imports are never reported.
type ImportOccurrence struct {
	Type    string   `json:"type"`
	Module  string   `json:"module"`
	Classes []string `json:"classes,omitempty"` // selective form only
	Line    int      `json:"line"`
	Match   string   `json:"match"`
}

// Replacement describes one textual substitution to apply to a file.
type Replacement struct {
	Old  string `json:"old"`
	New  string `json:"new"`
	Line int    `json:"line"`
}

// UsageUpdate is an advisory hint for rewriting a call site to the unified
// access pattern. Suggestions are never auto-applied.
type UsageUpdate struct {
	Type string `json:"type"`
	Old  string `json:"old"`
	New  string `json:"new"`
	Line int    `json:"line"`
}

// UpdateResult records the outcome of rewriting one file.
type UpdateResult struct {
	File         string        `json:"file"`
	Replacements []Replacement `json:"replacements"`
	Updated      bool          `json:"updated"`
}

// FileReport is the per-file breakdown in a scan report.
type FileReport struct {
	File         string             `json:"file"`
	ImportsFound []ImportOccurrence `json:"imports_found"`
	UsageUpdates []UsageUpdate      `json:"usage_updates"`
	UpdateResult *UpdateResult      `json:"update_result,omitempty"` // update mode only
}

// Report is the aggregate result of one full repository pass.
type Report struct {
	ScanID    string    `json:"scan_id"`
	BaseDir   string    `json:"base_dir"`
	ScannedAt time.Time `json:"scanned_at"`
	Duration  string    `json:"duration"`

	TotalFilesScanned   int          `json:"total_files_scanned"`
	FilesWithOldImports int          `json:"files_with_old_imports"`
	TotalImportsFound   int          `json:"total_imports_found"`
	FilesUpdated        int          `json:"files_updated"`
	Files               []FileReport `json:"files"`
}

// Options configures one repository scan.
type Options struct {
	BaseDir     string // root to scan, defaults to "."
	Update      bool   // rewrite files in place; false means dry run
	ExcludeDirs []string
}

// DefaultExcludeDirs returns the directory names pruned from traversal:
// version control, virtualenvs, dependency trees, logs, and the generated
// tracking components.
func DefaultExcludeDirs() []string {
	return []string{
		"venv",
		"env",
		".venv",
		".git",
		"node_modules",
		"logs",
		"components",
	}
}
