// Package guide renders a scan report as a human-readable migration guide.
// The guide is a markdown document intended to accompany an automated
// rewrite: the import statements are replaced mechanically, while call-site
// changes are surfaced here as suggestions for a manual follow-up pass.
package guide

import (
	"fmt"
	"strings"

	"github.com/CPADelaney/project-nyx/internal/scanner"
)

// DefaultPath is the guide filename used when none is configured.
const DefaultPath = "MIGRATION_GUIDE.md"

// Render produces the migration guide for one scan report.
func Render(r *scanner.Report) string {
	var b strings.Builder

	b.WriteString("# Tracking Import Migration Guide\n\n")
	fmt.Fprintf(&b, "Scan `%s` of `%s` at %s.\n\n", r.ScanID, r.BaseDir, r.ScannedAt.Format("2006-01-02 15:04:05 UTC"))
	b.WriteString("The legacy tracking modules have been consolidated into a single\n")
	b.WriteString("tracking system. Instead of importing and constructing individual\n")
	b.WriteString("managers, obtain the unified accessor once:\n\n")
	fmt.Fprintf(&b, "```python\n%s\n%s\n```\n\n", scanner.UnifiedAccessorImport, scanner.UnifiedAccessorInit)
	b.WriteString("and reach each capability through its component\n")
	b.WriteString("(`tracking_system.monitoring`, `tracking_system.resilience`,\n")
	b.WriteString("`tracking_system.scaling`, `tracking_system.improvement`).\n")
	b.WriteString("\n## Summary\n\n")
	fmt.Fprintf(&b, "- Files scanned: %d\n", r.TotalFilesScanned)
	fmt.Fprintf(&b, "- Files with deprecated imports: %d\n", r.FilesWithOldImports)
	fmt.Fprintf(&b, "- Deprecated imports found: %d\n", r.TotalImportsFound)
	fmt.Fprintf(&b, "- Files updated: %d\n", r.FilesUpdated)

	if len(r.Files) == 0 {
		b.WriteString("\nNo deprecated tracking imports remain. Nothing to migrate.\n")
		return b.String()
	}

	b.WriteString("\n## Files\n")
	for _, f := range r.Files {
		fmt.Fprintf(&b, "\n### %s\n\n", f.File)

		for _, occ := range f.ImportsFound {
			fmt.Fprintf(&b, "- line %d: `%s` (%s)\n", occ.Line, occ.Match, describeForm(occ))
		}

		if f.UpdateResult != nil {
			if f.UpdateResult.Updated {
				b.WriteString("\nImports rewritten in place.\n")
			} else {
				b.WriteString("\nImports not rewritten (content unchanged or write skipped).\n")
			}
		}

		if len(f.UsageUpdates) > 0 {
			b.WriteString("\nSuggested call-site updates (manual, not auto-applied):\n\n")
			for _, u := range f.UsageUpdates {
				fmt.Fprintf(&b, "- line %d (%s): `%s` -> `%s`\n", u.Line, u.Type, u.Old, u.New)
			}
		}
	}

	return b.String()
}

func describeForm(occ scanner.ImportOccurrence) string {
	if occ.Type == scanner.OccurrenceFromImport {
		return fmt.Sprintf("selective import of %s", strings.Join(occ.Classes, ", "))
	}
	return "direct import"
}
