package scanner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/CPADelaney/project-nyx/internal/logging"
	"github.com/CPADelaney/project-nyx/internal/mapping"
)

// Scanner runs full-repository scans against an immutable mapping table.
// A scan is a single stateless sequential pass; there is no checkpointing
// and a fresh invocation always re-scans from scratch. Concurrent
// invocations racing on the same tree are not supported.
type Scanner struct {
	table  *mapping.Table
	logger *logging.Logger
}

// New creates a Scanner. The table is shared by reference and must not be
// mutated after construction.
func New(table *mapping.Table, logger *logging.Logger) *Scanner {
	return &Scanner{
		table:  table,
		logger: logger,
	}
}

// ScanRepository enumerates source files under opts.BaseDir, scans each for
// deprecated imports, and aggregates a report. In update mode, files with
// occurrences are rewritten in place. Any read or write failure aborts the
// whole pass; a report is never silently partial.
//
// The only side effects are file reads, and file writes gated behind
// opts.Update.
func (s *Scanner) ScanRepository(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()

	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}
	if opts.ExcludeDirs == nil {
		opts.ExcludeDirs = DefaultExcludeDirs()
	}

	files, err := FindSourceFiles(opts.BaseDir, opts.ExcludeDirs)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate source files: %w", err)
	}

	report := &Report{
		ScanID:            uuid.NewString(),
		BaseDir:           opts.BaseDir,
		ScannedAt:         start.UTC(),
		TotalFilesScanned: len(files),
		Files:             make([]FileReport, 0),
	}

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		content := string(data)

		occurrences := ScanContent(content, s.table)
		if len(occurrences) == 0 {
			continue
		}

		s.logger.Debug("Found deprecated imports", map[string]interface{}{
			"file":        file,
			"occurrences": len(occurrences),
		})

		report.TotalImportsFound += len(occurrences)

		fileReport := FileReport{
			File:         file,
			ImportsFound: occurrences,
			UsageUpdates: UsageUpdates(content, occurrences, s.table),
		}

		if opts.Update {
			result, err := UpdateFile(file, content, occurrences)
			if err != nil {
				return nil, err
			}
			fileReport.UpdateResult = &result
			if result.Updated {
				report.FilesUpdated++
			}
		}

		report.Files = append(report.Files, fileReport)
	}

	report.FilesWithOldImports = len(report.Files)
	report.Duration = time.Since(start).String()

	s.logger.Info("Repository scan complete", map[string]interface{}{
		"scanId":       report.ScanID,
		"filesScanned": report.TotalFilesScanned,
		"filesWithOld": report.FilesWithOldImports,
		"importsFound": report.TotalImportsFound,
		"filesUpdated": report.FilesUpdated,
	})

	return report, nil
}
