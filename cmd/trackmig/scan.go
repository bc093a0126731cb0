package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CPADelaney/project-nyx/internal/config"
	"github.com/CPADelaney/project-nyx/internal/logging"
	"github.com/CPADelaney/project-nyx/internal/mapping"
	"github.com/CPADelaney/project-nyx/internal/report"
	"github.com/CPADelaney/project-nyx/internal/scanner"
	"github.com/CPADelaney/project-nyx/internal/store"
)

var (
	scanBaseDir      string
	scanUpdate       bool
	scanOutput       string
	scanGitHubOutput bool
	scanRecord       bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for deprecated tracking imports",
	Long: `Scan a repository for imports of the deprecated standalone tracking
modules and write a JSON report. With --update the matched import lines are
rewritten in place to the unified accessor import.

Examples:
  trackmig scan
  trackmig scan --base-dir src --update
  trackmig scan --github-output --output reports/scan.json`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanBaseDir, "base-dir", "", "Base directory to scan (default: configured baseDir)")
	scanCmd.Flags().BoolVar(&scanUpdate, "update", false, "Update imports in place")
	scanCmd.Flags().StringVar(&scanOutput, "output", "", "Output report file (default: configured reportPath)")
	scanCmd.Flags().BoolVar(&scanGitHubOutput, "github-output", false, "Generate GitHub Actions output")
	scanCmd.Flags().BoolVar(&scanRecord, "record", false, "Record the scan as a tracking event")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	bootLogger := newLogger(config.LoggingConfig{Format: "human", Level: "info"})
	cfg := loadConfig(bootLogger)
	logger := newLogger(cfg.Logging)

	baseDir := scanBaseDir
	if baseDir == "" {
		baseDir = cfg.BaseDir
	}
	outputPath := scanOutput
	if outputPath == "" {
		outputPath = cfg.ReportPath
	}

	table, err := mapping.Load(cfg.MappingOverlay)
	if err != nil {
		return fmt.Errorf("failed to load module mappings: %w", err)
	}

	sc := scanner.New(table, logger)
	rep, err := sc.ScanRepository(newContext(), scanner.Options{
		BaseDir:     baseDir,
		Update:      scanUpdate,
		ExcludeDirs: cfg.ExcludeDirs,
	})
	if err != nil {
		return err
	}

	if err := report.Write(rep, outputPath); err != nil {
		return err
	}

	fmt.Printf("Scanned %d Python files\n", rep.TotalFilesScanned)
	fmt.Printf("Found %d files with old tracking imports\n", rep.FilesWithOldImports)
	fmt.Printf("Total of %d old imports found\n", rep.TotalImportsFound)
	if scanUpdate {
		fmt.Printf("Updated %d files\n", rep.FilesUpdated)
	}

	if scanGitHubOutput {
		if err := report.AppendGitHubOutput(rep, report.GitHubOutputPath()); err != nil {
			return err
		}
	}

	if scanRecord {
		if err := recordScan(cfg.Database.Path, logger, rep); err != nil {
			logger.Warn("Failed to record scan event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return nil
}

// recordScan logs the scan outcome to the tracking event store.
func recordScan(dbPath string, logger *logging.Logger, rep *scanner.Report) error {
	s, err := store.Open(dbPath, logger)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	details := fmt.Sprintf("scan %s: %d files scanned, %d imports found, %d files updated",
		rep.ScanID, rep.TotalFilesScanned, rep.TotalImportsFound, rep.FilesUpdated)
	severity := store.SeverityInfo
	if rep.TotalImportsFound > 0 {
		severity = store.SeverityWarning
	}
	if err := s.LogEvent("migration", "import_scan", details, severity); err != nil {
		return err
	}
	return s.RecordMetric("import_scan_findings", float64(rep.TotalImportsFound), "imports")
}
