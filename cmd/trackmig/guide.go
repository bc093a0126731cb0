package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CPADelaney/project-nyx/internal/config"
	"github.com/CPADelaney/project-nyx/internal/guide"
	"github.com/CPADelaney/project-nyx/internal/report"
)

var (
	guideReport string
	guideOutput string
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Render a migration guide from a scan report",
	Long: `Render a markdown migration guide from a previously written scan
report. The guide lists every deprecated import and the suggested call-site
updates that are not applied automatically.

Examples:
  trackmig guide
  trackmig guide --report reports/scan.json --output docs/MIGRATION.md`,
	RunE: runGuide,
}

func init() {
	guideCmd.Flags().StringVar(&guideReport, "report", "", "Scan report to read (default: configured reportPath)")
	guideCmd.Flags().StringVar(&guideOutput, "output", "", "Guide file to write (default: configured guidePath)")
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	bootLogger := newLogger(config.LoggingConfig{Format: "human", Level: "info"})
	cfg := loadConfig(bootLogger)

	reportPath := guideReport
	if reportPath == "" {
		reportPath = cfg.ReportPath
	}
	outputPath := guideOutput
	if outputPath == "" {
		outputPath = cfg.GuidePath
	}

	rep, err := report.Load(reportPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(guide.Render(rep)), 0644); err != nil {
		return fmt.Errorf("failed to write guide to %s: %w", outputPath, err)
	}

	fmt.Printf("Migration guide written to %s\n", outputPath)
	return nil
}
