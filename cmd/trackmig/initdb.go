package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CPADelaney/project-nyx/internal/config"
	"github.com/CPADelaney/project-nyx/internal/store"
)

var initDBPath string

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Initialize the consolidated tracking database",
	Long: `Create the consolidated tracking database and its schema: tracking
events, performance metrics, system backups, and improvement goals. Safe to
run repeatedly; existing data is preserved.

Examples:
  trackmig init-db
  trackmig init-db --db state/events.db`,
	RunE: runInitDB,
}

func init() {
	initDBCmd.Flags().StringVar(&initDBPath, "db", "", "Database file to create (default: configured database.path)")
	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(cmd *cobra.Command, args []string) error {
	bootLogger := newLogger(config.LoggingConfig{Format: "human", Level: "info"})
	cfg := loadConfig(bootLogger)
	logger := newLogger(cfg.Logging)

	dbPath := initDBPath
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}

	s, err := store.Open(dbPath, logger)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	summary, err := s.Summarize()
	if err != nil {
		return err
	}

	fmt.Printf("Tracking database ready at %s\n", dbPath)
	fmt.Printf("  tracking_events:     %d\n", summary.TrackingEvents)
	fmt.Printf("  performance_metrics: %d\n", summary.PerformanceMetrics)
	fmt.Printf("  system_backups:      %d\n", summary.SystemBackups)
	fmt.Printf("  improvement_goals:   %d\n", summary.ImprovementGoals)
	return nil
}
