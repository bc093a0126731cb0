package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CPADelaney/project-nyx/internal/config"
	"github.com/CPADelaney/project-nyx/internal/store"
)

var (
	eventsComponent string
	eventsLimit     int
	eventsDBPath    string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent tracking events",
	Long: `List the newest events from the consolidated tracking database,
optionally filtered by component.

Examples:
  trackmig events
  trackmig events --component monitoring --limit 50`,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().StringVar(&eventsComponent, "component", "", "Only show events for this component")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 20, "Maximum number of events to show")
	eventsCmd.Flags().StringVar(&eventsDBPath, "db", "", "Database file to read (default: configured database.path)")
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	bootLogger := newLogger(config.LoggingConfig{Format: "human", Level: "info"})
	cfg := loadConfig(bootLogger)
	logger := newLogger(cfg.Logging)

	dbPath := eventsDBPath
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}

	s, err := store.Open(dbPath, logger)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	events, err := s.RecentEvents(eventsComponent, eventsLimit)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No tracking events recorded.")
		return nil
	}

	for _, e := range events {
		line := fmt.Sprintf("%s  [%s] %s/%s", e.Timestamp, e.Severity, e.Component, e.EventType)
		if e.Details != "" {
			line += "  " + e.Details
		}
		fmt.Println(line)
	}
	return nil
}
