// Package store persists consolidated tracking-system state in SQLite:
// tracking events, performance metrics, system backups, and improvement
// goals. It owns the schema bootstrap that migrated repositories rely on.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/CPADelaney/project-nyx/internal/logging"
)

// DefaultPath is the event database location used when none is configured.
const DefaultPath = "logs/ai_logs.db"

// Valid event severities; LogEvent falls back to "info" for anything else.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Store provides access to the consolidated tracking database.
type Store struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Event is one row of the tracking_events table.
type Event struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Component string `json:"component"`
	EventType string `json:"event_type"`
	Details   string `json:"details,omitempty"`
	Severity  string `json:"severity"`
}

// Summary aggregates row counts across the consolidated tables, in the
// shape of the migration report consumed by downstream tooling.
type Summary struct {
	TrackingEvents     int            `json:"tracking_events"`
	PerformanceMetrics int            `json:"performance_metrics"`
	SystemBackups      int            `json:"system_backups"`
	ImprovementGoals   int            `json:"improvement_goals"`
	Components         map[string]int `json:"components"`
	Severities         map[string]int `json:"severities"`
}

// Open opens or creates the tracking database at dbPath, creating parent
// directories as needed, and ensures the consolidated schema exists.
func Open(dbPath string, logger *logging.Logger) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open tracking database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Store{
		conn:   conn,
		logger: logger,
		dbPath: dbPath,
	}

	if err := s.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize tracking schema: %w", err)
	}

	logger.Debug("Tracking database ready", map[string]interface{}{
		"path": dbPath,
	})

	return s, nil
}

// initializeSchema creates the consolidated tables. Idempotent.
func (s *Store) initializeSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tracking_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT DEFAULT CURRENT_TIMESTAMP,
			component TEXT NOT NULL,
			event_type TEXT NOT NULL,
			details TEXT,
			severity TEXT DEFAULT 'info'
		);
		CREATE INDEX IF NOT EXISTS idx_tracking_events_component ON tracking_events(component);
		CREATE INDEX IF NOT EXISTS idx_tracking_events_type ON tracking_events(event_type);

		CREATE TABLE IF NOT EXISTS performance_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT DEFAULT CURRENT_TIMESTAMP,
			metric_name TEXT NOT NULL,
			metric_value REAL,
			units TEXT
		);

		CREATE TABLE IF NOT EXISTS system_backups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT DEFAULT CURRENT_TIMESTAMP,
			backup_type TEXT NOT NULL,
			path TEXT NOT NULL,
			status TEXT DEFAULT 'active'
		);

		CREATE TABLE IF NOT EXISTS improvement_goals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT DEFAULT CURRENT_TIMESTAMP,
			goal TEXT NOT NULL,
			priority TEXT DEFAULT 'medium',
			status TEXT DEFAULT 'pending',
			completed_timestamp TEXT
		);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// LogEvent records one tracking event. Unknown severities collapse to info.
func (s *Store) LogEvent(component, eventType, details, severity string) error {
	switch severity {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
	default:
		severity = SeverityInfo
	}

	_, err := s.conn.Exec(`
		INSERT INTO tracking_events (component, event_type, details, severity)
		VALUES (?, ?, ?, ?)
	`, component, eventType, nullString(details), severity)
	if err != nil {
		return fmt.Errorf("failed to log event: %w", err)
	}

	s.logger.Debug("Logged tracking event", map[string]interface{}{
		"component": component,
		"eventType": eventType,
	})

	return nil
}

// RecentEvents returns the newest events, optionally filtered by component.
func (s *Store) RecentEvents(component string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}

	var conditions []string
	var args []interface{}
	if component != "" {
		conditions = append(conditions, "component = ?")
		args = append(args, component)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, timestamp, component, event_type, details, severity
		FROM tracking_events %s
		ORDER BY id DESC
		LIMIT ?
	`, whereClause)
	args = append(args, limit)

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []Event
	for rows.Next() {
		var e Event
		var details sql.NullString
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Component, &e.EventType, &details, &e.Severity); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Details = details.String
		events = append(events, e)
	}

	return events, rows.Err()
}

// RecordMetric stores one performance metric sample.
func (s *Store) RecordMetric(name string, value float64, units string) error {
	_, err := s.conn.Exec(`
		INSERT INTO performance_metrics (metric_name, metric_value, units)
		VALUES (?, ?, ?)
	`, name, value, nullString(units))
	if err != nil {
		return fmt.Errorf("failed to record metric: %w", err)
	}
	return nil
}

// RecordBackup registers a backup artifact as active.
func (s *Store) RecordBackup(backupType, path string) error {
	_, err := s.conn.Exec(`
		INSERT INTO system_backups (backup_type, path) VALUES (?, ?)
	`, backupType, path)
	if err != nil {
		return fmt.Errorf("failed to record backup: %w", err)
	}
	return nil
}

// AddGoal queues an improvement goal as pending.
func (s *Store) AddGoal(goal, priority string) error {
	if priority == "" {
		priority = "medium"
	}
	_, err := s.conn.Exec(`
		INSERT INTO improvement_goals (goal, priority) VALUES (?, ?)
	`, goal, priority)
	if err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}
	return nil
}

// Summarize builds the aggregate counts across all consolidated tables.
func (s *Store) Summarize() (*Summary, error) {
	summary := &Summary{
		Components: make(map[string]int),
		Severities: make(map[string]int),
	}

	counts := []struct {
		table string
		dest  *int
	}{
		{"tracking_events", &summary.TrackingEvents},
		{"performance_metrics", &summary.PerformanceMetrics},
		{"system_backups", &summary.SystemBackups},
		{"improvement_goals", &summary.ImprovementGoals},
	}
	for _, c := range counts {
		if err := s.conn.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	if err := s.groupCount("component", summary.Components); err != nil {
		return nil, err
	}
	if err := s.groupCount("severity", summary.Severities); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *Store) groupCount(column string, dest map[string]int) error {
	rows, err := s.conn.Query(fmt.Sprintf(
		"SELECT %s, COUNT(*) FROM tracking_events GROUP BY %s", column, column))
	if err != nil {
		return fmt.Errorf("failed to group by %s: %w", column, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("failed to scan %s counts: %w", column, err)
		}
		dest[key] = count
	}
	return rows.Err()
}

func nullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
