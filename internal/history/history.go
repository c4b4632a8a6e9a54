// Package history keeps the run log: one row per teleprompter session.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/studiowebux/tp/internal/config"
	"github.com/studiowebux/tp/internal/migrations"
)

const timestampLayout = "2006-01-02 15:04:05"

// Run describes one session
type Run struct {
	ID        int64
	StartedAt time.Time
	Duration  time.Duration
	Source    string // stdin, clipboard, file or editor
	Name      string // file path for file runs
	Lines     int
	Speed     float64 // speed when the session ended
	Finished  bool    // scrolled to the end rather than quit
}

type Manager struct {
	db *sql.DB
}

func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Save(run Run) (int64, error) {
	query := `
		INSERT INTO runs (started_at, duration_ms, source, name, lines, speed, finished)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := m.db.Exec(query,
		run.StartedAt.Local().Format(timestampLayout),
		run.Duration.Milliseconds(),
		run.Source,
		run.Name,
		run.Lines,
		run.Speed,
		run.Finished,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first. A limit <= 0 returns all.
func (m *Manager) Recent(limit int) ([]Run, error) {
	query := `
		SELECT id, started_at, duration_ms, source, name, lines, speed, finished
		FROM runs
		ORDER BY started_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := m.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAt string
		var durationMs int64

		err := rows.Scan(&run.ID, &startedAt, &durationMs, &run.Source, &run.Name, &run.Lines, &run.Speed, &run.Finished)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.StartedAt = parseTimestamp(startedAt)
		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// parseTimestamp reads the local-time layout, accepting RFC3339 as well
func parseTimestamp(s string) time.Time {
	if t, err := time.ParseInLocation(timestampLayout, s, time.Local); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func (m *Manager) Clear() error {
	_, err := m.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (m *Manager) GetCount() (int, error) {
	var count int
	err := m.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get history count: %w", err)
	}
	return count, nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
