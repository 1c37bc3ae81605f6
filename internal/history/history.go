// Package history persists executed requests to a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cberube/swaggerdeck/internal/types"
)

type Manager struct {
	db *sql.DB
}

func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.initSchema(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		method TEXT NOT NULL,
		path TEXT NOT NULL,
		url TEXT NOT NULL,
		status INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		is_error INTEGER NOT NULL,
		executed_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_executed_at ON history(executed_at DESC);
	`

	_, err := m.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return nil
}

// Save records one executed request. The entry's ID and ExecutedAt are
// filled in on success.
func (m *Manager) Save(entry *types.HistoryEntry) error {
	if entry.ExecutedAt.IsZero() {
		entry.ExecutedAt = time.Now()
	}

	query := `
		INSERT INTO history (method, path, url, status, duration_ms, is_error, executed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := m.db.Exec(query,
		entry.Method,
		entry.Path,
		entry.URL,
		entry.Status,
		entry.DurationMs,
		entry.IsError,
		entry.ExecutedAt.Local().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		entry.ID = id
	}
	return nil
}

// List returns the most recent entries, newest first.
func (m *Manager) List(limit int) ([]types.HistoryEntry, error) {
	query := `
		SELECT id, method, path, url, status, duration_ms, is_error, executed_at
		FROM history
		ORDER BY executed_at DESC, id DESC
		LIMIT ?
	`

	rows, err := m.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var e types.HistoryEntry
		var executedAt string
		if err := rows.Scan(&e.ID, &e.Method, &e.Path, &e.URL, &e.Status, &e.DurationMs, &e.IsError, &executedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.ExecutedAt, _ = time.ParseInLocation("2006-01-02 15:04:05", executedAt, time.Local)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return entries, nil
}

// Clear deletes all stored entries.
func (m *Manager) Clear() error {
	if _, err := m.db.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}
