package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	for _, stmt := range migrations {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, rec Record) error {
	var toolsJSON *string
	if len(rec.ToolsUsed) > 0 {
		data, _ := json.Marshal(rec.ToolsUsed)
		str := string(data)
		toolsJSON = &str
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (session_id, prompt, result, tools_used, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Prompt, rec.Result, toolsJSON, rec.Duration.Milliseconds(), createdAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, prompt, result, tools_used, duration_ms, created_at
		 FROM invocations ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var toolsJSON sql.NullString
		var durationMS int64
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Prompt, &rec.Result, &toolsJSON, &durationMS, &createdAt); err != nil {
			return nil, err
		}
		if toolsJSON.Valid {
			_ = json.Unmarshal([]byte(toolsJSON.String), &rec.ToolsUsed)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
