package store

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS invocations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		prompt TEXT NOT NULL,
		result TEXT NOT NULL,
		tools_used TEXT,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invocations_session ON invocations(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invocations_created ON invocations(created_at)`,
}
