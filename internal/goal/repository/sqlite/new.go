package sqlite

import (
	"database/sql"
	"fmt"

	"questlog/internal/goal/repository"
	"questlog/pkg/log"
)

const schema = `
	CREATE TABLE IF NOT EXISTS goal_edits (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		goal_id    TEXT    NOT NULL,
		kind       TEXT    NOT NULL,
		mode       TEXT    NOT NULL,
		progress   INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_goal_edits_goal ON goal_edits (goal_id, id);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates the SQLite-backed goal edit history and migrates its schema.
func New(db *sql.DB, l log.Logger) (repository.HistoryRepository, error) {
	if db == nil {
		panic("goal/repository/sqlite: db is required")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("goal/repository/sqlite: migrate: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("goal/repository/sqlite.%s", method)
}
