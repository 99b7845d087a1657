package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent, so the
// whole list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS grades (
		id          TEXT PRIMARY KEY,
		program     TEXT NOT NULL
		            CHECK(program IN ('data_science','electronic_systems')),
		course_name TEXT NOT NULL,
		grade       TEXT NOT NULL
		            CHECK(grade IN ('S','A','B','C','D','E','U','W','I','I_OP','I_PR')),
		updated_at  TEXT NOT NULL,
		UNIQUE(program, course_name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_grades_program ON grades(program)`,

	`CREATE TABLE IF NOT EXISTS overrides (
		id          TEXT PRIMARY KEY,
		program     TEXT NOT NULL
		            CHECK(program IN ('data_science','electronic_systems')),
		course_name TEXT NOT NULL,
		grade       TEXT NOT NULL
		            CHECK(grade IN ('S','A','B','C','D','E','U','W','I','I_OP','I_PR')),
		updated_at  TEXT NOT NULL,
		UNIQUE(program, course_name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_overrides_program ON overrides(program)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		id      TEXT PRIMARY KEY DEFAULT 'default',
		program TEXT NOT NULL DEFAULT 'data_science',
		bias    REAL NOT NULL DEFAULT 1.0
	)`,

	`INSERT OR IGNORE INTO preferences (id) VALUES ('default')`,

	// Remember the level last viewed in forecast/standing.
	`ALTER TABLE preferences ADD COLUMN level TEXT NOT NULL DEFAULT 'foundation'`,
}
