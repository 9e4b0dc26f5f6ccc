package models

import (
	"database/sql"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// migrateDB creates the catalog schema on a single database
func migrateDB(db *sql.DB) error {
	// Ids are allocated by UpsertCourse so disk and memory rows always agree
	coursesTableSQL := `
	CREATE TABLE IF NOT EXISTS courses (
		id INTEGER PRIMARY KEY,
		slug VARCHAR(128) UNIQUE NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		link VARCHAR(512),
		languages TEXT,         -- JSON array, lower case
		content_language VARCHAR(32),
		level VARCHAR(32),
		content_type VARCHAR(32),
		tags TEXT,              -- JSON array
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(coursesTableSQL); err != nil {
		return serr.Wrap(err, "failed to create courses table")
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_courses_level ON courses(level)",
		"CREATE INDEX IF NOT EXISTS idx_courses_content_type ON courses(content_type)",
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			logger.LogErr(err, "failed to create index", "sql", idx)
		}
	}

	return nil
}
