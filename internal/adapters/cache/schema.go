package cache

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the geocode cache table when missing.
func InitSchema(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		query TEXT PRIMARY KEY,
		lon   DOUBLE PRECISION NOT NULL,
		lat   DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}
