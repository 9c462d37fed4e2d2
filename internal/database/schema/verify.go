// Package schema verifies at startup that the externally-seeded catalog
// tables are present with the columns the repositories read. The engine
// never creates or migrates these tables; a mismatch means the seed import
// has not run (or ran against an older layout), which is a deploy-time
// failure worth surfacing before the first request.
package schema

import (
	"context"
	"errors"
	"fmt"

	"degree-compass/internal/database"
)

// ErrCatalogUnverified wraps every verification failure so callers can tell
// a missing or stale seed from an unreachable database.
var ErrCatalogUnverified = errors.New("catalog verification failed")

var catalogTables = map[string][]string{
	"universities":      {"id", "name", "country"},
	"degree_programs":   {"id", "university_id", "degree_type", "degree_titles", "language", "duration_semesters", "total_ects"},
	"courses":           {"id", "university_id", "program_id", "name", "language", "description", "hours", "mand_opt"},
	"skills":            {"id", "name", "url", "esco_id", "esco_level"},
	"course_skills":     {"course_id", "skill_id", "categories"},
	"occupations":       {"id", "name", "url", "esco_code"},
	"skill_occupations": {"skill_id", "occupation_id"},
}

func VerifyCatalog(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for table, columns := range catalogTables {
		if err := ensureTableColumns(ctx, db, table, columns); err != nil {
			return err
		}
	}
	return nil
}

func ensureTableColumns(ctx context.Context, db database.DB, table string, columns []string) error {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(existing) == 0 {
		return fmt.Errorf("%w: table %s missing", ErrCatalogUnverified, table)
	}
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("%w: missing column %s.%s", ErrCatalogUnverified, table, col)
		}
	}
	return nil
}
