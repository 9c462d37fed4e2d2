package schema

import (
	"context"
	"errors"
	"testing"

	"degree-compass/internal/database"
)

type fakeDB struct {
	columns map[string][]string
}

func (f *fakeDB) Ping(ctx context.Context) error { return nil }
func (f *fakeDB) Close() error                   { return nil }

func (f *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	table, _ := args[0].(string)
	return &fakeRows{values: f.columns[table]}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

type fakeRows struct {
	values []string
	pos    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	return r.pos < len(r.values)
}

func (r *fakeRows) Scan(dest ...any) error {
	if p, ok := dest[0].(*string); ok {
		*p = r.values[r.pos]
	}
	r.pos++
	return nil
}

func fullCatalog() map[string][]string {
	out := make(map[string][]string, len(catalogTables))
	for table, cols := range catalogTables {
		out[table] = append([]string(nil), cols...)
	}
	return out
}

func TestVerifyCatalog_Complete(t *testing.T) {
	db := &fakeDB{columns: fullCatalog()}
	if err := VerifyCatalog(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestVerifyCatalog_MissingTable(t *testing.T) {
	cols := fullCatalog()
	delete(cols, "course_skills")
	db := &fakeDB{columns: cols}

	err := VerifyCatalog(context.Background(), db)
	if !errors.Is(err, ErrCatalogUnverified) {
		t.Fatalf("expected ErrCatalogUnverified, got %v", err)
	}
}

func TestVerifyCatalog_MissingColumn(t *testing.T) {
	cols := fullCatalog()
	cols["courses"] = []string{"id", "university_id"}
	db := &fakeDB{columns: cols}

	err := VerifyCatalog(context.Background(), db)
	if !errors.Is(err, ErrCatalogUnverified) {
		t.Fatalf("expected ErrCatalogUnverified, got %v", err)
	}
}
