package repository

import (
	"context"

	"degree-compass/internal/database"
)

// Course rows denormalize the owning university so assemblers can emit
// display fields without extra lookups. ProgramID is 0 for unlinked courses.
type Course struct {
	ID             int
	UniversityID   int
	UniversityName string
	Country        string
	ProgramID      int
	Name           string
	Language       string
	Description    string
	Hours          string
	Elective       bool
}

type CourseRepository interface {
	ListUnlinked(ctx context.Context, universityID int) ([]Course, error)
	ListLinked(ctx context.Context) ([]Course, error)
	ListByProgram(ctx context.Context, universityID, programID int) ([]Course, error)
	ListByUniversity(ctx context.Context, universityID int) ([]Course, error)
	ListElectives(ctx context.Context, universityID, programID int) ([]Course, error)
	ListLanguages(ctx context.Context) ([]string, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

const courseSelect = `
SELECT c.id, c.university_id, u.name, u.country, COALESCE(c.program_id, 0),
       c.name, COALESCE(c.language, ''), COALESCE(c.description, ''), COALESCE(c.hours, ''),
       COALESCE(c.mand_opt, 'null'::jsonb)::text ILIKE '%optional%'
FROM courses c
JOIN universities u ON u.id = c.university_id`

// ListUnlinked returns courses not tied to any program. A universityID of 0
// spans the whole catalog.
func (r *PostgresCourseRepository) ListUnlinked(ctx context.Context, universityID int) ([]Course, error) {
	if universityID != 0 {
		rows, err := r.db.Query(ctx, courseSelect+` WHERE c.program_id IS NULL AND c.university_id = $1 ORDER BY c.id ASC`, universityID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return scanCourses(rows)
	}

	rows, err := r.db.Query(ctx, courseSelect+` WHERE c.program_id IS NULL ORDER BY c.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func (r *PostgresCourseRepository) ListLinked(ctx context.Context) ([]Course, error) {
	rows, err := r.db.Query(ctx, courseSelect+` WHERE c.program_id IS NOT NULL ORDER BY c.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func (r *PostgresCourseRepository) ListByProgram(ctx context.Context, universityID, programID int) ([]Course, error) {
	rows, err := r.db.Query(ctx, courseSelect+` WHERE c.university_id = $1 AND c.program_id = $2 ORDER BY c.id ASC`, universityID, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func (r *PostgresCourseRepository) ListByUniversity(ctx context.Context, universityID int) ([]Course, error) {
	rows, err := r.db.Query(ctx, courseSelect+` WHERE c.university_id = $1 ORDER BY c.id ASC`, universityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

// ListElectives restricts a program's courses to those the catalog marks
// optional in mand_opt.
func (r *PostgresCourseRepository) ListElectives(ctx context.Context, universityID, programID int) ([]Course, error) {
	rows, err := r.db.Query(ctx,
		courseSelect+` WHERE c.university_id = $1 AND c.program_id = $2
		 AND COALESCE(c.mand_opt, 'null'::jsonb)::text ILIKE '%optional%'
		 ORDER BY c.id ASC`,
		universityID, programID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func (r *PostgresCourseRepository) ListLanguages(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT language FROM courses WHERE language IS NOT NULL AND language <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCourses(rows database.Rows) ([]Course, error) {
	out := make([]Course, 0)
	for rows.Next() {
		var c Course
		if err := rows.Scan(
			&c.ID, &c.UniversityID, &c.UniversityName, &c.Country, &c.ProgramID,
			&c.Name, &c.Language, &c.Description, &c.Hours, &c.Elective,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
