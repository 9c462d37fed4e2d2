package repository

import (
	"context"

	"degree-compass/internal/database"
)

type University struct {
	ID      int
	Name    string
	Country string
}

// UniversityMetrics backs the /metrics endpoint: offering size plus how many
// distinct skills the catalog recognizes across the university's courses.
type UniversityMetrics struct {
	TotalPrograms    int
	RecognizedSkills int
}

type UniversityRepository interface {
	ListUniversities(ctx context.Context) ([]University, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	ListCountries(ctx context.Context) ([]string, error)
	Metrics(ctx context.Context, id int) (UniversityMetrics, error)
}

type PostgresUniversityRepository struct {
	db database.DB
}

func NewPostgresUniversityRepository(db database.DB) *PostgresUniversityRepository {
	return &PostgresUniversityRepository{db: db}
}

func (r *PostgresUniversityRepository) ListUniversities(ctx context.Context) ([]University, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, country FROM universities ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]University, 0)
	for rows.Next() {
		var u University
		if err := rows.Scan(&u.ID, &u.Name, &u.Country); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUniversityRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM universities WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUniversityRepository) ListCountries(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT country FROM universities WHERE country <> '' ORDER BY country ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUniversityRepository) Metrics(ctx context.Context, id int) (UniversityMetrics, error) {
	var m UniversityMetrics
	err := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM degree_programs WHERE university_id = $1),
			(SELECT COUNT(DISTINCT cs.skill_id)
			 FROM course_skills cs
			 JOIN courses c ON c.id = cs.course_id
			 WHERE c.university_id = $1)`,
		id,
	).Scan(&m.TotalPrograms, &m.RecognizedSkills)
	if err != nil {
		return UniversityMetrics{}, err
	}
	return m, nil
}
