package repository

import (
	"context"
	"encoding/json"
	"strings"

	"degree-compass/internal/database"
)

type Skill struct {
	ID   int
	Name string
}

// CourseSkill pairs a skill with the free-text category tags the catalog
// attaches to the (course, skill) link.
type CourseSkill struct {
	Skill      Skill
	Categories []string
}

type CategorySkill struct {
	Category  string
	SkillID   int
	SkillName string
}

type OccupationSkill struct {
	Occupation string
	SkillID    int
	SkillName  string
}

type SkillRepository interface {
	ResolveByNames(ctx context.Context, names []string) ([]Skill, error)
	ResolveByIDs(ctx context.Context, ids []int) ([]Skill, error)
	SkillsByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]CourseSkill, error)
	ProgramFootprints(ctx context.Context, programIDs []int) (map[int][]Skill, error)
	UniversityProgramFootprint(ctx context.Context, universityID int) ([]Skill, error)
	CategoriesForSkills(ctx context.Context, skillIDs []int) (map[int][]string, error)
	ListGroupedByCategory(ctx context.Context) ([]CategorySkill, error)
	ListGroupedByOccupation(ctx context.Context) ([]OccupationSkill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

// ResolveByNames maps caller-supplied skill names to catalog skills,
// case-insensitively. Unknown names are silently absent from the result;
// the caller decides whether an empty resolution is an input error.
func (r *PostgresSkillRepository) ResolveByNames(ctx context.Context, names []string) ([]Skill, error) {
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			lowered = append(lowered, n)
		}
	}
	if len(lowered) == 0 {
		return []Skill{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM skills WHERE LOWER(name) = ANY($1) ORDER BY name ASC`,
		lowered,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

// ResolveByIDs drops unknown IDs silently, mirroring ResolveByNames.
func (r *PostgresSkillRepository) ResolveByIDs(ctx context.Context, ids []int) ([]Skill, error) {
	if len(ids) == 0 {
		return []Skill{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM skills WHERE id = ANY($1) ORDER BY name ASC`,
		toInt32(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *PostgresSkillRepository) SkillsByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]CourseSkill, error) {
	out := make(map[int][]CourseSkill, len(courseIDs))
	if len(courseIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT cs.course_id, s.id, s.name, COALESCE(cs.categories, '[]'::jsonb)
		 FROM course_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.course_id = ANY($1)
		 ORDER BY s.name ASC`,
		toInt32(courseIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int
		var cs CourseSkill
		var rawCategories []byte
		if err := rows.Scan(&courseID, &cs.Skill.ID, &cs.Skill.Name, &rawCategories); err != nil {
			return nil, err
		}
		cs.Categories = parseCategories(rawCategories)
		out[courseID] = append(out[courseID], cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ProgramFootprints returns the distinct skill set of each program's courses.
// An empty programIDs slice spans every program in the catalog.
func (r *PostgresSkillRepository) ProgramFootprints(ctx context.Context, programIDs []int) (map[int][]Skill, error) {
	query := `SELECT DISTINCT c.program_id, s.id, s.name
		 FROM course_skills cs
		 JOIN courses c ON c.id = cs.course_id
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE c.program_id IS NOT NULL`
	args := []any{}
	if len(programIDs) > 0 {
		query += ` AND c.program_id = ANY($1)`
		args = append(args, toInt32(programIDs))
	}
	query += ` ORDER BY s.name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]Skill)
	for rows.Next() {
		var programID int
		var s Skill
		if err := rows.Scan(&programID, &s.ID, &s.Name); err != nil {
			return nil, err
		}
		out[programID] = append(out[programID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UniversityProgramFootprint is the union of skills across a university's
// program-linked courses — what the university already teaches through its
// degree offerings. Unlinked courses are deliberately excluded; they are the
// raw material gap analysis measures against this footprint.
func (r *PostgresSkillRepository) UniversityProgramFootprint(ctx context.Context, universityID int) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT s.id, s.name
		 FROM course_skills cs
		 JOIN courses c ON c.id = cs.course_id
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE c.university_id = $1 AND c.program_id IS NOT NULL
		 ORDER BY s.name ASC`,
		universityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *PostgresSkillRepository) CategoriesForSkills(ctx context.Context, skillIDs []int) (map[int][]string, error) {
	out := make(map[int][]string, len(skillIDs))
	if len(skillIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT cs.skill_id, cat.value
		 FROM course_skills cs
		 JOIN LATERAL jsonb_array_elements_text(
			CASE WHEN jsonb_typeof(cs.categories) = 'array' THEN cs.categories ELSE '[]'::jsonb END
		 ) AS cat(value) ON TRUE
		 WHERE cs.skill_id = ANY($1)
		 ORDER BY cs.skill_id, cat.value`,
		toInt32(skillIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var skillID int
		var category string
		if err := rows.Scan(&skillID, &category); err != nil {
			return nil, err
		}
		if category = strings.TrimSpace(category); category != "" {
			out[skillID] = append(out[skillID], category)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) ListGroupedByCategory(ctx context.Context) ([]CategorySkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT COALESCE(cat.value, ''), s.id, s.name
		 FROM course_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 LEFT JOIN LATERAL jsonb_array_elements_text(
			CASE WHEN jsonb_typeof(cs.categories) = 'array' THEN cs.categories ELSE '[]'::jsonb END
		 ) AS cat(value) ON TRUE
		 ORDER BY 1, 3`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CategorySkill, 0)
	for rows.Next() {
		var row CategorySkill
		if err := rows.Scan(&row.Category, &row.SkillID, &row.SkillName); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) ListGroupedByOccupation(ctx context.Context) ([]OccupationSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(o.name, ''), s.id, s.name
		 FROM skills s
		 LEFT JOIN skill_occupations so ON so.skill_id = s.id
		 LEFT JOIN occupations o ON o.id = so.occupation_id
		 ORDER BY 1, 3`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]OccupationSkill, 0)
	for rows.Next() {
		var row OccupationSkill
		if err := rows.Scan(&row.Occupation, &row.SkillID, &row.SkillName); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSkills(rows database.Rows) ([]Skill, error) {
	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseCategories(raw []byte) []string {
	var cats []string
	if err := json.Unmarshal(raw, &cats); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func toInt32(ids []int) []int32 {
	out := make([]int32, 0, len(ids))
	for _, id := range ids {
		out = append(out, int32(id))
	}
	return out
}
