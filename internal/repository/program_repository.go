package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"degree-compass/internal/database"
)

// DegreeTitle is the normalized representation of one display title. The
// seed data stores degree_titles either as a JSON array of strings or as an
// object keyed by language code; both shapes collapse into this one.
type DegreeTitle struct {
	Language string `json:"language"`
	Title    string `json:"title"`
}

type Program struct {
	ID                int
	UniversityID      int
	UniversityName    string
	Country           string
	DegreeType        string
	Titles            []DegreeTitle
	Language          string
	DurationSemesters string
	TotalECTS         string
}

// DisplayTitle returns the first declared title, preferring English.
func (p Program) DisplayTitle() string {
	for _, t := range p.Titles {
		if strings.EqualFold(t.Language, "en") {
			return t.Title
		}
	}
	if len(p.Titles) > 0 {
		return p.Titles[0].Title
	}
	return ""
}

type ProgramRepository interface {
	ListPrograms(ctx context.Context) ([]Program, error)
	ListByUniversity(ctx context.Context, universityID int) ([]Program, error)
	FindByID(ctx context.Context, programID int) (Program, bool, error)
	ListDegreeTypes(ctx context.Context) ([]string, error)
	ListLanguages(ctx context.Context) ([]string, error)
}

type PostgresProgramRepository struct {
	db database.DB
}

func NewPostgresProgramRepository(db database.DB) *PostgresProgramRepository {
	return &PostgresProgramRepository{db: db}
}

const programSelect = `
SELECT p.id, p.university_id, u.name, u.country,
       p.degree_type, COALESCE(p.degree_titles, 'null'::jsonb),
       COALESCE(p.language, ''), COALESCE(p.duration_semesters, ''), COALESCE(p.total_ects, '')
FROM degree_programs p
JOIN universities u ON u.id = p.university_id`

func (r *PostgresProgramRepository) ListPrograms(ctx context.Context) ([]Program, error) {
	rows, err := r.db.Query(ctx, programSelect+` ORDER BY p.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPrograms(rows)
}

func (r *PostgresProgramRepository) ListByUniversity(ctx context.Context, universityID int) ([]Program, error) {
	rows, err := r.db.Query(ctx, programSelect+` WHERE p.university_id = $1 ORDER BY p.id ASC`, universityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPrograms(rows)
}

func (r *PostgresProgramRepository) FindByID(ctx context.Context, programID int) (Program, bool, error) {
	rows, err := r.db.Query(ctx, programSelect+` WHERE p.id = $1`, programID)
	if err != nil {
		return Program{}, false, err
	}
	defer rows.Close()

	programs, err := scanPrograms(rows)
	if err != nil {
		return Program{}, false, err
	}
	if len(programs) == 0 {
		return Program{}, false, nil
	}
	return programs[0], true, nil
}

func (r *PostgresProgramRepository) ListDegreeTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT degree_type FROM degree_programs WHERE degree_type <> '' ORDER BY degree_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProgramRepository) ListLanguages(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT language FROM degree_programs WHERE language IS NOT NULL AND language <> ''`)
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

func scanPrograms(rows database.Rows) ([]Program, error) {
	out := make([]Program, 0)
	for rows.Next() {
		var p Program
		var rawTitles []byte
		if err := rows.Scan(
			&p.ID, &p.UniversityID, &p.UniversityName, &p.Country,
			&p.DegreeType, &rawTitles,
			&p.Language, &p.DurationSemesters, &p.TotalECTS,
		); err != nil {
			return nil, err
		}
		p.Titles = ParseDegreeTitles(rawTitles)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseDegreeTitles normalizes the loosely-typed degree_titles column. Seen
// shapes in the seed data: JSON array of strings, object keyed by language
// code, bare string. Unknown shapes degrade to an empty list rather than
// failing the whole row.
func ParseDegreeTitles(raw []byte) []DegreeTitle {
	if len(raw) == 0 {
		return []DegreeTitle{}
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		out := make([]DegreeTitle, 0, len(asList))
		for _, t := range asList {
			t = strings.TrimSpace(t)
			if t != "" {
				out = append(out, DegreeTitle{Title: t})
			}
		}
		return out
	}

	var asMap map[string]string
	if err := json.Unmarshal(raw, &asMap); err == nil {
		out := make([]DegreeTitle, 0, len(asMap))
		for lang, t := range asMap {
			t = strings.TrimSpace(t)
			if t != "" {
				out = append(out, DegreeTitle{Language: lang, Title: t})
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Language < out[j].Language })
		return out
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		asString = strings.TrimSpace(asString)
		if asString != "" {
			return []DegreeTitle{{Title: asString}}
		}
	}

	return []DegreeTitle{}
}
