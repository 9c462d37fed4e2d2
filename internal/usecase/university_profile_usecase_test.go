package usecase

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"degree-compass/internal/repository"
)

type fakeProfileSkillRepo struct {
	byCourse map[int][]repository.CourseSkill
	err      error
}

func (f *fakeProfileSkillRepo) SkillsByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]repository.CourseSkill, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int][]repository.CourseSkill, len(courseIDs))
	for _, id := range courseIDs {
		if cs, ok := f.byCourse[id]; ok {
			out[id] = cs
		}
	}
	return out, nil
}

func profileFixture() (*fakeUniversityRepo, *fakeCatalogProgramRepo, *fakeCatalogCourseRepo, *fakeProfileSkillRepo) {
	universities := &fakeUniversityRepo{
		exists: true,
		list: []repository.University{
			{ID: 1, Name: "Tech University", Country: "Germany"},
			{ID: 2, Name: "City College", Country: "Greece"},
			{ID: 3, Name: "Art Institute", Country: "Italy"},
			{ID: 4, Name: "New Campus", Country: "Spain"},
			{ID: 5, Name: "Delta University", Country: "France"},
		},
	}
	programs := &fakeCatalogProgramRepo{
		all: []repository.Program{
			{ID: 10, UniversityID: 1, Titles: []repository.DegreeTitle{{Language: "en", Title: "Data Science"}}},
			{ID: 11, UniversityID: 1, Titles: []repository.DegreeTitle{{Language: "de", Title: "data science"}}},
		},
	}
	courses := &fakeCatalogCourseRepo{
		courses: []repository.Course{
			{ID: 500, UniversityID: 1, Name: "Databases I"},
			{ID: 501, UniversityID: 1, Name: "Python Programming"},
			{ID: 510, UniversityID: 2, Name: "Applied Informatics"},
			{ID: 520, UniversityID: 3, Name: "Pottery"},
			{ID: 530, UniversityID: 5, Name: "Scripting"},
		},
	}
	skills := &fakeProfileSkillRepo{
		byCourse: map[int][]repository.CourseSkill{
			500: {
				{Skill: repository.Skill{ID: 2, Name: "SQL"}},
				{Skill: repository.Skill{ID: 3, Name: "Databases"}},
			},
			501: {{Skill: repository.Skill{ID: 1, Name: "Python"}}},
			510: {
				{Skill: repository.Skill{ID: 1, Name: "Python"}},
				{Skill: repository.Skill{ID: 2, Name: "SQL"}},
			},
			520: {{Skill: repository.Skill{ID: 9, Name: "Ceramics"}}},
			530: {{Skill: repository.Skill{ID: 1, Name: "Python"}}},
		},
	}
	return universities, programs, courses, skills
}

func TestUniversityProfiles_ProfileFootprint(t *testing.T) {
	universities, programs, courses, skills := profileFixture()
	uc := NewUniversityProfileUsecase(universities, programs, courses, skills, discardLogger())

	profile, err := uc.Profile(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(profile.Skills, []string{"Databases", "Python", "SQL"}) {
		t.Fatalf("unexpected skills: %v", profile.Skills)
	}
	if !reflect.DeepEqual(profile.Courses, []string{"Databases I", "Python Programming"}) {
		t.Fatalf("unexpected courses: %v", profile.Courses)
	}
	if !reflect.DeepEqual(profile.Degrees, []string{"Data Science"}) {
		t.Fatalf("expected duplicate titles collapsed, got %v", profile.Degrees)
	}
}

func TestUniversityProfiles_ProfileUnknownUniversity(t *testing.T) {
	universities, programs, courses, skills := profileFixture()
	universities.exists = false
	uc := NewUniversityProfileUsecase(universities, programs, courses, skills, discardLogger())

	_, err := uc.Profile(context.Background(), 99)
	if !errors.Is(err, ErrUniversityNotFound) {
		t.Fatalf("expected ErrUniversityNotFound, got %v", err)
	}
}

func TestUniversityProfiles_ProfileEmptyUniversity(t *testing.T) {
	universities, programs, courses, skills := profileFixture()
	uc := NewUniversityProfileUsecase(universities, programs, courses, skills, discardLogger())

	profile, err := uc.Profile(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(profile.Skills) != 0 || len(profile.Courses) != 0 || len(profile.Degrees) != 0 {
		t.Fatalf("expected empty profile, got %+v", profile)
	}
}

func TestUniversityProfiles_SimilarRanksByOverlap(t *testing.T) {
	universities, programs, courses, skills := profileFixture()
	uc := NewUniversityProfileUsecase(universities, programs, courses, skills, discardLogger())

	similar, err := uc.Similar(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Art Institute shares nothing and New Campus teaches nothing; neither
	// belongs in the list, and the target never recommends itself.
	if len(similar) != 2 {
		t.Fatalf("expected 2 similar universities, got %v", similar)
	}
	if similar[0].UniversityID != 2 || similar[0].Name != "City College" || similar[0].Country != "Greece" {
		t.Fatalf("unexpected first entry: %+v", similar[0])
	}
	if math.Abs(similar[0].Score-2.0/3.0) > 1e-9 {
		t.Fatalf("unexpected first score: %v", similar[0].Score)
	}
	if similar[1].UniversityID != 5 || math.Abs(similar[1].Score-1.0/3.0) > 1e-9 {
		t.Fatalf("unexpected second entry: %+v", similar[1])
	}
}

func TestUniversityProfiles_SimilarTopNTruncates(t *testing.T) {
	universities, programs, courses, skills := profileFixture()
	uc := NewUniversityProfileUsecase(universities, programs, courses, skills, discardLogger())

	similar, err := uc.Similar(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(similar) != 1 || similar[0].UniversityID != 2 {
		t.Fatalf("expected only the closest university, got %v", similar)
	}
}

func TestUniversityProfiles_SimilarEmptyFootprint(t *testing.T) {
	universities, programs, courses, skills := profileFixture()
	uc := NewUniversityProfileUsecase(universities, programs, courses, skills, discardLogger())

	similar, err := uc.Similar(context.Background(), 4, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(similar) != 0 {
		t.Fatalf("expected empty list for a skill-less target, got %v", similar)
	}
}

func TestUniversityProfiles_DataUnavailable(t *testing.T) {
	universities, programs, courses, skills := profileFixture()
	skills.err = errors.New("connection refused")
	uc := NewUniversityProfileUsecase(universities, programs, courses, skills, discardLogger())

	if _, err := uc.Profile(context.Background(), 1); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable from Profile, got %v", err)
	}
	if _, err := uc.Similar(context.Background(), 1, 0); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable from Similar, got %v", err)
	}
}
