package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"degree-compass/internal/repository"
)

type fakeProgramRepo struct {
	programs []repository.Program
	err      error
}

func (f *fakeProgramRepo) ListPrograms(ctx context.Context) ([]repository.Program, error) {
	return f.programs, f.err
}

type fakeCourseRepo struct {
	unlinked []repository.Course
	err      error
}

func (f *fakeCourseRepo) ListUnlinked(ctx context.Context, universityID int) ([]repository.Course, error) {
	return f.unlinked, f.err
}

type fakeSkillRepo struct {
	byName     map[string]repository.Skill
	byID       map[int]repository.Skill
	footprints map[int][]repository.Skill
	byCourse   map[int][]repository.CourseSkill
	categories map[int][]string
	err        error
}

func (f *fakeSkillRepo) ResolveByNames(ctx context.Context, names []string) ([]repository.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []repository.Skill
	for _, n := range names {
		if s, ok := f.byName[strings.ToLower(strings.TrimSpace(n))]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSkillRepo) ResolveByIDs(ctx context.Context, ids []int) ([]repository.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []repository.Skill
	for _, id := range ids {
		if s, ok := f.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSkillRepo) SkillsByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]repository.CourseSkill, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCourse, nil
}

func (f *fakeSkillRepo) ProgramFootprints(ctx context.Context, programIDs []int) (map[int][]repository.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.footprints, nil
}

func (f *fakeSkillRepo) UniversityProgramFootprint(ctx context.Context, universityID int) ([]repository.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []repository.Skill
	for _, skills := range f.footprints {
		out = append(out, skills...)
	}
	return out, nil
}

func (f *fakeSkillRepo) CategoriesForSkills(ctx context.Context, skillIDs []int) (map[int][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

type fakeCache struct {
	store  map[string][]byte
	gets   int
	sets   int
	failed bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	f.gets++
	if f.failed {
		return false, errors.New("cache down")
	}
	raw, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.sets++
	if f.failed {
		return errors.New("cache down")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = raw
	return nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testSkillRepo() *fakeSkillRepo {
	python := repository.Skill{ID: 1, Name: "Python"}
	sql := repository.Skill{ID: 2, Name: "SQL"}
	databases := repository.Skill{ID: 3, Name: "Databases"}
	statistics := repository.Skill{ID: 4, Name: "Statistics"}
	return &fakeSkillRepo{
		byName: map[string]repository.Skill{
			"python":     python,
			"sql":        sql,
			"databases":  databases,
			"statistics": statistics,
		},
		byID: map[int]repository.Skill{1: python, 2: sql, 3: databases, 4: statistics},
		footprints: map[int][]repository.Skill{
			10: {python, sql, databases},
			11: {statistics},
		},
		byCourse: map[int][]repository.CourseSkill{
			100: {{Skill: python}, {Skill: statistics}},
		},
		categories: map[int][]string{
			1: {"Programming"},
			2: {"Data Management"},
			3: {"Data Management"},
		},
	}
}

func testPrograms() []repository.Program {
	return []repository.Program{
		{
			ID:             10,
			UniversityID:   1,
			UniversityName: "Tech University",
			Country:        "Germany",
			DegreeType:     "MSc",
			Language:       "English",
			Titles:         []repository.DegreeTitle{{Language: "en", Title: "Data Science"}},
		},
		{
			ID:             11,
			UniversityID:   2,
			UniversityName: "City College",
			Country:        "Greece",
			DegreeType:     "BSc",
			Language:       "Greek",
			Titles:         []repository.DegreeTitle{{Language: "en", Title: "Applied Statistics"}},
		},
	}
}

func TestPersonalizedRecommendEmptyTarget(t *testing.T) {
	uc := NewPersonalizedUsecase(&fakeProgramRepo{}, &fakeCourseRepo{}, testSkillRepo(), nil, discardLogger())

	cases := []struct {
		name   string
		params PersonalizedParams
	}{
		{"no skills at all", PersonalizedParams{}},
		{"only unknown names", PersonalizedParams{TargetSkillNames: []string{"Underwater Basket Weaving"}}},
		{"only unknown ids", PersonalizedParams{TargetSkillIDs: []int{9999}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Recommend(context.Background(), tc.params)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPersonalizedRecommendScoresPrograms(t *testing.T) {
	uc := NewPersonalizedUsecase(
		&fakeProgramRepo{programs: testPrograms()},
		&fakeCourseRepo{},
		testSkillRepo(),
		nil,
		discardLogger(),
	)

	result, err := uc.Recommend(context.Background(), PersonalizedParams{
		TargetSkillNames: []string{"Python", "SQL", "Databases"},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(result.RecommendedPrograms) != 1 {
		t.Fatalf("expected 1 program (zero scores excluded), got %d", len(result.RecommendedPrograms))
	}

	top := result.RecommendedPrograms[0]
	if top.ProgramID != 10 {
		t.Errorf("expected program 10 first, got %d", top.ProgramID)
	}
	if top.Score != 1.0 {
		t.Errorf("full overlap should score 1.0, got %v", top.Score)
	}
	if len(top.MatchedSkills) != 3 {
		t.Errorf("expected 3 matched skills, got %v", top.MatchedSkills)
	}

	byCategory := result.SkillsByCategory
	if got := byCategory["Programming"]; len(got) != 1 || got[0] != "Python" {
		t.Errorf("Programming bucket = %v", got)
	}
	if got := byCategory["Data Management"]; len(got) != 2 {
		t.Errorf("Data Management bucket = %v", got)
	}
}

func TestPersonalizedRecommendFilters(t *testing.T) {
	uc := NewPersonalizedUsecase(
		&fakeProgramRepo{programs: testPrograms()},
		&fakeCourseRepo{},
		testSkillRepo(),
		nil,
		discardLogger(),
	)

	result, err := uc.Recommend(context.Background(), PersonalizedParams{
		TargetSkillNames: []string{"Python"},
		Country:          "greece",
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// Program 11 is the only Greek one but has no Python, so nothing survives.
	if len(result.RecommendedPrograms) != 0 {
		t.Fatalf("expected no programs, got %v", result.RecommendedPrograms)
	}
}

func TestPersonalizedRecommendUnlinkedCourses(t *testing.T) {
	uc := NewPersonalizedUsecase(
		&fakeProgramRepo{},
		&fakeCourseRepo{unlinked: []repository.Course{
			{ID: 100, Name: "Intro to Data Analysis", UniversityName: "Tech University", Country: "Germany", Language: "English"},
		}},
		testSkillRepo(),
		nil,
		discardLogger(),
	)

	result, err := uc.Recommend(context.Background(), PersonalizedParams{
		TargetSkillNames: []string{"Python", "Statistics"},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(result.RecommendedUnlinkedCourses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(result.RecommendedUnlinkedCourses))
	}
	course := result.RecommendedUnlinkedCourses[0]
	if course.CourseID != 100 || course.Score != 1.0 {
		t.Errorf("unexpected course recommendation %+v", course)
	}
}

func TestPersonalizedRecommendDataUnavailable(t *testing.T) {
	uc := NewPersonalizedUsecase(
		&fakeProgramRepo{err: errors.New("connection refused")},
		&fakeCourseRepo{},
		testSkillRepo(),
		nil,
		discardLogger(),
	)

	_, err := uc.Recommend(context.Background(), PersonalizedParams{TargetSkillNames: []string{"Python"}})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestPersonalizedRecommendUsesCache(t *testing.T) {
	cache := newFakeCache()
	uc := NewPersonalizedUsecase(
		&fakeProgramRepo{programs: testPrograms()},
		&fakeCourseRepo{},
		testSkillRepo(),
		cache,
		discardLogger(),
	)

	params := PersonalizedParams{TargetSkillNames: []string{"Python", "SQL", "Databases"}}
	first, err := uc.Recommend(context.Background(), params)
	if err != nil {
		t.Fatalf("first Recommend: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := uc.Recommend(context.Background(), params)
	if err != nil {
		t.Fatalf("second Recommend: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("cache hit should not write again, sets = %d", cache.sets)
	}
	if len(second.RecommendedPrograms) != len(first.RecommendedPrograms) {
		t.Errorf("cached result differs: %d vs %d programs", len(second.RecommendedPrograms), len(first.RecommendedPrograms))
	}
}

func TestPersonalizedRecommendSurvivesCacheOutage(t *testing.T) {
	cache := newFakeCache()
	cache.failed = true
	uc := NewPersonalizedUsecase(
		&fakeProgramRepo{programs: testPrograms()},
		&fakeCourseRepo{},
		testSkillRepo(),
		cache,
		discardLogger(),
	)

	result, err := uc.Recommend(context.Background(), PersonalizedParams{TargetSkillNames: []string{"Python"}})
	if err != nil {
		t.Fatalf("Recommend with broken cache: %v", err)
	}
	if len(result.RecommendedPrograms) == 0 {
		t.Error("expected recommendations despite cache outage")
	}
}

func TestPersonalizedCacheKeyStable(t *testing.T) {
	a := PersonalizedCacheKey(PersonalizedParams{TargetSkillNames: []string{"SQL", "Python"}, Country: "Germany"})
	b := PersonalizedCacheKey(PersonalizedParams{TargetSkillNames: []string{"python", " SQL "}, Country: "germany"})
	if a != b {
		t.Errorf("equivalent params should share a cache key:\n%s\n%s", a, b)
	}

	c := PersonalizedCacheKey(PersonalizedParams{TargetSkillNames: []string{"Python"}})
	if a == c {
		t.Error("different params must not collide")
	}
	if !strings.HasPrefix(a, "recommend:personalized:") {
		t.Errorf("unexpected key prefix: %s", a)
	}
}
