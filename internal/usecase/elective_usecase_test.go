package usecase

import (
	"context"
	"errors"
	"testing"

	"degree-compass/internal/repository"
)

type fakeElectiveProgramRepo struct {
	program repository.Program
	found   bool
	err     error
}

func (f *fakeElectiveProgramRepo) FindByID(ctx context.Context, programID int) (repository.Program, bool, error) {
	return f.program, f.found, f.err
}

type fakeElectiveCourseRepo struct {
	electives []repository.Course
	err       error
}

func (f *fakeElectiveCourseRepo) ListElectives(ctx context.Context, universityID, programID int) ([]repository.Course, error) {
	return f.electives, f.err
}

func electiveFixture() (*fakeElectiveProgramRepo, *fakeElectiveCourseRepo, *fakeSkillRepo) {
	programs := &fakeElectiveProgramRepo{
		program: repository.Program{ID: 10, UniversityID: 1},
		found:   true,
	}
	courses := &fakeElectiveCourseRepo{electives: []repository.Course{
		{ID: 300, Name: "Machine Learning Lab", UniversityName: "Tech University", Elective: true},
		{ID: 301, Name: "Art History", UniversityName: "Tech University", Elective: true},
	}}
	skills := testSkillRepo()
	skills.byCourse = map[int][]repository.CourseSkill{
		300: {{Skill: repository.Skill{ID: 1, Name: "Python"}}, {Skill: repository.Skill{ID: 4, Name: "Statistics"}}},
		301: {{Skill: repository.Skill{ID: 30, Name: "Art Criticism"}}},
	}
	return programs, courses, skills
}

func TestRecommendElectivesRanksByOverlap(t *testing.T) {
	programs, courses, skills := electiveFixture()
	uc := NewElectiveUsecase(programs, courses, skills, discardLogger())

	result, err := uc.RecommendElectives(context.Background(), ElectiveParams{
		UniversityID:     1,
		ProgramID:        10,
		TargetSkillNames: []string{"Python", "Statistics"},
	})
	if err != nil {
		t.Fatalf("RecommendElectives: %v", err)
	}
	if result.Considered != 2 {
		t.Errorf("considered = %d, want 2", result.Considered)
	}
	if len(result.Recommended) != 1 {
		t.Fatalf("only the overlapping elective should rank, got %d", len(result.Recommended))
	}

	rec := result.Recommended[0]
	if rec.CourseID != 300 || rec.Score != 1.0 {
		t.Errorf("unexpected recommendation %+v", rec)
	}
	if len(rec.MatchingSkills) != 2 {
		t.Errorf("matching skills = %v", rec.MatchingSkills)
	}
	if rec.Reason != "Common skills: 2 (Python, Statistics)" {
		t.Errorf("reason = %q", rec.Reason)
	}
}

func TestRecommendElectivesUnknownProgram(t *testing.T) {
	_, courses, skills := electiveFixture()
	uc := NewElectiveUsecase(&fakeElectiveProgramRepo{found: false}, courses, skills, discardLogger())

	result, err := uc.RecommendElectives(context.Background(), ElectiveParams{
		UniversityID:     1,
		ProgramID:        999,
		TargetSkillNames: []string{"Python"},
	})
	if err != nil {
		t.Fatalf("unknown program should not be an error: %v", err)
	}
	if len(result.Recommended) != 0 {
		t.Errorf("expected empty result, got %v", result.Recommended)
	}
}

func TestRecommendElectivesUniversityMismatch(t *testing.T) {
	programs, courses, skills := electiveFixture()
	programs.program.UniversityID = 2
	uc := NewElectiveUsecase(programs, courses, skills, discardLogger())

	result, err := uc.RecommendElectives(context.Background(), ElectiveParams{
		UniversityID:     1,
		ProgramID:        10,
		TargetSkillNames: []string{"Python"},
	})
	if err != nil {
		t.Fatalf("mismatched university should not be an error: %v", err)
	}
	if len(result.Recommended) != 0 {
		t.Errorf("expected empty result, got %v", result.Recommended)
	}
}

func TestRecommendElectivesEmptyTarget(t *testing.T) {
	programs, courses, skills := electiveFixture()
	uc := NewElectiveUsecase(programs, courses, skills, discardLogger())

	_, err := uc.RecommendElectives(context.Background(), ElectiveParams{UniversityID: 1, ProgramID: 10})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestElectiveSkillsDistinctSorted(t *testing.T) {
	programs, courses, skills := electiveFixture()
	uc := NewElectiveUsecase(programs, courses, skills, discardLogger())

	list, err := uc.ElectiveSkills(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ElectiveSkills: %v", err)
	}
	want := []string{"Art Criticism", "Python", "Statistics"}
	if len(list) != len(want) {
		t.Fatalf("skills = %v, want %v", list, want)
	}
	for i, s := range list {
		if s.Name != want[i] {
			t.Errorf("skills[%d] = %q, want %q", i, s.Name, want[i])
		}
	}
}
