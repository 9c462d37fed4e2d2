package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"degree-compass/internal/domain/matching"
	"degree-compass/internal/domain/ranking"
	"degree-compass/internal/repository"
)

// SimilarDefaultTopN bounds the similar-universities list when the caller
// does not ask for a limit. It is deliberately tighter than
// ranking.DefaultTopN: catalogs rarely hold enough peers for a long tail of
// low-overlap entries to be useful.
const SimilarDefaultTopN = 5

// UniversityProfile is a university's academic footprint: every skill its
// courses teach, every course it offers, and every degree title it awards.
type UniversityProfile struct {
	Skills  []string
	Courses []string
	Degrees []string
}

type SimilarUniversity struct {
	UniversityID int
	Name         string
	Country      string
	Score        float64
}

type UniversityProfileUsecase interface {
	Profile(ctx context.Context, universityID int) (UniversityProfile, error)
	Similar(ctx context.Context, universityID, topN int) ([]SimilarUniversity, error)
}

type ProfileSkillRepo interface {
	SkillsByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]repository.CourseSkill, error)
}

type UniversityProfiles struct {
	universities repository.UniversityRepository
	programs     UniversityProgramRepo
	courses      UniversityCourseRepo
	skills       ProfileSkillRepo
	logger       *log.Logger
}

func NewUniversityProfileUsecase(universities repository.UniversityRepository, programs UniversityProgramRepo, courses UniversityCourseRepo, skills ProfileSkillRepo, logger *log.Logger) *UniversityProfiles {
	if logger == nil {
		logger = log.Default()
	}
	return &UniversityProfiles{universities: universities, programs: programs, courses: courses, skills: skills, logger: logger}
}

// Profile builds the academic footprint of one university. A university that
// exists but teaches nothing yields an empty profile, not an error; only an
// unknown ID is a not-found.
func (u *UniversityProfiles) Profile(ctx context.Context, universityID int) (UniversityProfile, error) {
	exists, err := u.universities.ExistsByID(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Profile] existence check failed: %v", err)
		return UniversityProfile{}, ErrDataUnavailable
	}
	if !exists {
		return UniversityProfile{}, ErrUniversityNotFound
	}

	skills, courseNames, err := u.footprint(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Profile] footprint load failed for university %d: %v", universityID, err)
		return UniversityProfile{}, ErrDataUnavailable
	}

	programs, err := u.programs.ListByUniversity(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Profile] program listing failed for university %d: %v", universityID, err)
		return UniversityProfile{}, ErrDataUnavailable
	}

	degrees := make([]string, 0, len(programs))
	seenDegrees := map[string]struct{}{}
	for _, p := range programs {
		for _, t := range p.Titles {
			title := strings.TrimSpace(t.Title)
			if title == "" {
				continue
			}
			key := strings.ToLower(title)
			if _, ok := seenDegrees[key]; ok {
				continue
			}
			seenDegrees[key] = struct{}{}
			degrees = append(degrees, title)
		}
	}

	return UniversityProfile{
		Skills:  sortedNames(skills),
		Courses: courseNames,
		Degrees: sortedFold(degrees),
	}, nil
}

// Similar ranks other universities by how much of this university's skill
// footprint they cover. Universities without any taught skill cannot be
// compared and are skipped on both sides: an unknown or skill-less target
// yields an empty list rather than an error.
func (u *UniversityProfiles) Similar(ctx context.Context, universityID, topN int) ([]SimilarUniversity, error) {
	if topN <= 0 {
		topN = SimilarDefaultTopN
	}

	target, _, err := u.footprint(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Profile] footprint load failed for university %d: %v", universityID, err)
		return nil, ErrDataUnavailable
	}
	if len(target) == 0 {
		return []SimilarUniversity{}, nil
	}

	all, err := u.universities.ListUniversities(ctx)
	if err != nil {
		u.logger.Printf("[Profile] university listing failed: %v", err)
		return nil, ErrDataUnavailable
	}

	candidates := make([]ranking.Candidate, 0, len(all))
	for _, other := range all {
		if other.ID == universityID {
			continue
		}
		footprint, _, err := u.footprint(ctx, other.ID)
		if err != nil {
			u.logger.Printf("[Profile] footprint load failed for university %d: %v", other.ID, err)
			return nil, ErrDataUnavailable
		}
		if len(footprint) == 0 {
			continue
		}
		res, err := matching.Calculate(target, footprint)
		if errors.Is(err, matching.ErrNoTargetSkills) {
			return []SimilarUniversity{}, nil
		}
		if err != nil {
			return nil, ErrDataUnavailable
		}
		candidates = append(candidates, ranking.Candidate{
			Index:        other.ID,
			Name:         other.Name,
			Country:      other.Country,
			UniversityID: other.ID,
			Score:        res.Score,
		})
	}

	ranked := ranking.Rank(ctx, candidates, ranking.Filters{}, topN)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]SimilarUniversity, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, SimilarUniversity{
			UniversityID: c.UniversityID,
			Name:         c.Name,
			Country:      c.Country,
			Score:        c.Score,
		})
	}
	return out, nil
}

// footprint loads the distinct skills taught across every course of one
// university, linked and unlinked alike, plus the sorted distinct course
// names those skills came with.
func (u *UniversityProfiles) footprint(ctx context.Context, universityID int) ([]matching.Skill, []string, error) {
	courses, err := u.courses.ListByUniversity(ctx, universityID)
	if err != nil {
		return nil, nil, err
	}

	courseIDs := make([]int, 0, len(courses))
	names := make([]string, 0, len(courses))
	seenNames := map[string]struct{}{}
	for _, c := range courses {
		courseIDs = append(courseIDs, c.ID)
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seenNames[key]; ok {
			continue
		}
		seenNames[key] = struct{}{}
		names = append(names, name)
	}

	byCourse, err := u.skills.SkillsByCourseIDs(ctx, courseIDs)
	if err != nil {
		return nil, nil, err
	}

	seenSkills := map[int]struct{}{}
	skills := make([]matching.Skill, 0)
	for _, courseSkills := range byCourse {
		for _, cs := range courseSkills {
			if _, ok := seenSkills[cs.Skill.ID]; ok {
				continue
			}
			seenSkills[cs.Skill.ID] = struct{}{}
			skills = append(skills, matching.Skill{ID: cs.Skill.ID, Name: cs.Skill.Name})
		}
	}

	return skills, sortedFold(names), nil
}

func sortedNames(skills []matching.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return sortedFold(out)
}

func sortedFold(values []string) []string {
	sort.Slice(values, func(i, j int) bool {
		return strings.ToLower(values[i]) < strings.ToLower(values[j])
	})
	return values
}
