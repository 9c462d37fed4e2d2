package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"degree-compass/internal/domain/matching"
	"degree-compass/internal/domain/ranking"
	"degree-compass/internal/repository"
)

type ElectiveParams struct {
	UniversityID     int
	ProgramID        int
	TargetSkillNames []string
	TargetSkillIDs   []int
	TopN             int
}

type ElectiveRecommendation struct {
	CourseID       int
	CourseName     string
	University     string
	Score          float64
	Skills         []string
	MatchingSkills []string
	MissingSkills  []string
	Reason         string
}

type ElectiveResult struct {
	Recommended []ElectiveRecommendation
	Considered  int
}

type ElectiveUsecase interface {
	RecommendElectives(ctx context.Context, params ElectiveParams) (ElectiveResult, error)
	ElectiveSkills(ctx context.Context, universityID, programID int) ([]repository.Skill, error)
}

type Elective struct {
	programs ElectiveProgramRepo
	courses  ElectiveCourseRepo
	skills   ElectiveSkillRepo
	logger   *log.Logger
}

type ElectiveProgramRepo interface {
	FindByID(ctx context.Context, programID int) (repository.Program, bool, error)
}

type ElectiveCourseRepo interface {
	ListElectives(ctx context.Context, universityID, programID int) ([]repository.Course, error)
}

type ElectiveSkillRepo interface {
	ResolveByNames(ctx context.Context, names []string) ([]repository.Skill, error)
	ResolveByIDs(ctx context.Context, ids []int) ([]repository.Skill, error)
	SkillsByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]repository.CourseSkill, error)
}

func NewElectiveUsecase(programs ElectiveProgramRepo, courses ElectiveCourseRepo, skills ElectiveSkillRepo, logger *log.Logger) *Elective {
	if logger == nil {
		logger = log.Default()
	}
	return &Elective{programs: programs, courses: courses, skills: skills, logger: logger}
}

func (u *Elective) RecommendElectives(ctx context.Context, params ElectiveParams) (ElectiveResult, error) {
	target, err := u.resolveTargetSkills(ctx, params.TargetSkillNames, params.TargetSkillIDs)
	if err != nil {
		return ElectiveResult{}, err
	}
	if len(target) == 0 {
		return ElectiveResult{}, ErrInvalidInput
	}

	program, ok, err := u.programs.FindByID(ctx, params.ProgramID)
	if err != nil {
		u.logger.Printf("[Recommender] program lookup failed: %v", err)
		return ElectiveResult{}, ErrDataUnavailable
	}
	// Unknown program, or a program that belongs to a different university,
	// degrades to an empty candidate set so UIs can render "no results".
	if !ok || (params.UniversityID != 0 && program.UniversityID != params.UniversityID) {
		return ElectiveResult{Recommended: []ElectiveRecommendation{}}, nil
	}

	electives, err := u.courses.ListElectives(ctx, program.UniversityID, program.ID)
	if err != nil {
		u.logger.Printf("[Recommender] elective listing failed: %v", err)
		return ElectiveResult{}, ErrDataUnavailable
	}

	courseIDs := make([]int, 0, len(electives))
	for _, c := range electives {
		courseIDs = append(courseIDs, c.ID)
	}
	skillsByCourse, err := u.skills.SkillsByCourseIDs(ctx, courseIDs)
	if err != nil {
		u.logger.Printf("[Recommender] elective skills failed: %v", err)
		return ElectiveResult{}, ErrDataUnavailable
	}

	results := make([]matching.Result, len(electives))
	candidates := make([]ranking.Candidate, 0, len(electives))
	considered := 0
	for i, c := range electives {
		courseSkills := toMatchingCourseSkills(skillsByCourse[c.ID])
		if len(courseSkills) == 0 {
			continue
		}
		considered++
		res, err := matching.Calculate(target, courseSkills)
		if err != nil {
			u.logger.Printf("[Recommender] scoring elective %d failed: %v", c.ID, err)
			continue
		}
		results[i] = res
		candidates = append(candidates, ranking.Candidate{
			Index:        i,
			Name:         c.Name,
			Country:      c.Country,
			Language:     c.Language,
			UniversityID: c.UniversityID,
			ProgramID:    c.ProgramID,
			Score:        res.Score,
		})
	}

	ranked := ranking.Rank(ctx, candidates, ranking.Filters{}, params.TopN)
	if err := ctx.Err(); err != nil {
		return ElectiveResult{}, err
	}

	out := make([]ElectiveRecommendation, 0, len(ranked))
	for _, cand := range ranked {
		course := electives[cand.Index]
		res := results[cand.Index]

		full := make([]string, 0, len(res.Compatible)+len(res.New))
		full = append(full, matching.Names(res.Compatible)...)
		full = append(full, matching.Names(res.New)...)
		sort.Slice(full, func(i, j int) bool { return strings.ToLower(full[i]) < strings.ToLower(full[j]) })

		out = append(out, ElectiveRecommendation{
			CourseID:       course.ID,
			CourseName:     course.Name,
			University:     course.UniversityName,
			Score:          res.Score,
			Skills:         full,
			MatchingSkills: matching.Names(res.Matched),
			MissingSkills:  matching.Names(res.New),
			Reason:         electiveReason(res),
		})
	}

	return ElectiveResult{Recommended: out, Considered: considered}, nil
}

func (u *Elective) ElectiveSkills(ctx context.Context, universityID, programID int) ([]repository.Skill, error) {
	program, ok, err := u.programs.FindByID(ctx, programID)
	if err != nil {
		u.logger.Printf("[Recommender] program lookup failed: %v", err)
		return nil, ErrDataUnavailable
	}
	if !ok || (universityID != 0 && program.UniversityID != universityID) {
		return []repository.Skill{}, nil
	}

	electives, err := u.courses.ListElectives(ctx, program.UniversityID, program.ID)
	if err != nil {
		u.logger.Printf("[Recommender] elective listing failed: %v", err)
		return nil, ErrDataUnavailable
	}

	courseIDs := make([]int, 0, len(electives))
	for _, c := range electives {
		courseIDs = append(courseIDs, c.ID)
	}
	skillsByCourse, err := u.skills.SkillsByCourseIDs(ctx, courseIDs)
	if err != nil {
		u.logger.Printf("[Recommender] elective skills failed: %v", err)
		return nil, ErrDataUnavailable
	}

	seen := map[int]repository.Skill{}
	for _, list := range skillsByCourse {
		for _, cs := range list {
			seen[cs.Skill.ID] = cs.Skill
		}
	}

	out := make([]repository.Skill, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (u *Elective) resolveTargetSkills(ctx context.Context, names []string, ids []int) ([]matching.Skill, error) {
	resolved := make([]matching.Skill, 0, len(names)+len(ids))
	if len(names) > 0 {
		byName, err := u.skills.ResolveByNames(ctx, names)
		if err != nil {
			u.logger.Printf("[Recommender] skill name resolution failed: %v", err)
			return nil, ErrDataUnavailable
		}
		for _, s := range byName {
			resolved = append(resolved, matching.Skill{ID: s.ID, Name: s.Name})
		}
	}
	if len(ids) > 0 {
		byID, err := u.skills.ResolveByIDs(ctx, ids)
		if err != nil {
			u.logger.Printf("[Recommender] skill id resolution failed: %v", err)
			return nil, ErrDataUnavailable
		}
		for _, s := range byID {
			resolved = append(resolved, matching.Skill{ID: s.ID, Name: s.Name})
		}
	}
	return resolved, nil
}

func electiveReason(res matching.Result) string {
	if len(res.Matched) == 0 {
		return "Low relevance."
	}
	names := matching.Names(res.Matched)
	if len(names) > 5 {
		names = names[:5]
	}
	return fmt.Sprintf("Common skills: %d (%s)", len(res.Matched), strings.Join(names, ", "))
}
