package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"degree-compass/internal/domain/matching"
	"degree-compass/internal/domain/ranking"
	"degree-compass/internal/repository"
)

// PersonalizedParams carries the caller's target skills (by name or by id)
// and optional filters. Names and ids may be mixed; both resolve against the
// catalog before matching.
type PersonalizedParams struct {
	TargetSkillNames []string
	TargetSkillIDs   []int
	DegreeType       string
	Country          string
	Language         string
	TopN             int
}

type ProgramRecommendation struct {
	ProgramID     int
	DegreeName    string
	DegreeTitles  []repository.DegreeTitle
	University    string
	Country       string
	Language      string
	DegreeType    string
	Score         float64
	MatchedSkills []string
}

type UnlinkedCourseRecommendation struct {
	CourseID      int
	CourseName    string
	University    string
	Country       string
	Language      string
	Score         float64
	MatchedSkills []string
}

type PersonalizedResult struct {
	RecommendedPrograms        []ProgramRecommendation
	RecommendedUnlinkedCourses []UnlinkedCourseRecommendation
	SkillsByCategory           map[string][]string
}

type PersonalizedUsecase interface {
	Recommend(ctx context.Context, params PersonalizedParams) (PersonalizedResult, error)
}

type Personalized struct {
	programs PersonalizedProgramRepo
	courses  PersonalizedCourseRepo
	skills   PersonalizedSkillRepo
	cache    RecommendationCache
	logger   *log.Logger
}

// Narrow views of the repositories, so tests mock only what this usecase reads.
type PersonalizedProgramRepo interface {
	ListPrograms(ctx context.Context) ([]repository.Program, error)
}

type PersonalizedCourseRepo interface {
	ListUnlinked(ctx context.Context, universityID int) ([]repository.Course, error)
}

type PersonalizedSkillRepo interface {
	ResolveByNames(ctx context.Context, names []string) ([]repository.Skill, error)
	ResolveByIDs(ctx context.Context, ids []int) ([]repository.Skill, error)
	ProgramFootprints(ctx context.Context, programIDs []int) (map[int][]repository.Skill, error)
	SkillsByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]repository.CourseSkill, error)
	CategoriesForSkills(ctx context.Context, skillIDs []int) (map[int][]string, error)
}

func NewPersonalizedUsecase(
	programs PersonalizedProgramRepo,
	courses PersonalizedCourseRepo,
	skills PersonalizedSkillRepo,
	cache RecommendationCache,
	logger *log.Logger,
) *Personalized {
	if logger == nil {
		logger = log.Default()
	}
	return &Personalized{programs: programs, courses: courses, skills: skills, cache: cache, logger: logger}
}

func (u *Personalized) Recommend(ctx context.Context, params PersonalizedParams) (PersonalizedResult, error) {
	target, err := u.resolveTargetSkills(ctx, params.TargetSkillNames, params.TargetSkillIDs)
	if err != nil {
		return PersonalizedResult{}, err
	}
	if len(target) == 0 {
		return PersonalizedResult{}, ErrInvalidInput
	}

	cacheKey := PersonalizedCacheKey(params)
	if u.cache != nil {
		var cached PersonalizedResult
		if ok, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	programRecs, err := u.recommendPrograms(ctx, target, params)
	if err != nil {
		return PersonalizedResult{}, err
	}

	courseRecs, err := u.recommendUnlinkedCourses(ctx, target, params)
	if err != nil {
		return PersonalizedResult{}, err
	}

	grouped, err := u.groupTargetSkills(ctx, target)
	if err != nil {
		return PersonalizedResult{}, err
	}

	result := PersonalizedResult{
		RecommendedPrograms:        programRecs,
		RecommendedUnlinkedCourses: courseRecs,
		SkillsByCategory:           grouped,
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, result, 0); err != nil {
			u.logger.Printf("[Recommender] cache write failed: %v", err)
		}
	}

	return result, nil
}

func (u *Personalized) resolveTargetSkills(ctx context.Context, names []string, ids []int) ([]matching.Skill, error) {
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

func (u *Personalized) recommendPrograms(ctx context.Context, target []matching.Skill, params PersonalizedParams) ([]ProgramRecommendation, error) {
	programs, err := u.programs.ListPrograms(ctx)
	if err != nil {
		u.logger.Printf("[Recommender] program listing failed: %v", err)
		return nil, ErrDataUnavailable
	}

	footprints, err := u.skills.ProgramFootprints(ctx, nil)
	if err != nil {
		u.logger.Printf("[Recommender] program footprints failed: %v", err)
		return nil, ErrDataUnavailable
	}

	results := make([]matching.Result, len(programs))
	candidates := make([]ranking.Candidate, 0, len(programs))
	for i, p := range programs {
		footprint := footprints[p.ID]
		if len(footprint) == 0 {
			continue
		}
		res, err := matching.Calculate(target, toMatchingSkills(footprint))
		if err != nil {
			// Target emptiness was validated up front; anything here is a
			// per-candidate anomaly: skip the row, keep the batch alive.
			u.logger.Printf("[Recommender] scoring program %d failed: %v", p.ID, err)
			continue
		}
		results[i] = res
		candidates = append(candidates, ranking.Candidate{
			Index:        i,
			Name:         p.DisplayTitle(),
			DegreeType:   p.DegreeType,
			Country:      p.Country,
			Language:     p.Language,
			UniversityID: p.UniversityID,
			ProgramID:    p.ID,
			Score:        res.Score,
		})
	}

	ranked := ranking.Rank(ctx, candidates, ranking.Filters{
		DegreeType: params.DegreeType,
		Country:    params.Country,
		Language:   params.Language,
	}, params.TopN)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]ProgramRecommendation, 0, len(ranked))
	for _, c := range ranked {
		p := programs[c.Index]
		res := results[c.Index]
		out = append(out, ProgramRecommendation{
			ProgramID:     p.ID,
			DegreeName:    p.DisplayTitle(),
			DegreeTitles:  p.Titles,
			University:    p.UniversityName,
			Country:       p.Country,
			Language:      p.Language,
			DegreeType:    p.DegreeType,
			Score:         res.Score,
			MatchedSkills: matching.Names(res.Matched),
		})
	}
	return out, nil
}

func (u *Personalized) recommendUnlinkedCourses(ctx context.Context, target []matching.Skill, params PersonalizedParams) ([]UnlinkedCourseRecommendation, error) {
	courses, err := u.courses.ListUnlinked(ctx, 0)
	if err != nil {
		u.logger.Printf("[Recommender] unlinked course listing failed: %v", err)
		return nil, ErrDataUnavailable
	}

	courseIDs := make([]int, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.ID)
	}
	skillsByCourse, err := u.skills.SkillsByCourseIDs(ctx, courseIDs)
	if err != nil {
		u.logger.Printf("[Recommender] course skills failed: %v", err)
		return nil, ErrDataUnavailable
	}

	results := make([]matching.Result, len(courses))
	candidates := make([]ranking.Candidate, 0, len(courses))
	for i, c := range courses {
		courseSkills := toMatchingCourseSkills(skillsByCourse[c.ID])
		if len(courseSkills) == 0 {
			continue
		}
		res, err := matching.Calculate(target, courseSkills)
		if err != nil {
			u.logger.Printf("[Recommender] scoring course %d failed: %v", c.ID, err)
			continue
		}
		results[i] = res
		candidates = append(candidates, ranking.Candidate{
			Index:        i,
			Name:         c.Name,
			Country:      c.Country,
			Language:     c.Language,
			UniversityID: c.UniversityID,
			Score:        res.Score,
		})
	}

	// Courses carry no degree_type attribute, so only the country and
	// language filters constrain this list.
	ranked := ranking.Rank(ctx, candidates, ranking.Filters{
		Country:  params.Country,
		Language: params.Language,
	}, params.TopN)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]UnlinkedCourseRecommendation, 0, len(ranked))
	for _, c := range ranked {
		course := courses[c.Index]
		res := results[c.Index]
		out = append(out, UnlinkedCourseRecommendation{
			CourseID:      course.ID,
			CourseName:    course.Name,
			University:    course.UniversityName,
			Country:       course.Country,
			Language:      course.Language,
			Score:         res.Score,
			MatchedSkills: matching.Names(res.Matched),
		})
	}
	return out, nil
}

func (u *Personalized) groupTargetSkills(ctx context.Context, target []matching.Skill) (map[string][]string, error) {
	ids := make([]int, 0, len(target))
	for _, s := range target {
		ids = append(ids, s.ID)
	}
	categories, err := u.skills.CategoriesForSkills(ctx, ids)
	if err != nil {
		u.logger.Printf("[Recommender] skill categories failed: %v", err)
		return nil, ErrDataUnavailable
	}

	grouped := make(map[string][]string)
	for _, s := range target {
		cats := categories[s.ID]
		if len(cats) == 0 {
			grouped["Other"] = append(grouped["Other"], s.Name)
			continue
		}
		for _, cat := range cats {
			grouped[cat] = append(grouped[cat], s.Name)
		}
	}
	for cat, names := range grouped {
		sort.Slice(names, func(i, j int) bool {
			return strings.ToLower(names[i]) < strings.ToLower(names[j])
		})
		grouped[cat] = dedupeStrings(names)
	}
	return grouped, nil
}

func toMatchingSkills(skills []repository.Skill) []matching.Skill {
	out := make([]matching.Skill, 0, len(skills))
	for _, s := range skills {
		out = append(out, matching.Skill{ID: s.ID, Name: s.Name})
	}
	return out
}

func toMatchingCourseSkills(skills []repository.CourseSkill) []matching.Skill {
	out := make([]matching.Skill, 0, len(skills))
	for _, cs := range skills {
		out = append(out, matching.Skill{ID: cs.Skill.ID, Name: cs.Skill.Name})
	}
	return out
}

func dedupeStrings(sorted []string) []string {
	out := sorted[:0]
	var prev string
	for i, s := range sorted {
		if i > 0 && strings.EqualFold(s, prev) {
			continue
		}
		out = append(out, s)
		prev = s
	}
	return out
}
