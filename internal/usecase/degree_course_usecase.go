package usecase

import (
	"context"
	"log"

	"degree-compass/internal/domain/matching"
	"degree-compass/internal/domain/ranking"
	"degree-compass/internal/pkg/normalize"
	"degree-compass/internal/repository"
)

// Cross-university analogy: given a degree name, collect the skill footprint
// of every catalog program declaring that title and use it as the target set
// for scoring a university's courses (or, for a brand-new degree, the whole
// catalog's courses).

const (
	InfoNoComparableDegrees = "No comparable degree programs were found in the catalog."
)

type DegreeCourseRecommendation struct {
	CourseID         int
	CourseName       string
	University       string
	Score            float64
	Description      string
	Hours            string
	Elective         bool
	NewSkills        []string
	CompatibleSkills []string
}

type DegreeCourseResult struct {
	Degree          string
	Recommendations []DegreeCourseRecommendation
	// Info is set when the result is empty for a reason worth showing the
	// caller, e.g. no comparable degree exists anywhere in the catalog.
	Info string
}

type UniversityDegreeRecommendations struct {
	ProgramID       int
	Degree          string
	Recommendations []DegreeCourseRecommendation
	Info            string
}

type DegreeCourseUsecase interface {
	RecommendForDegree(ctx context.Context, universityID int, degreeName string, topN int) (DegreeCourseResult, error)
	RecommendForNewDegree(ctx context.Context, degreeName string, topN int) (DegreeCourseResult, error)
	RecommendForUniversity(ctx context.Context, universityID, topN int) ([]UniversityDegreeRecommendations, error)
}

type DegreeCourseProgramRepo interface {
	ListPrograms(ctx context.Context) ([]repository.Program, error)
	ListByUniversity(ctx context.Context, universityID int) ([]repository.Program, error)
}

type DegreeCourseCourseRepo interface {
	ListByUniversity(ctx context.Context, universityID int) ([]repository.Course, error)
	ListLinked(ctx context.Context) ([]repository.Course, error)
	ListUnlinked(ctx context.Context, universityID int) ([]repository.Course, error)
}

type DegreeCourseSkillRepo interface {
	ProgramFootprints(ctx context.Context, programIDs []int) (map[int][]repository.Skill, error)
	SkillsByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]repository.CourseSkill, error)
}

type DegreeCourse struct {
	programs DegreeCourseProgramRepo
	courses  DegreeCourseCourseRepo
	skills   DegreeCourseSkillRepo
	logger   *log.Logger
}

func NewDegreeCourseUsecase(programs DegreeCourseProgramRepo, courses DegreeCourseCourseRepo, skills DegreeCourseSkillRepo, logger *log.Logger) *DegreeCourse {
	if logger == nil {
		logger = log.Default()
	}
	return &DegreeCourse{programs: programs, courses: courses, skills: skills, logger: logger}
}

// degreeProfile is one declared title of one program together with the
// program's skill footprint.
type degreeProfile struct {
	universityID int
	programID    int
	title        string
	normTitle    string
	skills       []repository.Skill
}

func (u *DegreeCourse) RecommendForDegree(ctx context.Context, universityID int, degreeName string, topN int) (DegreeCourseResult, error) {
	norm := normalize.DegreeTitle(degreeName)
	if norm == "" {
		return DegreeCourseResult{}, ErrInvalidInput
	}

	profiles, err := u.buildDegreeProfiles(ctx)
	if err != nil {
		return DegreeCourseResult{}, err
	}

	// The analogy must come from elsewhere: the target university's own
	// declaration of the degree carries no new information.
	target := footprintForTitle(profiles, norm, universityID)
	if len(target) == 0 {
		return DegreeCourseResult{
			Degree:          degreeName,
			Recommendations: []DegreeCourseRecommendation{},
			Info:            InfoNoComparableDegrees,
		}, nil
	}

	candidates, err := u.courses.ListByUniversity(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Recommender] course listing failed: %v", err)
		return DegreeCourseResult{}, ErrDataUnavailable
	}

	recs, err := u.scoreCourses(ctx, target, candidates, nil, topN)
	if err != nil {
		return DegreeCourseResult{}, err
	}
	return DegreeCourseResult{Degree: degreeName, Recommendations: recs}, nil
}

func (u *DegreeCourse) RecommendForNewDegree(ctx context.Context, degreeName string, topN int) (DegreeCourseResult, error) {
	norm := normalize.DegreeTitle(degreeName)
	if norm == "" {
		return DegreeCourseResult{}, ErrInvalidInput
	}

	profiles, err := u.buildDegreeProfiles(ctx)
	if err != nil {
		return DegreeCourseResult{}, err
	}

	target := footprintForTitle(profiles, norm, 0)
	if len(target) == 0 {
		return DegreeCourseResult{
			Degree:          degreeName,
			Recommendations: []DegreeCourseRecommendation{},
			Info:            InfoNoComparableDegrees,
		}, nil
	}

	linked, err := u.courses.ListLinked(ctx)
	if err != nil {
		u.logger.Printf("[Recommender] course listing failed: %v", err)
		return DegreeCourseResult{}, ErrDataUnavailable
	}
	unlinked, err := u.courses.ListUnlinked(ctx, 0)
	if err != nil {
		u.logger.Printf("[Recommender] course listing failed: %v", err)
		return DegreeCourseResult{}, ErrDataUnavailable
	}

	recs, err := u.scoreCourses(ctx, target, append(linked, unlinked...), nil, topN)
	if err != nil {
		return DegreeCourseResult{}, err
	}
	return DegreeCourseResult{Degree: degreeName, Recommendations: recs}, nil
}

func (u *DegreeCourse) RecommendForUniversity(ctx context.Context, universityID, topN int) ([]UniversityDegreeRecommendations, error) {
	programs, err := u.programs.ListByUniversity(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Recommender] program listing failed: %v", err)
		return nil, ErrDataUnavailable
	}
	if len(programs) == 0 {
		return []UniversityDegreeRecommendations{}, nil
	}

	profiles, err := u.buildDegreeProfiles(ctx)
	if err != nil {
		return nil, err
	}

	universityCourses, err := u.courses.ListByUniversity(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Recommender] course listing failed: %v", err)
		return nil, ErrDataUnavailable
	}

	out := make([]UniversityDegreeRecommendations, 0, len(programs))
	for _, p := range programs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		title := p.DisplayTitle()
		norm := normalize.DegreeTitle(title)
		if norm == "" {
			continue
		}

		entry := UniversityDegreeRecommendations{ProgramID: p.ID, Degree: title}
		target := footprintForTitle(profiles, norm, universityID)
		if len(target) == 0 {
			entry.Recommendations = []DegreeCourseRecommendation{}
			entry.Info = InfoNoComparableDegrees
			out = append(out, entry)
			continue
		}

		// Courses already inside the program are not suggestions for it.
		exclude := map[int]struct{}{}
		for _, c := range universityCourses {
			if c.ProgramID == p.ID {
				exclude[c.ID] = struct{}{}
			}
		}

		recs, err := u.scoreCourses(ctx, target, universityCourses, exclude, topN)
		if err != nil {
			return nil, err
		}
		entry.Recommendations = recs
		out = append(out, entry)
	}
	return out, nil
}

func (u *DegreeCourse) buildDegreeProfiles(ctx context.Context) ([]degreeProfile, error) {
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

	profiles := make([]degreeProfile, 0, len(programs))
	for _, p := range programs {
		skills := footprints[p.ID]
		if len(skills) == 0 {
			continue
		}
		for _, t := range p.Titles {
			norm := normalize.DegreeTitle(t.Title)
			if norm == "" {
				continue
			}
			profiles = append(profiles, degreeProfile{
				universityID: p.UniversityID,
				programID:    p.ID,
				title:        t.Title,
				normTitle:    norm,
				skills:       skills,
			})
		}
	}
	return profiles, nil
}

// footprintForTitle unions the skills of every profile matching the
// normalized title. excludeUniversityID of 0 keeps all universities.
func footprintForTitle(profiles []degreeProfile, normTitle string, excludeUniversityID int) []matching.Skill {
	seen := map[int]string{}
	for _, p := range profiles {
		if p.normTitle != normTitle {
			continue
		}
		if excludeUniversityID != 0 && p.universityID == excludeUniversityID {
			continue
		}
		for _, s := range p.skills {
			seen[s.ID] = s.Name
		}
	}
	out := make([]matching.Skill, 0, len(seen))
	for id, name := range seen {
		out = append(out, matching.Skill{ID: id, Name: name})
	}
	return out
}

func (u *DegreeCourse) scoreCourses(
	ctx context.Context,
	target []matching.Skill,
	courses []repository.Course,
	exclude map[int]struct{},
	topN int,
) ([]DegreeCourseRecommendation, error) {
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
		if _, skip := exclude[c.ID]; skip {
			continue
		}
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
			ProgramID:    c.ProgramID,
			Score:        res.Score,
		})
	}

	ranked := ranking.Rank(ctx, candidates, ranking.Filters{}, topN)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]DegreeCourseRecommendation, 0, len(ranked))
	for _, cand := range ranked {
		course := courses[cand.Index]
		res := results[cand.Index]
		out = append(out, DegreeCourseRecommendation{
			CourseID:         course.ID,
			CourseName:       course.Name,
			University:       course.UniversityName,
			Score:            res.Score,
			Description:      course.Description,
			Hours:            course.Hours,
			Elective:         course.Elective,
			NewSkills:        matching.Names(res.New),
			CompatibleSkills: matching.Names(res.Compatible),
		})
	}
	return out, nil
}
