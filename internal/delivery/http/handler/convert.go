package handler

import (
	"degree-compass/internal/delivery/http/dto"
	"degree-compass/internal/repository"
	"degree-compass/internal/usecase"
)

func toDegreeTitleResponses(titles []repository.DegreeTitle) []dto.DegreeTitleResponse {
	out := make([]dto.DegreeTitleResponse, 0, len(titles))
	for _, t := range titles {
		out = append(out, dto.DegreeTitleResponse{Language: t.Language, Title: t.Title})
	}
	return out
}

func toPersonalizedResponse(res usecase.PersonalizedResult) dto.PersonalizedRecommendationResponse {
	out := dto.PersonalizedRecommendationResponse{
		RecommendedPrograms:        make([]dto.ProgramRecommendationResponse, 0, len(res.RecommendedPrograms)),
		RecommendedUnlinkedCourses: make([]dto.UnlinkedCourseRecommendationResponse, 0, len(res.RecommendedUnlinkedCourses)),
		SkillsByCategory:           res.SkillsByCategory,
	}
	if out.SkillsByCategory == nil {
		out.SkillsByCategory = map[string][]string{}
	}
	for _, p := range res.RecommendedPrograms {
		out.RecommendedPrograms = append(out.RecommendedPrograms, dto.ProgramRecommendationResponse{
			ProgramID:     p.ProgramID,
			DegreeName:    p.DegreeName,
			DegreeTitles:  toDegreeTitleResponses(p.DegreeTitles),
			University:    p.University,
			Country:       p.Country,
			Language:      p.Language,
			DegreeType:    p.DegreeType,
			Score:         p.Score,
			MatchedSkills: emptyIfNil(p.MatchedSkills),
		})
	}
	for _, cr := range res.RecommendedUnlinkedCourses {
		out.RecommendedUnlinkedCourses = append(out.RecommendedUnlinkedCourses, dto.UnlinkedCourseRecommendationResponse{
			CourseID:      cr.CourseID,
			CourseName:    cr.CourseName,
			University:    cr.University,
			Country:       cr.Country,
			Language:      cr.Language,
			Score:         cr.Score,
			MatchedSkills: emptyIfNil(cr.MatchedSkills),
		})
	}
	return out
}

func toDegreeCourseResponses(recs []usecase.DegreeCourseRecommendation) []dto.DegreeCourseResponse {
	out := make([]dto.DegreeCourseResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.DegreeCourseResponse{
			CourseID:         r.CourseID,
			CourseName:       r.CourseName,
			University:       r.University,
			Score:            r.Score,
			Description:      r.Description,
			Hours:            r.Hours,
			Elective:         r.Elective,
			NewSkills:        emptyIfNil(r.NewSkills),
			CompatibleSkills: emptyIfNil(r.CompatibleSkills),
		})
	}
	return out
}

// Collections in JSON payloads are always present, never null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
