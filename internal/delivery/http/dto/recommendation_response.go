package dto

type DegreeTitleResponse struct {
	Language string `json:"language"`
	Title    string `json:"title"`
}

type ProgramRecommendationResponse struct {
	ProgramID     int                   `json:"program_id"`
	DegreeName    string                `json:"degree_name"`
	DegreeTitles  []DegreeTitleResponse `json:"degree_titles"`
	University    string                `json:"university"`
	Country       string                `json:"country"`
	Language      string                `json:"language"`
	DegreeType    string                `json:"degree_type"`
	Score         float64               `json:"score"`
	MatchedSkills []string              `json:"matched_skills"`
}

type UnlinkedCourseRecommendationResponse struct {
	CourseID      int      `json:"course_id"`
	CourseName    string   `json:"course_name"`
	University    string   `json:"university"`
	Country       string   `json:"country"`
	Language      string   `json:"language"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
}

type PersonalizedRecommendationResponse struct {
	RecommendedPrograms        []ProgramRecommendationResponse        `json:"recommended_programs"`
	RecommendedUnlinkedCourses []UnlinkedCourseRecommendationResponse `json:"recommended_unlinked_courses"`
	SkillsByCategory           map[string][]string                    `json:"skills_by_category"`
}

type PersonalizedRecommendationRequest struct {
	TargetSkills []string `json:"target_skills"`
	SkillIDs     []int    `json:"skill_ids"`
	DegreeType   string   `json:"degree_type"`
	Country      string   `json:"country"`
	Language     string   `json:"language"`
	TopN         int      `json:"top_n"`
}
