package dto

type ElectiveRecommendationRequest struct {
	ProgramID    int      `json:"program_id"`
	TargetSkills []string `json:"target_skills"`
	SkillIDs     []int    `json:"skill_ids"`
	TopN         int      `json:"top_n"`
}

type ElectiveCourseResponse struct {
	CourseID       int      `json:"course_id"`
	CourseName     string   `json:"course_name"`
	University     string   `json:"university"`
	Score          float64  `json:"score"`
	Skills         []string `json:"skills"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Reason         string   `json:"reason"`
}

type ElectiveRecommendationResponse struct {
	Recommended []ElectiveCourseResponse `json:"recommended"`
	Considered  int                      `json:"considered"`
}

type ElectiveSkillResponse struct {
	SkillID   int    `json:"skill_id"`
	SkillName string `json:"skill_name"`
}
