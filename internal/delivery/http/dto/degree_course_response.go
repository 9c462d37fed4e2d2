package dto

type DegreeCourseResponse struct {
	CourseID         int      `json:"course_id"`
	CourseName       string   `json:"course_name"`
	University       string   `json:"university"`
	Score            float64  `json:"score"`
	Description      string   `json:"description"`
	Hours            string   `json:"hours"`
	Elective         bool     `json:"elective"`
	NewSkills        []string `json:"new_skills"`
	CompatibleSkills []string `json:"compatible_skills"`
}

type DegreeCourseRecommendationResponse struct {
	Degree          string                 `json:"degree"`
	Recommendations []DegreeCourseResponse `json:"recommendations"`
	Info            string                 `json:"info,omitempty"`
}

type UniversityDegreeRecommendationsResponse struct {
	ProgramID       int                    `json:"program_id"`
	Degree          string                 `json:"degree"`
	Recommendations []DegreeCourseResponse `json:"recommendations"`
	Info            string                 `json:"info,omitempty"`
}
