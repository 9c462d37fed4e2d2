package dto

type UniversityResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type UniversityDegreeResponse struct {
	ProgramID         int                   `json:"program_id"`
	DegreeTitles      []DegreeTitleResponse `json:"degree_titles"`
	DegreeType        string                `json:"degree_type"`
	Language          string                `json:"language"`
	DurationSemesters string                `json:"duration_semesters"`
	TotalECTS         string                `json:"total_ects"`
	CourseCount       int                   `json:"course_count"`
}

type UniversityMetricsResponse struct {
	TotalPrograms    int `json:"total_programs"`
	RecognizedSkills int `json:"recognized_skills"`
}

type SkillGroupResponse struct {
	Group  string   `json:"group"`
	Skills []string `json:"skills"`
}
