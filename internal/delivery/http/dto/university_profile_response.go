package dto

type UniversityProfileResponse struct {
	Skills  []string `json:"skills"`
	Courses []string `json:"courses"`
	Degrees []string `json:"degrees"`
}

type SimilarUniversityResponse struct {
	UniversityID    int     `json:"university_id"`
	Name            string  `json:"name"`
	Country         string  `json:"country"`
	SimilarityScore float64 `json:"similarity_score"`
}

type SimilarUniversitiesResponse struct {
	TargetUniversityID  int                         `json:"target_university_id"`
	SimilarUniversities []SimilarUniversityResponse `json:"similar_universities"`
}
