package dto

type ProposalSkillResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ProposalMetricsResponse struct {
	Frequency       float64 `json:"frequency"`
	Compatibility   float64 `json:"compatibility"`
	Novelty         float64 `json:"novelty"`
	SkillEnrichment int     `json:"skill_enrichment"`
}

type DegreeProposalResponse struct {
	Degree    string                  `json:"degree"`
	Score     float64                 `json:"score"`
	CourseIDs []int                   `json:"course_ids"`
	TopSkills []ProposalSkillResponse `json:"top_skills"`
	Metrics   ProposalMetricsResponse `json:"metrics"`
}
