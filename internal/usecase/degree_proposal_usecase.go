package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"degree-compass/internal/domain/ranking"
	"degree-compass/internal/repository"
)

// Gap analysis: cluster a university's unlinked courses by the skill
// category they would newly bring in, and score each cluster as a candidate
// new degree offering.

// Weight profile for the composite proposal score. Frequency dominates:
// a category backed by many unlinked courses is a stronger degree seed than
// a highly novel one-off.
const (
	proposalWeightFrequency     = 0.30
	proposalWeightNovelty       = 0.25
	proposalWeightCompatibility = 0.20
	proposalWeightEnrichment    = 0.15
)

// fallbackCategory collects new skills whose course link carries no
// category tags.
const fallbackCategory = "General"

type ProposalSkill struct {
	Name  string
	Count int
}

type ProposalMetrics struct {
	// Frequency is the fraction of the university's unlinked courses that
	// feed this cluster; Compatibility the mean overlap of those courses
	// with the university's offered-program skill footprint; Novelty its
	// complement; SkillEnrichment the count of distinct skills the cluster
	// would newly introduce. All but SkillEnrichment live in [0, 1].
	Frequency       float64
	Compatibility   float64
	Novelty         float64
	SkillEnrichment int
}

type DegreeProposal struct {
	Degree    string
	Score     float64
	CourseIDs []int
	TopSkills []ProposalSkill
	Metrics   ProposalMetrics
}

type DegreeProposalUsecase interface {
	ProposeDegrees(ctx context.Context, universityID, topN int) ([]DegreeProposal, error)
}

type DegreeProposalUniversityRepo interface {
	ExistsByID(ctx context.Context, id int) (bool, error)
}

type DegreeProposalCourseRepo interface {
	ListUnlinked(ctx context.Context, universityID int) ([]repository.Course, error)
}

type DegreeProposalSkillRepo interface {
	SkillsByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]repository.CourseSkill, error)
	UniversityProgramFootprint(ctx context.Context, universityID int) ([]repository.Skill, error)
}

type DegreeProposalEngine struct {
	universities DegreeProposalUniversityRepo
	courses      DegreeProposalCourseRepo
	skills       DegreeProposalSkillRepo
	logger       *log.Logger
}

func NewDegreeProposalUsecase(
	universities DegreeProposalUniversityRepo,
	courses DegreeProposalCourseRepo,
	skills DegreeProposalSkillRepo,
	logger *log.Logger,
) *DegreeProposalEngine {
	if logger == nil {
		logger = log.Default()
	}
	return &DegreeProposalEngine{universities: universities, courses: courses, skills: skills, logger: logger}
}

type proposalCourse struct {
	course        repository.Course
	newSkills     []repository.Skill
	compatibility float64
}

func (u *DegreeProposalEngine) ProposeDegrees(ctx context.Context, universityID, topN int) ([]DegreeProposal, error) {
	exists, err := u.universities.ExistsByID(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Recommender] university lookup failed: %v", err)
		return nil, ErrDataUnavailable
	}
	if !exists {
		return []DegreeProposal{}, nil
	}

	unlinked, err := u.courses.ListUnlinked(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Recommender] unlinked course listing failed: %v", err)
		return nil, ErrDataUnavailable
	}
	if len(unlinked) == 0 {
		return []DegreeProposal{}, nil
	}

	footprintSkills, err := u.skills.UniversityProgramFootprint(ctx, universityID)
	if err != nil {
		u.logger.Printf("[Recommender] program footprint failed: %v", err)
		return nil, ErrDataUnavailable
	}
	footprint := make(map[int]struct{}, len(footprintSkills))
	for _, s := range footprintSkills {
		footprint[s.ID] = struct{}{}
	}

	courseIDs := make([]int, 0, len(unlinked))
	for _, c := range unlinked {
		courseIDs = append(courseIDs, c.ID)
	}
	skillsByCourse, err := u.skills.SkillsByCourseIDs(ctx, courseIDs)
	if err != nil {
		u.logger.Printf("[Recommender] course skills failed: %v", err)
		return nil, ErrDataUnavailable
	}

	clusters := map[string][]proposalCourse{}
	for _, c := range unlinked {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		links := skillsByCourse[c.ID]
		if len(links) == 0 {
			continue
		}

		pc := proposalCourse{course: c}
		overlap := 0
		categoryVotes := map[string]int{}
		for _, cs := range links {
			if _, held := footprint[cs.Skill.ID]; held {
				overlap++
				continue
			}
			pc.newSkills = append(pc.newSkills, cs.Skill)
			if len(cs.Categories) == 0 {
				categoryVotes[fallbackCategory]++
				continue
			}
			for _, cat := range cs.Categories {
				categoryVotes[cat]++
			}
		}
		pc.compatibility = float64(overlap) / float64(len(links))

		// A course whose skills are all already offered proposes nothing new.
		if len(pc.newSkills) == 0 {
			continue
		}

		cluster := salientCategory(categoryVotes)
		clusters[cluster] = append(clusters[cluster], pc)
	}

	if len(clusters) == 0 {
		return []DegreeProposal{}, nil
	}

	proposals := make([]DegreeProposal, 0, len(clusters))
	maxEnrichment := 0
	for category, members := range clusters {
		distinctNew := map[int]string{}
		skillCounts := map[string]int{}
		compatSum := 0.0
		ids := make([]int, 0, len(members))
		for _, pc := range members {
			ids = append(ids, pc.course.ID)
			compatSum += pc.compatibility
			for _, s := range pc.newSkills {
				distinctNew[s.ID] = s.Name
				skillCounts[s.Name]++
			}
		}
		sort.Ints(ids)

		metrics := ProposalMetrics{
			Frequency:       float64(len(members)) / float64(len(unlinked)),
			Compatibility:   compatSum / float64(len(members)),
			SkillEnrichment: len(distinctNew),
		}
		metrics.Novelty = 1 - metrics.Compatibility

		proposals = append(proposals, DegreeProposal{
			Degree:    category,
			CourseIDs: ids,
			TopSkills: rankProposalSkills(skillCounts),
			Metrics:   metrics,
		})
		if metrics.SkillEnrichment > maxEnrichment {
			maxEnrichment = metrics.SkillEnrichment
		}
	}

	candidates := make([]ranking.Candidate, 0, len(proposals))
	for i := range proposals {
		p := &proposals[i]
		enrichment := 0.0
		if maxEnrichment > 0 {
			enrichment = float64(p.Metrics.SkillEnrichment) / float64(maxEnrichment)
		}
		p.Score = proposalWeightFrequency*p.Metrics.Frequency +
			proposalWeightNovelty*p.Metrics.Novelty +
			proposalWeightCompatibility*p.Metrics.Compatibility +
			proposalWeightEnrichment*enrichment
		candidates = append(candidates, ranking.Candidate{Index: i, Name: p.Degree, Score: p.Score})
	}

	ranked := ranking.Rank(ctx, candidates, ranking.Filters{}, topN)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]DegreeProposal, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, proposals[c.Index])
	}
	return out, nil
}

// salientCategory picks the category with the most new-skill votes; ties go
// to the lexicographically smallest name so clustering is deterministic.
func salientCategory(votes map[string]int) string {
	best := ""
	bestCount := -1
	for cat, n := range votes {
		if n > bestCount || (n == bestCount && cat < best) {
			best = cat
			bestCount = n
		}
	}
	if best == "" {
		return fallbackCategory
	}
	return best
}

func rankProposalSkills(counts map[string]int) []ProposalSkill {
	out := make([]ProposalSkill, 0, len(counts))
	for name, n := range counts {
		out = append(out, ProposalSkill{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
