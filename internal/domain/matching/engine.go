// Package matching implements the skill-overlap scoring at the center of
// every recommendation endpoint. It is a pure package: callers load target
// and candidate skill sets from the catalog and get back a score plus the
// matched/compatible/new partition of the candidate's skills.
package matching

import (
	"errors"
	"sort"
	"strings"
)

type Skill struct {
	ID   int
	Name string
}

// Result describes how one candidate's skill set relates to the target set.
//
// Matched lists the target skills the candidate covers. Compatible and New
// partition the candidate's own skill set: Compatible are skills also in the
// target set, New are skills the candidate would add. The partition is
// disjoint and together reproduces the candidate set exactly.
type Result struct {
	Score      float64
	Matched    []Skill
	Compatible []Skill
	New        []Skill
}

// ErrNoTargetSkills is returned when the caller supplies no target skills.
// Scoring against an empty target would make every candidate a degenerate
// zero, so the condition is rejected instead of silently producing an empty
// "100% no-match" result set.
var ErrNoTargetSkills = errors.New("no target skills")

// Calculate scores a candidate skill set against the target set.
// Score = |target ∩ candidate| / |target|, clamped to [0, 1].
// Duplicate IDs within either set are collapsed before scoring.
func Calculate(target, candidate []Skill) (Result, error) {
	targetByID := dedupe(target)
	if len(targetByID) == 0 {
		return Result{}, ErrNoTargetSkills
	}
	candidateByID := dedupe(candidate)

	matched := make([]Skill, 0, len(targetByID))
	compatible := make([]Skill, 0, len(candidateByID))
	newSkills := make([]Skill, 0, len(candidateByID))

	for id, s := range candidateByID {
		if _, ok := targetByID[id]; ok {
			compatible = append(compatible, s)
		} else {
			newSkills = append(newSkills, s)
		}
	}
	for id, s := range targetByID {
		if _, ok := candidateByID[id]; ok {
			matched = append(matched, s)
		}
	}

	score := float64(len(matched)) / float64(len(targetByID))
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	sortByName(matched)
	sortByName(compatible)
	sortByName(newSkills)

	return Result{
		Score:      score,
		Matched:    matched,
		Compatible: compatible,
		New:        newSkills,
	}, nil
}

// Names extracts the skill names from a result list, preserving order.
func Names(skills []Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}

func dedupe(skills []Skill) map[int]Skill {
	out := make(map[int]Skill, len(skills))
	for _, s := range skills {
		if s.ID == 0 {
			continue
		}
		if _, ok := out[s.ID]; !ok {
			out[s.ID] = s
		}
	}
	return out
}

func sortByName(skills []Skill) {
	sort.Slice(skills, func(i, j int) bool {
		a := strings.ToLower(skills[i].Name)
		b := strings.ToLower(skills[j].Name)
		if a == b {
			return skills[i].ID < skills[j].ID
		}
		return a < b
	})
}
