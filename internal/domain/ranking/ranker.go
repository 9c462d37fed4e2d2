// Package ranking orders scored candidates for the recommendation
// assemblers: filter, drop zero scores, sort, truncate.
package ranking

import (
	"context"
	"sort"
	"strings"

	"degree-compass/internal/pkg/normalize"
)

// DefaultTopN bounds response size when the caller does not ask for a limit.
const DefaultTopN = 10

// Candidate carries the attributes the filters can match on plus the score.
// Index points back into whatever caller-side slice produced the candidate,
// so callers can recover their full records after ranking.
type Candidate struct {
	Index        int
	Name         string
	DegreeType   string
	Country      string
	Language     string
	UniversityID int
	ProgramID    int
	Score        float64
}

// Filters restricts candidates by exact, case-insensitive attribute equality.
// Zero values impose no constraint.
type Filters struct {
	DegreeType   string
	Country      string
	Language     string
	UniversityID int
	ProgramID    int
}

func (f Filters) matches(c Candidate) bool {
	if f.DegreeType != "" && !normalize.Equal(f.DegreeType, c.DegreeType) {
		return false
	}
	if f.Country != "" && !normalize.Equal(f.Country, c.Country) {
		return false
	}
	if f.Language != "" && !normalize.Equal(f.Language, c.Language) {
		return false
	}
	if f.UniversityID != 0 && f.UniversityID != c.UniversityID {
		return false
	}
	if f.ProgramID != 0 && f.ProgramID != c.ProgramID {
		return false
	}
	return true
}

// Rank filters, sorts and truncates candidates. Zero-score candidates are
// never recommended. Sort is score descending with name ascending as the tie
// break, so equal inputs always produce the same order. Returns an empty
// slice (not nil, not an error) when nothing survives.
//
// The ctx check lets an abandoned request stop early; the partial slice
// returned in that case is discarded by the caller along with ctx.Err().
func Rank(ctx context.Context, candidates []Candidate, filters Filters, topN int) []Candidate {
	if topN <= 0 {
		topN = DefaultTopN
	}

	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if ctx.Err() != nil {
			return kept
		}
		if c.Score <= 0 {
			continue
		}
		if !filters.matches(c) {
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return strings.ToLower(kept[i].Name) < strings.ToLower(kept[j].Name)
	})

	if len(kept) > topN {
		kept = kept[:topN]
	}
	return kept
}
