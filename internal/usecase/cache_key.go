package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

type personalizedCacheKeyInput struct {
	SkillNames []string `json:"skill_names"`
	SkillIDs   []int    `json:"skill_ids"`
	DegreeType string   `json:"degree_type"`
	Country    string   `json:"country"`
	Language   string   `json:"language"`
	TopN       int      `json:"top_n"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// PersonalizedCacheKey hashes the request parameters so equivalent requests
// (same skills in any order, any casing) share one cache entry.
func PersonalizedCacheKey(params PersonalizedParams) string {
	names := make([]string, 0, len(params.TargetSkillNames))
	for _, n := range params.TargetSkillNames {
		n = normalizeCacheValue(n)
		if n == "" {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)

	ids := make([]int, 0, len(params.TargetSkillIDs))
	ids = append(ids, params.TargetSkillIDs...)
	sort.Ints(ids)

	in := personalizedCacheKeyInput{
		SkillNames: names,
		SkillIDs:   ids,
		DegreeType: normalizeCacheValue(params.DegreeType),
		Country:    normalizeCacheValue(params.Country),
		Language:   normalizeCacheValue(params.Language),
		TopN:       params.TopN,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "recommend:personalized:" + hex.EncodeToString(sum[:])
}
