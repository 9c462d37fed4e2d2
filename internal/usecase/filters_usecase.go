package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"degree-compass/internal/pkg/normalize"
)

const filtersCacheKey = "filters:catalog"

// FilterOptions is the merged set of values the catalog can be filtered by.
type FilterOptions struct {
	DegreeTypes []string `json:"degree_types"`
	Countries   []string `json:"countries"`
	Languages   []string `json:"languages"`
}

type FiltersUsecase interface {
	Options(ctx context.Context) (FilterOptions, error)
}

type FiltersProgramRepo interface {
	ListDegreeTypes(ctx context.Context) ([]string, error)
	ListLanguages(ctx context.Context) ([]string, error)
}

type FiltersCourseRepo interface {
	ListLanguages(ctx context.Context) ([]string, error)
}

type FiltersUniversityRepo interface {
	ListCountries(ctx context.Context) ([]string, error)
}

type Filters struct {
	programs     FiltersProgramRepo
	courses      FiltersCourseRepo
	universities FiltersUniversityRepo
	cache        RecommendationCache
	ttl          time.Duration
	logger       *log.Logger
}

func NewFiltersUsecase(programs FiltersProgramRepo, courses FiltersCourseRepo, universities FiltersUniversityRepo, cache RecommendationCache, ttl time.Duration, logger *log.Logger) *Filters {
	if logger == nil {
		logger = log.Default()
	}
	return &Filters{
		programs:     programs,
		courses:      courses,
		universities: universities,
		cache:        cache,
		ttl:          ttl,
		logger:       logger,
	}
}

func (u *Filters) Options(ctx context.Context) (FilterOptions, error) {
	if u.cache != nil {
		var cached FilterOptions
		ok, err := u.cache.GetJSON(ctx, filtersCacheKey, &cached)
		if err != nil {
			u.logger.Printf("[Filters] cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	degreeTypes, err := u.programs.ListDegreeTypes(ctx)
	if err != nil {
		u.logger.Printf("[Filters] degree types failed: %v", err)
		return FilterOptions{}, ErrDataUnavailable
	}
	countries, err := u.universities.ListCountries(ctx)
	if err != nil {
		u.logger.Printf("[Filters] countries failed: %v", err)
		return FilterOptions{}, ErrDataUnavailable
	}
	programLangs, err := u.programs.ListLanguages(ctx)
	if err != nil {
		u.logger.Printf("[Filters] program languages failed: %v", err)
		return FilterOptions{}, ErrDataUnavailable
	}
	courseLangs, err := u.courses.ListLanguages(ctx)
	if err != nil {
		u.logger.Printf("[Filters] course languages failed: %v", err)
		return FilterOptions{}, ErrDataUnavailable
	}

	opts := FilterOptions{
		DegreeTypes: dedupeSorted(degreeTypes),
		Countries:   dedupeSorted(countries),
		Languages:   mergeLanguages(programLangs, courseLangs),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, filtersCacheKey, opts, u.ttl); err != nil {
			u.logger.Printf("[Filters] cache write failed: %v", err)
		}
	}
	return opts, nil
}

// mergeLanguages merges the language values of both catalog sides. Values may
// arrive as comma-separated lists ("English, German") and are split into
// individual entries before deduplication.
func mergeLanguages(lists ...[]string) []string {
	var flat []string
	for _, list := range lists {
		for _, v := range list {
			for _, part := range strings.Split(v, ",") {
				flat = append(flat, strings.TrimSpace(part))
			}
		}
	}
	return dedupeSorted(flat)
}

func dedupeSorted(values []string) []string {
	seen := map[string]string{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := normalize.SkillName(v)
		if _, ok := seen[key]; !ok {
			seen[key] = v
		}
	}
	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
