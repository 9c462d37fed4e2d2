package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"degree-compass/internal/repository"
)

const (
	fallbackSkillCategory   = "No Category"
	fallbackSkillOccupation = "Other"
)

// SkillGroup is a named bucket of skill names, sorted case-insensitively.
type SkillGroup struct {
	Group  string
	Skills []string
}

type SkillGroupUsecase interface {
	GroupedByCategory(ctx context.Context) ([]SkillGroup, error)
	GroupedByOccupation(ctx context.Context) ([]SkillGroup, error)
}

type SkillGroupRepo interface {
	ListGroupedByCategory(ctx context.Context) ([]repository.CategorySkill, error)
	ListGroupedByOccupation(ctx context.Context) ([]repository.OccupationSkill, error)
}

type SkillGroups struct {
	skills SkillGroupRepo
	logger *log.Logger
}

func NewSkillGroupUsecase(skills SkillGroupRepo, logger *log.Logger) *SkillGroups {
	if logger == nil {
		logger = log.Default()
	}
	return &SkillGroups{skills: skills, logger: logger}
}

func (u *SkillGroups) GroupedByCategory(ctx context.Context) ([]SkillGroup, error) {
	rows, err := u.skills.ListGroupedByCategory(ctx)
	if err != nil {
		u.logger.Printf("[Skills] category grouping failed: %v", err)
		return nil, ErrDataUnavailable
	}

	buckets := map[string]map[string]struct{}{}
	for _, row := range rows {
		group := strings.TrimSpace(row.Category)
		if group == "" {
			group = fallbackSkillCategory
		}
		addToBucket(buckets, group, row.SkillName)
	}
	return flattenGroups(buckets), nil
}

func (u *SkillGroups) GroupedByOccupation(ctx context.Context) ([]SkillGroup, error) {
	rows, err := u.skills.ListGroupedByOccupation(ctx)
	if err != nil {
		u.logger.Printf("[Skills] occupation grouping failed: %v", err)
		return nil, ErrDataUnavailable
	}

	buckets := map[string]map[string]struct{}{}
	for _, row := range rows {
		group := strings.TrimSpace(row.Occupation)
		if group == "" {
			group = fallbackSkillOccupation
		}
		addToBucket(buckets, group, row.SkillName)
	}
	return flattenGroups(buckets), nil
}

func addToBucket(buckets map[string]map[string]struct{}, group, skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	if buckets[group] == nil {
		buckets[group] = map[string]struct{}{}
	}
	buckets[group][skill] = struct{}{}
}

func flattenGroups(buckets map[string]map[string]struct{}) []SkillGroup {
	out := make([]SkillGroup, 0, len(buckets))
	for group, members := range buckets {
		skills := make([]string, 0, len(members))
		for s := range members {
			skills = append(skills, s)
		}
		sort.Slice(skills, func(i, j int) bool {
			return strings.ToLower(skills[i]) < strings.ToLower(skills[j])
		})
		out = append(out, SkillGroup{Group: group, Skills: skills})
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Group) < strings.ToLower(out[j].Group)
	})
	return out
}
