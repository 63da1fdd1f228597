// Package views contains the pure derived-view builders: skill filtering,
// conversation grouping, calendar bucketing, and profile aggregation. Every
// function is side-effect free, takes store snapshots as plain slices, and
// maps empty input to empty output.
package views

import (
	"strings"

	"github.com/localhood/skillswap/internal/domain/model"
)

// Wildcard matches any category or type in a SkillFilter.
const Wildcard = "all"

// SkillFilter holds the three independent browse criteria. Empty values and
// Wildcard are equivalent: the criterion always matches.
type SkillFilter struct {
	// Query is matched case-insensitively as a substring of the title or
	// the description.
	Query string
	// Category must match exactly unless empty or Wildcard.
	Category string
	// Type must match exactly unless empty or Wildcard.
	Type string
}

// FilterSkills returns the subsequence of skills satisfying all three
// criteria, in input order. The criteria are independent predicates, so
// applying them in any order yields the same result.
func FilterSkills(skills []model.Skill, f SkillFilter) []model.Skill {
	out := make([]model.Skill, 0, len(skills))
	query := strings.ToLower(f.Query)
	for _, s := range skills {
		if !matchesQuery(s, query) {
			continue
		}
		if !wildcardOr(f.Category, s.Category) {
			continue
		}
		if !wildcardOr(f.Type, string(s.Type)) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesQuery(s model.Skill, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), query) ||
		strings.Contains(strings.ToLower(s.Description), query)
}

func wildcardOr(want, got string) bool {
	return want == "" || want == Wildcard || want == got
}
