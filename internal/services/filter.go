package services

import (
	"strings"

	"dayplan-service/internal/domain"
)

// filterCandidates narrows the point-of-interest universe to the subset
// eligible for selection: recently visited places are excluded, at least one
// requested interest must match when interests were given, and the budget
// tier's exclusion policy applies.
func filterCandidates(in domain.PlanInput) []*domain.POI {
	excluded := make(map[string]struct{}, len(in.ExcludeIDs))
	for _, id := range in.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	out := make([]*domain.POI, 0, len(in.POIs))
	for _, p := range in.POIs {
		if _, ok := excluded[p.ID]; ok {
			continue
		}
		if len(in.Interests) > 0 && interestMatchCount(p, in.Interests) == 0 {
			continue
		}
		if budgetExcludes(p, in.Budget) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// budgetExcludes applies the budget-tier exclusion policy: the budget tier
// drops anything tagged as luxury, the mid tier drops only ultra-luxury, and
// splurge drops nothing.
func budgetExcludes(p *domain.POI, tier domain.BudgetTier) bool {
	switch tier {
	case domain.BudgetLow:
		return anyTagContains(p, "luxury", "fine-dining", "upscale")
	case domain.BudgetMid:
		return anyTagContains(p, "ultra-luxury")
	default:
		return false
	}
}

// anyTagContains reports whether any tag contains one of the tokens as a
// substring. Tags are curated lowercase, so no folding is needed here.
func anyTagContains(p *domain.POI, tokens ...string) bool {
	for _, tag := range p.Tags {
		for _, tok := range tokens {
			if strings.Contains(tag, tok) {
				return true
			}
		}
	}
	return false
}
