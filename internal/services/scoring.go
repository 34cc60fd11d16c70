package services

import (
	"strings"

	"dayplan-service/internal/domain"
)

// Static interest lookup tables. Constructed once; never mutated at runtime.
// Categories are exact matches, tokens are substring matches against tags and
// the lowercased place name.
var interestCategories = map[domain.Interest][]string{
	domain.InterestHistory:      {"museum", "historic_site", "landmark"},
	domain.InterestFood:         {"restaurant", "cafe", "market"},
	domain.InterestShopping:     {"market"},
	domain.InterestNature:       {"garden", "nature"},
	domain.InterestCulture:      {"museum", "garden", "neighborhood"},
	domain.InterestArchitecture: {"historic_site", "landmark"},
	domain.InterestRelaxation:   {"garden", "cafe", "nature"},
	domain.InterestNightlife:    {},
}

var interestTokens = map[domain.Interest][]string{
	domain.InterestHistory:      {"castle", "shrine", "temple", "historic", "heritage", "museum"},
	domain.InterestFood:         {"food", "ramen", "sushi", "eat", "cuisine", "bistro", "bakery"},
	domain.InterestShopping:     {"shop", "market", "mall", "boutique", "bazaar"},
	domain.InterestNature:       {"park", "garden", "river", "mountain", "forest", "trail"},
	domain.InterestCulture:      {"art", "gallery", "culture", "theater", "craft"},
	domain.InterestArchitecture: {"tower", "bridge", "cathedral", "palace", "architecture"},
	domain.InterestRelaxation:   {"spa", "onsen", "tea", "quiet", "relax"},
	domain.InterestNightlife:    {"bar", "club", "izakaya", "night", "pub"},
}

// Scoring weights.
const (
	interestWeight    = 10.0
	trapHighPenalty   = -5.0
	trapMixedPenalty  = -2.0
	bestTimeBonus     = 5.0
	diversityBonus    = 3.0
	mealSlotBonus     = 12.0
	travelCostPerMin  = 0.35
	budgetFitBonus    = 2.0
	budgetMissPenalty = -4.0
	splurgeFitBonus   = 3.0
)

// interestMatchCount counts how many of the requested interests a place
// matches. With no requested interests every place counts as a single neutral
// match. Duplicate requests are counted once.
func interestMatchCount(p *domain.POI, interests []domain.Interest) int {
	if len(interests) == 0 {
		return 1
	}

	count := 0
	seen := make(map[domain.Interest]struct{}, len(interests))
	for _, interest := range interests {
		if _, ok := seen[interest]; ok {
			continue
		}
		seen[interest] = struct{}{}
		if matchesInterest(p, interest) {
			count++
		}
	}
	return count
}

func matchesInterest(p *domain.POI, interest domain.Interest) bool {
	if interest == domain.InterestGeneral {
		return true
	}

	for _, cat := range interestCategories[interest] {
		if p.Category == cat {
			return true
		}
	}

	name := strings.ToLower(p.Name)
	for _, tok := range interestTokens[interest] {
		if strings.Contains(name, tok) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(tag, tok) {
				return true
			}
		}
	}
	return false
}

// baseScore is the position-independent part of a candidate's score: interest
// match weight, tourist-trap penalty, best-time bonus for the bucket the plan
// starts in, and the budget-fit adjustment.
func baseScore(p *domain.POI, interests []domain.Interest, bucket string, tier domain.BudgetTier) float64 {
	score := interestWeight * float64(interestMatchCount(p, interests))

	switch p.TouristTrap {
	case domain.TrapHigh:
		score += trapHighPenalty
	case domain.TrapMixed:
		score += trapMixedPenalty
	}

	for _, bt := range p.BestTimes {
		if bt == bucket {
			score += bestTimeBonus
			break
		}
	}

	switch tier {
	case domain.BudgetLow:
		if anyTagContains(p, "budget", "local") {
			score += budgetFitBonus
		}
		if anyTagContains(p, "luxury", "fine-dining") {
			score += budgetMissPenalty
		}
	case domain.BudgetSplurge:
		if anyTagContains(p, "luxury", "fine-dining") {
			score += splurgeFitBonus
		}
	}

	return score
}
