package domain

import "time"

// Pace controls visit-duration bias and the stop-count ceiling.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceStandard Pace = "standard"
	PaceActive   Pace = "active"
)

// BudgetTier filters and scores candidates by cost signal and scales the
// final cost estimate.
type BudgetTier string

const (
	BudgetLow     BudgetTier = "budget"
	BudgetMid     BudgetTier = "mid"
	BudgetSplurge BudgetTier = "splurge"
)

// Interest is one of the closed set of requestable interests.
type Interest string

const (
	InterestHistory      Interest = "history"
	InterestFood         Interest = "food"
	InterestShopping     Interest = "shopping"
	InterestNature       Interest = "nature"
	InterestCulture      Interest = "culture"
	InterestArchitecture Interest = "architecture"
	InterestRelaxation   Interest = "relaxation"
	InterestNightlife    Interest = "nightlife"
	InterestGeneral      Interest = "general"
)

// MealSlot is one of the fixed local-time meal windows a food-interest plan
// should ideally cover.
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
)

// PlanInput is the complete, immutable input of a single plan generation.
// Interests may contain duplicates and arrive in any order; neither affects
// the result. Negative AvailableMinutes is clamped to zero rather than
// rejected.
type PlanInput struct {
	AvailableMinutes int
	Start            *Coordinates
	Interests        []Interest
	Pace             Pace
	Budget           BudgetTier
	Now              time.Time
	POIs             []*POI
	ExcludeIDs       []string
}
