package services

import (
	"time"

	"dayplan-service/internal/domain"
)

// Fixed local-time meal windows, hours in domain.PlanLocation.
var mealWindows = map[domain.MealSlot][2]int{
	domain.MealBreakfast: {7, 11},
	domain.MealLunch:     {12, 15},
	domain.MealDinner:    {19, 22},
}

// Minimum available minutes before a food-interest plan extends its required
// meal slots beyond the literal time-window overlap.
const foodExtensionMinutes = 360

// Time-of-day buckets by local hour.
const (
	bucketMorning   = "morning"
	bucketLunch     = "lunch"
	bucketAfternoon = "afternoon"
	bucketEvening   = "evening"
	bucketNight     = "night"
)

// requiredMealSlots computes the meal slots whose fixed local-time window
// overlaps the planning interval [now, now+available). When food is among the
// requested interests and the window is long enough, the set is extended with
// every slot actually servable by a filtered candidate, so a plan does not
// skip dinner purely because the literal window clipped it.
func requiredMealSlots(now time.Time, availableMinutes int, interests []domain.Interest, candidates []*domain.POI) map[domain.MealSlot]bool {
	start := now.In(domain.PlanLocation)
	end := start.Add(time.Duration(availableMinutes) * time.Minute)

	required := make(map[domain.MealSlot]bool)
	for slot, hours := range mealWindows {
		ws := time.Date(start.Year(), start.Month(), start.Day(), hours[0], 0, 0, 0, domain.PlanLocation)
		we := time.Date(start.Year(), start.Month(), start.Day(), hours[1], 0, 0, 0, domain.PlanLocation)
		if maxTime(ws, start).Before(minTime(we, end)) {
			required[slot] = true
		}
	}

	if availableMinutes >= foodExtensionMinutes && hasInterest(interests, domain.InterestFood) {
		for _, c := range candidates {
			for _, slot := range servedMealSlots(c) {
				required[slot] = true
			}
		}
	}

	return required
}

// servedMealSlots derives which meal slots a place can serve. Only food
// categories serve meals; explicit best-time windows narrow the default
// assumption for the category.
func servedMealSlots(p *domain.POI) []domain.MealSlot {
	var defaults []domain.MealSlot
	switch p.Category {
	case "cafe":
		defaults = []domain.MealSlot{domain.MealBreakfast, domain.MealLunch}
	case "restaurant":
		defaults = []domain.MealSlot{domain.MealLunch, domain.MealDinner}
	case "market":
		defaults = []domain.MealSlot{domain.MealLunch}
	default:
		return nil
	}

	var fromBest []domain.MealSlot
	for _, bt := range p.BestTimes {
		switch bt {
		case bucketMorning:
			fromBest = appendSlot(fromBest, domain.MealBreakfast)
		case bucketLunch:
			fromBest = appendSlot(fromBest, domain.MealLunch)
		case bucketEvening, bucketNight:
			fromBest = appendSlot(fromBest, domain.MealDinner)
		}
	}
	if len(fromBest) > 0 {
		return fromBest
	}
	return defaults
}

func appendSlot(slots []domain.MealSlot, slot domain.MealSlot) []domain.MealSlot {
	for _, s := range slots {
		if s == slot {
			return slots
		}
	}
	return append(slots, slot)
}

// timeOfDayBucket maps a timestamp to its local time-of-day bucket.
func timeOfDayBucket(t time.Time) string {
	switch h := t.In(domain.PlanLocation).Hour(); {
	case h >= 5 && h < 11:
		return bucketMorning
	case h >= 11 && h < 14:
		return bucketLunch
	case h >= 14 && h < 17:
		return bucketAfternoon
	case h >= 17 && h < 22:
		return bucketEvening
	default:
		return bucketNight
	}
}

func hasInterest(interests []domain.Interest, want domain.Interest) bool {
	for _, i := range interests {
		if i == want {
			return true
		}
	}
	return false
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
