package domain

import "time"

// PlanLocation is the fixed local time zone used for all meal-slot and
// time-of-day computation. The content covers a single destination city, so
// the zone is a constant rather than ambient state.
var PlanLocation = time.FixedZone("UTC+9", 9*60*60)
