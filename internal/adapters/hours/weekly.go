package hours

import (
	"strings"
	"time"

	"dayplan-service/internal/domain"
	"dayplan-service/internal/ports"
)

var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

// WeeklyEvaluator evaluates per-weekday "HH:MM-HH:MM" window lists against a
// timestamp in the plan's fixed local zone. Places without hours data, and
// places whose data fails to parse, report StatusUnknown: the engine treats
// unknown as feasible, so bad content never blocks a plan.
type WeeklyEvaluator struct{}

func NewWeeklyEvaluator() *WeeklyEvaluator { return &WeeklyEvaluator{} }

func (w *WeeklyEvaluator) Status(p *domain.POI, at time.Time) ports.OpenStatus {
	if len(p.Hours) == 0 {
		return ports.StatusUnknown
	}

	local := at.In(domain.PlanLocation)
	minute := local.Hour()*60 + local.Minute()

	// Today's windows, including same-day and overnight spans.
	todays, ok := windowsFor(p.Hours, local.Weekday())
	if !ok {
		return ports.StatusUnknown
	}
	for _, win := range todays {
		if win.end > win.start {
			if minute >= win.start && minute < win.end {
				return ports.StatusOpen
			}
		} else {
			// Overnight window: open from start until midnight.
			if minute >= win.start {
				return ports.StatusOpen
			}
		}
	}

	// Yesterday's overnight windows spill into the early hours of today.
	yesterdays, ok := windowsFor(p.Hours, local.Weekday()-1)
	if !ok {
		return ports.StatusUnknown
	}
	for _, win := range yesterdays {
		if win.end <= win.start && minute < win.end {
			return ports.StatusOpen
		}
	}

	return ports.StatusClosed
}

type window struct {
	start int // minutes since midnight
	end   int
}

func windowsFor(hours domain.OpeningHours, day time.Weekday) ([]window, bool) {
	if day < time.Sunday {
		day += 7
	}

	raw := hours[weekdayKeys[day]]
	out := make([]window, 0, len(raw))
	for _, spec := range raw {
		win, ok := parseWindow(spec)
		if !ok {
			return nil, false
		}
		out = append(out, win)
	}
	return out, true
}

func parseWindow(spec string) (window, bool) {
	parts := strings.Split(strings.TrimSpace(spec), "-")
	if len(parts) != 2 {
		return window{}, false
	}

	start, ok := parseClock(parts[0])
	if !ok {
		return window{}, false
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return window{}, false
	}
	return window{start: start, end: end}, true
}

func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
