package hours

import (
	"testing"
	"time"

	"dayplan-service/internal/domain"
	"dayplan-service/internal/ports"
)

// 2026-03-02 is a Monday.
func localTime(day, hour, minute int) time.Time {
	return time.Date(2026, 3, day, hour, minute, 0, 0, domain.PlanLocation)
}

func TestStatusWithoutHoursIsUnknown(t *testing.T) {
	eval := NewWeeklyEvaluator()
	p := &domain.POI{ID: "p"}

	if got := eval.Status(p, localTime(2, 12, 0)); got != ports.StatusUnknown {
		t.Fatalf("status = %v, want unknown", got)
	}
}

func TestStatusDayWindows(t *testing.T) {
	eval := NewWeeklyEvaluator()
	p := &domain.POI{
		ID:    "p",
		Hours: domain.OpeningHours{"mon": {"09:00-12:00", "13:00-17:00"}},
	}

	tests := []struct {
		name string
		at   time.Time
		want ports.OpenStatus
	}{
		{"inside first window", localTime(2, 10, 30), ports.StatusOpen},
		{"at opening minute", localTime(2, 9, 0), ports.StatusOpen},
		{"at closing minute", localTime(2, 12, 0), ports.StatusClosed},
		{"between windows", localTime(2, 12, 30), ports.StatusClosed},
		{"inside second window", localTime(2, 15, 0), ports.StatusOpen},
		{"before opening", localTime(2, 8, 59), ports.StatusClosed},
		{"day with no listed windows", localTime(3, 10, 30), ports.StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eval.Status(p, tt.at); got != tt.want {
				t.Fatalf("status = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusOvernightWindow(t *testing.T) {
	eval := NewWeeklyEvaluator()
	p := &domain.POI{
		ID:    "bar",
		Hours: domain.OpeningHours{"mon": {"22:00-02:00"}},
	}

	tests := []struct {
		name string
		at   time.Time
		want ports.OpenStatus
	}{
		{"late monday evening", localTime(2, 23, 30), ports.StatusOpen},
		{"tuesday small hours via spill", localTime(3, 1, 30), ports.StatusOpen},
		{"tuesday after close", localTime(3, 2, 0), ports.StatusClosed},
		{"monday afternoon", localTime(2, 15, 0), ports.StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eval.Status(p, tt.at); got != tt.want {
				t.Fatalf("status = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusSundaySpillFromSaturday(t *testing.T) {
	eval := NewWeeklyEvaluator()
	p := &domain.POI{
		ID:    "late",
		Hours: domain.OpeningHours{"sat": {"23:00-03:00"}},
	}

	// 2026-03-08 is a Sunday; the Saturday overnight window spills into it.
	sunday := time.Date(2026, 3, 8, 2, 0, 0, 0, domain.PlanLocation)
	if got := eval.Status(p, sunday); got != ports.StatusOpen {
		t.Fatalf("status = %v, want open via saturday spill", got)
	}
}

func TestStatusMalformedHoursIsUnknown(t *testing.T) {
	eval := NewWeeklyEvaluator()

	tests := []struct {
		name  string
		hours domain.OpeningHours
	}{
		{"missing separator", domain.OpeningHours{"mon": {"0900 to 1200"}}},
		{"bad clock", domain.OpeningHours{"mon": {"09:00-25:61"}}},
		{"empty window", domain.OpeningHours{"mon": {""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.POI{ID: "p", Hours: tt.hours}
			if got := eval.Status(p, localTime(2, 10, 0)); got != ports.StatusUnknown {
				t.Fatalf("status = %v, want unknown for malformed hours", got)
			}
		})
	}
}

func TestStatusEvaluatesInPlanZone(t *testing.T) {
	eval := NewWeeklyEvaluator()
	p := &domain.POI{
		ID:    "p",
		Hours: domain.OpeningHours{"mon": {"09:00-17:00"}},
	}

	// Monday 10:00 local expressed as a UTC instant (01:00 UTC).
	utc := localTime(2, 10, 0).In(time.UTC)
	if got := eval.Status(p, utc); got != ports.StatusOpen {
		t.Fatalf("status = %v, want open regardless of the input zone", got)
	}
}
