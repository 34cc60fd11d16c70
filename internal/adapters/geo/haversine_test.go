package geo

import (
	"math"
	"testing"

	"dayplan-service/internal/domain"
)

func TestDistanceMeters(t *testing.T) {
	svc := NewService()

	a := domain.Coordinates{Lat: 35.0, Lon: 135.77}
	b := domain.Coordinates{Lat: 36.0, Lon: 135.77}

	// One degree of latitude is roughly 111.19 km on the mean-radius sphere.
	got := svc.DistanceMeters(a, b)
	if math.Abs(got-111195) > 100 {
		t.Fatalf("distance = %.0f m, want about 111195 m", got)
	}

	if got := svc.DistanceMeters(a, a); got != 0 {
		t.Fatalf("distance to self = %v, want 0", got)
	}

	if d1, d2 := svc.DistanceMeters(a, b), svc.DistanceMeters(b, a); math.Abs(d1-d2) > 1e-6 {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestBearingDegrees(t *testing.T) {
	svc := NewService()
	origin := domain.Coordinates{Lat: 35.0, Lon: 135.77}

	tests := []struct {
		name string
		to   domain.Coordinates
		want float64
	}{
		{"due north", domain.Coordinates{Lat: 35.01, Lon: 135.77}, 0},
		{"due south", domain.Coordinates{Lat: 34.99, Lon: 135.77}, 180},
		{"roughly east", domain.Coordinates{Lat: 35.0, Lon: 135.78}, 90},
		{"roughly west", domain.Coordinates{Lat: 35.0, Lon: 135.76}, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.BearingDegrees(origin, tt.to)
			if got < 0 || got >= 360 {
				t.Fatalf("bearing = %v, outside [0, 360)", got)
			}
			if math.Abs(got-tt.want) > 0.5 {
				t.Fatalf("bearing = %v, want about %v", got, tt.want)
			}
		})
	}
}

func TestEstimateWalkMinutes(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name   string
		meters float64
		region string
		want   int
	}{
		{"baseline speed", 1000, "", 13},
		{"unknown region uses baseline", 1000, "harbor", 13},
		{"old town is slower", 1000, "old_town", 16},
		{"riverside is faster", 1000, "riverside", 12},
		{"short hop rounds up", 10, "", 1},
		{"zero distance", 0, "", 0},
		{"negative distance", -5, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.EstimateWalkMinutes(tt.meters, tt.region); got != tt.want {
				t.Fatalf("walk minutes = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDetectRegion(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name  string
		coord domain.Coordinates
		want  string
	}{
		{"market box wins first", domain.Coordinates{Lat: 35.005, Lon: 135.765}, "market"},
		{"old town", domain.Coordinates{Lat: 35.015, Lon: 135.790}, "old_town"},
		{"hills", domain.Coordinates{Lat: 34.985, Lon: 135.805}, "hills"},
		{"outside every box", domain.Coordinates{Lat: 0, Lon: 0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.DetectRegion(tt.coord); got != tt.want {
				t.Fatalf("region = %q, want %q", got, tt.want)
			}
		})
	}
}
