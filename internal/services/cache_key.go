package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"dayplan-service/internal/domain"
)

// CacheKey derives a stable memoization key for a plan input. Generation is
// deterministic, so equal keys imply equal plans. Interests and exclusions
// are order-insensitive and deduplicated before hashing, and the reference
// time is normalized to UTC, so equivalent inputs hash identically.
func CacheKey(in domain.PlanInput) string {
	canonical := struct {
		AvailableMinutes int
		Start            *domain.Coordinates
		Interests        []string
		Pace             domain.Pace
		Budget           domain.BudgetTier
		NowUnix          int64
		POIs             []*domain.POI
		ExcludeIDs       []string
	}{
		AvailableMinutes: in.AvailableMinutes,
		Start:            in.Start,
		Interests:        canonicalStrings(interestStrings(in.Interests)),
		Pace:             in.Pace,
		Budget:           in.Budget,
		NowUnix:          in.Now.UTC().Unix(),
		POIs:             in.POIs,
		ExcludeIDs:       canonicalStrings(in.ExcludeIDs),
	}

	// Marshaling a struct of concrete types cannot fail; the hash input is
	// therefore always well-defined.
	raw, _ := json.Marshal(canonical)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func interestStrings(interests []domain.Interest) []string {
	out := make([]string, 0, len(interests))
	for _, i := range interests {
		out = append(out, string(i))
	}
	return out
}

func canonicalStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
