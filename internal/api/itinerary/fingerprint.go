package itinerary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roamplan/roamplan/internal/types"
)

// Fingerprint derives the normalized cache key for a request. Two
// logically identical requests that differ only in casing or preference
// order fingerprint identically.
func Fingerprint(req types.TripRequest) string {
	seen := make(map[string]struct{}, len(req.Preferences))
	prefs := make([]string, 0, len(req.Preferences))
	for _, p := range req.Preferences {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		prefs = append(prefs, p)
	}
	sort.Strings(prefs)

	return fmt.Sprintf("%s|%d|%s|%s|%s|%s",
		strings.ToLower(strings.TrimSpace(req.City)),
		req.Days,
		strings.Join(prefs, ","),
		strings.ToLower(strings.TrimSpace(req.Pace)),
		strings.ToLower(strings.TrimSpace(req.TransportMode)),
		strings.ToLower(strings.TrimSpace(req.Priority)),
	)
}
