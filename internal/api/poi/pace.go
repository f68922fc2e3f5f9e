package poi

import (
	"strings"

	"github.com/roamplan/roamplan/internal/types"
)

// Pace selectors. Unknown values behave like PaceBalanced.
const (
	PaceRelaxed  = "relaxed"
	PaceBalanced = "balanced"
	PaceIntense  = "intense"
)

// PaceProfile controls how densely a day is packed and how long each
// activity dwell is relative to the POI's base duration.
type PaceProfile struct {
	ActivitiesPerDay   int
	DurationMultiplier float64
}

var paceProfiles = map[string]PaceProfile{
	PaceRelaxed:  {ActivitiesPerDay: 2, DurationMultiplier: 1.3},
	PaceBalanced: {ActivitiesPerDay: 3, DurationMultiplier: 1.0},
	PaceIntense:  {ActivitiesPerDay: 4, DurationMultiplier: 0.7},
}

const defaultBaseDurationMinutes = 120

// ProfileFor resolves a pace selector case-insensitively, defaulting to
// the balanced profile.
func ProfileFor(pace string) PaceProfile {
	if p, ok := paceProfiles[strings.ToLower(strings.TrimSpace(pace))]; ok {
		return p
	}
	return paceProfiles[PaceBalanced]
}

// ActivityDuration scales the POI's base duration by the pace multiplier,
// truncated to whole minutes.
func ActivityDuration(p types.POI, pace string) int {
	base := p.DurationMinutes
	if base <= 0 {
		base = defaultBaseDurationMinutes
	}
	return int(float64(base) * ProfileFor(pace).DurationMultiplier)
}
