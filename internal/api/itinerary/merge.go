package itinerary

import (
	"fmt"
	"sort"

	"github.com/roamplan/roamplan/internal/types"
)

// aiPlan aggregates the meta pass and per-day detail passes into the
// partial plan the merge overlays onto the baseline.
type aiPlan struct {
	City          string
	Summary       string
	Pace          string
	TransportMode string
	TotalDays     int
	Tips          []string
	Days          []dayResponse
}

// Merge overlays AI output onto the baseline. Baseline fields survive
// whenever the AI counterpart is absent or empty, and no baseline
// activity is dropped even when the AI response is partial or reordered.
func Merge(base types.Itinerary, ai aiPlan, hotels []types.Hotel) types.Itinerary {
	result := base.Clone()

	if ai.City != "" {
		result.City = ai.City
	}
	if ai.Summary != "" {
		result.Summary = ai.Summary
	}
	if ai.Pace != "" {
		result.Pace = ai.Pace
	}
	if ai.TransportMode != "" {
		result.TransportMode = ai.TransportMode
	}
	if ai.TotalDays > 0 {
		result.TotalDays = ai.TotalDays
	}
	if len(ai.Tips) > 0 {
		result.Tips = append([]string(nil), ai.Tips...)
	}
	if len(hotels) > 0 {
		n := len(hotels)
		if n > 5 {
			n = 5
		}
		result.RecommendedHotels = append([]types.Hotel(nil), hotels[:n]...)
	}

	aiDays := make(map[int]dayResponse, len(ai.Days))
	for _, d := range ai.Days {
		if d.DayNumber > 0 {
			aiDays[d.DayNumber] = d
		}
	}
	for i, baseDay := range result.Days {
		if aiDay, ok := aiDays[baseDay.DayNumber]; ok {
			result.Days[i] = mergeDay(baseDay, aiDay)
		}
	}

	return result
}

func mergeDay(base types.DayPlan, ai dayResponse) types.DayPlan {
	merged := base.Clone()
	switch {
	case ai.Description != "":
		merged.Description = ai.Description
	case ai.Summary != "":
		merged.Description = ai.Summary
	}
	if ai.Theme != "" {
		merged.Theme = ai.Theme
	}
	if ai.Hotel != "" {
		merged.Hotel = ai.Hotel
	}
	if len(ai.Tips) > 0 {
		merged.Tips = append([]string(nil), ai.Tips...)
	}
	merged.Activities = mergeActivities(base.Activities, ai.Activities)
	return merged
}

// mergeActivities matches AI activities to baseline ones by order. A
// matched activity is a copy of the baseline with the AI's non-empty
// fields overlaid; an unmatched AI activity is synthesized from the
// central defaults; baseline activities the AI never mentioned are
// appended unchanged. The final list is sorted by order and renumbered so
// orders stay contiguous from 1.
func mergeActivities(base []types.Activity, patches []activityPatch) []types.Activity {
	if len(patches) == 0 {
		return base
	}

	baseByOrder := make(map[int]types.Activity, len(base))
	for i, act := range base {
		order := act.Order
		if order == 0 {
			order = i + 1
		}
		baseByOrder[order] = act
	}

	merged := make([]types.Activity, 0, len(base)+len(patches))
	usedOrders := make(map[int]struct{}, len(patches))

	for idx, patch := range patches {
		order := patch.Order
		if order <= 0 {
			order = idx + 1
		}

		var act types.Activity
		if baseAct, ok := baseByOrder[order]; ok {
			act = baseAct.Clone()
		} else {
			act = defaultActivity(order)
			act.Name = fmt.Sprintf("Activity %d", order)
		}
		applyPatch(&act, patch)
		act.Order = order

		merged = append(merged, act)
		usedOrders[order] = struct{}{}
	}

	for _, baseAct := range base {
		if _, ok := usedOrders[baseAct.Order]; !ok {
			merged = append(merged, baseAct.Clone())
		}
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Order < merged[j].Order })
	for i := range merged {
		merged[i].Order = i + 1
		ensureActivityDefaults(&merged[i])
	}
	return merged
}

func applyPatch(act *types.Activity, patch activityPatch) {
	if patch.Name != "" {
		act.Name = patch.Name
	}
	if patch.Type != "" {
		act.Type = patch.Type
	}
	if patch.Address != "" {
		act.Address = patch.Address
	}
	if patch.StartTime != "" {
		act.StartTime = patch.StartTime
	}
	if patch.EndTime != "" {
		act.EndTime = patch.EndTime
	}
	if patch.DurationMinutes != nil && *patch.DurationMinutes > 0 {
		act.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Description != "" {
		act.Description = patch.Description
	}
	if len(patch.Tags) > 0 {
		act.Tags = append([]string(nil), patch.Tags...)
	}
	if patch.Rating != nil && *patch.Rating > 0 {
		act.Rating = *patch.Rating
	}
	if patch.PriceRange != "" {
		act.PriceRange = patch.PriceRange
	}
	if patch.PriceEstimate != nil && *patch.PriceEstimate >= 0 {
		act.PriceEstimate = *patch.PriceEstimate
	}
}
