package itinerary

import (
	"strings"

	"github.com/roamplan/roamplan/internal/types"
)

const (
	defaultRating        = 4.5
	defaultActivityType  = "experience"
	defaultPriceEstimate = 50
	defaultPriceRange    = "$$"
	minTagCount          = 3
)

// tagKeywords infers descriptive tags from an activity's name and
// description when the source data is thin.
var tagKeywords = map[string][]string{
	"museum":   {"museum", "culture"},
	"gallery":  {"art", "culture"},
	"temple":   {"history", "spiritual"},
	"shrine":   {"history", "spiritual"},
	"palace":   {"history", "architecture"},
	"castle":   {"history", "architecture"},
	"park":     {"nature", "outdoors"},
	"garden":   {"nature", "relaxing"},
	"market":   {"food", "shopping"},
	"food":     {"food", "local"},
	"tower":    {"views", "landmark"},
	"bridge":   {"views", "landmark"},
	"beach":    {"nature", "relaxing"},
	"wall":     {"history", "hiking"},
	"cathedral": {"history", "architecture"},
	"monastery": {"history", "architecture"},
}

var genericTags = []string{"must-see", "local-favorite", "photo-spot"}

// priceRangeFor buckets a price estimate into the display ranges used
// across the itinerary.
func priceRangeFor(estimate float64) string {
	switch {
	case estimate <= 0:
		return "free"
	case estimate < 50:
		return "$"
	case estimate < 150:
		return "$$"
	case estimate < 300:
		return "$$$"
	default:
		return "$$$$"
	}
}

// inferTags returns existing plus inferred tags, padded with generic ones
// until at least minTagCount are present.
func inferTags(name, description string, existing []string) []string {
	tags := append([]string(nil), existing...)
	have := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		have[strings.ToLower(t)] = struct{}{}
	}
	add := func(t string) {
		if _, ok := have[strings.ToLower(t)]; ok {
			return
		}
		have[strings.ToLower(t)] = struct{}{}
		tags = append(tags, t)
	}

	haystack := strings.ToLower(name + " " + description)
	for keyword, inferred := range tagKeywords {
		if strings.Contains(haystack, keyword) {
			for _, t := range inferred {
				add(t)
			}
		}
	}
	for _, t := range genericTags {
		if len(tags) >= minTagCount {
			break
		}
		add(t)
	}
	return tags
}

// ensureActivityDefaults backfills rating, price range and tags so every
// activity leaves the pipeline fully populated.
func ensureActivityDefaults(a *types.Activity) {
	if a.Rating == 0 {
		a.Rating = defaultRating
	}
	if a.PriceRange == "" {
		a.PriceRange = priceRangeFor(a.PriceEstimate)
	}
	if len(a.Tags) < minTagCount {
		a.Tags = inferTags(a.Name, a.Description, a.Tags)
	}
}

// defaultActivity is the single constructor for activities synthesized
// from AI output that has no baseline counterpart.
func defaultActivity(order int) types.Activity {
	return types.Activity{
		Name:            "",
		Type:            defaultActivityType,
		StartTime:       "09:00",
		EndTime:         "11:00",
		DurationMinutes: 120,
		PriceRange:      defaultPriceRange,
		PriceEstimate:   defaultPriceEstimate,
		Order:           order,
	}
}
