package itinerary

import (
	"encoding/json"
	"fmt"

	"github.com/roamplan/roamplan/internal/types"
)

const metaSystemPrompt = "You are a senior travel planner. Given a drafted " +
	"itinerary outline, hotel candidates and the traveller's preferences, you " +
	"produce a short trip summary, one highlight per day and practical tips. " +
	"Respond with JSON only."

const daySystemPrompt = "You are a senior travel planner polishing a single " +
	"day of an itinerary. Improve descriptions, add fitting tags and realistic " +
	"prices, but keep the given activity order and time slots plausible. " +
	"Respond with JSON only."

// dayOutline is the compact per-day view sent in the meta pass: the theme
// plus at most the first three activity names and times.
type dayOutline struct {
	DayNumber  int      `json:"day_number"`
	Theme      string   `json:"theme,omitempty"`
	Activities []string `json:"activities"`
}

func buildMetaPrompt(req types.TripRequest, base types.Itinerary, hotels []types.Hotel) string {
	outline := make([]dayOutline, 0, len(base.Days))
	for _, day := range base.Days {
		o := dayOutline{DayNumber: day.DayNumber, Theme: day.Theme}
		for i, act := range day.Activities {
			if i >= 3 {
				break
			}
			o.Activities = append(o.Activities, fmt.Sprintf("%s (%s-%s)", act.Name, act.StartTime, act.EndTime))
		}
		outline = append(outline, o)
	}

	if len(hotels) > 3 {
		hotels = hotels[:3]
	}

	payload, _ := json.Marshal(map[string]any{
		"request": map[string]any{
			"city":           req.City,
			"days":           req.Days,
			"preferences":    req.Preferences,
			"pace":           req.Pace,
			"transport_mode": req.TransportMode,
			"priority":       req.Priority,
		},
		"outline":          outline,
		"hotel_candidates": hotels,
	})

	return fmt.Sprintf(`Summarize this trip and highlight each day.

%s

Return a JSON object with exactly these fields:
{"summary": "...", "daily_highlights": [{"day_number": 1, "highlight": "..."}], "tips": ["..."]}`, payload)
}

// activityOutline is the minimal per-activity view sent in the detail pass.
type activityOutline struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`
	Order       int      `json:"order"`
}

func buildDayPrompt(city string, day types.DayPlan) string {
	acts := make([]activityOutline, 0, len(day.Activities))
	for _, a := range day.Activities {
		acts = append(acts, activityOutline{
			Name:        a.Name,
			Type:        a.Type,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			Tags:        a.Tags,
			Description: a.Description,
			Address:     a.Address,
			Order:       a.Order,
		})
	}

	payload, _ := json.Marshal(map[string]any{
		"city":        city,
		"day_number":  day.DayNumber,
		"placeholder": day.IsPlaceholder,
		"activities":  acts,
	})

	return fmt.Sprintf(`Polish day %d of a trip to %s. If "placeholder" is true the
activities are generic filler: replace them with real, well-known places in %s.

%s

Return a JSON object with exactly these fields:
{"day_number": %d, "description": "...", "theme": "...", "tips": ["..."],
 "activities": [{"name": "...", "start_time": "09:00", "end_time": "11:00",
 "description": "...", "tags": ["..."], "price_estimate": 0, "price_range": "$",
 "rating": 4.5, "address": "...", "order": 1}]}`,
		day.DayNumber, city, city, payload, day.DayNumber)
}
