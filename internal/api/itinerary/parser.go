package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// metaResponse is the trip-level enrichment payload. days is normalized
// from the model's daily_highlights list.
type metaResponse struct {
	City          string         `json:"city"`
	Pace          string         `json:"pace"`
	TransportMode string         `json:"transport_mode"`
	Summary       string         `json:"summary"`
	Days          []dayHighlight `json:"daily_highlights"`
	Tips          []string       `json:"tips"`
}

type dayHighlight struct {
	DayNumber int    `json:"day_number"`
	Highlight string `json:"highlight"`
}

// dayResponse is the per-day enrichment payload.
type dayResponse struct {
	DayNumber   int             `json:"day_number"`
	Description string          `json:"description"`
	Summary     string          `json:"summary"`
	Theme       string          `json:"theme"`
	Hotel       string          `json:"hotel"`
	Tips        []string        `json:"tips"`
	Activities  []activityPatch `json:"activities"`
}

// activityPatch carries the AI's field-level overrides for one activity.
// Pointers distinguish "absent" from zero so the merge only overlays
// fields the model actually produced.
type activityPatch struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Address         string   `json:"address"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DurationMinutes *int     `json:"duration_minutes"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	Rating          *float64 `json:"rating"`
	PriceRange      string   `json:"price_range"`
	PriceEstimate   *float64 `json:"price_estimate"`
	Order           int      `json:"order"`
}

func parseMetaResponse(raw string) (metaResponse, error) {
	var meta metaResponse
	jsonStr, err := extractJSONObject(raw)
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal([]byte(jsonStr), &meta); err != nil {
		return meta, fmt.Errorf("failed to parse meta response JSON: %w", err)
	}
	return meta, nil
}

func parseDayResponse(raw string) (dayResponse, error) {
	var day dayResponse
	jsonStr, err := extractJSONObject(raw)
	if err != nil {
		return day, err
	}
	if err := json.Unmarshal([]byte(jsonStr), &day); err != nil {
		return day, fmt.Errorf("failed to parse day response JSON: %w", err)
	}
	return day, nil
}

// extractJSONObject strips Markdown code fences and returns the first
// balanced {...} span, tolerating prose around the JSON.
func extractJSONObject(raw string) (string, error) {
	cleaned := stripCodeFences(strings.TrimSpace(raw))
	if cleaned == "" {
		return "", fmt.Errorf("empty response, nothing to parse")
	}

	start := strings.IndexByte(cleaned, '{')
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(cleaned); i++ {
		ch := cleaned[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return cleaned[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON object in response")
}

func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	if idx := strings.Index(s, "```json"); idx >= 0 {
		s = s[idx+len("```json"):]
	} else if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+len("```"):]
	}
	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
