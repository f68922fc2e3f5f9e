package poi

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roamplan/roamplan/internal/types"
)

// Source supplies a ranked, best-first list of candidate POIs for a city
// and preference set. Implementations may return an empty slice; the
// builder treats that as "no data", never as an error.
type Source interface {
	SearchAttractions(ctx context.Context, city string, preferences []string) ([]types.POI, error)
}

// HotelSource supplies best-effort accommodation candidates. An empty
// result is normal.
type HotelSource interface {
	SearchHotels(ctx context.Context, city, checkIn, checkOut string, adults, rooms int) ([]types.Hotel, error)
}

//go:embed data/poi_data.json
var localPOIData []byte

// LocalSource serves POIs from the embedded dataset. It is the default
// source when no external travel API is configured, and doubles as the
// fallback dataset for sources that wrap a remote API.
type LocalSource struct {
	byCity map[string][]types.POI
}

// NewLocalSource parses the embedded dataset once at startup.
func NewLocalSource() (*LocalSource, error) {
	var byCity map[string][]types.POI
	if err := json.Unmarshal(localPOIData, &byCity); err != nil {
		return nil, fmt.Errorf("failed to parse embedded POI dataset: %w", err)
	}
	return &LocalSource{byCity: byCity}, nil
}

// SearchAttractions looks the city up under a few casing variants and
// applies preference filtering. It never returns an error; a city with no
// dataset entry yields an empty slice.
func (s *LocalSource) SearchAttractions(_ context.Context, city string, preferences []string) ([]types.POI, error) {
	normalized := strings.TrimSpace(city)
	candidates := []string{normalized, titleCase(normalized), strings.ToLower(normalized), strings.ToUpper(normalized)}
	for _, key := range candidates {
		if pois, ok := s.byCity[key]; ok {
			out := make([]types.POI, len(pois))
			copy(out, pois)
			return FilterByPreferences(out, preferences), nil
		}
	}
	return nil, nil
}

// FilterByPreferences keeps POIs whose type or tags contain any
// preference, case-insensitively. When nothing matches, the unfiltered
// list is returned so a narrow preference set never empties the pool.
func FilterByPreferences(pois []types.POI, preferences []string) []types.POI {
	if len(preferences) == 0 {
		return pois
	}
	lowered := make([]string, 0, len(preferences))
	for _, pref := range preferences {
		if p := strings.ToLower(strings.TrimSpace(pref)); p != "" {
			lowered = append(lowered, p)
		}
	}
	if len(lowered) == 0 {
		return pois
	}

	var filtered []types.POI
	for _, p := range pois {
		if matchesAnyPreference(p, lowered) {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return pois
	}
	return filtered
}

// titleCase uppercases the first letter of each space-separated word, so
// "new york" finds the dataset's "New York" style keys.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func matchesAnyPreference(p types.POI, lowered []string) bool {
	poiType := strings.ToLower(p.Type)
	for _, pref := range lowered {
		if strings.Contains(poiType, pref) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), pref) {
				return true
			}
		}
	}
	return false
}
