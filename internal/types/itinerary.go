package types

import "github.com/google/uuid"

// Provenance values for Itinerary.Source.
const (
	SourceBaseline    = "baseline"    // deterministic schedule, no LLM involved
	SourceLLMSplit    = "llm-split"   // meta + per-day LLM passes merged onto the baseline
	SourceFallback    = "fallback"    // LLM was configured but enrichment failed
	SourcePlaceholder = "placeholder" // no POI data, generic filler itinerary
)

// Activity is a POI scheduled into a concrete time slot within a day.
// Every field is populated with a default before any merge step runs.
type Activity struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Description     string   `json:"description"`
	Rating          float64  `json:"rating"`
	PriceRange      string   `json:"price_range"`
	PriceEstimate   float64  `json:"price_estimate"`
	Tags            []string `json:"tags"`
	Order           int      `json:"order"` // 1-based, unique within a day
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	if a.Latitude != nil {
		lat := *a.Latitude
		out.Latitude = &lat
	}
	if a.Longitude != nil {
		lon := *a.Longitude
		out.Longitude = &lon
	}
	out.Tags = append([]string(nil), a.Tags...)
	return out
}

// DayPlan holds one day's ordered activities plus day-level narrative.
type DayPlan struct {
	DayNumber   int        `json:"day_number"` // 1-based, unique within a trip
	Description string     `json:"description"`
	Theme       string     `json:"theme,omitempty"`
	Hotel       string     `json:"hotel,omitempty"`
	Tips        []string   `json:"tips,omitempty"`
	Activities  []Activity `json:"activities"`

	// IsPlaceholder marks days built without real POI data. It is threaded
	// through from the builder so the enricher does not have to guess from
	// name patterns.
	IsPlaceholder bool `json:"-"`
}

// Clone returns a deep copy of the day plan.
func (d DayPlan) Clone() DayPlan {
	out := d
	out.Tips = append([]string(nil), d.Tips...)
	out.Activities = make([]Activity, len(d.Activities))
	for i, a := range d.Activities {
		out.Activities[i] = a.Clone()
	}
	return out
}

// Itinerary is the externally visible artifact of the planning pipeline.
// It is a value: once returned (or cached) it is never mutated in place.
type Itinerary struct {
	ID                uuid.UUID `json:"id"`
	City              string    `json:"city"`
	TotalDays         int       `json:"total_days"`
	Pace              string    `json:"pace"`
	TransportMode     string    `json:"transport_mode"`
	Source            string    `json:"source"`
	LLMEnhanced       bool      `json:"llm_enhanced"`
	Notice            string    `json:"notice,omitempty"`
	Summary           string    `json:"summary,omitempty"`
	Tips              []string  `json:"tips,omitempty"`
	RecommendedHotels []Hotel   `json:"recommended_hotels,omitempty"`
	Days              []DayPlan `json:"days"`
}

// Clone returns a deep copy so callers can never reach cache-internal state.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.Tips = append([]string(nil), it.Tips...)
	out.RecommendedHotels = append([]Hotel(nil), it.RecommendedHotels...)
	out.Days = make([]DayPlan, len(it.Days))
	for i, d := range it.Days {
		out.Days[i] = d.Clone()
	}
	return out
}
