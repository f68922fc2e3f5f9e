package types

// POI is a candidate attraction supplied by a POI source. The data is
// non-authoritative: entries carry no identity beyond name and position
// and may repeat across sources.
type POI struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Rating          float64  `json:"rating"`
	PriceRange      string   `json:"price_range"`
	PriceEstimate   float64  `json:"price_estimate"`
	Tags            []string `json:"tags"`
	DurationMinutes int      `json:"duration_minutes"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (p POI) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Hotel is a best-effort accommodation candidate from a hotel source.
type Hotel struct {
	Name          string  `json:"name"`
	Address       string  `json:"address,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	PricePerNight float64 `json:"price_per_night,omitempty"`
	Currency      string  `json:"currency,omitempty"`
}
