package types

// TripRequest carries the user-facing planning parameters. Casing and
// preference order are not significant; the planner normalizes them when
// deriving the cache fingerprint.
type TripRequest struct {
	City          string   `json:"city"`
	Days          int      `json:"days"`
	Preferences   []string `json:"preferences,omitempty"`
	Pace          string   `json:"pace,omitempty"`
	TransportMode string   `json:"transport_mode,omitempty"`
	Priority      string   `json:"priority,omitempty"`
}
