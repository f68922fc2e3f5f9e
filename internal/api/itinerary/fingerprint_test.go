package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roamplan/roamplan/internal/types"
)

func TestFingerprint(t *testing.T) {
	base := types.TripRequest{
		City: "Beijing", Days: 3, Preferences: []string{"culture", "food"},
		Pace: "balanced", TransportMode: "driving", Priority: "efficiency",
	}

	t.Run("identical requests share a key", func(t *testing.T) {
		assert.Equal(t, Fingerprint(base), Fingerprint(base))
	})

	t.Run("casing and whitespace are normalized", func(t *testing.T) {
		other := base
		other.City = "  BEIJING "
		other.Pace = "Balanced"
		assert.Equal(t, Fingerprint(base), Fingerprint(other))
	})

	t.Run("preference order and duplicates do not matter", func(t *testing.T) {
		other := base
		other.Preferences = []string{"Food", "culture", "FOOD", " "}
		assert.Equal(t, Fingerprint(base), Fingerprint(other))
	})

	t.Run("different trips get different keys", func(t *testing.T) {
		other := base
		other.Days = 4
		assert.NotEqual(t, Fingerprint(base), Fingerprint(other))

		other = base
		other.Preferences = []string{"nightlife"}
		assert.NotEqual(t, Fingerprint(base), Fingerprint(other))

		other = base
		other.TransportMode = "walking"
		assert.NotEqual(t, Fingerprint(base), Fingerprint(other))
	})
}
