package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItineraryClone(t *testing.T) {
	lat, lon := 39.9163, 116.3972
	original := Itinerary{
		City: "Beijing",
		Tips: []string{"tip"},
		RecommendedHotels: []Hotel{
			{Name: "Courtyard Inn"},
		},
		Days: []DayPlan{{
			DayNumber: 1,
			Tips:      []string{"day tip"},
			Activities: []Activity{{
				Name:      "Forbidden City",
				Latitude:  &lat,
				Longitude: &lon,
				Tags:      []string{"history"},
			}},
		}},
	}

	clone := original.Clone()
	clone.Tips[0] = "changed"
	clone.RecommendedHotels[0].Name = "changed"
	clone.Days[0].Tips[0] = "changed"
	clone.Days[0].Activities[0].Name = "changed"
	clone.Days[0].Activities[0].Tags[0] = "changed"
	*clone.Days[0].Activities[0].Latitude = 0

	assert.Equal(t, "tip", original.Tips[0])
	assert.Equal(t, "Courtyard Inn", original.RecommendedHotels[0].Name)
	assert.Equal(t, "day tip", original.Days[0].Tips[0])
	assert.Equal(t, "Forbidden City", original.Days[0].Activities[0].Name)
	assert.Equal(t, "history", original.Days[0].Activities[0].Tags[0])
	assert.Equal(t, 39.9163, *original.Days[0].Activities[0].Latitude)
}
