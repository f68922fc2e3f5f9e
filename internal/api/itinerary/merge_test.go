package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamplan/roamplan/internal/types"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func baseItinerary() types.Itinerary {
	return types.Itinerary{
		City:          "Beijing",
		TotalDays:     1,
		Pace:          "balanced",
		TransportMode: "driving",
		Source:        types.SourceBaseline,
		Days: []types.DayPlan{{
			DayNumber:   1,
			Description: "Day 1 covers 3 stops around Beijing.",
			Activities: []types.Activity{
				{Name: "Forbidden City", Order: 1, StartTime: "09:00", EndTime: "12:00", Rating: 4.8, PriceRange: "$$", Tags: []string{"history", "palace", "unesco"}},
				{Name: "Temple of Heaven", Order: 2, StartTime: "12:30", EndTime: "14:30", Rating: 4.7, PriceRange: "$", Tags: []string{"history", "temple", "park"}},
				{Name: "Summer Palace", Order: 3, StartTime: "15:00", EndTime: "17:30", Rating: 4.7, PriceRange: "$", Tags: []string{"garden", "lake", "history"}},
			},
		}},
	}
}

func TestMerge(t *testing.T) {
	t.Run("partial AI output leaves unmentioned activities intact", func(t *testing.T) {
		ai := aiPlan{
			Summary: "Imperial Beijing in a day.",
			Days: []dayResponse{{
				DayNumber:   1,
				Description: "From palace gates to garden lakes.",
				Activities: []activityPatch{
					{Order: 2, Description: "Where emperors prayed for harvests."},
				},
			}},
		}

		result := Merge(baseItinerary(), ai, nil)

		assert.Equal(t, "Imperial Beijing in a day.", result.Summary)
		require.Len(t, result.Days, 1)
		day := result.Days[0]
		assert.Equal(t, "From palace gates to garden lakes.", day.Description)

		require.Len(t, day.Activities, 3)
		assert.Equal(t, "Forbidden City", day.Activities[0].Name)
		assert.Equal(t, "Temple of Heaven", day.Activities[1].Name)
		assert.Equal(t, "Where emperors prayed for harvests.", day.Activities[1].Description)
		assert.Equal(t, "Summer Palace", day.Activities[2].Name)
		for i, act := range day.Activities {
			assert.Equal(t, i+1, act.Order)
		}
	})

	t.Run("empty AI fields never clobber baseline values", func(t *testing.T) {
		ai := aiPlan{
			Days: []dayResponse{{
				DayNumber: 1,
				Activities: []activityPatch{
					{Order: 1, Name: "", Rating: floatPtr(0), DurationMinutes: intPtr(0)},
				},
			}},
		}

		result := Merge(baseItinerary(), ai, nil)

		assert.Equal(t, "Beijing", result.City)
		assert.Equal(t, "balanced", result.Pace)
		act := result.Days[0].Activities[0]
		assert.Equal(t, "Forbidden City", act.Name)
		assert.Equal(t, 4.8, act.Rating)
	})

	t.Run("AI activity with no baseline counterpart is synthesized", func(t *testing.T) {
		ai := aiPlan{
			Days: []dayResponse{{
				DayNumber: 1,
				Activities: []activityPatch{
					{Order: 5, Name: "Night market stroll", Description: "End the day with street food."},
				},
			}},
		}

		result := Merge(baseItinerary(), ai, nil)

		day := result.Days[0]
		require.Len(t, day.Activities, 4)
		last := day.Activities[3]
		assert.Equal(t, "Night market stroll", last.Name)
		assert.Equal(t, 4, last.Order, "orders renumbered to stay contiguous")
		assert.Equal(t, defaultActivityType, last.Type)
		assert.Equal(t, "09:00", last.StartTime)
		assert.Equal(t, defaultRating, last.Rating)
		assert.GreaterOrEqual(t, len(last.Tags), minTagCount)
	})

	t.Run("patch without an order matches positionally", func(t *testing.T) {
		ai := aiPlan{
			Days: []dayResponse{{
				DayNumber: 1,
				Activities: []activityPatch{
					{Description: "First stop, polished."},
				},
			}},
		}

		result := Merge(baseItinerary(), ai, nil)
		act := result.Days[0].Activities[0]
		assert.Equal(t, "Forbidden City", act.Name)
		assert.Equal(t, "First stop, polished.", act.Description)
	})

	t.Run("day without AI output is untouched", func(t *testing.T) {
		base := baseItinerary()
		base.TotalDays = 2
		base.Days = append(base.Days, types.DayPlan{
			DayNumber:   2,
			Description: "Day 2 covers 3 stops around Beijing.",
			Activities:  []types.Activity{{Name: "798 Art District", Order: 1}},
		})

		ai := aiPlan{
			Days: []dayResponse{{DayNumber: 1, Description: "Polished day one."}},
		}

		result := Merge(base, ai, nil)
		assert.Equal(t, "Polished day one.", result.Days[0].Description)
		assert.Equal(t, "Day 2 covers 3 stops around Beijing.", result.Days[1].Description)
	})

	t.Run("day summary stands in for a missing description", func(t *testing.T) {
		ai := aiPlan{
			Days: []dayResponse{{DayNumber: 1, Summary: "Summary only."}},
		}
		result := Merge(baseItinerary(), ai, nil)
		assert.Equal(t, "Summary only.", result.Days[0].Description)
	})

	t.Run("hotels are capped at five", func(t *testing.T) {
		hotels := make([]types.Hotel, 8)
		for i := range hotels {
			hotels[i] = types.Hotel{Name: "Hotel"}
		}
		result := Merge(baseItinerary(), aiPlan{}, hotels)
		assert.Len(t, result.RecommendedHotels, 5)
	})

	t.Run("does not mutate the baseline", func(t *testing.T) {
		base := baseItinerary()
		ai := aiPlan{
			Summary: "Changed.",
			Days: []dayResponse{{
				DayNumber:  1,
				Activities: []activityPatch{{Order: 1, Name: "Renamed"}},
			}},
		}

		_ = Merge(base, ai, nil)
		assert.Empty(t, base.Summary)
		assert.Equal(t, "Forbidden City", base.Days[0].Activities[0].Name)
	})
}
