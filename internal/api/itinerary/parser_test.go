package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetaResponse(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		meta, err := parseMetaResponse(`{
			"summary": "Three classic days in Beijing.",
			"daily_highlights": [
				{"day_number": 1, "highlight": "Imperial Beijing"},
				{"day_number": 2, "highlight": "The Great Wall"}
			],
			"tips": ["Buy tickets ahead", "Carry cash"]
		}`)
		require.NoError(t, err)
		assert.Equal(t, "Three classic days in Beijing.", meta.Summary)
		require.Len(t, meta.Days, 2)
		assert.Equal(t, 1, meta.Days[0].DayNumber)
		assert.Equal(t, "The Great Wall", meta.Days[1].Highlight)
		assert.Len(t, meta.Tips, 2)
	})

	t.Run("JSON inside a markdown fence", func(t *testing.T) {
		meta, err := parseMetaResponse("```json\n{\"summary\": \"Fenced.\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Fenced.", meta.Summary)
	})

	t.Run("JSON surrounded by prose", func(t *testing.T) {
		meta, err := parseMetaResponse(`Sure, here is the plan: {"summary": "Wrapped."} Hope it helps!`)
		require.NoError(t, err)
		assert.Equal(t, "Wrapped.", meta.Summary)
	})

	t.Run("braces inside strings do not confuse extraction", func(t *testing.T) {
		meta, err := parseMetaResponse(`{"summary": "Visit the {old} quarter \" at dusk"}`)
		require.NoError(t, err)
		assert.Equal(t, `Visit the {old} quarter " at dusk`, meta.Summary)
	})

	t.Run("failure modes", func(t *testing.T) {
		_, err := parseMetaResponse("")
		assert.Error(t, err)

		_, err = parseMetaResponse("no json here at all")
		assert.Error(t, err)

		_, err = parseMetaResponse(`{"summary": "truncated`)
		assert.Error(t, err)
	})
}

func TestParseDayResponse(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		day, err := parseDayResponse(`{
			"day_number": 2,
			"description": "A day on the wall.",
			"theme": "The Great Wall",
			"tips": ["Wear good shoes"],
			"activities": [
				{"name": "Mutianyu Great Wall", "order": 1, "duration_minutes": 240,
				 "rating": 4.9, "price_estimate": 45, "tags": ["history", "hiking"]}
			]
		}`)
		require.NoError(t, err)
		assert.Equal(t, 2, day.DayNumber)
		assert.Equal(t, "The Great Wall", day.Theme)
		require.Len(t, day.Activities, 1)

		act := day.Activities[0]
		require.NotNil(t, act.DurationMinutes)
		assert.Equal(t, 240, *act.DurationMinutes)
		require.NotNil(t, act.Rating)
		assert.Equal(t, 4.9, *act.Rating)
	})

	t.Run("absent numeric fields stay nil", func(t *testing.T) {
		day, err := parseDayResponse(`{"day_number": 1, "activities": [{"name": "X", "order": 1}]}`)
		require.NoError(t, err)
		require.Len(t, day.Activities, 1)
		assert.Nil(t, day.Activities[0].DurationMinutes)
		assert.Nil(t, day.Activities[0].Rating)
		assert.Nil(t, day.Activities[0].PriceEstimate)
	})
}
