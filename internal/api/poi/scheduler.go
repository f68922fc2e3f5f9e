package poi

import (
	"fmt"
	"strings"

	"github.com/roamplan/roamplan/internal/types"
)

const (
	dayStartMinutes        = 9 * 60 // every day starts at 09:00
	interActivityBufferMin = 30     // meals, rest, queueing
)

func formatClock(minutesOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minutesOfDay/60, minutesOfDay%60)
}

// ScheduleDay packs the given POIs into a single day's timeline, in
// order. Each activity dwells for the pace-scaled duration, followed by a
// fixed buffer; travel time between consecutive POIs is added only when
// both carry coordinates. A pool shorter than the pace's target simply
// yields a shorter day.
func ScheduleDay(pois []types.POI, city, pace, transportMode string) []types.Activity {
	activities := make([]types.Activity, 0, len(pois))
	currentTime := dayStartMinutes

	for i, p := range pois {
		duration := ActivityDuration(p, pace)
		start := currentTime
		end := start + duration

		rating := p.Rating
		if rating == 0 {
			rating = 4.5
		}
		priceRange := p.PriceRange
		if priceRange == "" {
			priceRange = "$"
		}
		priceEstimate := p.PriceEstimate
		if priceEstimate == 0 {
			priceEstimate = 50
		}
		poiType := p.Type
		if poiType == "" {
			poiType = "culture"
		}

		activities = append(activities, types.Activity{
			Name:            p.Name,
			Type:            poiType,
			Address:         p.Address,
			Latitude:        p.Latitude,
			Longitude:       p.Longitude,
			StartTime:       formatClock(start),
			EndTime:         formatClock(end),
			DurationMinutes: duration,
			Description:     describePOI(p, city),
			Rating:          rating,
			PriceRange:      priceRange,
			PriceEstimate:   priceEstimate,
			Tags:            append([]string(nil), p.Tags...),
			Order:           i + 1,
		})

		currentTime = end + interActivityBufferMin

		if i+1 < len(pois) {
			next := pois[i+1]
			if p.HasCoordinates() && next.HasCoordinates() {
				distance := DistanceKm(*p.Latitude, *p.Longitude, *next.Latitude, *next.Longitude)
				currentTime += TravelTimeMinutes(distance, transportMode)
			}
		}
	}

	return activities
}

func describePOI(p types.POI, city string) string {
	if len(p.Tags) == 0 {
		return fmt.Sprintf("%s is one of %s's signature sights.", p.Name, city)
	}
	return fmt.Sprintf("%s is one of %s's signature sights: %s.", p.Name, city, strings.Join(p.Tags, ", "))
}
