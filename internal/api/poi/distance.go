package poi

import "math"

const earthRadiusKm = 6371

// transportSpeedKmh maps a transport mode to an average speed. Unknown
// modes fall back to defaultSpeedKmh.
var transportSpeedKmh = map[string]float64{
	"driving":   50,
	"walking":   5,
	"transit":   30,
	"bicycling": 15,
	"taxi":      45,
}

const defaultSpeedKmh = 30

// DistanceKm returns the haversine great-circle distance in kilometres.
// Callers must not pass coordinates for POIs that have none.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// TravelTimeMinutes estimates door-to-door travel time for a distance and
// transport mode, with a 10% buffer and a floor of 5 minutes.
func TravelTimeMinutes(distanceKm float64, transportMode string) int {
	speed, ok := transportSpeedKmh[transportMode]
	if !ok {
		speed = defaultSpeedKmh
	}
	minutes := int(distanceKm / speed * 60 * 1.1)
	if minutes < 5 {
		return 5
	}
	return minutes
}
