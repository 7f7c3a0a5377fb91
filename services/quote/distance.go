package quote

import (
	"math"

	"movelink/models"
)

// Trip classification thresholds, in metres.
const (
	localLimitMeters    = 20000.0
	regionalLimitMeters = 100000.0
)

// DistanceMeters returns the great-circle distance between two points.
// Callers must only pass coordinates that were validated when the points
// were resolved; this function does not re-validate.
func DistanceMeters(a, b models.GeoPoint) float64 {
	return haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude) * 1000
}

// Classify maps a distance in metres to a trip category. The boundary
// values 20000 and 100000 are both Regional.
func Classify(meters float64) models.TripClassification {
	switch {
	case meters < localLimitMeters:
		return models.TripLocal
	case meters <= regionalLimitMeters:
		return models.TripRegional
	default:
		return models.TripLongHaul
	}
}

// haversine calculates the great-circle distance (in km) between two lat/lon points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
