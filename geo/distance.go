// Package geo provides great-circle distance math for ranking and radius filtering.
package geo

import "math"

// EARTH_RADIUS_MILES is the mean Earth radius used by the haversine formula.
const EARTH_RADIUS_MILES = 3959.0

// DistanceMiles computes the haversine distance in miles between two
// latitude/longitude pairs given in decimal degrees. Non-finite inputs
// propagate NaN; callers validate coordinates first (see FiniteCoords).
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degreesToRadians(lat1)
	lat2Rad := degreesToRadians(lat2)
	deltaLat := degreesToRadians(lat2 - lat1)
	deltaLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EARTH_RADIUS_MILES * c
}

// FiniteCoords reports whether both values are finite numbers, i.e. usable
// as a coordinate pair.
func FiniteCoords(lat, lon float64) bool {
	return isFinite(lat) && isFinite(lon)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
