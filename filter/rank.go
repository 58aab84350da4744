package filter

import (
	"sort"

	"mendel-server/geo"
	"mendel-server/models"
	"mendel-server/models/restaurant"
)

// RankByDistance stable-sorts restaurants ascending by haversine distance
// from the user. Restaurants without finite coordinates sort after all
// others, keeping their relative input order. With no user location the
// input order is returned untouched.
func RankByDistance(
	restaurants []restaurant.Restaurant,
	userLocation *models.UserLocation,
) []restaurant.Restaurant {
	if userLocation == nil {
		return restaurants
	}

	ranked := make([]restaurant.Restaurant, len(restaurants))
	copy(ranked, restaurants)

	sort.SliceStable(ranked, func(i, j int) bool {
		di, iOK := distanceFrom(&ranked[i], userLocation)
		dj, jOK := distanceFrom(&ranked[j], userLocation)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return di < dj
	})

	return ranked
}

func distanceFrom(r *restaurant.Restaurant, loc *models.UserLocation) (float64, bool) {
	lat, lon, ok := r.Coordinates()
	if !ok {
		return 0, false
	}
	return geo.DistanceMiles(loc.Latitude, loc.Longitude, lat, lon), true
}
