package directory

import "mendel-server/models/restaurant"

// DirectoryAPI defines the interface for the upstream restaurant directory.
type DirectoryAPI interface {
	GetRestaurants() ([]restaurant.Restaurant, error)
	GetRestaurant(id string) (*restaurant.Restaurant, error)
}
