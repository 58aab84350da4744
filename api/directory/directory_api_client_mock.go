package directory

import (
	"fmt"

	"mendel-server/config"
	"mendel-server/models/restaurant"
	"mendel-server/util"
)

// DirectoryApiClientMock serves the catalog from a JSON fixture on disk,
// for dev environments and tests.
type DirectoryApiClientMock struct {
	fixturePath string
}

// NewDirectoryApiClientMock creates a mock backed by the default fixture.
func NewDirectoryApiClientMock() *DirectoryApiClientMock {
	return &DirectoryApiClientMock{
		fixturePath: config.GetResourcePath(config.RESTAURANTS_RESOURCE),
	}
}

// NewDirectoryApiClientMockWithPath creates a mock backed by a specific file.
func NewDirectoryApiClientMockWithPath(path string) *DirectoryApiClientMock {
	return &DirectoryApiClientMock{fixturePath: path}
}

// GetRestaurants reads the fixture catalog.
func (c *DirectoryApiClientMock) GetRestaurants() ([]restaurant.Restaurant, error) {
	return util.ReadRestaurantsFromJSON(c.fixturePath)
}

// GetRestaurant looks a restaurant up in the fixture catalog by ID.
func (c *DirectoryApiClientMock) GetRestaurant(id string) (*restaurant.Restaurant, error) {
	restaurants, err := util.ReadRestaurantsFromJSON(c.fixturePath)
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i], nil
		}
	}
	return nil, fmt.Errorf("restaurant not found: %s", id)
}
