package directory

import (
	"mendel-server/api"
	"mendel-server/models/restaurant"
)

// DirectoryApiClient talks to the upstream directory over the shared
// HTTPClient.
type DirectoryApiClient struct {
	*api.HTTPClient
}

// restaurantsResponse matches the directory's list endpoint payload.
type restaurantsResponse struct {
	Restaurants []restaurant.Restaurant `json:"restaurants"`
}

// NewDirectoryApiClient creates a new instance of DirectoryApiClient.
func NewDirectoryApiClient(httpClient *api.HTTPClient) *DirectoryApiClient {
	return &DirectoryApiClient{
		HTTPClient: httpClient,
	}
}

// GetRestaurants retrieves the full restaurant catalog.
func (c *DirectoryApiClient) GetRestaurants() ([]restaurant.Restaurant, error) {
	var response restaurantsResponse
	if err := c.Request("GET", "/restaurants", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Restaurants, nil
}

// GetRestaurant retrieves a single restaurant by ID.
func (c *DirectoryApiClient) GetRestaurant(id string) (*restaurant.Restaurant, error) {
	var response restaurant.Restaurant
	if err := c.Request("GET", "/restaurants/"+id, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
