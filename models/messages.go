package models

import (
	"mendel-server/models/restaurant"

	"github.com/google/uuid"
)

// Message kinds carried by the filter bus envelopes.
const (
	KIND_FILTER_RESTAURANTS        = "FILTER_RESTAURANTS"
	KIND_FILTER_RESTAURANTS_RESULT = "FILTER_RESTAURANTS_RESULT"
)

// FilterRequest asks the filter worker for one filter+rank pass over the
// given candidate set.
type FilterRequest struct {
	Kind          string                  `json:"kind"`
	ID            string                  `json:"id"`
	Restaurants   []restaurant.Restaurant `json:"restaurants"`
	SearchQuery   string                  `json:"searchQuery"`
	ActiveFilters ActiveFilters           `json:"activeFilters"`
	UserLocation  *UserLocation           `json:"userLocation,omitempty"`
}

// NewFilterRequest builds a tagged request envelope with a fresh ID.
func NewFilterRequest(
	restaurants []restaurant.Restaurant,
	searchQuery string,
	activeFilters ActiveFilters,
	userLocation *UserLocation,
) FilterRequest {
	return FilterRequest{
		Kind:          KIND_FILTER_RESTAURANTS,
		ID:            uuid.NewString(),
		Restaurants:   restaurants,
		SearchQuery:   searchQuery,
		ActiveFilters: activeFilters,
		UserLocation:  userLocation,
	}
}

// FilterResult carries the filtered, ranked set back to subscribers. ID
// matches the request that produced it.
type FilterResult struct {
	Kind        string                  `json:"kind"`
	ID          string                  `json:"id"`
	Restaurants []restaurant.Restaurant `json:"restaurants"`
}
