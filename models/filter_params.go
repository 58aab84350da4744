package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ActiveFilters mirrors the filter options accepted by the engine. Use
// zero-values to skip a predicate.
type ActiveFilters struct {
	Agency   string `json:"agency,omitempty"`
	Dietary  string `json:"dietary,omitempty" validate:"omitempty,oneof=meat dairy pareve"`
	Category string `json:"category,omitempty"`
	OpenNow  bool   `json:"openNow,omitempty"`
	NearMe   bool   `json:"nearMe,omitempty"`

	// Two spellings for the same radius bound, in miles; DistanceRadius
	// wins when both are set. See Radius.
	DistanceRadius float64 `json:"distanceRadius,omitempty" validate:"gte=0"`
	MaxDistance    float64 `json:"maxDistance,omitempty" validate:"gte=0"`
}

// Radius resolves the configured radius bound in miles. Zero means no bound.
func (f ActiveFilters) Radius() float64 {
	if f.DistanceRadius > 0 {
		return f.DistanceRadius
	}
	return f.MaxDistance
}

// Validate checks the filter set at the input boundary, before any
// predicate runs.
func (f ActiveFilters) Validate() error {
	return validate.Struct(f)
}

// UserLocation is the requester's position in decimal degrees. Supplied per
// filter request; never persisted.
type UserLocation struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Validate bounds-checks the coordinate pair.
func (l UserLocation) Validate() error {
	return validate.Struct(l)
}
