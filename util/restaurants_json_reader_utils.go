package util

import (
	"encoding/json"
	"fmt"
	"os"

	"mendel-server/models/restaurant"
)

// ReadRestaurantsFromJSON loads a restaurant catalog from JSON on disk.
// Accepts either a bare array or an object with a "restaurants" field.
func ReadRestaurantsFromJSON(filePath string) ([]restaurant.Restaurant, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}

	var list []restaurant.Restaurant
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Restaurants []restaurant.Restaurant `json:"restaurants"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurants from %q: %w", filePath, err)
	}
	return wrapped.Restaurants, nil
}

// ReadRestaurantFromJSON loads a single restaurant from JSON on disk.
func ReadRestaurantFromJSON(filePath string) (*restaurant.Restaurant, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var r restaurant.Restaurant
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant: %w", err)
	}
	return &r, nil
}
