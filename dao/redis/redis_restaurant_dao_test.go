package redis

import (
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"mendel-server/db"
	"mendel-server/models/restaurant"
)

func newTestDao() (*RedisRestaurantDAO, *db.MockRedisClient) {
	mockClient := db.NewMockRedisClient(context.Background())
	return NewRedisRestaurantDAO(mockClient, zap.NewNop().Sugar()), mockClient
}

func TestRedisRestaurantDAO_UpsertRestaurant_Success(t *testing.T) {
	dao, mockClient := newTestDao()

	testRestaurant := restaurant.Restaurant{
		ID:        "r-123",
		Name:      "Test Deli",
		Latitude:  restaurant.NewCoord(40.7128),
		Longitude: restaurant.NewCoord(-74.0060),
	}

	if err := dao.UpsertRestaurant(testRestaurant); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expectedKey := "restaurants_geo_member_v1:r-123"
	storedValue, err := mockClient.Get(expectedKey)
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}

	var stored restaurant.Restaurant
	if err := json.Unmarshal([]byte(storedValue), &stored); err != nil {
		t.Fatalf("Failed to unmarshal stored restaurant data: %v", err)
	}
	if stored.ID != testRestaurant.ID {
		t.Errorf("Expected ID %s, got %s", testRestaurant.ID, stored.ID)
	}
}

func TestRedisRestaurantDAO_UpsertRestaurant_EmptyID(t *testing.T) {
	dao, _ := newTestDao()
	if err := dao.UpsertRestaurant(restaurant.Restaurant{Name: "No ID"}); err == nil {
		t.Fatal("Expected error for restaurant with empty ID")
	}
}

func TestRedisRestaurantDAO_UpsertRestaurant_NoCoordinates(t *testing.T) {
	dao, _ := newTestDao()

	// Coordinate-less restaurants are still stored and retrievable.
	if err := dao.UpsertRestaurant(restaurant.Restaurant{ID: "r-nc", Name: "No Coords"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	all, err := dao.GetAllRestaurants()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 restaurant, got %d", len(all))
	}
	if _, _, ok := all[0].Coordinates(); ok {
		t.Error("Expected stored restaurant to remain coordinate-less")
	}
}

func TestRedisRestaurantDAO_GetNearbyRestaurants_Success(t *testing.T) {
	dao, _ := newTestDao()

	_ = dao.UpsertRestaurant(restaurant.Restaurant{
		ID: "r-1", Name: "Deli One",
		Latitude: restaurant.NewCoord(40.7128), Longitude: restaurant.NewCoord(-74.0060),
	})
	_ = dao.UpsertRestaurant(restaurant.Restaurant{
		ID: "r-2", Name: "Deli Two",
		Latitude: restaurant.NewCoord(40.7130), Longitude: restaurant.NewCoord(-74.0050),
	})

	restaurants, err := dao.GetNearbyRestaurants(40.7128, -74.0060, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(restaurants) != 2 {
		t.Errorf("Expected 2 restaurants, got %d", len(restaurants))
	}

	expectedIDs := map[string]bool{"r-1": true, "r-2": true}
	for _, r := range restaurants {
		if !expectedIDs[r.ID] {
			t.Errorf("Unexpected restaurant ID: %s", r.ID)
		}
	}
}

func TestRedisRestaurantDAO_GetNearbyRestaurants_NoResults(t *testing.T) {
	dao, _ := newTestDao()

	restaurants, err := dao.GetNearbyRestaurants(40.7128, -74.0060, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(restaurants) != 0 {
		t.Errorf("Expected no restaurants, got %d", len(restaurants))
	}
}

func TestRedisRestaurantDAO_ListAndDelete(t *testing.T) {
	dao, _ := newTestDao()

	_ = dao.UpsertRestaurant(restaurant.Restaurant{ID: "r-1", Name: "Deli One"})
	_ = dao.UpsertRestaurant(restaurant.Restaurant{ID: "r-2", Name: "Deli Two"})

	ids, err := dao.ListAllRestaurantIDs()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 IDs, got %d", len(ids))
	}

	if err := dao.DeleteRestaurant("r-1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	all, err := dao.GetAllRestaurants()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != 1 || all[0].ID != "r-2" {
		t.Errorf("Expected only r-2 to remain, got %v", all)
	}
}
