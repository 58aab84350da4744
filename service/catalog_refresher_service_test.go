package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mendel-server/dao/redis"
	"mendel-server/db"
	"mendel-server/models/restaurant"
)

type stubDirectoryAPI struct {
	restaurants []restaurant.Restaurant
	err         error
}

func (s *stubDirectoryAPI) GetRestaurants() ([]restaurant.Restaurant, error) {
	return s.restaurants, s.err
}

func (s *stubDirectoryAPI) GetRestaurant(id string) (*restaurant.Restaurant, error) {
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			return &s.restaurants[i], nil
		}
	}
	return nil, fmt.Errorf("restaurant not found: %s", id)
}

func TestCatalogRefresher_UpsertsAndDedupes(t *testing.T) {
	dao := redis.NewRedisRestaurantDAO(db.NewMockRedisClient(context.Background()), zap.NewNop().Sugar())
	api := &stubDirectoryAPI{restaurants: []restaurant.Restaurant{
		{ID: "1", Name: "Kosher Deli"},
		{ID: "1", Name: "Kosher Deli Duplicate ID"},
		{ID: "2", Name: "Kosher Deli"}, // duplicate name
		{ID: "3", Name: "Dairy Spot"},
		{Name: "No ID"},
	}}

	refresher := NewCatalogRefresherService(dao, api, zap.NewNop().Sugar())
	require.NoError(t, refresher.RefreshCatalog())

	ids, err := dao.ListAllRestaurantIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "3"}, ids)
}

func TestCatalogRefresher_PropagatesFetchError(t *testing.T) {
	dao := redis.NewRedisRestaurantDAO(db.NewMockRedisClient(context.Background()), zap.NewNop().Sugar())
	api := &stubDirectoryAPI{err: errors.New("directory unavailable")}

	refresher := NewCatalogRefresherService(dao, api, zap.NewNop().Sugar())
	assert.Error(t, refresher.RefreshCatalog())
}
