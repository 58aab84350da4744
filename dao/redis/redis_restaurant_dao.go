// Package redis persists the restaurant catalog in a Redis geo set, with
// one JSON blob per restaurant member key.
package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mendel-server/db"
	"mendel-server/models/restaurant"
)

const RESTAURANTS_GEO_KEY_V1 = "restaurants_geo_v1"
const RESTAURANTS_GEO_MEMBER_FORMAT_V1 = "restaurants_geo_member_v1:%s"

// noCoordsLat/Lon park coordinate-less restaurants at the origin geo slot;
// they stay retrievable by key scan but never match a realistic radius.
const noCoordsLat = 0.0
const noCoordsLon = 0.0

// RedisRestaurantDAO handles restaurant catalog operations using Redis.
type RedisRestaurantDAO struct {
	client db.RedisClient
	logger *zap.SugaredLogger
}

// NewRedisRestaurantDAO initializes the DAO with the Redis client.
func NewRedisRestaurantDAO(client db.RedisClient, logger *zap.SugaredLogger) *RedisRestaurantDAO {
	return &RedisRestaurantDAO{client: client, logger: logger}
}

// UpsertRestaurant stores the restaurant as a geo member plus JSON payload.
func (dao *RedisRestaurantDAO) UpsertRestaurant(r restaurant.Restaurant) error {
	if r.ID == "" {
		return fmt.Errorf("refusing to upsert restaurant with empty ID (name=%q)", r.Name)
	}

	lat, lon, ok := r.Coordinates()
	if !ok {
		lat, lon = noCoordsLat, noCoordsLon
	}

	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(RESTAURANTS_GEO_MEMBER_FORMAT_V1, r.ID)
	return dao.client.AddLocationWithJSON(ctx, RESTAURANTS_GEO_KEY_V1, memberKey, lat, lon, r)
}

// GetNearbyRestaurants retrieves restaurants within radiusMiles of a point.
func (dao *RedisRestaurantDAO) GetNearbyRestaurants(lat, lon, radiusMiles float64) ([]restaurant.Restaurant, error) {
	payloads, err := dao.client.GetLocationsWithinRadiusMiles(RESTAURANTS_GEO_KEY_V1, lat, lon, radiusMiles)
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby restaurants: %w", err)
	}
	return dao.decodeAll(payloads)
}

// GetAllRestaurants loads the full catalog, the candidate set for the
// filter engine.
func (dao *RedisRestaurantDAO) GetAllRestaurants() ([]restaurant.Restaurant, error) {
	pattern := fmt.Sprintf(RESTAURANTS_GEO_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurant keys: %w", err)
	}

	restaurants := make([]restaurant.Restaurant, 0, len(keys))
	for _, key := range keys {
		payload, err := dao.client.Get(key)
		if err != nil {
			dao.logger.Warnf("[RedisRestaurantDAO] Skipping key %s: %v", key, err)
			continue
		}
		var r restaurant.Restaurant
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			dao.logger.Warnf("[RedisRestaurantDAO] Skipping unparsable payload at %s: %v", key, err)
			continue
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, nil
}

// ListAllRestaurantIDs returns all restaurant IDs present in the catalog.
func (dao *RedisRestaurantDAO) ListAllRestaurantIDs() ([]string, error) {
	pattern := fmt.Sprintf(RESTAURANTS_GEO_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurant keys: %w", err)
	}

	prefix := fmt.Sprintf(RESTAURANTS_GEO_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteRestaurant removes a restaurant's payload by ID.
func (dao *RedisRestaurantDAO) DeleteRestaurant(id string) error {
	key := fmt.Sprintf(RESTAURANTS_GEO_MEMBER_FORMAT_V1, id)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete restaurant key %s: %w", key, err)
	}
	dao.logger.Infof("[RedisRestaurantDAO] Deleted restaurant %s", id)
	return nil
}

func (dao *RedisRestaurantDAO) decodeAll(payloads []string) ([]restaurant.Restaurant, error) {
	restaurants := make([]restaurant.Restaurant, 0, len(payloads))
	for _, payload := range payloads {
		var r restaurant.Restaurant
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			return nil, fmt.Errorf("failed to unmarshal restaurant JSON: %w", err)
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, nil
}
