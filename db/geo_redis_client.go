package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GeoRedisClient backs the catalog with Redis geo sets plus one JSON blob
// per member key.
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
	logger *zap.SugaredLogger
}

// NewGeoRedisClient wraps an already-configured go-redis client.
func NewGeoRedisClient(ctx context.Context, client *redis.Client, logger *zap.SugaredLogger) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
		logger: logger,
	}
}

// Set stores a key-value pair without expiry.
func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a key.
func (r *GeoRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// AddLocationWithJSON stores a geolocation member and its JSON payload.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON for member %s: %w", memberKey, err)
	}

	if _, err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lon,
	}).Result(); err != nil {
		return fmt.Errorf("failed to add geolocation: %w", err)
	}

	if err := r.client.Set(ctx, memberKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data: %w", err)
	}

	r.logger.Debugf("[GeoRedisClient] Added geolocation and JSON for member %s", memberKey)
	return nil
}

// GetLocationsWithinRadiusMiles finds all members within radiusMiles of the
// given point and returns their JSON payloads. Members whose payload is
// missing are skipped rather than failing the whole query.
func (r *GeoRedisClient) GetLocationsWithinRadiusMiles(geoKey string, lat, lon, radiusMiles float64) ([]string, error) {
	results, err := r.client.GeoRadius(r.ctx, geoKey, lon, lat, &redis.GeoRadiusQuery{
		Radius: radiusMiles,
		Unit:   "mi",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query geo radius on %s: %w", geoKey, err)
	}

	var payloads []string
	for _, loc := range results {
		data, err := r.client.Get(r.ctx, loc.Name).Result()
		if err != nil {
			r.logger.Warnf("[GeoRedisClient] Skipping member %s: %v", loc.Name, err)
			continue
		}
		payloads = append(payloads, data)
	}

	return payloads, nil
}

func (r *GeoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GeoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *GeoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
