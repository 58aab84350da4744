package services

import (
	"time"

	"go.uber.org/zap"

	"mendel-server/bus"
	"mendel-server/dao/redis"
	"mendel-server/models"
	"mendel-server/models/restaurant"
)

// RestaurantService orchestrates catalog reads and filter searches.
type RestaurantService struct {
	restaurantDao *redis.RedisRestaurantDAO
	filterBus     *bus.FilterBus
	searchTimeout time.Duration
	logger        *zap.SugaredLogger
}

// NewRestaurantService constructs the service with its dependencies.
func NewRestaurantService(
	restaurantDao *redis.RedisRestaurantDAO,
	filterBus *bus.FilterBus,
	searchTimeout time.Duration,
	logger *zap.SugaredLogger,
) *RestaurantService {
	return &RestaurantService{
		restaurantDao: restaurantDao,
		filterBus:     filterBus,
		searchTimeout: searchTimeout,
		logger:        logger,
	}
}

// Search loads the catalog and runs it through the filter bus, waiting for
// the matching (throttled) result. If no result arrives before the timeout
// the unfiltered catalog is returned rather than an error, mirroring the
// bus's degrade-to-stale policy.
func (s *RestaurantService) Search(
	searchQuery string,
	activeFilters models.ActiveFilters,
	userLocation *models.UserLocation,
) ([]restaurant.Restaurant, error) {
	catalog, err := s.restaurantDao.GetAllRestaurants()
	if err != nil {
		return nil, err
	}

	request := models.NewFilterRequest(catalog, searchQuery, activeFilters, userLocation)

	resultCh := make(chan models.FilterResult, 1)
	unsubscribe := s.filterBus.Subscribe(func(result models.FilterResult) {
		if result.ID != request.ID {
			return
		}
		select {
		case resultCh <- result:
		default:
		}
	})
	defer unsubscribe()

	s.filterBus.PostRequest(request)

	select {
	case result := <-resultCh:
		return result.Restaurants, nil
	case <-time.After(s.searchTimeout):
		// Another request may have superseded ours inside the throttle
		// window (last-write-wins); answer with the raw catalog.
		s.logger.Warnf("[RestaurantService] No filter result for request id=%s within %v, returning unfiltered catalog", request.ID, s.searchTimeout)
		return catalog, nil
	}
}

// NearbyRestaurants returns restaurants within radiusMiles of a point,
// straight from the geo index.
func (s *RestaurantService) NearbyRestaurants(lat, lon, radiusMiles float64) ([]restaurant.Restaurant, error) {
	return s.restaurantDao.GetNearbyRestaurants(lat, lon, radiusMiles)
}
