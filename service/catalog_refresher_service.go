package services

import (
	"time"

	"go.uber.org/zap"

	"mendel-server/api/directory"
	"mendel-server/dao/redis"
)

// CatalogRefresherService periodically refreshes the restaurant catalog
// from the upstream directory API.
type CatalogRefresherService struct {
	restaurantDao *redis.RedisRestaurantDAO
	directoryAPI  directory.DirectoryAPI
	logger        *zap.SugaredLogger
}

// NewCatalogRefresherService constructs a refresher with its dependencies.
func NewCatalogRefresherService(
	restaurantDao *redis.RedisRestaurantDAO,
	directoryAPI directory.DirectoryAPI,
	logger *zap.SugaredLogger,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		restaurantDao: restaurantDao,
		directoryAPI:  directoryAPI,
		logger:        logger,
	}
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		cr.logger.Infof("[CatalogRefresherService] Running periodic catalog refresh")
		if err := cr.RefreshCatalog(); err != nil {
			cr.logger.Errorf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
		} else {
			cr.logger.Infof("[CatalogRefresherService] RefreshCatalog completed successfully")
		}
	}
}

// RefreshCatalog fetches the upstream catalog, dedupes it by ID and name,
// and upserts every entry into the geo index. Individual upsert failures
// are logged and skipped so one bad record never aborts the refresh.
func (cr *CatalogRefresherService) RefreshCatalog() error {
	restaurants, err := cr.directoryAPI.GetRestaurants()
	if err != nil {
		return err
	}
	cr.logger.Infof("[CatalogRefresherService] Fetched %d restaurants from directory", len(restaurants))

	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	upserted := 0

	for _, r := range restaurants {
		if r.ID == "" {
			cr.logger.Warnf("[CatalogRefresherService] Skipping restaurant with empty ID (name=%q)", r.Name)
			continue
		}
		if _, dup := seenIDs[r.ID]; dup {
			cr.logger.Debugf("[CatalogRefresherService] Skipping duplicate restaurant ID=%s", r.ID)
			continue
		}
		if _, dup := seenNames[r.Name]; dup && r.Name != "" {
			cr.logger.Debugf("[CatalogRefresherService] Skipping duplicate restaurant Name=%q", r.Name)
			continue
		}

		seenIDs[r.ID] = struct{}{}
		seenNames[r.Name] = struct{}{}

		if err := cr.restaurantDao.UpsertRestaurant(r); err != nil {
			cr.logger.Errorf("[CatalogRefresherService] Upsert failed for %s: %v", r.ID, err)
			continue
		}
		upserted++
	}

	cr.logger.Infof("[CatalogRefresherService] Upserted %d restaurants", upserted)
	return nil
}
