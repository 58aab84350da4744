package main

import (
	"log"

	"mendel-server/config"
	"mendel-server/di"
	"mendel-server/filter"
	"mendel-server/models"
	"mendel-server/util"
)

const debugLat = 25.765
const debugLon = -80.195

// plotCatalogDistances renders a distance chart of the current catalog
// around a fixed debug location, handy for eyeballing ranker output.
func plotCatalogDistances(container *di.Container) {
	restaurants, err := container.RestaurantDao.GetAllRestaurants()
	if err != nil {
		container.Logger.Errorf("[Main] Failed to load catalog for distance chart: %v", err)
		return
	}

	loc := models.UserLocation{Latitude: debugLat, Longitude: debugLon}
	ranked := filter.RankByDistance(restaurants, &loc)
	if err := util.PlotDistanceChart(ranked, loc, "restaurant_distances.html"); err != nil {
		container.Logger.Errorf("[Main] Failed to render distance chart: %v", err)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container := di.NewContainer(cfg)
	logger := container.Logger

	logger.Infof("[Main] Refreshing catalog")
	if err := container.CatalogRefresher.RefreshCatalog(); err != nil {
		logger.Errorf("[Main] Initial catalog refresh failed: %v", err)
	}

	if cfg.Env != "prod" {
		plotCatalogDistances(container)
	}

	logger.Infof("[Main] Starting periodic refresh job every %v", cfg.RefreshInterval)
	container.CatalogRefresher.StartPeriodicJob(cfg.RefreshInterval)

	logger.Infof("[Main] Starting server")
	container.DirectoryHttpServer.Start()
}
