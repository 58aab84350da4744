package di

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"mendel-server/api"
	"mendel-server/api/directory"
	"mendel-server/bus"
	"mendel-server/config"
	"mendel-server/dao/redis"
	"mendel-server/db"
	"mendel-server/filter"
	"mendel-server/server"
	"mendel-server/server/handlers"
	services "mendel-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config              *config.Config
	Logger              *zap.SugaredLogger
	RedisClient         db.RedisClient
	RestaurantDao       *redis.RedisRestaurantDAO
	DirectoryAPI        directory.DirectoryAPI
	FilterEngine        *filter.Engine
	FilterBus           *bus.FilterBus
	RestaurantService   *services.RestaurantService
	CatalogRefresher    *services.CatalogRefresherService
	RestaurantHandler   *handlers.RestaurantHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	DirectoryHttpServer *server.DirectoryHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}
	logger := zapLogger.Sugar()
	logger.Infof("[Container] Initializing - env: %s", cfg.Env)

	ctx := context.Background()

	var redisClient db.RedisClient
	if cfg.Env != "prod" {
		logger.Infof("[Container] Using in-memory redis client")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		internalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		geoClient := db.NewGeoRedisClient(ctx, internalClient, logger)
		if err := geoClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		redisClient = geoClient
	}

	restaurantDao := redis.NewRedisRestaurantDAO(redisClient, logger)

	var directoryAPI directory.DirectoryAPI
	if cfg.Env != "prod" {
		logger.Infof("[Container] Using fixture-backed directory api")
		directoryAPI = directory.NewDirectoryApiClientMock()
	} else {
		logger.Infof("[Container] Using prod directory api at %s", cfg.DirectoryBaseURL)
		directoryAPI = directory.NewDirectoryApiClient(api.NewHTTPClient(cfg.DirectoryBaseURL))
	}

	filterEngine := filter.NewEngine()
	filterBus := bus.NewFilterBus(filterEngine, cfg.ThrottleWindow, logger)

	restaurantService := services.NewRestaurantService(restaurantDao, filterBus, cfg.SearchTimeout, logger)
	catalogRefresher := services.NewCatalogRefresherService(restaurantDao, directoryAPI, logger)

	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, logger)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(restaurantHandler, muxRouter)
	directoryHttpServer := server.NewDirectoryHttpServer(router, muxRouter, cfg.ServerAddr, logger)
	directoryHttpServer.OnShutdown(filterBus.Dispose)

	return &Container{
		Config:              cfg,
		Logger:              logger,
		RedisClient:         redisClient,
		RestaurantDao:       restaurantDao,
		DirectoryAPI:        directoryAPI,
		FilterEngine:        filterEngine,
		FilterBus:           filterBus,
		RestaurantService:   restaurantService,
		CatalogRefresher:    catalogRefresher,
		RestaurantHandler:   restaurantHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		DirectoryHttpServer: directoryHttpServer,
	}
}
