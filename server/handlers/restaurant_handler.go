package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mendel-server/models"
	services "mendel-server/service"
)

const (
	QUERY_ARG    = "q"
	AGENCY_ARG   = "agency"
	DIETARY_ARG  = "dietary"
	CATEGORY_ARG = "category"
	OPEN_NOW_ARG = "openNow"
	NEAR_ME_ARG  = "nearMe"
	RADIUS_ARG   = "radius"
	LAT_ARG      = "lat"
	LON_ARG      = "lon"
)

// RestaurantHandler exposes the search and nearby endpoints.
type RestaurantHandler struct {
	restaurantService *services.RestaurantService
	logger            *zap.SugaredLogger
}

func NewRestaurantHandler(restaurantService *services.RestaurantService, logger *zap.SugaredLogger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		logger:            logger,
	}
}

// SearchRestaurants handles GET /v1/restaurants/search. All filter args are
// optional; lat/lon must be supplied together.
func (h *RestaurantHandler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	activeFilters := models.ActiveFilters{
		Agency:   vals.Get(AGENCY_ARG),
		Dietary:  strings.ToLower(vals.Get(DIETARY_ARG)),
		Category: vals.Get(CATEGORY_ARG),
		OpenNow:  parseArgBool(vals, OPEN_NOW_ARG),
		NearMe:   parseArgBool(vals, NEAR_ME_ARG),
	}
	if radiusStr := vals.Get(RADIUS_ARG); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			http.Error(w, "Invalid argument "+RADIUS_ARG, http.StatusBadRequest)
			return
		}
		activeFilters.DistanceRadius = radius
	}
	if err := activeFilters.Validate(); err != nil {
		http.Error(w, "Invalid filter arguments: "+err.Error(), http.StatusBadRequest)
		return
	}

	userLocation, ok := h.parseUserLocation(vals, w)
	if !ok {
		return
	}

	restaurants, err := h.restaurantService.Search(vals.Get(QUERY_ARG), activeFilters, userLocation)
	if err != nil {
		h.logger.Errorf("[RestaurantHandler] Search failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{"restaurants": restaurants})
}

// GetRestaurantsNearby handles GET /v1/restaurants/nearby.
// Expects ?lat={float}&lon={float}&radius={miles}.
func (h *RestaurantHandler) GetRestaurantsNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, err := parseArgFloat64(vals, LAT_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_ARG, http.StatusBadRequest)
		return
	}
	lon, err := parseArgFloat64(vals, LON_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_ARG, http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(vals, RADIUS_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_ARG, http.StatusBadRequest)
		return
	}

	restaurants, err := h.restaurantService.NearbyRestaurants(lat, lon, radius)
	if err != nil {
		h.logger.Errorf("[RestaurantHandler] Nearby lookup failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{"restaurants": restaurants})
}

// Ping handles GET /ping.
func (h *RestaurantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

// parseUserLocation reads the optional lat/lon pair. Returns ok=false after
// writing an error response when the pair is malformed or incomplete.
func (h *RestaurantHandler) parseUserLocation(vals url.Values, w http.ResponseWriter) (*models.UserLocation, bool) {
	latStr, lonStr := vals.Get(LAT_ARG), vals.Get(LON_ARG)
	if latStr == "" && lonStr == "" {
		return nil, true
	}
	if latStr == "" || lonStr == "" {
		http.Error(w, "Arguments lat and lon must be supplied together", http.StatusBadRequest)
		return nil, false
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		http.Error(w, "Invalid lat/lon arguments", http.StatusBadRequest)
		return nil, false
	}

	loc := &models.UserLocation{Latitude: lat, Longitude: lon}
	if err := loc.Validate(); err != nil {
		http.Error(w, "Invalid lat/lon arguments: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return loc, true
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(payload)
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	return strconv.ParseFloat(vals.Get(name), 64)
}

func parseArgBool(vals url.Values, name string) bool {
	b, _ := strconv.ParseBool(vals.Get(name))
	return b
}
