// Package filter implements the restaurant predicate chain, the open-now
// evaluator and the distance-based ranker.
package filter

import (
	"strings"
	"time"

	"mendel-server/geo"
	"mendel-server/models"
	"mendel-server/models/restaurant"
)

// Engine applies the predicate chain over a candidate set. Predicates are
// an AND conjunction; each one is skipped when its input is empty.
type Engine struct {
	now func() time.Time
}

// NewEngine constructs an Engine evaluating open-now against the local clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock constructs an Engine with an injected clock.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Apply returns the subset of restaurants passing every enabled predicate,
// preserving input order. Zero-value entries from malformed upstream data
// are dropped unconditionally.
func (e *Engine) Apply(
	restaurants []restaurant.Restaurant,
	searchQuery string,
	activeFilters models.ActiveFilters,
	userLocation *models.UserLocation,
) []restaurant.Restaurant {
	query := strings.ToLower(strings.TrimSpace(searchQuery))
	radius := activeFilters.Radius()
	dietaryKnown := restaurant.KnownKosherType(activeFilters.Dietary)
	now := e.now()

	out := make([]restaurant.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r.ID == "" && r.Name == "" {
			continue
		}
		if query != "" && !matchesQuery(&r, query) {
			continue
		}
		if activeFilters.Agency != "" && !containsFold(r.CertifyingAgency, activeFilters.Agency) {
			continue
		}
		if dietaryKnown && !strings.EqualFold(r.KosherType, activeFilters.Dietary) {
			continue
		}
		if activeFilters.Category != "" && !containsFold(r.ListingType, activeFilters.Category) {
			continue
		}
		if activeFilters.OpenNow && !OpenNow(r.Hours, now) {
			continue
		}
		if activeFilters.NearMe && userLocation != nil && radius > 0 {
			lat, lon, ok := r.Coordinates()
			if !ok {
				continue
			}
			if geo.DistanceMiles(userLocation.Latitude, userLocation.Longitude, lat, lon) > radius {
				continue
			}
		}
		out = append(out, r)
	}

	return out
}

// matchesQuery reports whether any searchable field contains the
// already-lowercased query.
func matchesQuery(r *restaurant.Restaurant, query string) bool {
	for _, field := range []string{
		r.Name, r.Address, r.City, r.State, r.ListingType, r.CertifyingAgency,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
