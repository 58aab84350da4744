package restaurant

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Known kosher classifications. Matching is case-insensitive everywhere.
const (
	KOSHER_MEAT   = "meat"
	KOSHER_DAIRY  = "dairy"
	KOSHER_PAREVE = "pareve"
)

// KnownKosherType reports whether s is one of the three recognized
// classifications, ignoring case.
func KnownKosherType(s string) bool {
	switch strings.ToLower(s) {
	case KOSHER_MEAT, KOSHER_DAIRY, KOSHER_PAREVE:
		return true
	}
	return false
}

// Restaurant represents a directory entry eligible for filtering and ranking.
type Restaurant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`

	// Upstream feeds encode coordinates as JSON numbers or numeric strings.
	Latitude  Coord `json:"latitude"`
	Longitude Coord `json:"longitude"`

	KosherType       string `json:"kosher_type,omitempty"`
	CertifyingAgency string `json:"certifying_agency,omitempty"`
	ListingType      string `json:"listing_type,omitempty"`

	Hours WeekHours `json:"hours,omitempty"`
}

// Coordinates returns the restaurant's position. ok is false when either
// coordinate is missing or non-finite; such restaurants never pass radius
// filtering and always rank after restaurants with coordinates.
func (r *Restaurant) Coordinates() (lat, lon float64, ok bool) {
	if !r.Latitude.Valid || !r.Longitude.Valid {
		return 0, 0, false
	}
	return r.Latitude.Value, r.Longitude.Value, true
}

func (r *Restaurant) ToString() string {
	return fmt.Sprintf("Restaurant(id=%s, name=%s, lat=%v, lon=%v)",
		r.ID, r.Name, r.Latitude.Value, r.Longitude.Value)
}

// Coord is a latitude or longitude accepting either a JSON number or a
// numeric string. Anything else parses as invalid rather than erroring, so
// one bad record never aborts a whole batch.
type Coord struct {
	Value float64
	Valid bool
}

// UnmarshalJSON accepts a number, a numeric string, or null.
func (c *Coord) UnmarshalJSON(data []byte) error {
	c.Value, c.Valid = 0, false

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch val := raw.(type) {
	case float64:
		c.set(val)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			c.set(f)
		}
	}
	return nil
}

// MarshalJSON emits the numeric value, or null when invalid.
func (c Coord) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

func (c *Coord) set(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return
	}
	c.Value = f
	c.Valid = true
}

// NewCoord builds a valid Coord; mostly a test and fixture convenience.
func NewCoord(f float64) Coord {
	var c Coord
	c.set(f)
	return c
}
