package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mendel-server/models"
	"mendel-server/models/restaurant"
)

func TestPlotDistanceChart(t *testing.T) {
	restaurants := []restaurant.Restaurant{
		{
			ID: "1", Name: "Kosher Deli",
			Latitude: restaurant.NewCoord(25.76), Longitude: restaurant.NewCoord(-80.19),
		},
		{
			ID: "2", Name: "Dairy Spot",
			Latitude: restaurant.NewCoord(25.77), Longitude: restaurant.NewCoord(-80.20),
		},
		{ID: "3", Name: "Bagel Basement"},
	}
	loc := models.UserLocation{Latitude: 25.765, Longitude: -80.195}
	outPath := filepath.Join(t.TempDir(), "distances.html")

	require.NoError(t, PlotDistanceChart(restaurants, loc, outPath))

	rendered, err := os.ReadFile(outPath)
	require.NoError(t, err)
	html := string(rendered)

	assert.Contains(t, html, "Kosher Deli")
	assert.Contains(t, html, "Dairy Spot")
	// Coordinate-less restaurants are skipped.
	assert.NotContains(t, html, "Bagel Basement")
}

func TestPlotDistanceChart_BadPath(t *testing.T) {
	loc := models.UserLocation{Latitude: 25.765, Longitude: -80.195}
	err := PlotDistanceChart(nil, loc, filepath.Join(t.TempDir(), "missing", "distances.html"))
	assert.Error(t, err)
}
