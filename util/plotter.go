package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"mendel-server/geo"
	"mendel-server/models"
	"mendel-server/models/restaurant"
)

// PlotDistanceChart renders an HTML bar chart of each restaurant's distance
// from the user, a debugging aid for eyeballing ranker output. Restaurants
// without coordinates are skipped.
func PlotDistanceChart(restaurants []restaurant.Restaurant, userLocation models.UserLocation, outPath string) error {
	var names []string
	var distances []opts.BarData
	for _, r := range restaurants {
		lat, lon, ok := r.Coordinates()
		if !ok {
			continue
		}
		names = append(names, r.Name)
		distances = append(distances, opts.BarData{
			Value: geo.DistanceMiles(userLocation.Latitude, userLocation.Longitude, lat, lon),
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Restaurant Distances",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Distance from user (miles)",
		}),
	)
	bar.SetXAxis(names).AddSeries("miles", distances)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file %q: %w", outPath, err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
