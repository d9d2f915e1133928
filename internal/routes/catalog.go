// Package routes holds the fixed route catalog and its search filter.
// The catalog is fabricated demo data standing in for a live feed.
package routes

import (
	"strings"

	"github.com/avoronin/cityride/internal/models"
)

// Catalog is an ordered set of bus routes. Order is the declaration order
// and is preserved by Search.
type Catalog []models.BusRoute

// Search returns the routes whose name or destination contains query as a
// case-insensitive substring. An empty query returns the full catalog.
// No fuzzy matching, no ranking; pure.
func (c Catalog) Search(query string) Catalog {
	if query == "" {
		return append(Catalog(nil), c...)
	}

	q := strings.ToLower(query)
	out := make(Catalog, 0, len(c))
	for _, r := range c {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Destination), q) {
			out = append(out, r)
		}
	}
	return out
}

// Default returns the demo catalog.
func Default() Catalog {
	return Catalog{
		{
			ID:               "1",
			Name:             "Route 42",
			Destination:      "Downtown Terminal",
			NextArrival:      "3 min",
			Status:           models.RouteStatusActive,
			Occupancy:        65,
			Speed:            35,
			Driver:           "John Smith",
			CurrentStopIndex: 2,
			Coordinates:      models.Coordinates{Lat: 40.7128, Lng: -74.0060},
			Stops: []models.BusStop{
				{ID: "1", Name: "Central Station", ETA: "Passed", Passed: true, Coordinates: models.Coordinates{Lat: 40.7589, Lng: -73.9851}},
				{ID: "2", Name: "City Mall", ETA: "Passed", Passed: true, Coordinates: models.Coordinates{Lat: 40.7505, Lng: -73.9934}},
				{ID: "3", Name: "University Ave", ETA: "3 min", Coordinates: models.Coordinates{Lat: 40.7282, Lng: -73.9942}},
				{ID: "4", Name: "Hospital District", ETA: "8 min", Coordinates: models.Coordinates{Lat: 40.7200, Lng: -74.0000}},
				{ID: "5", Name: "Downtown Terminal", ETA: "15 min", Coordinates: models.Coordinates{Lat: 40.7128, Lng: -74.0060}},
			},
		},
		{
			ID:               "2",
			Name:             "Route 15",
			Destination:      "Airport",
			NextArrival:      "7 min",
			Status:           models.RouteStatusDelayed,
			Occupancy:        80,
			Speed:            25,
			Driver:           "Sarah Johnson",
			CurrentStopIndex: 1,
			Coordinates:      models.Coordinates{Lat: 40.6892, Lng: -74.1745},
			Stops: []models.BusStop{
				{ID: "1", Name: "Main Street", ETA: "Passed", Passed: true, Coordinates: models.Coordinates{Lat: 40.7300, Lng: -74.0000}},
				{ID: "2", Name: "Business Park", ETA: "7 min", Coordinates: models.Coordinates{Lat: 40.7100, Lng: -74.0500}},
				{ID: "3", Name: "Tech Campus", ETA: "12 min", Coordinates: models.Coordinates{Lat: 40.7000, Lng: -74.1000}},
				{ID: "4", Name: "Airport", ETA: "25 min", Coordinates: models.Coordinates{Lat: 40.6892, Lng: -74.1745}},
			},
		},
		{
			ID:               "3",
			Name:             "Route 8",
			Destination:      "Riverside",
			NextArrival:      "12 min",
			Status:           models.RouteStatusActive,
			Occupancy:        45,
			Speed:            40,
			Driver:           "Mike Davis",
			CurrentStopIndex: 0,
			Coordinates:      models.Coordinates{Lat: 40.7400, Lng: -73.9900},
			Stops: []models.BusStop{
				{ID: "1", Name: "Metro Center", ETA: "12 min", Coordinates: models.Coordinates{Lat: 40.7400, Lng: -73.9900}},
				{ID: "2", Name: "Park Avenue", ETA: "18 min", Coordinates: models.Coordinates{Lat: 40.7600, Lng: -73.9700}},
				{ID: "3", Name: "Riverside", ETA: "28 min", Coordinates: models.Coordinates{Lat: 40.7800, Lng: -73.9500}},
			},
		},
	}
}

// Connections returns the popular bookable connections shown on the booking
// screen. Prices are per passenger.
func Connections() []models.Connection {
	return []models.Connection{
		{From: "Central Station", To: "Downtown Terminal", Price: 2.50, Duration: "15 min"},
		{From: "Main Street", To: "Airport", Price: 5.00, Duration: "25 min"},
		{From: "Metro Center", To: "Riverside", Price: 3.25, Duration: "20 min"},
		{From: "University Ave", To: "Hospital District", Price: 2.00, Duration: "12 min"},
	}
}
