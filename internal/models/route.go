package models

// RouteStatus describes the live state of a bus route.
type RouteStatus string

const (
	RouteStatusActive  RouteStatus = "active"
	RouteStatusDelayed RouteStatus = "delayed"
	RouteStatusOffline RouteStatus = "offline"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BusStop is one stop on a route's itinerary.
type BusStop struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ETA         string      `json:"eta"`
	Passed      bool        `json:"passed"`
	Coordinates Coordinates `json:"coordinates"`
}

// BusRoute is a tracked bus line with its itinerary and live snapshot data.
// All of it is fabricated demo data; there is no real feed behind it.
type BusRoute struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Destination      string      `json:"destination"`
	NextArrival      string      `json:"nextArrival"`
	Status           RouteStatus `json:"status"`
	Occupancy        int         `json:"occupancy"`
	Speed            int         `json:"speed"`
	Driver           string      `json:"driver"`
	Stops            []BusStop   `json:"stops"`
	CurrentStopIndex int         `json:"currentStopIndex"`
	Coordinates      Coordinates `json:"coordinates"`
}

// Connection is a bookable point-to-point trip with a unit price.
type Connection struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
}
