package cli

import (
	"context"
	"fmt"
)

// Routes lists the route catalog, optionally filtered by a search query
// matching route name or destination.
func (a *App) Routes(ctx context.Context, query string) error {
	found := a.catalog.Search(query)
	if len(found) == 0 {
		fmt.Println("No routes found")
		return nil
	}

	for _, r := range found {
		fmt.Printf("%-10s -> %-20s next: %-7s %s (occupancy %d%%)\n",
			r.Name, r.Destination, r.NextArrival, r.Status, r.Occupancy)
	}
	return nil
}
