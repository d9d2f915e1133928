package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/avoronin/cityride/internal/common"
	"github.com/avoronin/cityride/internal/routes"
	"github.com/avoronin/cityride/internal/tickets"
)

// Book walks through booking a ticket on one of the popular connections.
func (a *App) Book(ctx context.Context) error {
	conns := routes.Connections()

	fmt.Println("Popular connections:")
	for i, c := range conns {
		fmt.Printf("  %d) %s -> %s  $%.2f  (%s)\n", i+1, c.From, c.To, c.Price, c.Duration)
	}

	choice, err := getSimpleText(a.reader, "Pick a connection", os.Stdout)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(conns) {
		fmt.Println("Pick a number between 1 and", len(conns))
		return nil
	}
	conn := conns[idx-1]

	passengers, err := GetInt(a.reader, "Passengers", 1, os.Stdout)
	if err != nil || passengers < 1 {
		fmt.Println("Passenger count must be a positive number")
		return nil
	}

	// The route label would come from the picked connection's route in a
	// real backend; the demo data ties every connection to Route 42.
	ticket, err := a.ledger.Book(ctx, tickets.BookRequest{
		Route:      "Route 42",
		From:       conn.From,
		To:         conn.To,
		Price:      conn.Price,
		Passengers: passengers,
	})
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Println("Please sign in to book tickets")
			return nil
		}
		if errors.Is(err, common.ErrValidation) {
			fmt.Println("Both stops are required")
			return nil
		}
		return err
	}

	fmt.Printf("Ticket booked: %s %s -> %s on %s at %s, $%.2f\n",
		ticket.Route, ticket.From, ticket.To, ticket.Date, ticket.Time, ticket.Price)
	return nil
}

// Tickets lists the ledger, most recent first.
func (a *App) Tickets(ctx context.Context) error {
	list := a.ledger.List()
	if len(list) == 0 {
		fmt.Println("No tickets yet")
		return nil
	}

	for _, t := range list {
		fmt.Printf("%-8s %-10s %s -> %s  %s %s  $%.2f\n",
			t.Status, t.Route, t.From, t.To, t.Date, t.Time, t.Price)
	}
	return nil
}
