// Package tickets holds the booked-ticket ledger for the running process.
// The ledger is deliberately not persisted: it restarts from its demo seed,
// matching the mock nature of the whole core.
package tickets

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/avoronin/cityride/internal/common"
	"github.com/avoronin/cityride/internal/logging"
	"github.com/avoronin/cityride/internal/models"
	"github.com/avoronin/cityride/internal/session"
)

// nowFn is a test seam for the clock.
var nowFn = time.Now

// Ledger is the ordered collection of booked tickets, most recent first.
// Booking is gated on an active session; tickets themselves carry no
// reference to the user who booked them.
type Ledger struct {
	sessions *session.Store
	log      logging.Logger

	mu      sync.Mutex
	tickets []models.Ticket
}

// NewLedger constructs a ledger seeded with the demo tickets.
func NewLedger(sessions *session.Store, log logging.Logger) *Ledger {
	return &Ledger{sessions: sessions, log: log, tickets: seedTickets()}
}

// BookRequest describes a booking. Price is the unit price; when Passengers
// is positive the total is unit price times passengers, otherwise Price is
// taken verbatim (callers may pass a precomputed total).
type BookRequest struct {
	Route      string
	From       string
	To         string
	Price      float64
	Passengers int
}

// Book creates a new active ticket and prepends it to the ledger.
// Fails with common.ErrUnauthorized when no session is active and with
// common.ErrValidation on empty stops; no mutation happens on failure.
func (l *Ledger) Book(ctx context.Context, req BookRequest) (*models.Ticket, error) {
	if l.sessions.Current() == nil {
		return nil, common.ErrUnauthorized
	}
	if req.From == "" || req.To == "" {
		return nil, common.ErrValidation
	}

	price := req.Price
	if req.Passengers > 0 {
		price = req.Price * float64(req.Passengers)
	}

	now := nowFn()
	ticket := models.Ticket{
		Route:  req.Route,
		From:   req.From,
		To:     req.To,
		Date:   now.Format("2006-01-02"),
		Time:   now.Format("15:04"),
		Price:  price,
		Status: models.TicketStatusActive,
	}

	l.mu.Lock()
	// Identifiers are time-derived; two bookings inside the same
	// millisecond would collide, so bump until the ID is free.
	id := now.UnixMilli()
	for l.containsLocked(strconv.FormatInt(id, 10)) {
		id++
	}
	ticket.ID = strconv.FormatInt(id, 10)
	l.tickets = append([]models.Ticket{ticket}, l.tickets...)
	l.mu.Unlock()

	l.log.Info(ctx, "ticket booked", "route", ticket.Route, "price", ticket.Price)
	return &ticket, nil
}

// containsLocked reports whether a ticket with the given ID is already in
// the ledger. Callers must hold mu.
func (l *Ledger) containsLocked(id string) bool {
	for _, t := range l.tickets {
		if t.ID == id {
			return true
		}
	}
	return false
}

// List returns a copy of the full ledger, most recent first. Safe to call
// repeatedly; it never mutates.
func (l *Ledger) List() []models.Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Ticket(nil), l.tickets...)
}

// Filter returns the tickets matching pred, in ledger order. Pure.
func (l *Ledger) Filter(pred func(models.Ticket) bool) []models.Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Ticket, 0, len(l.tickets))
	for _, t := range l.tickets {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// seedTickets returns the demo tickets every process starts with.
func seedTickets() []models.Ticket {
	return []models.Ticket{
		{
			ID:     "1",
			Route:  "Route 42",
			From:   "Central Station",
			To:     "Downtown Terminal",
			Date:   "2024-01-15",
			Time:   "14:30",
			Price:  2.50,
			Status: models.TicketStatusActive,
		},
		{
			ID:     "2",
			Route:  "Route 15",
			From:   "Main Street",
			To:     "Airport",
			Date:   "2024-01-14",
			Time:   "09:15",
			Price:  5.00,
			Status: models.TicketStatusUsed,
		},
		{
			ID:     "3",
			Route:  "Route 8",
			From:   "Metro Center",
			To:     "Riverside",
			Date:   "2024-01-10",
			Time:   "18:45",
			Price:  3.25,
			Status: models.TicketStatusExpired,
		},
	}
}
