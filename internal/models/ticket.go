package models

// TicketStatus classifies a ticket's lifecycle state. Tickets are created
// active; nothing in the core transitions them automatically.
type TicketStatus string

const (
	TicketStatusActive  TicketStatus = "active"
	TicketStatusUsed    TicketStatus = "used"
	TicketStatusExpired TicketStatus = "expired"
)

// Ticket is a single booked trip. Ownership is by ledger membership only;
// tickets carry no reference back to the session that booked them.
type Ticket struct {
	ID     string       `json:"id"`
	Route  string       `json:"route"`
	From   string       `json:"from"`
	To     string       `json:"to"`
	Date   string       `json:"date"`
	Time   string       `json:"time"`
	Price  float64      `json:"price"`
	Status TicketStatus `json:"status"`
}
