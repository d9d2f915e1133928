package tickets

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronin/cityride/internal/common"
	"github.com/avoronin/cityride/internal/gateway"
	"github.com/avoronin/cityride/internal/kvstore"
	"github.com/avoronin/cityride/internal/logging"
	"github.com/avoronin/cityride/internal/models"
	"github.com/avoronin/cityride/internal/session"
)

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	gw := gateway.NewMock([]byte("test-secret"), 0, time.Hour)
	s := session.NewStore(gw, kvstore.NewMemoryRepository(), logging.NewNopLogger())
	s.Load(context.Background())
	return s
}

func newAuthenticatedLedger(t *testing.T) (*Ledger, *session.Store) {
	t.Helper()
	sessions := newSessionStore(t)
	require.True(t, sessions.Login(context.Background(), "jane@x.com", "pw"))
	return NewLedger(sessions, logging.NewNopLogger()), sessions
}

func TestNewLedger_StartsWithSeedTickets(t *testing.T) {
	l := NewLedger(newSessionStore(t), logging.NewNopLogger())

	tickets := l.List()
	require.Len(t, tickets, 3)
	assert.Equal(t, "Route 42", tickets[0].Route)
	assert.Equal(t, models.TicketStatusActive, tickets[0].Status)
	assert.Equal(t, models.TicketStatusUsed, tickets[1].Status)
	assert.Equal(t, models.TicketStatusExpired, tickets[2].Status)
}

func TestBook_NoSession_Unauthorized_NoMutation(t *testing.T) {
	l := NewLedger(newSessionStore(t), logging.NewNopLogger())
	before := len(l.List())

	ticket, err := l.Book(context.Background(), BookRequest{
		Route: "Route 42", From: "Central Station", To: "Downtown Terminal", Price: 2.50,
	})

	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Nil(t, ticket)
	assert.Len(t, l.List(), before)
}

func TestBook_EmptyStops_Validation_NoMutation(t *testing.T) {
	l, _ := newAuthenticatedLedger(t)
	before := len(l.List())

	for _, req := range []BookRequest{
		{Route: "Route 42", From: "", To: "Downtown Terminal", Price: 2.50},
		{Route: "Route 42", From: "Central Station", To: "", Price: 2.50},
	} {
		ticket, err := l.Book(context.Background(), req)
		require.ErrorIs(t, err, common.ErrValidation)
		assert.Nil(t, ticket)
	}
	assert.Len(t, l.List(), before)
}

func TestBook_PrependsActiveTicket(t *testing.T) {
	fixed := time.Date(2024, 3, 7, 14, 30, 0, 0, time.UTC)
	orig := nowFn
	nowFn = func() time.Time { return fixed }
	t.Cleanup(func() { nowFn = orig })

	l, _ := newAuthenticatedLedger(t)
	before := len(l.List())

	ticket, err := l.Book(context.Background(), BookRequest{
		Route: "Route 42", From: "Central Station", To: "Downtown Terminal", Price: 2.50,
	})
	require.NoError(t, err)

	tickets := l.List()
	require.Len(t, tickets, before+1)
	assert.Equal(t, *ticket, tickets[0])
	assert.Equal(t, strconv.FormatInt(fixed.UnixMilli(), 10), ticket.ID)
	assert.Equal(t, "2024-03-07", ticket.Date)
	assert.Equal(t, "14:30", ticket.Time)
	assert.Equal(t, models.TicketStatusActive, ticket.Status)
	assert.Equal(t, 2.50, ticket.Price)
}

func TestBook_SameMillisecond_IDsStayUnique(t *testing.T) {
	fixed := time.Date(2024, 3, 7, 14, 30, 0, 0, time.UTC)
	orig := nowFn
	nowFn = func() time.Time { return fixed }
	t.Cleanup(func() { nowFn = orig })

	l, _ := newAuthenticatedLedger(t)

	first, err := l.Book(context.Background(), BookRequest{
		Route: "Route 42", From: "Central Station", To: "Downtown Terminal", Price: 2.50,
	})
	require.NoError(t, err)

	second, err := l.Book(context.Background(), BookRequest{
		Route: "Route 15", From: "Main Street", To: "Airport", Price: 5.00,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, strconv.FormatInt(fixed.UnixMilli(), 10), first.ID)
	assert.Equal(t, strconv.FormatInt(fixed.UnixMilli()+1, 10), second.ID)

	seen := map[string]bool{}
	for _, tk := range l.List() {
		assert.False(t, seen[tk.ID], "duplicate ticket id %s", tk.ID)
		seen[tk.ID] = true
	}
}

func TestBook_MultipliesUnitPriceByPassengers(t *testing.T) {
	l, _ := newAuthenticatedLedger(t)

	ticket, err := l.Book(context.Background(), BookRequest{
		Route: "Route 15", From: "Main Street", To: "Airport", Price: 5.00, Passengers: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 15.00, ticket.Price)

	// no passenger count: the caller's price is taken verbatim
	ticket, err = l.Book(context.Background(), BookRequest{
		Route: "Route 15", From: "Main Street", To: "Airport", Price: 7.50,
	})
	require.NoError(t, err)
	assert.Equal(t, 7.50, ticket.Price)
}

func TestList_IsRestartable(t *testing.T) {
	l, _ := newAuthenticatedLedger(t)

	first := l.List()
	second := l.List()
	assert.Equal(t, first, second)

	// the returned slice is a copy
	first[0].Route = "tampered"
	assert.Equal(t, second, l.List())
}

func TestFilter_PureAndOrdered(t *testing.T) {
	l, _ := newAuthenticatedLedger(t)

	active := l.Filter(func(tk models.Ticket) bool { return tk.Status == models.TicketStatusActive })
	require.Len(t, active, 1)
	assert.Equal(t, "Route 42", active[0].Route)

	assert.Len(t, l.List(), 3)
}

func TestScenario_RegisterThenBook(t *testing.T) {
	sessions := newSessionStore(t)
	ctx := context.Background()

	ok := sessions.Register(ctx, models.RegisterData{
		Name: "Jane Doe", Email: "jane@x.com", Phone: "555", Password: "abcdef",
	})
	require.True(t, ok)
	require.Zero(t, sessions.Current().TotalTrips)

	l := NewLedger(sessions, logging.NewNopLogger())
	_, err := l.Book(ctx, BookRequest{
		Route: "Route 42", From: "Central Station", To: "Downtown Terminal", Price: 2.5,
	})
	require.NoError(t, err)

	tickets := l.List()
	assert.Equal(t, 2.5, tickets[0].Price)
	assert.Equal(t, models.TicketStatusActive, tickets[0].Status)
}
