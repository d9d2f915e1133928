package gateway

import (
	"context"
	"strconv"
	"time"

	"github.com/avoronin/cityride/internal/models"
)

// nowFn is a test seam for the clock.
var nowFn = time.Now

// demoProfile is the fixed account every login resolves to. Only the email
// is taken from the caller.
var demoProfile = models.UserSession{
	ID:             "1",
	Name:           "John Doe",
	Email:          "john.doe@example.com",
	Phone:          "+1 (555) 123-4567",
	MemberSince:    "2023-01-15",
	TotalTrips:     47,
	FavoriteRoutes: []string{"Route 42", "Route 15"},
}

// Mock simulates the remote authentication backend: a configurable
// round-trip delay followed by a deterministic success. It accepts any
// credentials; rejecting empty ones is the session store's job.
type Mock struct {
	latency       time.Duration
	tokenSecret   []byte
	tokenValidity time.Duration
}

// NewMock constructs the demo backend. latency is the simulated network
// round trip; zero means no delay (tests).
func NewMock(tokenSecret []byte, latency, tokenValidity time.Duration) *Mock {
	return &Mock{latency: latency, tokenSecret: tokenSecret, tokenValidity: tokenValidity}
}

// Authenticate waits out the simulated round trip and returns the demo
// profile with the caller's email merged in.
func (m *Mock) Authenticate(ctx context.Context, email, password string) (*models.UserSession, string, error) {
	if err := m.roundTrip(ctx); err != nil {
		return nil, "", err
	}

	user := demoProfile.Clone()
	user.Email = email

	token, err := IssueToken(user.ID, m.tokenSecret, m.tokenValidity)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CreateAccount waits out the simulated round trip and synthesizes a brand
// new account: time-derived identifier, zero trips, no favorites,
// member since today.
func (m *Mock) CreateAccount(ctx context.Context, data models.RegisterData) (*models.UserSession, string, error) {
	if err := m.roundTrip(ctx); err != nil {
		return nil, "", err
	}

	now := nowFn()
	user := &models.UserSession{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		MemberSince:    now.Format("2006-01-02"),
		TotalTrips:     0,
		FavoriteRoutes: []string{},
	}

	token, err := IssueToken(user.ID, m.tokenSecret, m.tokenValidity)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (m *Mock) roundTrip(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(m.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
