// Package gateway defines the authentication backend the session store talks
// to. The shipped implementation is a mock that fabricates demo accounts;
// a real backend can be substituted without touching the session store.
package gateway

import (
	"context"

	"github.com/avoronin/cityride/internal/models"
)

// Gateway is the remote-authentication collaborator.
//
// Contract:
//   - Authenticate: exchange credentials for a user profile and an access token.
//   - CreateAccount: register a new account and sign it in.
//
// Both methods must honor context cancellation.
type Gateway interface {
	Authenticate(ctx context.Context, email, password string) (*models.UserSession, string, error)
	CreateAccount(ctx context.Context, data models.RegisterData) (*models.UserSession, string, error)
}
