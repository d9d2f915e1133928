package gateway

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errInvalidToken = errors.New("invalid token")

// Claims includes the registered claims plus the account identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// IssueToken mints an HS256 access token for the given account.
func IssueToken(userID string, secret []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID: userID,
	})

	return token.SignedString(secret)
}

// userIDFromToken verifies the token signature and returns the account
// identifier embedded in it. Test helper; nothing outside this package
// consumes tokens since the mock backend is the only issuer.
func userIDFromToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", errInvalidToken
	}
	return claims.UserID, nil
}
