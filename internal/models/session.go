// Package models defines the data records shared across the cityride core:
// the user session, its registration payload, tickets, and bus routes.
package models

// UserSession is the in-memory representation of "who is currently using the
// app". It is persisted as a flat JSON record under the storage key "user".
//
// Invariant: a session installed in the store always has a non-empty ID.
// There is a single active session per device; no multi-account support.
type UserSession struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Avatar         string   `json:"avatar,omitempty"`
	MemberSince    string   `json:"memberSince"`
	TotalTrips     int      `json:"totalTrips"`
	FavoriteRoutes []string `json:"favoriteRoutes"`
}

// Clone returns a deep copy so callers cannot mutate store-owned state.
func (u *UserSession) Clone() *UserSession {
	if u == nil {
		return nil
	}
	c := *u
	if u.FavoriteRoutes != nil {
		c.FavoriteRoutes = append([]string(nil), u.FavoriteRoutes...)
	}
	return &c
}

// RegisterData is the payload collected by a registration form.
// Password-confirmation and strength checks belong to the form, not here.
type RegisterData struct {
	Name     string
	Email    string
	Phone    string
	Password string
}
