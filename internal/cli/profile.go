package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avoronin/cityride/internal/session"
)

// Profile prints the current session.
func (a *App) Profile(ctx context.Context) error {
	u := a.sessions.Current()
	if u == nil {
		fmt.Println("Not signed in")
		return nil
	}

	fmt.Println("Name:        ", u.Name)
	fmt.Println("Email:       ", u.Email)
	fmt.Println("Phone:       ", u.Phone)
	fmt.Println("Member since:", u.MemberSince)
	fmt.Println("Total trips: ", u.TotalTrips)
	if len(u.FavoriteRoutes) > 0 {
		fmt.Println("Favorites:   ", strings.Join(u.FavoriteRoutes, ", "))
	}
	return nil
}

// Update prompts for new profile fields; empty input keeps the old value.
func (a *App) Update(ctx context.Context) error {
	if a.sessions.Current() == nil {
		fmt.Println("Not signed in")
		return nil
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "New phone (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	a.sessions.UpdateProfile(ctx, session.ProfilePatch{Name: name, Phone: phone})
	fmt.Println("Profile updated")
	return nil
}
