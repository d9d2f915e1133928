package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avoronin/cityride/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in against the demo backend.
// Empty email or password is rejected before the round trip.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !a.sessions.Login(ctx, email, password) {
		fmt.Println("Login failed: email and password are required")
		return nil
	}

	fmt.Println("Welcome back,", a.sessions.Current().Name)
	return nil
}

// Register prompts for the registration form and creates a fresh account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	// Form-level validation lives here, not in the store: the store accepts
	// any populated RegisterData.
	if name == "" || email == "" || password == "" {
		fmt.Println("Name, email and password are required")
		return nil
	}

	data := models.RegisterData{Name: name, Email: email, Phone: phone, Password: password}
	if !a.sessions.Register(ctx, data) {
		fmt.Println("Registration failed")
		return nil
	}

	fmt.Println("Account created. Welcome,", name)
	return nil
}

// Logout signs the current user out. Safe to call when anonymous.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	fmt.Println("Signed out")
	return nil
}
