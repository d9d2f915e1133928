package cli

import (
	"context"
	"fmt"

	"github.com/avoronin/cityride/internal/theme"
)

// Theme shows or sets the theme mode. Without an argument it prints the
// current mode and the resolved palette.
func (a *App) Theme(ctx context.Context, arg string) error {
	if arg == "" {
		p := a.prefs.Palette()
		fmt.Printf("Theme: %s (dark: %v)\n", a.prefs.Mode(), a.prefs.IsDark())
		fmt.Printf("Palette: primary=%s background=%s text=%s\n", p.Primary, p.Background, p.Text)
		return nil
	}

	switch mode := theme.Mode(arg); mode {
	case theme.ModeLight, theme.ModeDark, theme.ModeSystem:
		a.prefs.SetMode(ctx, mode)
		fmt.Println("Theme set to", mode)
	default:
		fmt.Println("Usage: theme [light|dark|system]")
	}
	return nil
}
