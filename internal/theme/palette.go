package theme

// Palette maps semantic color roles to hex values. The two fixed palettes
// below are selected wholesale based on the effective dark mode.
type Palette struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Danger        string `json:"danger"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	Border        string `json:"border"`
	Grey          string `json:"grey"`
	Card          string `json:"card"`
}

var Light = Palette{
	Primary:       "#1e40af",
	Secondary:     "#3b82f6",
	Success:       "#22c55e",
	Warning:       "#f59e0b",
	Danger:        "#ef4444",
	Background:    "#f8fafc",
	Surface:       "#ffffff",
	Text:          "#1f2937",
	TextSecondary: "#6b7280",
	Border:        "#e5e7eb",
	Grey:          "#9ca3af",
	Card:          "#ffffff",
}

var Dark = Palette{
	Primary:       "#3b82f6",
	Secondary:     "#60a5fa",
	Success:       "#34d399",
	Warning:       "#fbbf24",
	Danger:        "#f87171",
	Background:    "#111827",
	Surface:       "#1f2937",
	Text:          "#f9fafb",
	TextSecondary: "#d1d5db",
	Border:        "#374151",
	Grey:          "#6b7280",
	Card:          "#1f2937",
}
