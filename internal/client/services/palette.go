package services

// Palette is the colour set of a theme, as hex RGB strings.
type Palette struct {
	Background    string
	Surface       string
	Primary       string
	Text          string
	TextSecondary string
	Border        string
	Icon          string
}

var (
	lightPalette = Palette{
		Background:    "#FFFFFF",
		Surface:       "#F5F5F5",
		Primary:       "#007AFF",
		Text:          "#000000",
		TextSecondary: "#666666",
		Border:        "#E0E0E0",
		Icon:          "#000000",
	}
	darkPalette = Palette{
		Background:    "#000000",
		Surface:       "#1C1C1E",
		Primary:       "#0A84FF",
		Text:          "#FFFFFF",
		TextSecondary: "#8E8E93",
		Border:        "#38383A",
		Icon:          "#FFFFFF",
	}
)

// PaletteFor returns the colours of t; anything but dark gets the light set.
func PaletteFor(t Theme) Palette {
	if t == ThemeDark {
		return darkPalette
	}
	return lightPalette
}
