package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner using the given color profile.
// termenv.Ascii prints it without colors.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Using a subtle gradient-like color scheme (Teal/Indigo)
	lines := []struct{ text, color string }{
		{" __      __       _    __ _              ", "#2dd4bf"},
		{" \\ \\    / /__ _ _| |__/ _| |_____ __ __  ", "#22d3ee"},
		{"  \\ \\/\\/ / _ \\ '_| / /  _| / _ \\ V  V /  ", "#38bdf8"},
		{"   \\_/\\_/\\___/_| |_\\_\\_| |_\\___/\\_/\\_/   ", "#60a5fa"},
		{"            terminal workflow client     ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
