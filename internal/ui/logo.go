package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ASCII Art Logo
const asciiLogo = `
   ____    _    _     ____
  / ___|  / \  | |   / ___|
 | |     / _ \ | |  | |
 | |___ / ___ \| |__| |___
  \____/_/   \_\_____\____|
`

// GenerateLogo returns the gradient styled logo
func GenerateLogo() string {
	lines := strings.Split(strings.Trim(asciiLogo, "\n"), "\n")
	var coloredLines []string

	for i, line := range lines {
		var color string

		// Simple manual gradient approximation
		switch i {
		case 0:
			color = "#00BFFF" // Deep Sky Blue
		case 1:
			color = "#1E90FF" // Dodger Blue
		case 2:
			color = "#4169E1" // Royal Blue
		case 3:
			color = "#8A2BE2" // Blue Violet
		case 4:
			color = "#FF00FF" // Magenta
		default:
			color = "#FFF"
		}

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		coloredLines = append(coloredLines, style.Render(line))
	}

	return strings.Join(coloredLines, "\n")
}
