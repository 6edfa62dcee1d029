package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanner(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		assert.Equal(t, "Simple Calculator", Banner(false))
	})

	t.Run("Colored", func(t *testing.T) {
		banner := Banner(true)
		assert.Contains(t, banner, "Simple Calculator")
		// Logo lines precede the banner text
		assert.Greater(t, len(strings.Split(banner, "\n")), 1)
	})
}

func TestResultLine(t *testing.T) {
	assert.Equal(t, "Result: 9", ResultLine("9", false))
	assert.Contains(t, ResultLine("9", true), "Result: 9")
}

func TestErrorLine(t *testing.T) {
	assert.Equal(t, "Error: Cannot divide by zero.", ErrorLine("Error: Cannot divide by zero.", false))
	assert.Contains(t, ErrorLine("Invalid operator.", true), "Invalid operator.")
}

func TestGenerateLogo(t *testing.T) {
	logo := GenerateLogo()
	assert.NotEmpty(t, logo)
	assert.Len(t, strings.Split(logo, "\n"), 5)
}
