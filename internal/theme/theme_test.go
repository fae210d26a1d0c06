package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	light := New(Light)
	dark := light.Toggle()

	assert.Equal(t, Light, light.Mode, "receiver unchanged")
	assert.Equal(t, lipgloss.Color("#2c4a6d"), light.Colors.Primary)

	assert.True(t, dark.IsDark())
	assert.Equal(t, lipgloss.Color("#b4c4e9"), dark.Colors.Primary)
	assert.Equal(t, light, dark.Toggle())
}

func TestNew_UnknownModeIsLight(t *testing.T) {
	assert.Equal(t, New(Light), New("sepia"))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Light, m)

	_, err = ParseMode("neon")
	assert.Error(t, err)
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "☾", New(Light).Icon())
	assert.Equal(t, "☀", New(Dark).Icon())
}
