package console_test

import (
	"testing"

	"github.com/lambda-feedback/tool-launcher/internal/console"
	"github.com/stretchr/testify/assert"
)

func TestColorFor_UsesSeparatePalettes(t *testing.T) {
	assert.Equal(t, console.Color("\033[1;32m"), console.ColorFor(0, console.Stdout))
	assert.Equal(t, console.Color("\033[1;91m"), console.ColorFor(0, console.Stderr))
	assert.Equal(t, console.Color("\033[1;34m"), console.ColorFor(1, console.Stdout))
	assert.Equal(t, console.Color("\033[1;93m"), console.ColorFor(1, console.Stderr))
}

func TestColorFor_Cycles(t *testing.T) {
	for i := 0; i < 6; i++ {
		assert.Equal(t, console.ColorFor(i, console.Stdout), console.ColorFor(i+6, console.Stdout))
		assert.Equal(t, console.ColorFor(i, console.Stderr), console.ColorFor(i+12, console.Stderr))
	}
}

func TestColorFor_DistinctWithinPalette(t *testing.T) {
	seen := map[console.Color]bool{}
	for i := 0; i < 6; i++ {
		seen[console.ColorFor(i, console.Stdout)] = true
		seen[console.ColorFor(i, console.Stderr)] = true
	}
	assert.Len(t, seen, 12)
}

func TestParseColorMode(t *testing.T) {
	tests := map[string]console.ColorMode{
		"":        console.ColorAlways,
		"always":  console.ColorAlways,
		"AUTO":    console.ColorAuto,
		" never ": console.ColorNever,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			mode, err := console.ParseColorMode(input)
			assert.NoError(t, err)
			assert.Equal(t, expected, mode)
		})
	}

	_, err := console.ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestColorMode_Enabled(t *testing.T) {
	assert.True(t, console.ColorAlways.Enabled(nil))
	assert.False(t, console.ColorNever.Enabled(nil))
	assert.False(t, console.ColorAuto.Enabled(nil))
}
