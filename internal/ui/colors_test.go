package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestBlend(t *testing.T) {
	fg := lipgloss.Color("#ffffff")
	bg := lipgloss.Color("#000000")

	tests := []struct {
		opacity float64
		want    lipgloss.Color
	}{
		{1, "#ffffff"},
		{0, "#000000"},
		{-3, "#000000"},
		{7, "#ffffff"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Blend(fg, bg, tt.opacity), "opacity %v", tt.opacity)
	}
}

func TestBlendPassesThroughNonHex(t *testing.T) {
	require.Equal(t, lipgloss.Color("12"), Blend("12", "#000000", 0.5))
}
