// Package styles provides the terminal styling for cronfile output.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colors keep output readable on light and dark terminals.
var (
	Amber  = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}
	Teal   = lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#2dd4bf"}
	Green  = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}
	Red    = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
	Slate  = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94a3b8"}
	Ink    = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#e2e8f0"}
	Smoke  = lipgloss.AdaptiveColor{Light: "#cbd5e1", Dark: "#334155"}
	Canvas = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#0f172a"}

	// Semantic colors
	ColorPrimary = Amber
	ColorInfo    = Teal
	ColorSuccess = Green
	ColorWarning = Amber
	ColorError   = Red

	ColorText      = Ink
	ColorTextMuted = Slate
	ColorBg        = Canvas
	ColorBorder    = Smoke
)
