// Package color provides the ANSI and brand colors used across the interface.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

// High-intensity ANSI extension.
var (
	HiRed    = New("9")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Brand colors taken from the TrendSpotter navbar.
var (
	Brand     = New("#2563eb")
	Badge     = New("#14b8a6")
	Slate900  = New("#0f172a")
	Slate500  = New("#64748b")
	Slate400  = New("#94a3b8")
	Slate200  = New("#e2e8f0")
	Highlight = New("#f8fafc")
)
