// Package render displays companion reports in the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI colors used across companion output
const (
	ColorCyan   = lipgloss.Color("12") // Session header/footer
	ColorYellow = lipgloss.Color("11") // Warnings, spinner
	ColorGreen  = lipgloss.Color("10") // Explanation section
	ColorRed    = lipgloss.Color("9")  // Errors
	ColorGray   = lipgloss.Color("8")  // Dim/secondary (timing, meta info)
)

// Symbols
const (
	SymbolWarning = "⚠"
	SymbolError   = "✗"
	SymbolInfo    = "→"
	SymbolDone    = "✓"
)

// Style definitions using Lip Gloss
var (
	// HeaderStyle is used for the session header banner
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// SectionStyle is used for section titles within a report
	SectionStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)

	// RuleStyle is used for horizontal divider lines
	RuleStyle = lipgloss.NewStyle().Foreground(ColorGray)

	// WarningStyle is used for user-visible warnings
	WarningStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// ErrorStyle is used for error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)

	// InfoStyle is used for informational messages
	InfoStyle = lipgloss.NewStyle().Foreground(ColorGray)

	// DimStyle is used for secondary information like timing
	DimStyle = lipgloss.NewStyle().Foreground(ColorGray)
)
