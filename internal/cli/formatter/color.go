package formatter

import (
	"fmt"
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// EnabledPill renders an on/off indicator for an attribute or flag.
func EnabledPill(enabled bool) string {
	if enabled {
		return StyleGreen.Render("● on")
	}
	return StyleDim.Render("○ off")
}

// SectionBadge labels an attribute's section.
func SectionBadge(s domain.Section) string {
	if s == domain.SectionSystem {
		return StyleBlue.Render("system")
	}
	return StylePurple.Render("custom")
}

// ModeBadge renders the invoice view mode and breakdown level.
func ModeBadge(mode domain.ViewMode, level domain.BreakdownLevel) string {
	return StyleYellow.Render(strings.ToUpper(string(mode))) + Dim(" by "+string(level))
}
