package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Money formats an amount with two decimals and a pound sign.
func Money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-£" + d.Neg().StringFixed(2)
	}
	return "£" + d.StringFixed(2)
}

// MoneyFloat formats a float amount the way Money does.
func MoneyFloat(f float64) string {
	return Money(decimal.NewFromFloat(f))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Checkbox renders a selection mark.
func Checkbox(selected bool) string {
	if selected {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}
