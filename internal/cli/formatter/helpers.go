package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Pct renders a percentage value.
func Pct(v int) string {
	return fmt.Sprintf("%d%%", v)
}

// SignedPct renders a signed delta percentage, colored by direction.
func SignedPct(v int) string {
	switch {
	case v > 0:
		return StyleGreen.Render(fmt.Sprintf("+%d%%", v))
	case v < 0:
		return StyleRed.Render(fmt.Sprintf("%d%%", v))
	default:
		return StyleDim.Render("0%")
	}
}

// SignedPoints renders a signed score delta, colored by direction.
func SignedPoints(v int) string {
	switch {
	case v > 0:
		return StyleGreen.Render(fmt.Sprintf("+%d", v))
	case v < 0:
		return StyleRed.Render(fmt.Sprintf("%d", v))
	default:
		return StyleDim.Render("0")
	}
}
