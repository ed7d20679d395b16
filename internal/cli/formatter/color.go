package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmagro/tracao/internal/domain"
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

// Predefined lipgloss styles.
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

// HealthIndicator returns a colored health badge such as "● Forte".
func HealthIndicator(status domain.HealthStatus, label string) string {
	switch status {
	case domain.HealthForte:
		return StyleGreen.Render("● " + label)
	case domain.HealthEstavel:
		return StyleBlue.Render("● " + label)
	case domain.HealthAtencao:
		return StyleYellow.Render("● " + label)
	case domain.HealthNegligenciada:
		return StyleRed.Render("● " + label)
	case domain.HealthStandby:
		return StyleDim.Render("○ " + label)
	default:
		return StyleDim.Render("● " + label)
	}
}

// ModeBadge returns a styled front mode indicator.
func ModeBadge(mode domain.FrontMode) string {
	switch mode {
	case domain.ModeAceleracao:
		return StylePurple.Render("▲ aceleração")
	case domain.ModeManutencao:
		return StyleBlue.Render("● manutenção")
	case domain.ModeStandby:
		return StyleDim.Render("○ standby")
	default:
		return StyleDim.Render(string(mode))
	}
}

// SessionStatePill returns a colored state indicator for a deep-work session.
func SessionStatePill(state domain.SessionState) string {
	switch state {
	case domain.SessionActive:
		return StyleGreen.Render("● ativa")
	case domain.SessionCompleted:
		return StyleBlue.Render("✔ completa")
	case domain.SessionBroken:
		return StyleRed.Render("✖ quebrada")
	default:
		return StyleDim.Render(string(state))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
