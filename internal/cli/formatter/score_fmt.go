package formatter

import (
	"fmt"
	"strings"

	"github.com/dmagro/tracao/internal/domain"
)

// FormatScore renders the gamification state, optionally with the delta the
// last outcome contributed.
func FormatScore(state *domain.GamificationState, delta *int) string {
	var b strings.Builder

	score := Bold(fmt.Sprintf("%d pts", state.CurrentScore))
	if delta != nil {
		score += "  (" + SignedPoints(*delta) + ")"
	}
	b.WriteString("Pontuação:       " + score + "\n")
	b.WriteString(fmt.Sprintf("Semana:          %d pts\n", state.WeeklyScore))

	streak := fmt.Sprintf("%d dia(s)", state.StreakDays)
	if state.StreakDays >= 7 {
		streak = StyleGreen.Render(streak + " 🔥")
	}
	b.WriteString("Sequência:       " + streak + "\n")

	debt := fmt.Sprintf("%d", state.ExecutionDebt)
	if state.ExecutionDebt > 0 {
		debt = StyleRed.Render(debt)
	}
	b.WriteString("Dívida:          " + debt + "\n")

	return RenderBox("Placar", b.String())
}
