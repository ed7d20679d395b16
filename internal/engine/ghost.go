package engine

import "github.com/dmagro/tracao/internal/domain"

// IsGhostFront reports whether a front has gone dark: not deliberately parked
// in standby, yet showing zero project traction and zero task-A signal.
//
// This predicate is intentionally kept separate from ClassifyFrontHealth.
// The classifier treats "has active projects" as a softer "atencao" outcome,
// while ghost detection ignores project count entirely; a front with stalled
// active projects can be atencao there and still be a ghost here.
func IsGhostFront(mode domain.FrontMode, projectsWithTraction int, hasTaskASignal bool) bool {
	if mode == domain.ModeStandby {
		return false
	}
	return projectsWithTraction == 0 && !hasTaskASignal
}
