package engine

import "github.com/dmagro/tracao/internal/domain"

// PlanEntry is one task block of a day plan joined with its task's context.
type PlanEntry struct {
	FrontID    string
	FrontName  string
	Minutes    int
	Nature     domain.TaskNature
	HasProject bool
}

// FrontMinutes is the minute total for one front, in first-appearance order.
type FrontMinutes struct {
	FrontID   string
	FrontName string
	Minutes   int
}

// MinutesSnapshot aggregates planned task minutes for a date range. Computed
// fresh per request, never persisted.
type MinutesSnapshot struct {
	Fronts              []FrontMinutes
	TotalMinutes        int
	ConstructionMinutes int
	OperationMinutes    int
	// DisconnectedMinutes counts blocks whose task has no linked project.
	DisconnectedMinutes int
}

// CollectFrontMinutes sums entry minutes per front and by execution nature.
func CollectFrontMinutes(entries []PlanEntry) MinutesSnapshot {
	var snap MinutesSnapshot
	index := make(map[string]int)

	for _, e := range entries {
		if e.Minutes <= 0 {
			continue
		}

		i, seen := index[e.FrontID]
		if !seen {
			i = len(snap.Fronts)
			index[e.FrontID] = i
			snap.Fronts = append(snap.Fronts, FrontMinutes{FrontID: e.FrontID, FrontName: e.FrontName})
		}
		snap.Fronts[i].Minutes += e.Minutes
		snap.TotalMinutes += e.Minutes

		switch e.Nature {
		case domain.NatureConstrucao:
			snap.ConstructionMinutes += e.Minutes
		case domain.NatureOperacao:
			snap.OperationMinutes += e.Minutes
		}
		if !e.HasProject {
			snap.DisconnectedMinutes += e.Minutes
		}
	}

	return snap
}

// MostAndLeastResourced returns the front names with the highest and lowest
// minute totals, or empty strings when the snapshot has fewer than one front.
func (s MinutesSnapshot) MostAndLeastResourced() (most, least string) {
	if len(s.Fronts) == 0 {
		return "", ""
	}
	most, least = s.Fronts[0].FrontName, s.Fronts[0].FrontName
	maxMin, minMin := s.Fronts[0].Minutes, s.Fronts[0].Minutes
	for _, f := range s.Fronts[1:] {
		if f.Minutes > maxMin {
			maxMin, most = f.Minutes, f.FrontName
		}
		if f.Minutes < minMin {
			minMin, least = f.Minutes, f.FrontName
		}
	}
	return most, least
}
