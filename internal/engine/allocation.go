package engine

import "math"

// PlannedShare is a user-set planned percentage for one front.
type PlannedShare struct {
	FrontID   string
	FrontName string
	Pct       int
}

// AllocationRow compares planned against actual share for one front.
type AllocationRow struct {
	FrontID       string
	FrontName     string
	PlannedPct    int
	ActualPct     int
	DeltaPct      int
	ActualMinutes int
}

// BuildAllocationRows merges planned shares with an actual minutes snapshot.
// Row order is planned fronts first, then fronts that only show up in the
// snapshot. Actual percentages are apportioned with the largest-remainder
// method, so they sum to exactly 100 whenever the snapshot has minutes.
// When the snapshot has no minutes, every actual percentage is 0.
func BuildAllocationRows(planned []PlannedShare, snap MinutesSnapshot) []AllocationRow {
	var rows []AllocationRow
	index := make(map[string]int)

	for _, p := range planned {
		index[p.FrontID] = len(rows)
		rows = append(rows, AllocationRow{
			FrontID:    p.FrontID,
			FrontName:  p.FrontName,
			PlannedPct: ClampPct(p.Pct),
		})
	}

	actual := apportionPct(snap.Fronts, snap.TotalMinutes)
	for j, f := range snap.Fronts {
		i, seen := index[f.FrontID]
		if !seen {
			i = len(rows)
			index[f.FrontID] = i
			rows = append(rows, AllocationRow{FrontID: f.FrontID, FrontName: f.FrontName})
		}
		if rows[i].FrontName == "" {
			rows[i].FrontName = f.FrontName
		}
		rows[i].ActualMinutes = f.Minutes
		rows[i].ActualPct = actual[j]
	}

	for i := range rows {
		rows[i].DeltaPct = rows[i].ActualPct - rows[i].PlannedPct
	}

	return rows
}

// apportionPct splits 100 across fronts in proportion to their minutes. Each
// front starts from the floor of its exact share; the leftover points go to
// the largest fractional remainders, earlier fronts winning ties. Independent
// per-front rounding could overshoot 100 (101 and 99 minutes round to 51 and
// 50); apportioning cannot.
func apportionPct(fronts []FrontMinutes, total int) []int {
	pcts := make([]int, len(fronts))
	if total <= 0 || len(fronts) == 0 {
		return pcts
	}

	remainders := make([]float64, len(fronts))
	assigned := 0
	for i, f := range fronts {
		exact := float64(f.Minutes) * 100 / float64(total)
		pcts[i] = int(exact)
		remainders[i] = exact - float64(pcts[i])
		assigned += pcts[i]
	}

	for n := 100 - assigned; n > 0; n-- {
		best := 0
		for i, r := range remainders {
			if r > remainders[best] {
				best = i
			}
		}
		pcts[best]++
		remainders[best] = -1
	}
	return pcts
}

// AveragePlannedPct averages weekly planned percentages for a month. Weeks
// without a plan are skipped rather than counted as zero.
func AveragePlannedPct(weekly []int) int {
	if len(weekly) == 0 {
		return 0
	}
	sum := 0
	for _, v := range weekly {
		sum += v
	}
	return ClampPct(roundPct(float64(sum) / float64(len(weekly))))
}

// ClampPct bounds a percentage to [0, 100].
func ClampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func roundPct(v float64) int {
	return int(math.Round(v))
}
