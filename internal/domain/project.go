package domain

import "time"

type Project struct {
	ID             string
	FrontID        string
	Name           string
	Status         ProjectStatus
	LastActivityAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasTraction reports whether the project saw strategic activity within the
// lookback window ending at ref.
func (p *Project) HasTraction(ref time.Time, windowDays int) bool {
	if p.LastActivityAt == nil {
		return false
	}
	cutoff := ref.AddDate(0, 0, -windowDays)
	return !p.LastActivityAt.Before(cutoff)
}
