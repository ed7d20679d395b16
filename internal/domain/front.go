package domain

import "time"

// Front is a top-level context (company, life area) under which projects and
// tasks are organized.
type Front struct {
	ID         string
	Name       string
	Mode       FrontMode
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
