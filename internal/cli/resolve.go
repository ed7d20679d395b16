package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveFrontID accepts a front name (case-insensitive), a full UUID or a
// UUID prefix and returns the canonical front id.
func resolveFrontID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("front is required")
	}

	fronts, err := app.Fronts.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, f := range fronts {
		if strings.EqualFold(f.Name, input) {
			return f.ID, nil
		}
	}
	for _, f := range fronts {
		if f.ID == input {
			return f.ID, nil
		}
	}

	var matches []string
	for _, f := range fronts {
		if strings.HasPrefix(f.ID, input) {
			matches = append(matches, f.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("front not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("front %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTaskID accepts a task title (case-insensitive, searched across open
// tasks of all fronts), a full UUID or a UUID prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task is required")
	}

	if task, err := app.Tasks.GetByID(ctx, input); err == nil {
		return task.ID, nil
	}

	fronts, err := app.Fronts.List(ctx, false)
	if err != nil {
		return "", err
	}

	var byTitle, byPrefix []string
	for _, f := range fronts {
		tasks, err := app.Tasks.ListOpenByFront(ctx, f.ID)
		if err != nil {
			return "", err
		}
		for _, t := range tasks {
			if strings.EqualFold(t.Title, input) {
				byTitle = append(byTitle, t.ID)
			}
			if strings.HasPrefix(t.ID, input) {
				byPrefix = append(byPrefix, t.ID)
			}
		}
	}

	if len(byTitle) == 1 {
		return byTitle[0], nil
	}
	if len(byTitle) > 1 {
		return "", fmt.Errorf("task title %q is ambiguous (%d matches)", input, len(byTitle))
	}
	switch len(byPrefix) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return byPrefix[0], nil
	default:
		return "", fmt.Errorf("task %q is ambiguous (%d matches)", input, len(byPrefix))
	}
}
