package roster

import "context"

type RosterService interface {
	// GetRoster returns the filtered staff list, the day's scheduled
	// shifts, and the summary counts.
	GetRoster(ctx context.Context, filter RosterFilter) (RosterResponse, error)
}
