package roster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shiftnote/shiftnote-backend-go/internal/domain/roster"
	"golang.org/x/sync/errgroup"
)

type RosterServiceImpl struct {
	roster.RosterRepository
}

func NewRosterService(repo roster.RosterRepository) roster.RosterService {
	return &RosterServiceImpl{
		RosterRepository: repo,
	}
}

// GetRoster implements roster.RosterService.
func (s *RosterServiceImpl) GetRoster(ctx context.Context, filter roster.RosterFilter) (roster.RosterResponse, error) {
	if err := filter.Validate(); err != nil {
		return roster.RosterResponse{}, err
	}

	date := filter.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var (
		staff  []roster.StaffMember
		shifts []roster.ScheduledShift
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		staff, err = s.RosterRepository.ListStaff(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		shifts, err = s.RosterRepository.ListShiftsByDate(gctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return roster.RosterResponse{}, fmt.Errorf("failed to load roster: %w", err)
	}

	// Summary counts run over the unfiltered roster so the headline
	// numbers stay stable while the list is searched.
	var summary roster.RosterSummary
	for _, m := range staff {
		switch m.Status {
		case roster.StatusWorking:
			summary.OnShift++
		case roster.StatusOnBreak:
			summary.OnBreak++
		case roster.StatusOffShift:
			summary.OffShift++
		}
		if m.MissedClockIn || m.MissedClockOut {
			summary.MissedPunches++
		}
	}
	summary.ScheduledToday = len(shifts)

	response := roster.RosterResponse{Summary: summary}
	for _, m := range staff {
		if filter.Status != "" && string(m.Status) != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(filter.Search)) {
			continue
		}
		response.Staff = append(response.Staff, roster.StaffMemberResponse{
			ID:             m.ID,
			Name:           m.Name,
			Position:       m.Position,
			AvatarURL:      m.AvatarURL,
			Status:         string(m.Status),
			ClockIn:        m.ClockIn,
			ClockOut:       m.ClockOut,
			MissedClockIn:  m.MissedClockIn,
			MissedClockOut: m.MissedClockOut,
		})
	}
	for _, sh := range shifts {
		response.Shifts = append(response.Shifts, roster.ScheduledShiftResponse{
			ID:         sh.ID,
			EmployeeID: sh.EmployeeID,
			Date:       sh.Date,
			StartTime:  sh.StartTime,
			EndTime:    sh.EndTime,
			Position:   sh.Position,
		})
	}

	return response, nil
}
