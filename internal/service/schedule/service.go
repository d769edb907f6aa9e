package schedule

import (
	"context"
	"fmt"

	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/schedule"
)

type GroupServiceImpl struct {
	schedule.GroupRepository
}

func NewGroupService(groupRepo schedule.GroupRepository) schedule.GroupService {
	return &GroupServiceImpl{GroupRepository: groupRepo}
}

// ListGroups implements schedule.GroupService.
func (s *GroupServiceImpl) ListGroups(ctx context.Context) ([]schedule.GroupResponse, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule groups: %w", err)
	}

	responses := make([]schedule.GroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, mapGroupToResponse(g))
	}
	return responses, nil
}

// CreateGroup implements schedule.GroupService.
func (s *GroupServiceImpl) CreateGroup(ctx context.Context, req schedule.CreateGroupRequest) (schedule.GroupResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.GroupResponse{}, err
	}

	g := schedule.Group{
		Name:         req.Name,
		DailyMinutes: req.DailyMinutes,
		WorkdayFlags: employee.WeekdayFlags{
			Monday:    req.Monday,
			Tuesday:   req.Tuesday,
			Wednesday: req.Wednesday,
			Thursday:  req.Thursday,
			Friday:    req.Friday,
			Saturday:  req.Saturday,
			Sunday:    req.Sunday,
		},
	}

	created, err := s.GroupRepository.Create(ctx, g)
	if err != nil {
		return schedule.GroupResponse{}, err
	}
	return mapGroupToResponse(created), nil
}

func mapGroupToResponse(g schedule.Group) schedule.GroupResponse {
	return schedule.GroupResponse{
		ID:           g.ID,
		Name:         g.Name,
		DailyMinutes: g.DailyMinutes,
		Monday:       g.WorkdayFlags.Monday,
		Tuesday:      g.WorkdayFlags.Tuesday,
		Wednesday:    g.WorkdayFlags.Wednesday,
		Thursday:     g.WorkdayFlags.Thursday,
		Friday:       g.WorkdayFlags.Friday,
		Saturday:     g.WorkdayFlags.Saturday,
		Sunday:       g.WorkdayFlags.Sunday,
	}
}
