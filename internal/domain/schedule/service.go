package schedule

import "context"

// GroupService defines admin operations over schedule groups.
type GroupService interface {
	ListGroups(ctx context.Context) ([]GroupResponse, error)
	CreateGroup(ctx context.Context, req CreateGroupRequest) (GroupResponse, error)
}
