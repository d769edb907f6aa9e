package schedule

import "context"

type GroupRepository interface {
	GetByID(ctx context.Context, id string) (Group, error)
	List(ctx context.Context) ([]Group, error)
	Create(ctx context.Context, g Group) (Group, error)
}
