package project

import (
	"context"
)

// ProjectRepository defines data access methods for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, project Project) error
	Delete(ctx context.Context, id string) error
}

// MemberRepository manages project membership.
type MemberRepository interface {
	Add(ctx context.Context, member Member) (Member, error)
	Remove(ctx context.Context, projectID, employeeID string) error
	ListByProject(ctx context.Context, projectID string) ([]Member, error)
}
