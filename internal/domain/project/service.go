package project

import (
	"context"
)

// ProjectService defines business logic for projects and membership
type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetProject(ctx context.Context, id string) (ProjectResponse, error)
	ListProjects(ctx context.Context) ([]ProjectResponse, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error

	AddMember(ctx context.Context, req AddMemberRequest) (MemberResponse, error)
	RemoveMember(ctx context.Context, projectID, employeeID string) error
	ListMembers(ctx context.Context, projectID string) ([]MemberResponse, error)
}
