package project

import (
	"context"
	"time"

	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
	"github.com/staffledger/attendance-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	projectRepo  project.ProjectRepository
	memberRepo   project.MemberRepository
	employeeRepo employee.EmployeeRepository
}

func NewProjectService(
	projectRepo project.ProjectRepository,
	memberRepo project.MemberRepository,
	employeeRepo employee.EmployeeRepository,
) project.ProjectService {
	return &ProjectServiceImpl{
		projectRepo:  projectRepo,
		memberRepo:   memberRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	proj := project.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      project.ProjectStatus(req.Status),
		LeadID:      req.LeadID,
	}
	if req.StartDate != nil && *req.StartDate != "" {
		start, _ := time.Parse("2006-01-02", *req.StartDate)
		proj.StartDate = &start
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, _ := time.Parse("2006-01-02", *req.EndDate)
		proj.EndDate = &end
	}

	created, err := s.projectRepo.Create(ctx, proj)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return mapProjectToResponse(created), nil
}

// GetProject implements project.ProjectService.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	proj, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return mapProjectToResponse(proj), nil
}

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, proj := range projects {
		responses = append(responses, mapProjectToResponse(proj))
	}

	return responses, nil
}

// UpdateProject implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	proj, err := s.projectRepo.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.Name != nil {
		proj.Name = *req.Name
	}
	if req.Description != nil {
		proj.Description = req.Description
	}
	if req.Status != nil {
		proj.Status = project.ProjectStatus(*req.Status)
	}
	if req.LeadID != nil {
		proj.LeadID = req.LeadID
	}
	if req.StartDate != nil && *req.StartDate != "" {
		start, _ := time.Parse("2006-01-02", *req.StartDate)
		proj.StartDate = &start
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, _ := time.Parse("2006-01-02", *req.EndDate)
		proj.EndDate = &end
	}

	if err := s.projectRepo.Update(ctx, proj); err != nil {
		return project.ProjectResponse{}, err
	}

	return mapProjectToResponse(proj), nil
}

// DeleteProject implements project.ProjectService.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

// AddMember implements project.ProjectService.
func (s *ProjectServiceImpl) AddMember(ctx context.Context, req project.AddMemberRequest) (project.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return project.MemberResponse{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return project.MemberResponse{}, err
	}
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return project.MemberResponse{}, err
	}

	member, err := s.memberRepo.Add(ctx, project.Member{
		ProjectID:  req.ProjectID,
		EmployeeID: req.EmployeeID,
		Role:       req.Role,
	})
	if err != nil {
		return project.MemberResponse{}, err
	}

	member.EmployeeName = &emp.FullName

	return mapMemberToResponse(member), nil
}

// RemoveMember implements project.ProjectService.
func (s *ProjectServiceImpl) RemoveMember(ctx context.Context, projectID, employeeID string) error {
	return s.memberRepo.Remove(ctx, projectID, employeeID)
}

// ListMembers implements project.ProjectService.
func (s *ProjectServiceImpl) ListMembers(ctx context.Context, projectID string) ([]project.MemberResponse, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]project.MemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, mapMemberToResponse(member))
	}

	return responses, nil
}

func mapProjectToResponse(proj project.Project) project.ProjectResponse {
	resp := project.ProjectResponse{
		ID:          proj.ID,
		Name:        proj.Name,
		Description: proj.Description,
		Status:      string(proj.Status),
		LeadID:      proj.LeadID,
		MemberCount: proj.MemberCount,
		CreatedAt:   proj.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   proj.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if proj.StartDate != nil {
		start := proj.StartDate.Format("2006-01-02")
		resp.StartDate = &start
	}
	if proj.EndDate != nil {
		end := proj.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

func mapMemberToResponse(member project.Member) project.MemberResponse {
	return project.MemberResponse{
		ID:           member.ID,
		ProjectID:    member.ProjectID,
		EmployeeID:   member.EmployeeID,
		EmployeeName: member.EmployeeName,
		Role:         member.Role,
	}
}
