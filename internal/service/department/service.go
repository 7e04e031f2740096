package department

import (
	"context"

	"github.com/staffledger/attendance-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return mapDepartmentToResponse(created), nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return mapDepartmentToResponse(dept), nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, mapDepartmentToResponse(dept))
	}

	return responses, nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = req.Description
	}
	if req.ManagerID != nil {
		dept.ManagerID = req.ManagerID
	}

	if err := s.departmentRepo.Update(ctx, dept); err != nil {
		return department.DepartmentResponse{}, err
	}

	return mapDepartmentToResponse(dept), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

func mapDepartmentToResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Description:   dept.Description,
		ManagerID:     dept.ManagerID,
		EmployeeCount: dept.EmployeeCount,
		CreatedAt:     dept.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     dept.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
