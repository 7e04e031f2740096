package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check existing employee: %w", err)
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
		ShiftID:      req.ShiftID,
		Status:       employee.StatusActive,
		JoinDate:     joinDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil && *req.Email != emp.Email {
		if _, err := s.employeeRepo.GetByEmail(ctx, *req.Email); err == nil {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check existing employee: %w", err)
		}
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.ShiftID != nil {
		emp.ShiftID = req.ShiftID
	}
	if req.Status != nil {
		emp.Status = employee.EmploymentStatus(*req.Status)
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		FullName:       emp.FullName,
		Email:          emp.Email,
		Phone:          emp.Phone,
		Position:       emp.Position,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		ShiftID:        emp.ShiftID,
		ShiftName:      emp.ShiftName,
		Status:         string(emp.Status),
		JoinDate:       emp.JoinDate.Format("2006-01-02"),
		CreatedAt:      emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
