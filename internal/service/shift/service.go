package shift

import (
	"context"
	"time"

	"github.com/staffledger/attendance-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shiftRepo shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{shiftRepo: shiftRepo}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	startTime, _ := time.Parse("15:04:05", req.StartTime)
	endTime, _ := time.Parse("15:04:05", req.EndTime)

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		Name:                       req.Name,
		StartTime:                  startTime,
		EndTime:                    endTime,
		GraceMinutes:               req.GraceMinutes,
		HalfDayHours:               req.HalfDayHours,
		EarlyLeaveThresholdMinutes: req.EarlyLeaveThresholdMinutes,
		BreakDurationMinutes:       req.BreakDurationMinutes,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapShiftToResponse(created), nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapShiftToResponse(sh), nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}

	return responses, nil
}

// UpdateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.StartTime != nil {
		sh.StartTime, _ = time.Parse("15:04:05", *req.StartTime)
	}
	if req.EndTime != nil {
		sh.EndTime, _ = time.Parse("15:04:05", *req.EndTime)
	}
	if req.GraceMinutes != nil {
		sh.GraceMinutes = *req.GraceMinutes
	}
	if req.HalfDayHours != nil {
		sh.HalfDayHours = *req.HalfDayHours
	}
	if req.EarlyLeaveThresholdMinutes != nil {
		sh.EarlyLeaveThresholdMinutes = *req.EarlyLeaveThresholdMinutes
	}
	if req.BreakDurationMinutes != nil {
		sh.BreakDurationMinutes = *req.BreakDurationMinutes
	}

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapShiftToResponse(sh), nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

func mapShiftToResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:                         sh.ID,
		Name:                       sh.Name,
		StartTime:                  sh.StartTime.Format("15:04:05"),
		EndTime:                    sh.EndTime.Format("15:04:05"),
		GraceMinutes:               sh.GraceMinutes,
		HalfDayHours:               sh.HalfDayHours,
		EarlyLeaveThresholdMinutes: sh.EarlyLeaveThresholdMinutes,
		BreakDurationMinutes:       sh.BreakDurationMinutes,
		CreatedAt:                  sh.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:                  sh.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
