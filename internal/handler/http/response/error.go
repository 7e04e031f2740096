package response

import (
	"errors"
	"net/http"

	"github.com/staffledger/attendance-backend-go/internal/domain/attendance"
	"github.com/staffledger/attendance-backend-go/internal/domain/auth"
	"github.com/staffledger/attendance-backend-go/internal/domain/department"
	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
	"github.com/staffledger/attendance-backend-go/internal/domain/leave"
	"github.com/staffledger/attendance-backend-go/internal/domain/meeting"
	"github.com/staffledger/attendance-backend-go/internal/domain/notification"
	"github.com/staffledger/attendance-backend-go/internal/domain/project"
	"github.com/staffledger/attendance-backend-go/internal/domain/report"
	"github.com/staffledger/attendance-backend-go/internal/domain/shift"
	"github.com/staffledger/attendance-backend-go/internal/domain/user"
	"github.com/staffledger/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidPasswordLength):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentNotEmpty):
		Conflict(w, "Department still has employees")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is assigned to employees")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in found")
	case errors.Is(err, attendance.ErrNoShiftAssigned):
		BadRequest(w, "No shift assigned for this employee", nil)
	case errors.Is(err, attendance.ErrInvalidFormat):
		BadRequest(w, "Invalid timestamp format", nil)
	case errors.Is(err, attendance.ErrInvalidRange):
		BadRequest(w, "Check-out must not be before check-in", nil)
	case errors.Is(err, attendance.ErrMissingInput):
		BadRequest(w, "Missing check-in or work status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrAlreadyMember):
		Conflict(w, "Employee is already a member of this project")
	case errors.Is(err, project.ErrMemberNotFound):
		NotFound(w, "Project member not found")

	// Meeting domain errors
	case errors.Is(err, meeting.ErrSeriesNotFound):
		NotFound(w, "Meeting series not found")
	case errors.Is(err, meeting.ErrInstanceNotFound):
		NotFound(w, "Meeting instance not found")
	case errors.Is(err, meeting.ErrInstanceCancelled):
		Conflict(w, "Meeting instance has been cancelled")
	case errors.Is(err, meeting.ErrInvalidRecurrenceType),
		errors.Is(err, meeting.ErrMissingRecurrenceRule):
		BadRequest(w, err.Error(), nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "Notification does not belong to this user")

	// Report domain errors
	case errors.Is(err, report.ErrNoDataInRange):
		NotFound(w, "No attendance data in the requested range")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
