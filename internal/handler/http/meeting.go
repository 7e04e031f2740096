package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffledger/attendance-backend-go/internal/domain/meeting"
	"github.com/staffledger/attendance-backend-go/internal/handler/http/response"
)

type MeetingHandler interface {
	CreateSeries(w http.ResponseWriter, r *http.Request)
	GetSeries(w http.ResponseWriter, r *http.Request)
	DeleteSeries(w http.ResponseWriter, r *http.Request)
	ListInstances(w http.ResponseWriter, r *http.Request)
	CancelInstance(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
}

type meetingHandlerImpl struct {
	meetingService meeting.MeetingService
}

func NewMeetingHandler(meetingService meeting.MeetingService) MeetingHandler {
	return &meetingHandlerImpl{
		meetingService: meetingService,
	}
}

// CreateSeries implements MeetingHandler.
func (h *meetingHandlerImpl) CreateSeries(w http.ResponseWriter, r *http.Request) {
	var req meeting.CreateSeriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.meetingService.CreateSeries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Meeting series created", result)
}

// GetSeries implements MeetingHandler.
func (h *meetingHandlerImpl) GetSeries(w http.ResponseWriter, r *http.Request) {
	result, err := h.meetingService.GetSeries(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteSeries implements MeetingHandler.
func (h *meetingHandlerImpl) DeleteSeries(w http.ResponseWriter, r *http.Request) {
	if err := h.meetingService.DeleteSeries(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting series deleted", nil)
}

// ListInstances implements MeetingHandler.
func (h *meetingHandlerImpl) ListInstances(w http.ResponseWriter, r *http.Request) {
	filter := meeting.InstanceFilter{}

	q := r.URL.Query()
	if seriesID := q.Get("series_id"); seriesID != "" {
		filter.SeriesID = &seriesID
	}
	if startDate := q.Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := q.Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	filter.Page, filter.Limit = parsePagination(q.Get("page"), q.Get("limit"))

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.meetingService.ListInstances(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Instances, response.PageMeta(result.Page, result.Limit, result.TotalCount))
}

// CancelInstance implements MeetingHandler.
func (h *meetingHandlerImpl) CancelInstance(w http.ResponseWriter, r *http.Request) {
	if err := h.meetingService.CancelInstance(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting instance cancelled", nil)
}

// MarkAttendance implements MeetingHandler.
func (h *meetingHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req meeting.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.InstanceID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.meetingService.MarkAttendance(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", nil)
}
