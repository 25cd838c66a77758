package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
	"github.com/workdesk/workdesk-backend-go/internal/handler/http/response"
)

type WorkLogHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListWeek(w http.ResponseWriter, r *http.Request)
	UpdateWorkRecord(w http.ResponseWriter, r *http.Request)
}

type WorkLogHandlerImpl struct {
	workLogService worklog.WorkLogService
}

func NewWorkLogHandler(workLogService worklog.WorkLogService) WorkLogHandler {
	return &WorkLogHandlerImpl{
		workLogService: workLogService,
	}
}

// ClockIn implements WorkLogHandler.
func (h *WorkLogHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req worklog.ClockInRequest

	// Body is optional; an empty one means a normal work day.
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	record, err := h.workLogService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", record)
}

// ClockOut implements WorkLogHandler.
func (h *WorkLogHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	record, err := h.workLogService.ClockOut(r.Context(), worklog.ClockOutRequest{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", record)
}

// ListWeek implements WorkLogHandler.
func (h *WorkLogHandlerImpl) ListWeek(w http.ResponseWriter, r *http.Request) {
	filter, err := weekFilterFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	records, err := h.workLogService.ListWeek(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// UpdateWorkRecord implements WorkLogHandler.
func (h *WorkLogHandlerImpl) UpdateWorkRecord(w http.ResponseWriter, r *http.Request) {
	var req worklog.UpdateWorkRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	record, err := h.workLogService.UpdateWorkRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work record updated", record)
}

func weekFilterFromQuery(r *http.Request) (worklog.WeeklyFilter, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return worklog.WeeklyFilter{}, errInvalidQueryParam("year")
	}
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil {
		return worklog.WeeklyFilter{}, errInvalidQueryParam("week")
	}

	return worklog.WeeklyFilter{
		Year:       year,
		Week:       week,
		Department: r.URL.Query().Get("department"),
	}, nil
}
