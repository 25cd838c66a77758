package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workdesk/workdesk-backend-go/internal/domain/overtime"
	"github.com/workdesk/workdesk-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	BulkApprove(w http.ResponseWriter, r *http.Request)
	Compensate(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Reapply(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// Create implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.overtimeService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", created)
}

// List implements OvertimeHandler.
func (h *OvertimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, errInvalidQueryParam("year").Error(), nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, errInvalidQueryParam("month").Error(), nil)
		return
	}

	filter := overtime.ListFilter{Year: year, Month: month}
	if v := r.URL.Query().Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	requests, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approved, err := h.overtimeService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved", approved)
}

// BulkApprove implements OvertimeHandler.
func (h *OvertimeHandlerImpl) BulkApprove(w http.ResponseWriter, r *http.Request) {
	var req overtime.BulkApproveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overtimeService.BulkApprove(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk approve processed", result)
}

// Compensate implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Compensate(w http.ResponseWriter, r *http.Request) {
	compensated, err := h.overtimeService.Compensate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request compensated", compensated)
}

// Reject implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req overtime.RejectOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	rejected, err := h.overtimeService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", rejected)
}

// Cancel implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	cancelled, err := h.overtimeService.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request cancelled", cancelled)
}

// Reapply implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Reapply(w http.ResponseWriter, r *http.Request) {
	reapplied, err := h.overtimeService.Reapply(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request reapplied", reapplied)
}
