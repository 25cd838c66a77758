package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workdesk/workdesk-backend-go/internal/domain/holiday"
	"github.com/workdesk/workdesk-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	Lookup(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{
		holidayService: holidayService,
	}
}

// Lookup implements HolidayHandler.
func (h *HolidayHandlerImpl) Lookup(w http.ResponseWriter, r *http.Request) {
	found, err := h.holidayService.Lookup(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if found == nil {
		response.NotFound(w, "Holiday not found")
		return
	}

	response.Success(w, found)
}

// ListMonth implements HolidayHandler.
func (h *HolidayHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	holidays, err := h.holidayService.ListMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Upsert implements HolidayHandler.
func (h *HolidayHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req holiday.UpsertHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.holidayService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday saved", saved)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.Delete(r.Context(), chi.URLParam(r, "date")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
