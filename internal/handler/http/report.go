package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/workdesk/workdesk-backend-go/internal/domain/report"
	"github.com/workdesk/workdesk-backend-go/internal/handler/http/response"
	"github.com/workdesk/workdesk-backend-go/internal/service/export"
)

type ReportHandler interface {
	Weekly(w http.ResponseWriter, r *http.Request)
	MonthlyLatecomers(w http.ResponseWriter, r *http.Request)
	ExportWorkTime(w http.ResponseWriter, r *http.Request)
	ExportLateTime(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
	exportService export.ExportService
}

func NewReportHandler(reportService report.ReportService, exportService export.ExportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		exportService: exportService,
	}
}

// Weekly implements ReportHandler.
func (h *ReportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, errInvalidQueryParam("year").Error(), nil)
		return
	}
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil {
		response.BadRequest(w, errInvalidQueryParam("week").Error(), nil)
		return
	}

	weekly, err := h.reportService.WeeklyReport(r.Context(), report.WeeklyReportRequest{
		Year:       year,
		Week:       week,
		Department: r.URL.Query().Get("department"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, weekly)
}

// MonthlyLatecomers implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyLatecomers(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	monthly, err := h.reportService.MonthlyLatecomers(r.Context(), report.MonthlyReportRequest{
		Year:        year,
		Month:       month,
		Departments: departmentsFromQuery(r),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly)
}

// ExportWorkTime implements ReportHandler.
func (h *ReportHandlerImpl) ExportWorkTime(w http.ResponseWriter, r *http.Request) {
	req := exportRequestFromQuery(r)

	f, filename, err := h.exportService.WorkTimeWorkbook(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	streamWorkbook(w, f, filename)
}

// ExportLateTime implements ReportHandler.
func (h *ReportHandlerImpl) ExportLateTime(w http.ResponseWriter, r *http.Request) {
	req := exportRequestFromQuery(r)

	f, filename, err := h.exportService.LateTimeWorkbook(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	streamWorkbook(w, f, filename)
}

func exportRequestFromQuery(r *http.Request) export.ExportRequest {
	return export.ExportRequest{
		Months:      splitQueryList(r.URL.Query().Get("months")),
		Departments: departmentsFromQuery(r),
	}
}

func departmentsFromQuery(r *http.Request) []string {
	return splitQueryList(r.URL.Query().Get("departments"))
}

func splitQueryList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func streamWorkbook(w http.ResponseWriter, f *excelize.File, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(w); err != nil {
		slog.Error("Failed to stream workbook", "error", err)
	}
}
