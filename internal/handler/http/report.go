package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wetrack-hr/attendance-backend-go/internal/domain/report"
	"github.com/wetrack-hr/attendance-backend-go/internal/handler/http/response"
)

// ReportHandler serves the admin surface: dashboard, reports, verification and
// the audit trail.
type ReportHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetDailyReport(w http.ResponseWriter, r *http.Request)
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService     report.ReportService
	attendanceService attendance.AttendanceService
}

func NewReportHandler(reportService report.ReportService, attendanceService attendance.AttendanceService) ReportHandler {
	return &reportHandlerImpl{
		reportService:     reportService,
		attendanceService: attendanceService,
	}
}

// GetDashboard implements ReportHandler.
func (h *reportHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailyReport implements ReportHandler.
func (h *reportHandlerImpl) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	req := report.DailyReportRequest{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.reportService.GetDailyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlyReport implements ReportHandler.
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		Month: r.URL.Query().Get("month"),
	}

	result, err := h.reportService.GetMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Verify implements ReportHandler.
func (h *reportHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	var req attendance.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode verify request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecordID = chi.URLParam(r, "id")

	result, err := h.attendanceService.Verify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance verification updated", result)
}

// ListEvents implements ReportHandler.
func (h *reportHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListEvents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
