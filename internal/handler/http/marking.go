package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pontocerto/ponto-backend-go/internal/domain/marking"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
)

type MarkingHandler interface {
	MarkTime(w http.ResponseWriter, r *http.Request)
	GetMonthlyStats(w http.ResponseWriter, r *http.Request)
	GetTodayMarkings(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type markingHandlerImpl struct {
	markingService marking.MarkingService
}

func NewMarkingHandler(markingService marking.MarkingService) MarkingHandler {
	return &markingHandlerImpl{
		markingService: markingService,
	}
}

// MarkTime implements MarkingHandler.
func (h *markingHandlerImpl) MarkTime(w http.ResponseWriter, r *http.Request) {
	var req marking.MarkTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode mark-time request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.markingService.MarkTime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// GetMonthlyStats implements MarkingHandler.
func (h *markingHandlerImpl) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.markingService.GetMonthlyStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTodayMarkings implements MarkingHandler.
func (h *markingHandlerImpl) GetTodayMarkings(w http.ResponseWriter, r *http.Request) {
	result, err := h.markingService.GetTodayMarkings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSummary implements MarkingHandler.
func (h *markingHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.markingService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements MarkingHandler.
func (h *markingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := marking.ListMarkingsFilter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	if employeeName := r.URL.Query().Get("employee_name"); employeeName != "" {
		filter.EmployeeName = &employeeName
	}

	if markingType := r.URL.Query().Get("type"); markingType != "" {
		filter.Type = &markingType
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}

	result, err := h.markingService.ListAllMarkings(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
