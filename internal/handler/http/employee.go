package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpdateRate(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateRate implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateRate(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update-rate request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.UpdateHourRate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hourly rate updated successfully", nil)
}
