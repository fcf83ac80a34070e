package response

import (
	"errors"
	"net/http"

	"github.com/pontocerto/ponto-backend-go/internal/domain/auth"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/marking"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Marking sequencing errors
	case errors.Is(err, marking.ErrEntradaAlreadyMarked),
		errors.Is(err, marking.ErrEntradaNotMarked),
		errors.Is(err, marking.ErrSaidaAlreadyMarked):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
