package response

import (
	"errors"
	"net/http"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/auth"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/report"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/user"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/worker"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Directory errors
	case errors.Is(err, user.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Report errors
	case errors.Is(err, report.ErrNotAuthenticated):
		Unauthorized(w, "User not authenticated")
	case errors.Is(err, report.ErrGenerationInProgress):
		Conflict(w, "A report for this date is already being generated")
	case errors.Is(err, report.ErrUploadFailed):
		InternalServerError(w, "Failed to upload generated report")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
