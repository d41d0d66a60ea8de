package report

import (
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/validator"
)

type GenerateReportRequest struct {
	Date string `json:"date"`
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// GenerateReportResponse pairs the report metadata with the rendered bytes so
// the handler can stream the same document the storage upload received.
type GenerateReportResponse struct {
	Report Report
	PDF    []byte
}
