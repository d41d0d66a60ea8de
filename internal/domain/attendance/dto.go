package attendance

import (
	"strings"

	"github.com/gopal-construction/worksite-backend-go/internal/pkg/validator"
)

type SetStatusRequest struct {
	Date     string `json:"-"`
	WorkerID string `json:"-"`
	Status   string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if !validator.IsInSlice(strings.ToLower(r.Status), []string{string(StatusPresent), string(StatusAbsent)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetClockTimeRequest struct {
	Date     string `json:"-"`
	WorkerID string `json:"-"`
	Field    string `json:"field"`
	Value    string `json:"value"`
}

func (r *SetClockTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if !validator.IsInSlice(r.Field, []string{string(FieldClockIn), string(FieldClockOut)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field must be one of: clock_in, clock_out",
		})
	}
	// Empty value means "clear the time" and is always accepted
	if r.Value != "" && !validator.IsValidTimeOfDay(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be a time of day in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SetPaymentRequest carries the payment editor input. Amount stays a string;
// an unparsable amount records as zero rather than failing the edit.
type SetPaymentRequest struct {
	Date        string `json:"-"`
	WorkerID    string `json:"-"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

func (r *SetPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LedgerResponse struct {
	Date    string  `json:"date"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Entries []Entry `json:"entries"`
}
