package report

import "errors"

var (
	ErrNotAuthenticated     = errors.New("user not authenticated")
	ErrGenerationInProgress = errors.New("a report generation is already in progress for this date")
	ErrUploadFailed         = errors.New("failed to upload generated report")
)
