package report

import "context"

// Service generates and lists attendance reports. At most one generation may
// be in flight per date; concurrent requests for the same date are rejected
// with ErrGenerationInProgress.
type Service interface {
	Generate(ctx context.Context, req GenerateReportRequest) (GenerateReportResponse, error)
	List(ctx context.Context) ([]ListItem, error)
}
