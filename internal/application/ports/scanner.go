package ports

import (
	"context"
	"io"

	"homedrive-api/internal/domain/scan"
)

// Scanner is the external antivirus aggregation API. SubmitFile returns the
// analysis id to poll FetchReport with.
type Scanner interface {
	SubmitFile(ctx context.Context, fileName string, r io.Reader) (string, error)
	FetchReport(ctx context.Context, analysisID string) (*scan.Report, error)
}
