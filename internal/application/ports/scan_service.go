package ports

import (
	"context"
	"io"

	"homedrive-api/internal/domain/scan"
)

type ScanService interface {
	Scan(ctx context.Context, fileName string, r io.Reader) (*scan.Result, error)
}
