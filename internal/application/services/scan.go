package services

import (
	"context"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"homedrive-api/internal/application/ports"
	domain "homedrive-api/internal/domain/scan"
)

const (
	scanMaxAttempts = 10
	scanBaseDelay   = 4 * time.Second
)

// SleepFunc waits for d or until ctx is cancelled. Injected so tests can
// record waits instead of taking them.
type SleepFunc func(ctx context.Context, d time.Duration) error

type ScanService struct {
	scanner  ports.Scanner
	sleep    SleepFunc
	mCounter *prometheus.CounterVec
}

func NewScanService(
	scanner ports.Scanner,
	mCounter *prometheus.CounterVec,
) ports.ScanService {
	return &ScanService{
		scanner:  scanner,
		sleep:    sleepWithContext,
		mCounter: mCounter,
	}
}

// Scan submits the file to the external scanner and polls for the report.
// Submission or fetch failure aborts with the error. The wait between polls
// grows linearly with the attempt number: 4s, 8s, ... 40s. When all attempts
// pass without a completed report the result is Complete=false with zero
// counts, which means "try again later", never "clean".
func (ss *ScanService) Scan(ctx context.Context, fileName string, r io.Reader) (*domain.Result, error) {
	analysisID, err := ss.scanner.SubmitFile(ctx, fileName, r)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < scanMaxAttempts; attempt++ {
		report, err := ss.scanner.FetchReport(ctx, analysisID)
		if err != nil {
			return nil, err
		}

		if report.Status == domain.StatusCompleted {
			ss.mCounter.WithLabelValues("scans_completed_total").Inc()

			return &domain.Result{
				Complete: true,
				FileName: fileName,
				Stats:    report.Stats,
			}, nil
		}

		if err = ss.sleep(ctx, scanBaseDelay*time.Duration(attempt+1)); err != nil {
			return nil, err
		}
	}

	ss.mCounter.WithLabelValues("scans_incomplete_total").Inc()

	return &domain.Result{
		Complete: false,
		FileName: fileName,
	}, nil
}

// sleepWithContext suspends without holding a worker: other requests keep
// running while a poll loop waits.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
