package scan

// StatusCompleted is the scanner's terminal report status. Anything else
// means the analysis is still queued or running.
const StatusCompleted = "completed"

type (
	// Stats holds per-engine verdict counts from a completed report.
	Stats struct {
		Malicious  int
		Suspicious int
		Undetected int
	}
	// Report is the scanner's answer for one analysis id. Reports are
	// ephemeral and never persisted.
	Report struct {
		Status string
		Stats  Stats
	}
	// Result is what the coordinator hands back to callers. Complete=false
	// means the report never finished in time; it carries zero stats and is
	// a "try again later", not a clean verdict.
	Result struct {
		Complete bool
		FileName string
		Stats    Stats
	}
)
