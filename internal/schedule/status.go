package schedule

// Status of a single date's workout, derived from the daily summary and its
// scheduled entries rather than stored anywhere.
type Status string

const (
	StatusUnscheduled Status = "unscheduled"
	StatusScheduled   Status = "scheduled"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
)

// DeriveStatus computes the date's status. The summary's completed flag wins
// over individual entries; entries alone can only signal progress.
func DeriveStatus(summary *DailySummary, entries []Entry) Status {
	if summary == nil && len(entries) == 0 {
		return StatusUnscheduled
	}
	if summary != nil && summary.Completed {
		return StatusCompleted
	}
	for _, entry := range entries {
		if entry.Completed {
			return StatusInProgress
		}
	}
	return StatusScheduled
}
