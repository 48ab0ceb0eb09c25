package workflow

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// Status of a workflow record.
type Status string

const (
	// StatusPending marks a record created but not yet finalized.
	StatusPending Status = "pending"
	// StatusCompleted marks a record whose plan finished without failure.
	StatusCompleted Status = "completed"
	// StatusResolved marks a finished crisis protocol. It counts as a
	// success in system metrics.
	StatusResolved Status = "resolved"
	// StatusFailed marks a record aborted by a branch failure.
	StatusFailed Status = "failed"
)

// Succeeded reports whether the status counts as a success.
func (s Status) Succeeded() bool {
	return s == StatusCompleted || s == StatusResolved
}

// Record is the unit of workflow history. It is created pending at
// submission, mutated only by the aggregator that owns it, and becomes
// immutable once committed to the ledger.
type Record struct {
	ID               string
	Scenario         string
	Status           Status
	BranchesInvolved []string
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
	Results          map[string]branch.Result
	Insights         []string
	Recommendations  []string
}

// NewRecordID derives a workflow ID from the scenario prefix and the
// submission time, plus a short uniquifier so concurrent submissions
// within the same second cannot collide.
func NewRecordID(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, at.Format("20060102150405"), uuid.NewString()[:8])
}

// NewRecord creates a pending record for one scenario run.
func NewRecord(prefix, scenario string, start time.Time) *Record {
	return &Record{
		ID:        NewRecordID(prefix, start),
		Scenario:  scenario,
		Status:    StatusPending,
		StartTime: start,
		Results:   make(map[string]branch.Result),
	}
}

// Finalize stamps the end time, stores the outcome's completed step
// outputs keyed by branch name and sets the final status. Skipped,
// cancelled and failed steps leave no result entry, so
// BranchesInvolved always mirrors the result keys exactly, for failed
// records too.
func (r *Record) Finalize(out *Outcome, end time.Time, status Status) {
	r.EndTime = end
	r.Duration = end.Sub(r.StartTime)
	r.Status = status

	if out != nil {
		for _, sr := range out.Steps {
			if sr.Status == StepCompleted && sr.Output != nil {
				r.Results[sr.Branch] = sr.Output
			}
		}
	}

	names := make([]string, 0, len(r.Results))
	for name := range r.Results {
		names = append(names, name)
	}
	sort.Strings(names)
	r.BranchesInvolved = names
}

// Summary is the compact record view used by health reports and
// lifecycle events.
type Summary struct {
	ID       string `json:"id"`
	Scenario string `json:"name"`
	Status   Status `json:"status"`
	Duration string `json:"duration"`
}

// Summarize returns the record's compact view.
func (r *Record) Summarize() Summary {
	return Summary{
		ID:       r.ID,
		Scenario: r.Scenario,
		Status:   r.Status,
		Duration: fmt.Sprintf("%.2fs", r.Duration.Seconds()),
	}
}
