package workflow

import (
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// StepStatus classifies the outcome of a single step.
type StepStatus string

const (
	// StepCompleted means the step ran and returned a result.
	StepCompleted StepStatus = "completed"
	// StepSkipped means the step's condition did not hold for this run.
	StepSkipped StepStatus = "skipped"
	// StepFailed means the step returned an error.
	StepFailed StepStatus = "failed"
	// StepCancelled means the step was stopped because a sibling in the
	// same phase failed first.
	StepCancelled StepStatus = "cancelled"
)

// Outcome holds the per-step results of one plan execution.
type Outcome struct {
	Steps    map[string]StepResult
	Duration time.Duration
}

// StepResult holds the outcome of a single step execution.
type StepResult struct {
	Step     string
	Branch   string
	Status   StepStatus
	Duration time.Duration
	Output   branch.Result
	Err      error
}
