// Package events carries workflow lifecycle notifications between the
// automation system and in-process subscribers.
package events

import "time"

// Topics published by the automation system. Branch step results
// publish under "branch:<name>" so a subscriber can follow a single
// branch or, with a glob pattern, all of them.
const (
	TopicWorkflowStarted   = "workflow:started"
	TopicWorkflowFinalized = "workflow:finalized"
)

// BranchTopic returns the topic a branch's step results publish under.
func BranchTopic(name string) string { return "branch:" + name }

// Event is one workflow lifecycle notification.
type Event struct {
	Topic      string
	WorkflowID string
	Scenario   string
	Branch     string
	Operation  string
	Status     string
	Err        string
	Duration   time.Duration
	At         time.Time
}

// WorkflowStarted announces that a workflow began executing.
func WorkflowStarted(workflowID, scenario string) Event {
	return Event{
		Topic:      TopicWorkflowStarted,
		WorkflowID: workflowID,
		Scenario:   scenario,
		Status:     "started",
		At:         time.Now(),
	}
}

// BranchCompleted announces a successful branch step.
func BranchCompleted(workflowID, scenario, branchName, operation string, d time.Duration) Event {
	return Event{
		Topic:      BranchTopic(branchName),
		WorkflowID: workflowID,
		Scenario:   scenario,
		Branch:     branchName,
		Operation:  operation,
		Status:     "completed",
		Duration:   d,
		At:         time.Now(),
	}
}

// BranchFailed announces a failed branch step.
func BranchFailed(workflowID, scenario, branchName, operation string, err error) Event {
	evt := Event{
		Topic:      BranchTopic(branchName),
		WorkflowID: workflowID,
		Scenario:   scenario,
		Branch:     branchName,
		Operation:  operation,
		Status:     "failed",
		At:         time.Now(),
	}
	if err != nil {
		evt.Err = err.Error()
	}
	return evt
}

// WorkflowFinalized announces that a workflow finished with the given
// terminal status.
func WorkflowFinalized(workflowID, scenario, status string, d time.Duration) Event {
	return Event{
		Topic:      TopicWorkflowFinalized,
		WorkflowID: workflowID,
		Scenario:   scenario,
		Status:     status,
		Duration:   d,
		At:         time.Now(),
	}
}
