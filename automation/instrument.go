package automation

import (
	"context"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/events"
	"github.com/Garrettc123/ai-business-automation-tree/workflow"
)

// instrumentPlan wraps every step with the full observability chain:
// lifecycle events, structured logging, operation metrics and a span
// named after the scenario tag.
func (s *System) instrumentPlan(plan *workflow.Plan, workflowID string, tag Scenario) {
	for name, step := range plan.Steps {
		step = &eventStep{
			inner:      step,
			pub:        s.pub,
			workflowID: workflowID,
			scenario:   string(tag),
		}
		step = workflow.WithLogging(step, s.log)
		if s.metrics != nil {
			step = workflow.WithMetrics(step, s.metrics)
		}
		plan.Steps[name] = workflow.WithTracing(step, "workflow."+string(tag))
	}
}

// eventStep publishes a branch lifecycle event after the wrapped step
// runs, under the step's branch topic.
type eventStep struct {
	inner      workflow.Step
	pub        events.Publisher
	workflowID string
	scenario   string
}

func (s *eventStep) Name() string   { return s.inner.Name() }
func (s *eventStep) Branch() string { return s.inner.Branch() }

func (s *eventStep) Run(ctx context.Context, state *workflow.State) (branch.Result, error) {
	start := time.Now()
	result, err := s.inner.Run(ctx, state)
	if err != nil {
		s.pub.Publish(events.BranchFailed(s.workflowID, s.scenario, s.inner.Branch(), s.inner.Name(), err))
		return result, err
	}
	s.pub.Publish(events.BranchCompleted(s.workflowID, s.scenario, s.inner.Branch(), s.inner.Name(), time.Since(start)))
	return result, nil
}
