package automation

import (
	"context"
	"fmt"

	"github.com/Garrettc123/ai-business-automation-tree/component"
)

// Component wraps a System as a lifecycle-managed component so the
// application shell activates the branches on start and reports the
// final tallies on stop.
type Component struct {
	sys *System
}

var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent wraps an existing system.
func NewComponent(sys *System) *Component {
	return &Component{sys: sys}
}

// System returns the wrapped system.
func (c *Component) System() *System { return c.sys }

// Name returns the component name.
func (c *Component) Name() string { return "automation" }

// Start marks every branch active.
func (c *Component) Start(_ context.Context) error {
	c.sys.Activate()
	return nil
}

// Stop logs the final workflow tallies. Branch coordinators hold no
// external resources, so there is nothing to release.
func (c *Component) Stop(_ context.Context) error {
	m := c.sys.Metrics()
	c.sys.log.Info("Automation system stopped", map[string]interface{}{
		"total_workflows": m.TotalWorkflows,
		"successful":      m.SuccessfulWorkflows,
		"failed":          m.FailedWorkflows,
	})
	return nil
}

// Health reports the workflow throughput since start.
func (c *Component) Health(_ context.Context) component.Health {
	m := c.sys.Metrics()
	return component.Health{
		Name:    c.Name(),
		Status:  component.StatusHealthy,
		Message: fmt.Sprintf("%d workflows, %.1f%% success", m.TotalWorkflows, m.SuccessRate),
	}
}

// Describe returns infrastructure summary info for the bootstrap display.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    "Automation System",
		Type:    "automation",
		Details: fmt.Sprintf("%d branches, max_parallel=%d", c.sys.registry.Count(), c.sys.cfg.MaxParallel),
	}
}
