package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/branch/analytics"
	"github.com/Garrettc123/ai-business-automation-tree/branch/customerservice"
	"github.com/Garrettc123/ai-business-automation-tree/branch/hr"
	"github.com/Garrettc123/ai-business-automation-tree/branch/marketing"
	"github.com/Garrettc123/ai-business-automation-tree/branch/operations"
	"github.com/Garrettc123/ai-business-automation-tree/branch/sales"
	apperrors "github.com/Garrettc123/ai-business-automation-tree/errors"
	"github.com/Garrettc123/ai-business-automation-tree/events"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
	"github.com/Garrettc123/ai-business-automation-tree/observability"
	"github.com/Garrettc123/ai-business-automation-tree/validation"
	"github.com/Garrettc123/ai-business-automation-tree/workflow"
)

// Config holds the aggregator's tuning knobs.
type Config struct {
	// BranchDelay is the simulated agent latency per branch operation.
	// Tests run with zero.
	BranchDelay time.Duration `yaml:"branch_delay" mapstructure:"branch_delay"`
	// MaxParallel bounds concurrent branch calls within one phase.
	MaxParallel int `yaml:"max_parallel" mapstructure:"max_parallel"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.MaxParallel == 0 {
		c.MaxParallel = 8
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.BranchDelay < 0 {
		return fmt.Errorf("automation.branch_delay must be non-negative (got: %s)", c.BranchDelay)
	}
	if c.MaxParallel < 0 {
		return fmt.Errorf("automation.max_parallel must be non-negative (got: %d)", c.MaxParallel)
	}
	return nil
}

// System is the root aggregator. It owns the six branch coordinators,
// the workflow engine, the branch registry, the history ledger and the
// event publisher. Systems share no state, so multiple instances can
// run side by side.
type System struct {
	cfg      Config
	log      *logger.Logger
	pub      events.Publisher
	engine   *workflow.Engine
	registry *branch.Registry
	ledger   *workflow.Ledger
	metrics  *observability.Metrics
	start    time.Time

	marketing       *marketing.Coordinator
	sales           *sales.Coordinator
	operations      *operations.Coordinator
	customerservice *customerservice.Coordinator
	analytics       *analytics.Coordinator
	hr              *hr.Coordinator
}

// New constructs a system with all six branches registered. pub may be
// nil when no event hub is wired; log may be nil for a default logger.
func New(cfg Config, pub events.Publisher, log *logger.Logger) *System {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.NewDefault("automation")
	}
	if pub == nil {
		pub = events.Discard
	}

	s := &System{
		cfg:      cfg,
		log:      log.WithComponent("automation"),
		pub:      pub,
		engine:   &workflow.Engine{MaxParallel: cfg.MaxParallel},
		registry: branch.NewRegistry(),
		ledger:   workflow.NewLedger(),
		start:    time.Now(),

		marketing:       marketing.New(cfg.BranchDelay, log),
		sales:           sales.New(cfg.BranchDelay, log),
		operations:      operations.New(cfg.BranchDelay, log),
		customerservice: customerservice.New(cfg.BranchDelay, log),
		analytics:       analytics.New(cfg.BranchDelay, log),
		hr:              hr.New(cfg.BranchDelay, log),
	}

	s.registry.Register(branch.Marketing, "marketing_automation")
	s.registry.Register(branch.Sales, "sales_automation")
	s.registry.Register(branch.Operations, "operations_automation")
	s.registry.Register(branch.CustomerService, "service_automation")
	s.registry.Register(branch.Analytics, "analytics_automation")
	s.registry.Register(branch.HR, "hr_automation")

	metrics, err := observability.NewMetrics(observability.Meter("automation"))
	if err != nil {
		s.log.Warn("Operation metrics disabled", map[string]interface{}{"error": err.Error()})
	} else {
		s.metrics = metrics
	}

	return s
}

// Activate marks every registered branch active.
func (s *System) Activate() {
	s.registry.ActivateAll()
	s.log.Info("Automation system initialized", map[string]interface{}{
		"branches": s.registry.Names(),
	})
}

// Marketing returns the marketing coordinator for direct operations.
func (s *System) Marketing() *marketing.Coordinator { return s.marketing }

// Sales returns the sales coordinator for direct operations.
func (s *System) Sales() *sales.Coordinator { return s.sales }

// Operations returns the operations coordinator for direct operations.
func (s *System) Operations() *operations.Coordinator { return s.operations }

// CustomerService returns the customer service coordinator for direct
// operations.
func (s *System) CustomerService() *customerservice.Coordinator { return s.customerservice }

// Analytics returns the analytics coordinator for direct operations.
func (s *System) Analytics() *analytics.Coordinator { return s.analytics }

// HR returns the HR coordinator for direct operations.
func (s *System) HR() *hr.Coordinator { return s.hr }

// Metrics returns a consistent snapshot of the system counters.
func (s *System) Metrics() workflow.Metrics { return s.ledger.Snapshot() }

// Branches returns the registry snapshot keyed by branch name.
func (s *System) Branches() map[string]branch.Info { return s.registry.Snapshot() }

// History returns up to n recent workflow records, oldest first.
func (s *System) History(n int) []*workflow.Record { return s.ledger.Recent(n) }

// RunWorkflow dispatches a request to the named scenario. The request
// type must match the scenario: LifecycleRequest, LaunchRequest,
// CrisisRequest; quarterly-review ignores the request.
func (s *System) RunWorkflow(ctx context.Context, scenario Scenario, req any) (*workflow.Record, error) {
	switch scenario {
	case ScenarioCustomerLifecycle:
		r, ok := req.(LifecycleRequest)
		if !ok {
			return nil, apperrors.InvalidInput("request", fmt.Sprintf("scenario %s expects LifecycleRequest, got %T", scenario, req))
		}
		return s.CustomerLifecycle(ctx, r)
	case ScenarioProductLaunch:
		r, ok := req.(LaunchRequest)
		if !ok {
			return nil, apperrors.InvalidInput("request", fmt.Sprintf("scenario %s expects LaunchRequest, got %T", scenario, req))
		}
		return s.ProductLaunch(ctx, r)
	case ScenarioCrisisResponse:
		r, ok := req.(CrisisRequest)
		if !ok {
			return nil, apperrors.InvalidInput("request", fmt.Sprintf("scenario %s expects CrisisRequest, got %T", scenario, req))
		}
		return s.CrisisResponse(ctx, r)
	case ScenarioQuarterlyReview:
		return s.QuarterlyReview(ctx)
	default:
		return nil, apperrors.UnknownScenario(string(scenario))
	}
}

// CustomerLifecycle runs the end-to-end customer journey: campaign,
// lead conversion, conditional fulfillment, onboarding and journey
// analytics, strictly in that order.
func (s *System) CustomerLifecycle(ctx context.Context, req LifecycleRequest) (*workflow.Record, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	plan, filter := s.lifecyclePlan(req)
	rec, err := s.execute(ctx, scenarioSpecs[ScenarioCustomerLifecycle], plan, filter, lifecycleNarrative)
	if err != nil {
		return nil, err
	}

	s.log.Info("Customer lifecycle completed", map[string]interface{}{
		"workflow_id": rec.ID,
		"customer_id": req.CustomerID,
	})
	return rec, nil
}

// ProductLaunch fans the launch brief out to all six branches in one
// parallel wave and counts the run as a cross-branch collaboration.
func (s *System) ProductLaunch(ctx context.Context, req LaunchRequest) (*workflow.Record, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	rec, err := s.execute(ctx, scenarioSpecs[ScenarioProductLaunch], s.launchPlan(req), nil, launchNarrative)
	if err != nil {
		return nil, err
	}

	s.ledger.RecordCollaboration()
	s.log.Info("Product launch automation completed", map[string]interface{}{
		"workflow_id": rec.ID,
		"product_id":  req.ProductID,
	})
	return rec, nil
}

// CrisisResponse runs the three-phase crisis protocol. A clean run
// finalizes as resolved, which counts as a success in system metrics.
func (s *System) CrisisResponse(ctx context.Context, req CrisisRequest) (*workflow.Record, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	s.log.Warn("Crisis protocol activated", map[string]interface{}{
		"type":     req.Type,
		"severity": req.Severity,
	})

	rec, err := s.execute(ctx, scenarioSpecs[ScenarioCrisisResponse], s.crisisPlan(req), nil, crisisNarrative)
	if err != nil {
		return nil, err
	}

	s.log.Info("Crisis management protocol completed", map[string]interface{}{
		"workflow_id": rec.ID,
	})
	return rec, nil
}

// QuarterlyReview collects every branch's quarterly review in parallel
// and attaches the consolidated cross-functional narrative.
func (s *System) QuarterlyReview(ctx context.Context) (*workflow.Record, error) {
	rec, err := s.execute(ctx, scenarioSpecs[ScenarioQuarterlyReview], s.reviewPlan(), nil, reviewNarrative)
	if err != nil {
		return nil, err
	}

	s.log.Info("Quarterly business review completed", map[string]interface{}{
		"workflow_id": rec.ID,
	})
	return rec, nil
}

// execute is the shared scenario body: create a pending record, publish
// the start event, run the plan, finalize, attach the narrative and
// commit. A branch failure finalizes the record as failed with the
// surviving sibling results, commits it, and returns a workflow error.
func (s *System) execute(ctx context.Context, sc spec, plan *workflow.Plan, filter workflow.StepFilter, narrate narrative) (*workflow.Record, error) {
	rec := workflow.NewRecord(sc.prefix, sc.name, time.Now())

	s.log.Info("Workflow started", map[string]interface{}{
		"workflow_id": rec.ID,
		"scenario":    string(sc.tag),
	})
	s.pub.Publish(events.WorkflowStarted(rec.ID, string(sc.tag)))

	s.instrumentPlan(plan, rec.ID, sc.tag)

	out, err := s.engine.ExecuteFiltered(ctx, plan, workflow.NewState(), filter)

	status := sc.success
	if err != nil {
		status = workflow.StatusFailed
	}
	rec.Finalize(out, time.Now(), status)
	if err == nil {
		narrate(rec)
	}

	s.touch(out)
	s.ledger.Commit(rec)
	s.pub.Publish(events.WorkflowFinalized(rec.ID, string(sc.tag), string(rec.Status), rec.Duration))

	if err != nil {
		s.log.Error("Workflow failed", map[string]interface{}{
			"workflow_id": rec.ID,
			"scenario":    string(sc.tag),
			"error":       err.Error(),
		})
		return nil, apperrors.WorkflowFailed(string(sc.tag), rec.ID, err)
	}
	return rec, nil
}

// touch stamps last-execution on every branch that completed a step.
func (s *System) touch(out *workflow.Outcome) {
	if out == nil {
		return
	}
	for _, sr := range out.Steps {
		if sr.Status == workflow.StepCompleted {
			s.registry.Touch(sr.Branch)
		}
	}
}
