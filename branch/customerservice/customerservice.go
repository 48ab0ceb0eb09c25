// Package customerservice coordinates the support automation agents:
// ticket triage, resolution, onboarding and crisis handling.
package customerservice

import (
	"sync"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
)

// Operation names reported by customer service results.
const (
	OpProcessTicket        = "process_ticket"
	OpResolveTicket        = "resolve_ticket"
	OpOnboardCustomer      = "onboard_customer"
	OpTrainSupportTeam     = "train_support_team"
	OpActivateCrisisMode   = "activate_crisis_mode"
	OpSatisfactionAnalysis = "satisfaction_analysis"
)

// Tickets auto-resolve only when classification is confident and the
// customer is not escalating.
const (
	autoResolveConfidence = 0.85
	autoResolveUrgencyCap = 8
)

var (
	_ branch.Result = TicketAssessment{}
	_ branch.Result = Resolution{}
	_ branch.Result = OnboardingReport{}
	_ branch.Result = TrainingReport{}
	_ branch.Result = CrisisModeReport{}
	_ branch.Result = SatisfactionReport{}
)

// Coordinator runs support operations and keeps private resolution
// tallies. Safe for concurrent use.
type Coordinator struct {
	delay time.Duration
	log   *logger.Logger

	mu               sync.Mutex
	ticketsProcessed int
	ticketsResolved  int
	satisfactionAvg  float64
}

// New returns a customer service coordinator. delay is the simulated
// agent latency applied per operation; tests pass zero.
func New(delay time.Duration, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewDefault(branch.CustomerService)
	}
	return &Coordinator{
		delay: delay,
		log:   log.WithComponent("branch.customer_service"),
	}
}

// Counters is a snapshot of the coordinator's tallies.
type Counters struct {
	TicketsProcessed int     `json:"tickets_processed"`
	TicketsResolved  int     `json:"tickets_resolved"`
	SatisfactionAvg  float64 `json:"satisfaction_avg"`
}

// AIResolutionRate is the share of processed tickets resolved.
func (c Counters) AIResolutionRate() float64 {
	processed := c.TicketsProcessed
	if processed < 1 {
		processed = 1
	}
	return float64(c.TicketsResolved) / float64(processed)
}

// Counters returns the current tallies.
func (c *Coordinator) Counters() Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Counters{
		TicketsProcessed: c.ticketsProcessed,
		TicketsResolved:  c.ticketsResolved,
		SatisfactionAvg:  c.satisfactionAvg,
	}
}
