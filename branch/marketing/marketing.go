// Package marketing coordinates the marketing automation agents:
// campaign execution, lead qualification, launch planning and crisis
// communications.
package marketing

import (
	"sync"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
)

// Operation names reported by marketing results.
const (
	OpRunCampaign       = "run_campaign"
	OpLaunchCampaign    = "launch_campaign"
	OpQualifyLead       = "qualify_lead"
	OpPlanProductLaunch = "plan_product_launch"
	OpCrisisComms       = "crisis_communications"
	OpQuarterlyReview   = "quarterly_performance_review"
)

// Lead conversion rate of a multi-channel campaign.
const leadConversionRate = 0.15

// defaultTargetCount is assumed when a campaign request does not size
// its audience.
const defaultTargetCount = 100

var (
	_ branch.Result = CampaignReport{}
	_ branch.Result = LaunchReport{}
	_ branch.Result = LeadQualification{}
	_ branch.Result = LaunchPlan{}
	_ branch.Result = CrisisCommsReport{}
	_ branch.Result = PerformanceReview{}
)

// Coordinator runs marketing operations and keeps private tallies of
// campaign output. Safe for concurrent use.
type Coordinator struct {
	delay time.Duration
	log   *logger.Logger

	mu                sync.Mutex
	campaignsLaunched int
	leadsGenerated    int
	leadsQualified    int
	emailsSent        int
}

// New returns a marketing coordinator. delay is the simulated agent
// latency applied per operation; tests pass zero.
func New(delay time.Duration, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewDefault(branch.Marketing)
	}
	return &Coordinator{
		delay: delay,
		log:   log.WithComponent("branch.marketing"),
	}
}

// Counters is a snapshot of the coordinator's tallies.
type Counters struct {
	CampaignsLaunched int `json:"campaigns_launched"`
	LeadsGenerated    int `json:"leads_generated"`
	LeadsQualified    int `json:"leads_qualified"`
	EmailsSent        int `json:"emails_sent"`
}

// Counters returns the current tallies.
func (c *Coordinator) Counters() Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Counters{
		CampaignsLaunched: c.campaignsLaunched,
		LeadsGenerated:    c.leadsGenerated,
		LeadsQualified:    c.leadsQualified,
		EmailsSent:        c.emailsSent,
	}
}

// recordCampaign tallies a campaign run and returns its sequence number.
func (c *Coordinator) recordCampaign(targetCount, leads int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.campaignsLaunched++
	c.emailsSent += targetCount
	c.leadsGenerated += leads
	return c.campaignsLaunched
}
