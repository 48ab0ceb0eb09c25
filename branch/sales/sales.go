// Package sales coordinates the sales automation agents: lead
// processing, quoting, deal closing and pipeline analysis.
package sales

import (
	"math"
	"sync"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
)

// Operation names reported by sales results.
const (
	OpProcessLead           = "process_lead"
	OpGenerateQuote         = "generate_quote"
	OpCloseDeal             = "close_deal"
	OpPrepareSalesMaterials = "prepare_sales_materials"
	OpRetentionCampaign     = "customer_retention_campaign"
	OpPipelineAnalysis      = "quarterly_pipeline_analysis"
)

// Opportunity scoring model: a base score lifted by deal value, capped
// so value alone never guarantees a win.
const (
	baseScore      = 0.6
	valueScoreCap  = 0.3
	valueScoreUnit = 100000.0
	winThreshold   = 0.7
)

// quoteOptimization is the AI pricing discount applied to every quote.
const quoteOptimization = 0.95

// commissionRate applies to closed contract value.
const commissionRate = 0.10

var (
	_ branch.Result = LeadOutcome{}
	_ branch.Result = Quote{}
	_ branch.Result = ClosedDeal{}
	_ branch.Result = SalesMaterials{}
	_ branch.Result = RetentionCampaign{}
	_ branch.Result = PipelineAnalysis{}
)

// Coordinator runs sales operations and keeps private pipeline tallies.
// Safe for concurrent use.
type Coordinator struct {
	delay time.Duration
	log   *logger.Logger

	mu                     sync.Mutex
	opportunitiesProcessed int
	quotesGenerated        int
	dealsClosed            int
	pipelineValue          float64
	revenueClosed          float64
}

// New returns a sales coordinator. delay is the simulated agent latency
// applied per operation; tests pass zero.
func New(delay time.Duration, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewDefault(branch.Sales)
	}
	return &Coordinator{
		delay: delay,
		log:   log.WithComponent("branch.sales"),
	}
}

// Counters is a snapshot of the coordinator's pipeline tallies.
type Counters struct {
	OpportunitiesProcessed int     `json:"opportunities_processed"`
	QuotesGenerated        int     `json:"quotes_generated"`
	DealsClosed            int     `json:"deals_closed"`
	PipelineValue          float64 `json:"pipeline_value"`
	RevenueClosed          float64 `json:"revenue_closed"`
}

// ConversionRate is the share of processed opportunities that closed.
func (c Counters) ConversionRate() float64 {
	opportunities := c.OpportunitiesProcessed
	if opportunities < 1 {
		opportunities = 1
	}
	return float64(c.DealsClosed) / float64(opportunities)
}

// Counters returns the current tallies.
func (c *Coordinator) Counters() Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Counters{
		OpportunitiesProcessed: c.opportunitiesProcessed,
		QuotesGenerated:        c.quotesGenerated,
		DealsClosed:            c.dealsClosed,
		PipelineValue:          c.pipelineValue,
		RevenueClosed:          c.revenueClosed,
	}
}

// estimatedValue maps a customer segment to its expected deal value.
func estimatedValue(segment string) float64 {
	switch segment {
	case "enterprise":
		return 75000
	case "mid_market":
		return 40000
	case "startup":
		return 15000
	default:
		return 10000
	}
}

// scoreOpportunity applies the value-weighted scoring model. Scores are
// reported to two decimal places.
func scoreOpportunity(value float64) float64 {
	factor := value / valueScoreUnit
	if factor > valueScoreCap {
		factor = valueScoreCap
	}
	return math.Round((baseScore+factor)*100) / 100
}
