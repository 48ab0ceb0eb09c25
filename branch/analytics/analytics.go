// Package analytics coordinates the business intelligence agents:
// reporting, dashboards, forecasting, anomaly detection and customer
// journey analysis.
package analytics

import (
	"sync"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
)

// Operation names reported by analytics results.
const (
	OpIntelligenceReport = "business_intelligence_report"
	OpRealTimeDashboard  = "real_time_dashboard"
	OpDetectAnomalies    = "detect_anomalies"
	OpTrackJourney       = "track_customer_journey"
	OpTrackingDashboard  = "setup_tracking_dashboard"
	OpCrisisImpact       = "crisis_impact_analysis"
	OpExecutiveDashboard = "generate_executive_dashboard"
)

var (
	_ branch.Result = IntelligenceReport{}
	_ branch.Result = Dashboard{}
	_ branch.Result = AnomalyScan{}
	_ branch.Result = JourneyReport{}
	_ branch.Result = TrackingSetup{}
	_ branch.Result = CrisisImpact{}
	_ branch.Result = ExecutiveDashboard{}
)

// Coordinator runs analytics workloads and counts the reports and
// dashboards it produces. Safe for concurrent use.
type Coordinator struct {
	delay time.Duration
	log   *logger.Logger

	mu                sync.Mutex
	reportsGenerated  int
	dashboardsCreated int
}

// New returns an analytics coordinator. delay is the simulated agent
// latency applied per operation; tests pass zero.
func New(delay time.Duration, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewDefault(branch.Analytics)
	}
	return &Coordinator{
		delay: delay,
		log:   log.WithComponent("branch.analytics"),
	}
}

// Counters is a snapshot of the coordinator's tallies.
type Counters struct {
	ReportsGenerated  int `json:"reports_generated"`
	DashboardsCreated int `json:"dashboards_created"`
}

// Counters returns the current tallies.
func (c *Coordinator) Counters() Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Counters{
		ReportsGenerated:  c.reportsGenerated,
		DashboardsCreated: c.dashboardsCreated,
	}
}
