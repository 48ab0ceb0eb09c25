// Command automation-demo drives every branch of the automation platform
// through one scripted business day: the four coordinated scenarios, direct
// operations on each branch coordinator, a cross-branch coordination
// example and the closing reports. It writes automation_summary.json with
// the per-branch tallies before exiting.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/automation"
	"github.com/Garrettc123/ai-business-automation-tree/bootstrap"
	"github.com/Garrettc123/ai-business-automation-tree/branch/analytics"
	"github.com/Garrettc123/ai-business-automation-tree/branch/customerservice"
	"github.com/Garrettc123/ai-business-automation-tree/branch/hr"
	"github.com/Garrettc123/ai-business-automation-tree/branch/marketing"
	"github.com/Garrettc123/ai-business-automation-tree/branch/operations"
	"github.com/Garrettc123/ai-business-automation-tree/branch/sales"
	"github.com/Garrettc123/ai-business-automation-tree/component"
	"github.com/Garrettc123/ai-business-automation-tree/config"
	"github.com/Garrettc123/ai-business-automation-tree/events"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
	"github.com/Garrettc123/ai-business-automation-tree/observability"
	"github.com/Garrettc123/ai-business-automation-tree/resilience"
	"github.com/Garrettc123/ai-business-automation-tree/version"
)

const (
	serviceName = "automation-demo"
	summaryFile = "automation_summary.json"
)

type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Automation automation.Config    `yaml:"automation" mapstructure:"automation"`
	Telemetry  observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

func (c *appConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Version == "" {
		c.Version = version.Version
	}
	c.ServiceConfig.ApplyDefaults()
	c.Automation.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

func (c *appConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Automation.Validate(); err != nil {
		return err
	}
	return c.Telemetry.Validate()
}

func main() {
	var cfg appConfig
	if err := config.LoadConfig(serviceName, &cfg); err != nil {
		logger.Fatal("Failed to load configuration", map[string]interface{}{"error": err.Error()})
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		logger.Fatal("Failed to initialize application", map[string]interface{}{"error": err.Error()})
	}

	eventsComp := events.NewComponent()
	sys := automation.New(cfg.Automation, eventsComp.Hub(), app.Logger)
	telemetry := observability.NewTelemetry(cfg.Telemetry, app.Name, app.Version, cfg.Environment)

	for _, c := range []component.Component{eventsComp, telemetry, automation.NewComponent(sys)} {
		if err := app.RegisterComponent(c); err != nil {
			app.Logger.Fatal("Failed to register component", map[string]interface{}{
				"component": c.Name(),
				"error":     err.Error(),
			})
		}
	}

	d := &demo{
		sys:   sys,
		hub:   eventsComp.Hub(),
		retry: resilience.DefaultRetryConfig(),
	}
	if err := app.RunTask(context.Background(), d.run); err != nil {
		app.Logger.Fatal("Demo run failed", map[string]interface{}{"error": err.Error()})
	}
}

// demo walks the platform through a scripted business day. Direct calls
// to branch coordinators stand in for real external integrations, so
// each one runs under bounded retry; scenario runs go through the
// aggregator, which owns their failure handling, and are never retried.
type demo struct {
	sys   *automation.System
	hub   *events.Hub
	retry resilience.RetryConfig
}

func (d *demo) run(ctx context.Context) error {
	printTree()

	if err := d.runScenarios(ctx); err != nil {
		return err
	}

	qualified, mkt, err := d.marketingPhase(ctx)
	if err != nil {
		return err
	}
	deals, sls, err := d.salesPhase(ctx, qualified)
	if err != nil {
		return err
	}
	ops, err := d.operationsPhase(ctx, deals)
	if err != nil {
		return err
	}
	svc, err := d.servicePhase(ctx)
	if err != nil {
		return err
	}
	anl, err := d.analyticsPhase(ctx)
	if err != nil {
		return err
	}
	hrs, err := d.hrPhase(ctx)
	if err != nil {
		return err
	}

	if err := d.coordinationShowcase(ctx); err != nil {
		return err
	}

	d.printReports()

	summary := demoSummary{
		Timestamp:       time.Now(),
		PhasesCompleted: 6,
		Marketing:       mkt,
		Sales:           sls,
		Operations:      ops,
		CustomerService: svc,
		Analytics:       anl,
		HR:              hrs,
	}
	printSummary(summary)
	return writeSummary(summary)
}

// ---- Coordinated scenarios ----

func (d *demo) runScenarios(ctx context.Context) error {
	banner("COORDINATED SCENARIO RUNS")

	// Live progress: branch steps report under branch:<name> as each
	// scenario executes, interleaved with the per-scenario summaries.
	sub := d.hub.Subscribe("*")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for evt := range sub.Events() {
			switch evt.Topic {
			case events.TopicWorkflowStarted:
				fmt.Printf("   ▶ %s started\n", evt.WorkflowID)
			case events.TopicWorkflowFinalized:
				fmt.Printf("   ■ %s %s in %.2fs\n", evt.WorkflowID, evt.Status, evt.Duration.Seconds())
			default:
				fmt.Printf("   · %s %s %s\n", evt.Branch, evt.Operation, evt.Status)
			}
		}
	}()
	defer func() {
		d.hub.Unsubscribe(sub)
		wg.Wait()
	}()

	fmt.Println("\n📋 SCENARIO 1: Complete Customer Lifecycle")
	rule('-')
	lifecycle, err := d.sys.CustomerLifecycle(ctx, automation.LifecycleRequest{
		CustomerID: "CUST-2024-001",
		LeadID:     "LEAD-5438",
		Segment:    "enterprise",
		Tier:       "premium",
	})
	if err != nil {
		return err
	}
	fmt.Printf("✓ Status: %s\n", lifecycle.Status)
	fmt.Printf("✓ Duration: %.2f seconds\n", lifecycle.Duration.Seconds())
	fmt.Printf("✓ Branches: %s\n", strings.Join(lifecycle.BranchesInvolved, ", "))
	fmt.Printf("✓ AI Insights: %d\n", len(lifecycle.Insights))

	fmt.Println("\n📋 SCENARIO 2: Product Launch")
	rule('-')
	launch, err := d.sys.ProductLaunch(ctx, automation.LaunchRequest{
		ProductID:    "PROD-AI-2025",
		ProductName:  "AI Business Suite Pro",
		TargetMarket: "mid-market enterprises",
		LaunchDate:   "2025-Q2",
	})
	if err != nil {
		return err
	}
	fmt.Printf("✓ Status: %s\n", launch.Status)
	fmt.Printf("✓ Duration: %.2f seconds\n", launch.Duration.Seconds())
	fmt.Printf("✓ Parallel coordination: %d departments\n", len(launch.BranchesInvolved))

	fmt.Println("\n📋 SCENARIO 3: Crisis Management Protocol")
	rule('-')
	crisis, err := d.sys.CrisisResponse(ctx, automation.CrisisRequest{
		Type:              "service_outage",
		Severity:          "high",
		AffectedCustomers: 1250,
	})
	if err != nil {
		return err
	}
	fmt.Printf("✓ Status: %s\n", crisis.Status)
	fmt.Printf("✓ Response time: %.2f seconds\n", crisis.Duration.Seconds())
	fmt.Printf("✓ Coordinated response: %d departments\n", len(crisis.BranchesInvolved))

	fmt.Println("\n📋 SCENARIO 4: Quarterly Business Review")
	rule('-')
	qbr, err := d.sys.QuarterlyReview(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Status: %s\n", qbr.Status)
	fmt.Printf("✓ Insights generated: %d\n", len(qbr.Insights))
	fmt.Printf("✓ Recommendations: %d\n", len(qbr.Recommendations))

	return nil
}

// ---- Phase 1: marketing ----

func (d *demo) marketingPhase(ctx context.Context) ([]marketing.LeadQualification, marketingSummary, error) {
	banner("PHASE 1: MARKETING - Lead Generation & Campaign Launch")

	launch, err := resilience.Retry(ctx, d.retry, func() (marketing.LaunchReport, error) {
		return d.sys.Marketing().LaunchCampaign(ctx, marketing.LaunchRequest{
			CampaignType:   "product_launch",
			TargetAudience: "B2B SaaS companies",
			Budget:         50000,
			Channels:       []string{"linkedin", "google_ads", "content_marketing"},
		})
	})
	if err != nil {
		return nil, marketingSummary{}, err
	}
	fmt.Printf("✅ Campaign %q launched\n", launch.CampaignID)
	fmt.Printf("   - Leads Generated: %d\n", launch.Performance.LeadsGenerated)
	fmt.Printf("   - Engagement Rate: %.1f%%\n", launch.Performance.EngagementRate)
	fmt.Printf("   - Cost per Lead: $%.2f\n", launch.Performance.CostPerLead)

	inbound := []marketing.Lead{
		{Name: "TechCorp", CompanySize: "enterprise", Interest: "high"},
		{Name: "StartupXYZ", CompanySize: "startup", Interest: "medium"},
		{Name: "MidSizeCo", CompanySize: "mid_market", Interest: "high"},
	}

	var qualified []marketing.LeadQualification
	for _, lead := range inbound {
		lead := lead
		result, err := resilience.Retry(ctx, d.retry, func() (marketing.LeadQualification, error) {
			return d.sys.Marketing().QualifyLead(ctx, lead)
		})
		if err != nil {
			return nil, marketingSummary{}, err
		}
		if result.Qualification.ShouldPassToSales {
			qualified = append(qualified, result)
			fmt.Printf("✅ Lead %q qualified - Score: %d\n", lead.Name, result.Qualification.LeadScore)
		}
	}

	return qualified, marketingSummary{
		CampaignsLaunched: 1,
		LeadsGenerated:    len(inbound),
		LeadsQualified:    len(qualified),
	}, nil
}

// ---- Phase 2: sales ----

func (d *demo) salesPhase(ctx context.Context, qualified []marketing.LeadQualification) ([]sales.ClosedDeal, salesSummary, error) {
	banner("PHASE 2: SALES - Lead Processing & Deal Management")

	var opportunities []sales.LeadOutcome
	for _, lead := range qualified {
		lead := lead
		outcome, err := resilience.Retry(ctx, d.retry, func() (sales.LeadOutcome, error) {
			return d.sys.Sales().ProcessLead(ctx, sales.LeadRequest{
				LeadID:          lead.LeadID,
				Company:         lead.Lead.Name,
				Segment:         lead.Lead.CompanySize,
				EngagementScore: float64(lead.Qualification.LeadScore),
			})
		})
		if err != nil {
			return nil, salesSummary{}, err
		}
		opportunities = append(opportunities, outcome)
		fmt.Printf("✅ Opportunity created for %s\n", outcome.Company)
		fmt.Printf("   - Deal Size: $%.0f\n", outcome.DealSize)
		fmt.Printf("   - Win Probability: %.0f%%\n", outcome.WinProbability)
		fmt.Printf("   - Next Action: %s\n", outcome.NextAction)
	}

	// Close the first two opportunities, matching the scripted day.
	toClose := opportunities
	if len(toClose) > 2 {
		toClose = toClose[:2]
	}

	var (
		deals   []sales.ClosedDeal
		revenue float64
	)
	for _, opp := range toClose {
		opp := opp
		deal, err := resilience.Retry(ctx, d.retry, func() (sales.ClosedDeal, error) {
			return d.sys.Sales().CloseDeal(ctx, sales.DealClose{
				DealID:        opp.OpportunityID,
				Company:       opp.Company,
				ContractValue: opp.DealSize,
			})
		})
		if err != nil {
			return nil, salesSummary{}, err
		}
		deals = append(deals, deal)
		revenue += deal.DealValue
		fmt.Printf("🎉 Deal CLOSED for $%.0f\n", deal.DealValue)
	}

	return deals, salesSummary{
		OpportunitiesCreated: len(opportunities),
		DealsClosed:          len(deals),
		RevenueGenerated:     revenue,
	}, nil
}

// ---- Phase 3: operations ----

func (d *demo) operationsPhase(ctx context.Context, deals []sales.ClosedDeal) (operationsSummary, error) {
	banner("PHASE 3: OPERATIONS - Order Fulfillment & Inventory")

	for _, deal := range deals {
		deal := deal
		fulfillment, err := resilience.Retry(ctx, d.retry, func() (operations.Fulfillment, error) {
			return d.sys.Operations().FulfillOrder(ctx, operations.Order{
				OrderID:    "ORD-" + deal.DealID,
				Customer:   deal.Company,
				Products:   []string{"SAAS_001"},
				Priority:   "high",
				TotalValue: deal.DealValue,
			})
		})
		if err != nil {
			return operationsSummary{}, err
		}
		fmt.Printf("✅ Order %s fulfilled\n", fulfillment.OrderID)
		fmt.Printf("   - Status: %s\n", fulfillment.Status)
		fmt.Printf("   - Delivery: %s\n", fulfillment.Delivery.EstimatedDelivery.Format("2006-01-02"))
		fmt.Printf("   - Tracking: %s\n", fulfillment.Delivery.TrackingNumber)
	}

	inventory, err := resilience.Retry(ctx, d.retry, func() (operations.InventoryReport, error) {
		return d.sys.Operations().ManageInventory(ctx, operations.InventoryRequest{
			ProductID:    "SAAS_001",
			CurrentStock: 45,
			ReorderPoint: 50,
		})
	})
	if err != nil {
		return operationsSummary{}, err
	}
	fmt.Printf("\n📦 Inventory Status: %s\n", inventory.Status)
	if inventory.ReorderTriggered {
		fmt.Printf("   - Reorder initiated for %d units\n", inventory.ReorderQuantity)
	}

	return operationsSummary{
		OrdersFulfilled: len(deals),
		InventoryStatus: inventory.Status,
	}, nil
}

// ---- Phase 4: customer service ----

func (d *demo) servicePhase(ctx context.Context) (customerServiceSummary, error) {
	banner("PHASE 4: CUSTOMER SERVICE - Support & Engagement")

	tickets := []customerservice.Ticket{
		{
			ID:           "TICK_001",
			CustomerName: "TechCorp",
			Subject:      "Need help with setup",
			Message:      "We need assistance configuring the new system",
			Priority:     "normal",
		},
		{
			ID:           "TICK_002",
			CustomerName: "MidSizeCo",
			Subject:      "Billing question",
			Message:      "Question about our invoice",
			Priority:     "normal",
		},
	}

	resolved := 0
	for _, ticket := range tickets {
		ticket := ticket
		assessment, err := resilience.Retry(ctx, d.retry, func() (customerservice.TicketAssessment, error) {
			return d.sys.CustomerService().ProcessTicket(ctx, ticket)
		})
		if err != nil {
			return customerServiceSummary{}, err
		}
		fmt.Printf("✅ Ticket %s processed\n", ticket.ID)
		fmt.Printf("   - Status: %s\n", assessment.Status)
		fmt.Printf("   - Sentiment: %s\n", assessment.Sentiment.Emotion)
		fmt.Printf("   - Category: %s\n", assessment.Classification.Category)
		fmt.Printf("   - Routed to: %s\n", assessment.Routing.Team)

		method := "agent_assisted"
		if assessment.AIResolvable {
			method = "ai_automated"
		}
		resolution, err := resilience.Retry(ctx, d.retry, func() (customerservice.Resolution, error) {
			return d.sys.CustomerService().ResolveTicket(ctx, customerservice.ResolutionRequest{
				TicketID: ticket.ID,
				Method:   method,
			})
		})
		if err != nil {
			return customerServiceSummary{}, err
		}
		resolved++
		fmt.Printf("   - Resolution: %s (Satisfaction: %.1f/5)\n", resolution.Method, resolution.Survey.Score)
	}

	rate := 0.0
	if len(tickets) > 0 {
		rate = float64(resolved) / float64(len(tickets)) * 100
	}
	return customerServiceSummary{
		TicketsProcessed: len(tickets),
		TicketsResolved:  resolved,
		AIResolutionRate: rate,
	}, nil
}

// ---- Phase 5: analytics ----

func (d *demo) analyticsPhase(ctx context.Context) (analyticsSummary, error) {
	banner("PHASE 5: ANALYTICS - Business Intelligence & Insights")

	report, err := resilience.Retry(ctx, d.retry, func() (analytics.IntelligenceReport, error) {
		return d.sys.Analytics().IntelligenceReport(ctx, "monthly")
	})
	if err != nil {
		return analyticsSummary{}, err
	}
	fmt.Printf("📊 Business Intelligence Report Generated: %s\n", report.ReportID)
	fmt.Println("\nRevenue Analysis:")
	fmt.Printf("   - Total Revenue: $%.0f\n", report.Revenue.TotalRevenue)
	fmt.Printf("   - Revenue Growth: %.1f%%\n", report.Revenue.RevenueGrowth)
	fmt.Printf("   - MRR: $%.0f\n", report.Revenue.MRR)
	fmt.Println("\nCustomer Analysis:")
	fmt.Printf("   - Total Customers: %d\n", report.Customers.TotalCustomers)
	fmt.Printf("   - Retention Rate: %.1f%%\n", report.Customers.RetentionRate)
	fmt.Printf("   - NPS Score: %d\n", report.Customers.NPSScore)
	fmt.Printf("   - LTV:CAC Ratio: %.0f:1\n", report.Customers.LTVCACRatio)
	fmt.Printf("\nBusiness Health Score: %.1f/100 (%s)\n", report.Health.OverallScore, strings.ToUpper(report.Health.Status))

	fmt.Println("\nTop Recommendations:")
	top := report.Recommendations
	if len(top) > 3 {
		top = top[:3]
	}
	for i, rec := range top {
		fmt.Printf("   %d. [%s] %s\n", i+1, strings.ToUpper(rec.Priority), rec.Recommendation)
		fmt.Printf("      Impact: %s\n", rec.ExpectedImpact)
	}

	dashboard, err := resilience.Retry(ctx, d.retry, func() (analytics.Dashboard, error) {
		return d.sys.Analytics().RealTimeDashboard(ctx, "executive")
	})
	if err != nil {
		return analyticsSummary{}, err
	}
	fmt.Printf("\n📈 Real-time Dashboard Created: %s\n", dashboard.DashboardID)
	fmt.Printf("   - Active Sessions: %d\n", dashboard.KPIs.ActiveSessions)
	fmt.Printf("   - Revenue Today: $%.0f\n", dashboard.KPIs.RevenueToday)
	fmt.Printf("   - Conversion Rate: %.1f%%\n", dashboard.KPIs.ConversionRate)

	return analyticsSummary{
		ReportsGenerated:  1,
		DashboardsCreated: 1,
		BusinessHealth:    report.Health.Status,
	}, nil
}

// ---- Phase 6: HR ----

func (d *demo) hrPhase(ctx context.Context) (hrSummary, error) {
	banner("PHASE 6: HR - Talent Acquisition & Management")

	evaluation, err := resilience.Retry(ctx, d.retry, func() (hr.CandidateEvaluation, error) {
		return d.sys.HR().ScreenCandidate(ctx, hr.Application{
			ID:       "APP_001",
			Name:     "Sarah Johnson",
			Position: "Senior Software Engineer",
			Resume: hr.Resume{
				YearsExperience: 7,
				Education:       "master",
				Skills:          []string{"Python", "AI/ML", "Cloud"},
				Certifications:  []string{"AWS Certified", "Google Cloud Professional"},
			},
			References: []string{"John Doe"},
		})
	})
	if err != nil {
		return hrSummary{}, err
	}
	fmt.Printf("✅ Application processed: %s\n", evaluation.CandidateName)
	fmt.Printf("   - Overall Score: %.1f/100\n", evaluation.Overall.Score)
	fmt.Printf("   - Rating: %s\n", evaluation.Overall.Rating)
	fmt.Printf("   - Recommendation: %s\n", strings.ToUpper(evaluation.Recommendation))
	steps := evaluation.NextSteps
	if len(steps) > 2 {
		steps = steps[:2]
	}
	fmt.Printf("   - Next Steps: %s\n", strings.Join(steps, ", "))

	review, err := resilience.Retry(ctx, d.retry, func() (hr.ReviewReport, error) {
		return d.sys.HR().PerformanceReview(ctx, "EMP_001")
	})
	if err != nil {
		return hrSummary{}, err
	}
	fmt.Printf("\n📝 Performance Review Completed: %s\n", review.EmployeeID)
	fmt.Printf("   - Overall Score: %.2f/100\n", review.Overall.Score)
	fmt.Printf("   - Rating: %s\n", review.Rating)
	fmt.Printf("   - Compensation: +%.1f%% total\n", review.Compensation.TotalIncrease)

	survey, err := resilience.Retry(ctx, d.retry, func() (hr.SurveyReport, error) {
		return d.sys.HR().EngagementSurvey(ctx, []string{"EMP_001", "EMP_002", "EMP_003"})
	})
	if err != nil {
		return hrSummary{}, err
	}
	fmt.Println("\n📋 Employee Engagement Survey Completed")
	fmt.Printf("   - Response Rate: %.1f%%\n", survey.ResponseRate)
	fmt.Printf("   - Overall Engagement: %.1f/100\n", survey.EngagementScore)
	fmt.Printf("   - Satisfaction Score: %.1f/10\n", survey.Satisfaction.Overall)
	fmt.Printf("   - High Risk Employees: %d\n", survey.Retention.HighRisk)

	return hrSummary{
		ApplicationsProcessed: 1,
		SurveysCompleted:      1,
		EngagementScore:       survey.EngagementScore,
	}, nil
}

// ---- Cross-branch coordination ----

// coordinationShowcase walks the churn-response playbook: analytics
// flags the account, customer service opens proactive outreach and
// sales launches a retention campaign.
func (d *demo) coordinationShowcase(ctx context.Context) error {
	banner("CROSS-BRANCH COORDINATION - Churn Response")

	fmt.Println("\n1️⃣  ANALYTICS detects decreased engagement...")
	scan, err := resilience.Retry(ctx, d.retry, func() (analytics.AnomalyScan, error) {
		return d.sys.Analytics().DetectAnomalies(ctx, "customer_engagement")
	})
	if err != nil {
		return err
	}
	if len(scan.Anomalies) > 0 {
		fmt.Printf("   ⚠️  %s\n", scan.Anomalies[0].Description)
	}

	fmt.Println("\n2️⃣  CUSTOMER SERVICE creates proactive outreach...")
	outreach, err := resilience.Retry(ctx, d.retry, func() (customerservice.TicketAssessment, error) {
		return d.sys.CustomerService().ProcessTicket(ctx, customerservice.Ticket{
			ID:           "PROACTIVE_001",
			CustomerName: "High Value Corp",
			Subject:      "Check-in call",
			Message:      "Proactive outreach based on analytics alert",
			Priority:     "high",
		})
	})
	if err != nil {
		return err
	}
	fmt.Printf("   ✓ Routed to: %s\n", outreach.Routing.Team)

	fmt.Println("\n3️⃣  SALES launches retention campaign...")
	retention, err := resilience.Retry(ctx, d.retry, func() (sales.RetentionCampaign, error) {
		return d.sys.Sales().CustomerRetentionCampaign(ctx, sales.RetentionRequest{
			CrisisAffected:     false,
			CompensationOffers: true,
		})
	})
	if err != nil {
		return err
	}
	fmt.Printf("   ✓ Accounts contacted: %d\n", retention.AccountsContacted)
	fmt.Printf("   ✓ Projected save rate: %.0f%%\n", retention.ProjectedSaveRate*100)

	fmt.Println("\n✨ Result: Customer retained through coordinated effort")
	return nil
}

// ---- Reports ----

func (d *demo) printReports() {
	banner("SYSTEM HEALTH REPORT")
	health := d.sys.SystemHealth()
	fmt.Printf("Status: %s\n", strings.ToUpper(health.Status))
	fmt.Printf("Uptime: %.2f hours\n", health.UptimeHours)
	fmt.Printf("Success Rate: %s\n", health.Metrics.SuccessRate)
	fmt.Printf("Total Workflows: %d\n", health.Metrics.TotalWorkflows)
	fmt.Printf("Active Branches: %d\n", health.Metrics.ActiveBranches)

	banner("AI STRATEGIC REPORT")
	strategy := d.sys.StrategicReport()
	fmt.Printf("Report ID: %s\n", strategy.ReportID)
	fmt.Printf("Automation Efficiency: %s\n", strategy.SystemPerformance.AutomationEfficiency)
	if len(strategy.Recommendations) > 0 {
		fmt.Println("\nTop Strategic Recommendation:")
		fmt.Printf("  → %s\n", strategy.Recommendations[0])
	}
	if len(strategy.InvestmentPriorities) > 0 {
		fmt.Println("\nTop Investment Priority:")
		fmt.Printf("  → %s (ROI: %s)\n", strategy.InvestmentPriorities[0].Area, strategy.InvestmentPriorities[0].ROIPotential)
	}
}

// ---- Summary ----

type marketingSummary struct {
	CampaignsLaunched int `json:"campaigns_launched"`
	LeadsGenerated    int `json:"leads_generated"`
	LeadsQualified    int `json:"leads_qualified"`
}

type salesSummary struct {
	OpportunitiesCreated int     `json:"opportunities_created"`
	DealsClosed          int     `json:"deals_closed"`
	RevenueGenerated     float64 `json:"revenue_generated"`
}

type operationsSummary struct {
	OrdersFulfilled int    `json:"orders_fulfilled"`
	InventoryStatus string `json:"inventory_status"`
}

type customerServiceSummary struct {
	TicketsProcessed int     `json:"tickets_processed"`
	TicketsResolved  int     `json:"tickets_resolved"`
	AIResolutionRate float64 `json:"ai_resolution_rate"`
}

type analyticsSummary struct {
	ReportsGenerated  int    `json:"reports_generated"`
	DashboardsCreated int    `json:"dashboards_created"`
	BusinessHealth    string `json:"business_health"`
}

type hrSummary struct {
	ApplicationsProcessed int     `json:"applications_processed"`
	SurveysCompleted      int     `json:"surveys_completed"`
	EngagementScore       float64 `json:"engagement_score"`
}

type demoSummary struct {
	Timestamp       time.Time              `json:"timestamp"`
	PhasesCompleted int                    `json:"phases_completed"`
	Marketing       marketingSummary       `json:"marketing"`
	Sales           salesSummary           `json:"sales"`
	Operations      operationsSummary      `json:"operations"`
	CustomerService customerServiceSummary `json:"customer_service"`
	Analytics       analyticsSummary       `json:"analytics"`
	HR              hrSummary              `json:"hr"`
}

func printSummary(s demoSummary) {
	banner("COMPLETE BUSINESS AUTOMATION SUMMARY")

	fmt.Println("\n📢 MARKETING:")
	fmt.Printf("   ✓ Campaigns Launched: %d\n", s.Marketing.CampaignsLaunched)
	fmt.Printf("   ✓ Leads Generated: %d\n", s.Marketing.LeadsGenerated)
	fmt.Printf("   ✓ Qualified Leads: %d\n", s.Marketing.LeadsQualified)

	fmt.Println("\n💼 SALES:")
	fmt.Printf("   ✓ Opportunities Created: %d\n", s.Sales.OpportunitiesCreated)
	fmt.Printf("   ✓ Deals Closed: %d\n", s.Sales.DealsClosed)
	fmt.Printf("   ✓ Revenue Generated: $%.0f\n", s.Sales.RevenueGenerated)

	fmt.Println("\n⚙️  OPERATIONS:")
	fmt.Printf("   ✓ Orders Fulfilled: %d\n", s.Operations.OrdersFulfilled)
	fmt.Printf("   ✓ Inventory Status: %s\n", strings.ToUpper(s.Operations.InventoryStatus))

	fmt.Println("\n🤝 CUSTOMER SERVICE:")
	fmt.Printf("   ✓ Tickets Processed: %d\n", s.CustomerService.TicketsProcessed)
	fmt.Printf("   ✓ Tickets Resolved: %d\n", s.CustomerService.TicketsResolved)
	fmt.Printf("   ✓ AI Resolution Rate: %.0f%%\n", s.CustomerService.AIResolutionRate)

	fmt.Println("\n📊 ANALYTICS:")
	fmt.Printf("   ✓ BI Reports Generated: %d\n", s.Analytics.ReportsGenerated)
	fmt.Printf("   ✓ Dashboards Created: %d\n", s.Analytics.DashboardsCreated)
	fmt.Printf("   ✓ Business Health: %s\n", strings.ToUpper(s.Analytics.BusinessHealth))

	fmt.Println("\n👥 HR:")
	fmt.Printf("   ✓ Applications Processed: %d\n", s.HR.ApplicationsProcessed)
	fmt.Printf("   ✓ Engagement Surveys: %d\n", s.HR.SurveysCompleted)
	fmt.Printf("   ✓ Engagement Score: %.1f/100\n", s.HR.EngagementScore)
}

func writeSummary(s demoSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(summaryFile, data, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	fmt.Printf("\n💾 Summary saved to: %s\n", summaryFile)
	return nil
}

// ---- Output helpers ----

func printTree() {
	fmt.Println("🌳 AI Business Automation Tree")
	rule('=')
	fmt.Println("Branches Active:")
	fmt.Println("  📢 Marketing")
	fmt.Println("  💼 Sales")
	fmt.Println("  ⚙️  Operations")
	fmt.Println("  🤝 Customer Service")
	fmt.Println("  📊 Analytics")
	fmt.Println("  👥 HR")
	rule('=')
}

func banner(title string) {
	fmt.Println()
	rule('=')
	fmt.Println(title)
	rule('=')
}

func rule(ch rune) {
	fmt.Println(strings.Repeat(string(ch), 70))
}
