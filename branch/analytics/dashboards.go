package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/pipeline"
)

// KPISnapshot is the live key-performance-indicator panel.
type KPISnapshot struct {
	RevenueToday      float64 `json:"current_revenue_today"`
	ActiveSessions    int     `json:"active_sessions"`
	ConversionRate    float64 `json:"conversion_rate_today"`
	AvgResponseTime   float64 `json:"avg_response_time_minutes"`
	SystemHealth      string  `json:"system_health"`
	SatisfactionToday float64 `json:"customer_satisfaction_today"`
}

// Alert is one active monitoring alert.
type Alert struct {
	AlertID    string    `json:"alert_id"`
	Severity   string    `json:"severity"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	DetectedAt time.Time `json:"detected_at"`
}

// TrendingMetric is a metric with its period-over-period change.
type TrendingMetric struct {
	Metric string `json:"metric"`
	Change string `json:"change"`
}

// TrendingMetrics splits metrics into improving and declining sets.
type TrendingMetrics struct {
	TrendingUp   []TrendingMetric `json:"trending_up"`
	TrendingDown []TrendingMetric `json:"trending_down"`
}

// Dashboard is a live analytics dashboard snapshot.
type Dashboard struct {
	DashboardID string          `json:"dashboard_id"`
	Type        string          `json:"type"`
	KPIs        KPISnapshot     `json:"real_time_kpis"`
	Alerts      []Alert         `json:"active_alerts"`
	Trending    TrendingMetrics `json:"trending_metrics"`
	LastUpdated time.Time       `json:"last_updated"`
	RefreshRate string          `json:"refresh_rate"`
}

func (Dashboard) Branch() string    { return branch.Analytics }
func (Dashboard) Operation() string { return OpRealTimeDashboard }

// RealTimeDashboard assembles the KPI panel, active alerts and trending
// metrics into a dashboard snapshot.
func (c *Coordinator) RealTimeDashboard(ctx context.Context, dashboardType string) (Dashboard, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return Dashboard{}, err
	}

	now := time.Now()

	trending, err := trendingMetrics(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	dashboard := Dashboard{
		DashboardID: fmt.Sprintf("DASH_%s_%s", dashboardType, now.Format("20060102")),
		Type:        dashboardType,
		KPIs: KPISnapshot{
			RevenueToday:      15250,
			ActiveSessions:    423,
			ConversionRate:    3.8,
			AvgResponseTime:   1.2,
			SystemHealth:      "optimal",
			SatisfactionToday: 4.7,
		},
		Alerts: []Alert{
			{
				AlertID:    "ALT_001",
				Severity:   "medium",
				Type:       "performance",
				Message:    "Response time 15% above baseline",
				DetectedAt: now.Add(-12 * time.Minute),
			},
			{
				AlertID:    "ALT_002",
				Severity:   "low",
				Type:       "customer",
				Message:    "3 high-value customers showing reduced engagement",
				DetectedAt: now.Add(-2 * time.Hour),
			},
		},
		Trending:    trending,
		LastUpdated: now,
		RefreshRate: "30_seconds",
	}

	c.mu.Lock()
	c.dashboardsCreated++
	c.mu.Unlock()

	c.log.Info("Dashboard created", map[string]interface{}{
		"dashboard_id": dashboard.DashboardID,
		"type":         dashboardType,
	})

	return dashboard, nil
}

// metricDelta is a sampled period-over-period metric movement.
type metricDelta struct {
	metric string
	change float64
}

func sampledDeltas() []metricDelta {
	return []metricDelta{
		{"daily_active_users", 12.5},
		{"customer_satisfaction", 8.3},
		{"conversion_rate", 5.7},
		{"response_time", -3.2},
		{"cart_abandonment", -15.8},
	}
}

// trendingMetrics streams the sampled deltas twice, once for each
// direction, and formats the movements for display.
func trendingMetrics(ctx context.Context) (TrendingMetrics, error) {
	format := func(_ context.Context, d metricDelta) (TrendingMetric, error) {
		return TrendingMetric{Metric: d.metric, Change: fmt.Sprintf("%+.1f%%", d.change)}, nil
	}

	up, err := pipeline.Collect(ctx, pipeline.Map(
		pipeline.Filter(pipeline.FromSlice(sampledDeltas()), func(d metricDelta) bool { return d.change > 0 }),
		format,
	))
	if err != nil {
		return TrendingMetrics{}, err
	}

	down, err := pipeline.Collect(ctx, pipeline.Map(
		pipeline.Filter(pipeline.FromSlice(sampledDeltas()), func(d metricDelta) bool { return d.change < 0 }),
		format,
	))
	if err != nil {
		return TrendingMetrics{}, err
	}

	return TrendingMetrics{TrendingUp: up, TrendingDown: down}, nil
}

// StrategicMetrics are the board-level indicators.
type StrategicMetrics struct {
	MarketShare          float64 `json:"market_share"`
	BrandValue           float64 `json:"brand_value"`
	InnovationIndex      float64 `json:"innovation_index"`
	EmployeeSatisfaction float64 `json:"employee_satisfaction"`
	SustainabilityScore  int     `json:"sustainability_score"`
}

// ExecutiveDashboard is the quarterly leadership rollup.
type ExecutiveDashboard struct {
	Status      string              `json:"status"`
	Type        string              `json:"dashboard_type"`
	TimePeriod  string              `json:"time_period"`
	Revenue     RevenueAnalysis     `json:"revenue_summary"`
	Customers   CustomerAnalysis    `json:"customer_summary"`
	Operations  OperationalAnalysis `json:"operations_summary"`
	Strategic   StrategicMetrics    `json:"strategic_metrics"`
	KeyInsights []string            `json:"key_insights"`
	ActionItems []string            `json:"action_items"`
}

func (ExecutiveDashboard) Branch() string    { return branch.Analytics }
func (ExecutiveDashboard) Operation() string { return OpExecutiveDashboard }

// GenerateExecutiveDashboard collects the quarterly summaries and the
// strategic indicators for the leadership review.
func (c *Coordinator) GenerateExecutiveDashboard(ctx context.Context) (ExecutiveDashboard, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return ExecutiveDashboard{}, err
	}

	c.log.Info("Executive dashboard generated", nil)

	return ExecutiveDashboard{
		Status:     "dashboard_generated",
		Type:       "executive",
		TimePeriod: "quarterly",
		Revenue:    revenueAnalysis(),
		Customers:  customerAnalysis(),
		Operations: operationalAnalysis(),
		Strategic: StrategicMetrics{
			MarketShare:          12.3,
			BrandValue:           8.5,
			InnovationIndex:      7.8,
			EmployeeSatisfaction: 4.2,
			SustainabilityScore:  78,
		},
		KeyInsights: []string{
			"Company on track to exceed annual targets by 15%",
			"Customer retention at all-time high of 94%",
			"Operational efficiency improved 23% YoY",
			"Market share growing in key segments",
		},
		ActionItems: []string{
			"Approve budget increase for high-performing channels",
			"Accelerate hiring in growth areas",
			"Expand into new geographic markets",
		},
	}, nil
}

// ProductBrief describes a product needing launch analytics.
type ProductBrief struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	TargetMarket string `json:"target_market"`
	LaunchDate   string `json:"launch_date"`
}

// TrackingSetup is the outcome of provisioning launch analytics for a
// new product.
type TrackingSetup struct {
	ProductID        string   `json:"product_id"`
	Status           string   `json:"status"`
	DashboardURL     string   `json:"dashboard_url"`
	MetricCategories []string `json:"metric_categories"`
	KPIs             int      `json:"kpis"`
	DataSources      []string `json:"data_sources"`
	RefreshFrequency string   `json:"refresh_frequency"`
	Widgets          []string `json:"dashboard_widgets"`
	MetricsTracked   int      `json:"metrics_tracked"`
}

func (TrackingSetup) Branch() string    { return branch.Analytics }
func (TrackingSetup) Operation() string { return OpTrackingDashboard }

// SetupTrackingDashboard provisions metric tracking, data pipelines and
// visualizations for a product launch.
func (c *Coordinator) SetupTrackingDashboard(ctx context.Context, brief ProductBrief) (TrackingSetup, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return TrackingSetup{}, err
	}

	productID := brief.ProductID
	if productID == "" {
		productID = "PROD-001"
	}

	c.log.Info("Tracking dashboard ready", map[string]interface{}{
		"product_id": productID,
	})

	return TrackingSetup{
		ProductID:        productID,
		Status:           "dashboard_ready",
		DashboardURL:     fmt.Sprintf("https://analytics.company.com/products/%s", productID),
		MetricCategories: []string{"adoption", "usage", "performance", "revenue", "satisfaction"},
		KPIs:             15,
		DataSources:      []string{"application_logs", "user_events", "transactions", "support_tickets"},
		RefreshFrequency: "real_time",
		Widgets:          []string{"line_charts", "bar_charts", "pie_charts", "heat_maps", "funnel_analysis"},
		MetricsTracked:   25,
	}, nil
}
