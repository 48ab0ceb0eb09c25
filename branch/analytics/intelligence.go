package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// RevenueAnalysis summarizes revenue performance for the period.
type RevenueAnalysis struct {
	TotalRevenue     float64            `json:"total_revenue"`
	RevenueGrowth    float64            `json:"revenue_growth"`
	RevenueByProduct map[string]float64 `json:"revenue_by_product"`
	RevenueByChannel map[string]float64 `json:"revenue_by_channel"`
	MRR              float64            `json:"mrr"`
	ARR              float64            `json:"arr"`
	AverageDealSize  float64            `json:"average_deal_size"`
	ConversionValue  float64            `json:"conversion_value"`
	Insights         []string           `json:"insights"`
}

// CustomerSegment is one slice of the customer base.
type CustomerSegment struct {
	Count      int     `json:"count"`
	AvgRevenue float64 `json:"avg_revenue"`
	Engagement string  `json:"engagement"`
	ChurnRisk  string  `json:"churn_risk"`
}

// CustomerAnalysis summarizes customer lifecycle metrics.
type CustomerAnalysis struct {
	TotalCustomers     int                        `json:"total_customers"`
	NewCustomers       int                        `json:"new_customers"`
	ChurnedCustomers   int                        `json:"churned_customers"`
	AcquisitionCost    float64                    `json:"customer_acquisition_cost"`
	LifetimeValue      float64                    `json:"customer_lifetime_value"`
	LTVCACRatio        float64                    `json:"ltv_cac_ratio"`
	RetentionRate      float64                    `json:"retention_rate"`
	ChurnRate          float64                    `json:"churn_rate"`
	NPSScore           int                        `json:"nps_score"`
	Satisfaction       float64                    `json:"customer_satisfaction"`
	EngagementRate     float64                    `json:"engagement_rate"`
	DailyActiveUsers   int                        `json:"active_users_daily"`
	MonthlyActiveUsers int                        `json:"active_users_monthly"`
	Segments           map[string]CustomerSegment `json:"segments"`
	Insights           []string                   `json:"insights"`
}

// OperationalAnalysis summarizes process efficiency metrics.
type OperationalAnalysis struct {
	ProcessingEfficiency float64  `json:"processing_efficiency"`
	AutomationRate       float64  `json:"automation_rate"`
	ErrorRate            float64  `json:"error_rate"`
	AvgResponseTime      float64  `json:"avg_response_time"`
	SLACompliance        float64  `json:"sla_compliance"`
	CostPerTransaction   float64  `json:"cost_per_transaction"`
	ResourceUtilization  float64  `json:"resource_utilization"`
	Uptime               float64  `json:"uptime"`
	Throughput           int      `json:"throughput"`
	EfficiencyScore      float64  `json:"efficiency_score"`
	Bottlenecks          []string `json:"bottlenecks"`
	Optimizations        []string `json:"optimization_opportunities"`
}

// Forecast is a point forecast with model confidence.
type Forecast struct {
	NextMonth   float64 `json:"next_month"`
	NextQuarter float64 `json:"next_quarter"`
	Confidence  float64 `json:"confidence"`
}

// ChurnPrediction flags customers the models expect to lose.
type ChurnPrediction struct {
	ExpectedNextMonth int     `json:"expected_churn_next_month"`
	HighRiskCustomers int     `json:"high_risk_customers"`
	Confidence        float64 `json:"confidence"`
}

// TrendPredictions carries the forward-looking model outputs.
type TrendPredictions struct {
	RevenueForecast        Forecast        `json:"revenue_forecast"`
	CustomerGrowthForecast Forecast        `json:"customer_growth_forecast"`
	Churn                  ChurnPrediction `json:"churn_prediction"`
	MarketTrends           []string        `json:"market_trends"`
}

// Recommendation is one strategic recommendation with its expected
// payoff and cost to implement.
type Recommendation struct {
	Category       string `json:"category"`
	Priority       string `json:"priority"`
	Recommendation string `json:"recommendation"`
	ExpectedImpact string `json:"expected_impact"`
	Effort         string `json:"implementation_effort"`
}

// HealthScore is the weighted business health rollup.
type HealthScore struct {
	OverallScore      float64 `json:"overall_score"`
	Status            string  `json:"status"`
	RevenueHealth     float64 `json:"revenue_health"`
	CustomerHealth    float64 `json:"customer_health"`
	OperationalHealth float64 `json:"operational_health"`
}

// IntelligenceReport is the full business intelligence report.
type IntelligenceReport struct {
	ReportID        string              `json:"report_id"`
	Period          string              `json:"period"`
	GeneratedAt     time.Time           `json:"generated_at"`
	Revenue         RevenueAnalysis     `json:"revenue_analysis"`
	Customers       CustomerAnalysis    `json:"customer_analysis"`
	Operations      OperationalAnalysis `json:"operational_analysis"`
	Predictions     TrendPredictions    `json:"predictions"`
	Recommendations []Recommendation    `json:"recommendations"`
	Health          HealthScore         `json:"overall_health_score"`
}

func (IntelligenceReport) Branch() string    { return branch.Analytics }
func (IntelligenceReport) Operation() string { return OpIntelligenceReport }

// IntelligenceReport assembles the revenue, customer, operational and
// predictive analyses into one report and scores overall health.
func (c *Coordinator) IntelligenceReport(ctx context.Context, period string) (IntelligenceReport, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return IntelligenceReport{}, err
	}

	if period == "" {
		period = "monthly"
	}

	revenue := revenueAnalysis()
	customers := customerAnalysis()
	operations := operationalAnalysis()

	report := IntelligenceReport{
		ReportID:        fmt.Sprintf("BI_REPORT_%s", time.Now().Format("20060102_150405")),
		Period:          period,
		GeneratedAt:     time.Now(),
		Revenue:         revenue,
		Customers:       customers,
		Operations:      operations,
		Predictions:     trendPredictions(),
		Recommendations: strategicRecommendations(),
		Health:          businessHealth(revenue.RevenueGrowth, customers.RetentionRate, operations.EfficiencyScore),
	}

	c.mu.Lock()
	c.reportsGenerated++
	c.mu.Unlock()

	c.log.Info("Intelligence report generated", map[string]interface{}{
		"report_id": report.ReportID,
		"period":    period,
		"health":    report.Health.Status,
	})

	return report, nil
}

// businessHealth rolls the component scores into a weighted overall
// score. Revenue growth saturates at 20% for a full revenue score.
func businessHealth(revenueGrowth, retentionRate, efficiencyScore float64) HealthScore {
	revenueScore := math.Min(revenueGrowth/20*100, 100)

	overall := revenueScore*0.35 + retentionRate*0.35 + efficiencyScore*0.30

	status := "needs_attention"
	switch {
	case overall >= 90:
		status = "excellent"
	case overall >= 75:
		status = "good"
	case overall >= 60:
		status = "fair"
	}

	return HealthScore{
		OverallScore:      math.Round(overall*10) / 10,
		Status:            status,
		RevenueHealth:     math.Round(revenueScore*10) / 10,
		CustomerHealth:    math.Round(retentionRate*10) / 10,
		OperationalHealth: math.Round(efficiencyScore*10) / 10,
	}
}

func revenueAnalysis() RevenueAnalysis {
	return RevenueAnalysis{
		TotalRevenue:  458750,
		RevenueGrowth: 23.5,
		RevenueByProduct: map[string]float64{
			"product_a": 185000,
			"product_b": 156000,
			"product_c": 117750,
		},
		RevenueByChannel: map[string]float64{
			"direct_sales": 275250,
			"partnerships": 137625,
			"online":       45875,
		},
		MRR:             152917,
		ARR:             1835000,
		AverageDealSize: 15625,
		ConversionValue: 3125,
		Insights: []string{
			"Revenue growth exceeded target by 8.5%",
			"Product A showing strongest performance",
			"Direct sales channel dominates with 60% contribution",
		},
	}
}

func customerAnalysis() CustomerAnalysis {
	return CustomerAnalysis{
		TotalCustomers:     3542,
		NewCustomers:       327,
		ChurnedCustomers:   45,
		AcquisitionCost:    1250,
		LifetimeValue:      18750,
		LTVCACRatio:        15.0,
		RetentionRate:      94.7,
		ChurnRate:          1.3,
		NPSScore:           72,
		Satisfaction:       4.6,
		EngagementRate:     68.5,
		DailyActiveUsers:   2150,
		MonthlyActiveUsers: 3100,
		Segments: map[string]CustomerSegment{
			"high_value": {Count: 354, AvgRevenue: 5250, Engagement: "high", ChurnRisk: "low"},
			"growth":     {Count: 1062, AvgRevenue: 1875, Engagement: "medium", ChurnRisk: "low"},
			"at_risk":    {Count: 212, AvgRevenue: 625, Engagement: "low", ChurnRisk: "high"},
			"new":        {Count: 327, AvgRevenue: 1125, Engagement: "medium", ChurnRisk: "medium"},
		},
		Insights: []string{
			"LTV:CAC ratio of 15:1 indicates excellent unit economics",
			"Retention rate improved by 2.3% vs previous period",
			"Power users segment growing 35% MoM",
		},
	}
}

func operationalAnalysis() OperationalAnalysis {
	return OperationalAnalysis{
		ProcessingEfficiency: 92.5,
		AutomationRate:       78.3,
		ErrorRate:            0.8,
		AvgResponseTime:      1.2,
		SLACompliance:        96.8,
		CostPerTransaction:   2.15,
		ResourceUtilization:  85.0,
		Uptime:               99.94,
		Throughput:           15420,
		EfficiencyScore:      91.5,
		Bottlenecks: []string{
			"Manual approval process in procurement",
			"Data synchronization between systems",
		},
		Optimizations: []string{
			"Automate approval workflows - potential 40% time reduction",
			"Implement real-time data sync - eliminate 2-hour lag",
		},
	}
}

func trendPredictions() TrendPredictions {
	return TrendPredictions{
		RevenueForecast: Forecast{
			NextMonth:   485000,
			NextQuarter: 1456000,
			Confidence:  0.87,
		},
		CustomerGrowthForecast: Forecast{
			NextMonth:   365,
			NextQuarter: 1095,
			Confidence:  0.82,
		},
		Churn: ChurnPrediction{
			ExpectedNextMonth: 52,
			HighRiskCustomers: 189,
			Confidence:        0.79,
		},
		MarketTrends: []string{
			"Increasing demand in enterprise segment",
			"Seasonal uptick expected in Q1",
			"Competitor activity may impact pricing",
		},
	}
}

func strategicRecommendations() []Recommendation {
	return []Recommendation{
		{
			Category:       "revenue_optimization",
			Priority:       "high",
			Recommendation: "Increase focus on Product A sales - showing 47% higher margins",
			ExpectedImpact: "12-15% revenue increase",
			Effort:         "medium",
		},
		{
			Category:       "customer_retention",
			Priority:       "high",
			Recommendation: "Launch targeted retention campaign for 189 at-risk customers",
			ExpectedImpact: "Reduce churn by 30-40%",
			Effort:         "low",
		},
		{
			Category:       "operational_efficiency",
			Priority:       "medium",
			Recommendation: "Automate manual approval workflows",
			ExpectedImpact: "40% time reduction, $125k annual savings",
			Effort:         "medium",
		},
		{
			Category:       "market_expansion",
			Priority:       "medium",
			Recommendation: "Expand enterprise sales team based on segment growth",
			ExpectedImpact: "25% increase in high-value customers",
			Effort:         "high",
		},
	}
}
