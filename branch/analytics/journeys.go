package analytics

import (
	"context"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// JourneyRequest describes a customer journey to analyze. Touchpoints
// lists the operations the customer has passed through so far.
type JourneyRequest struct {
	CustomerID    string   `json:"customer_id"`
	JourneyStages []string `json:"journey_stages"`
	Touchpoints   []string `json:"touchpoints"`
}

// JourneyMetrics summarizes a customer's path across touchpoints.
type JourneyMetrics struct {
	CustomerID             string   `json:"customer_id"`
	StagesCompleted        []string `json:"stages_completed"`
	TotalTouchpoints       int      `json:"total_touchpoints"`
	TimeToConversion       string   `json:"time_to_conversion"`
	EngagementScore        float64  `json:"engagement_score"`
	SatisfactionTrajectory string   `json:"satisfaction_trajectory"`
}

// JourneyReport is the outcome of tracking a customer journey.
type JourneyReport struct {
	Status     string         `json:"status"`
	CustomerID string         `json:"customer_id"`
	Metrics    JourneyMetrics `json:"journey_metrics"`
	Insights   []string       `json:"insights"`
}

func (JourneyReport) Branch() string    { return branch.Analytics }
func (JourneyReport) Operation() string { return OpTrackJourney }

// TrackCustomerJourney analyzes a customer's movement through the
// lifecycle stages.
func (c *Coordinator) TrackCustomerJourney(ctx context.Context, req JourneyRequest) (JourneyReport, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return JourneyReport{}, err
	}

	customerID := req.CustomerID
	if customerID == "" {
		customerID = "CUST-001"
	}

	c.log.Info("Customer journey tracked", map[string]interface{}{
		"customer_id": customerID,
		"touchpoints": len(req.Touchpoints),
	})

	return JourneyReport{
		Status:     "tracked",
		CustomerID: customerID,
		Metrics: JourneyMetrics{
			CustomerID:             customerID,
			StagesCompleted:        req.JourneyStages,
			TotalTouchpoints:       len(req.Touchpoints),
			TimeToConversion:       "45 days",
			EngagementScore:        8.5,
			SatisfactionTrajectory: "improving",
		},
		Insights: []string{
			"Customer highly engaged across all stages",
			"Multi-touch attribution shows email as primary driver",
			"Customer likely to become brand advocate",
		},
	}, nil
}

// CrisisData describes an active crisis to assess.
type CrisisData struct {
	Type              string `json:"type"`
	Severity          string `json:"severity"`
	AffectedCustomers int    `json:"affected_customers"`
}

// FinancialImpact estimates the monetary cost of a crisis.
type FinancialImpact struct {
	EstimatedRevenueLoss float64 `json:"estimated_revenue_loss"`
	RefundExposure       float64 `json:"refund_exposure"`
	RecoveryCosts        float64 `json:"recovery_costs"`
	TotalImpact          float64 `json:"total_impact"`
}

// CustomerImpact estimates customer fallout from a crisis.
type CustomerImpact struct {
	AffectedCustomers int     `json:"affected_customers"`
	ChurnRiskHigh     int     `json:"churn_risk_high"`
	SatisfactionDrop  float64 `json:"satisfaction_drop"`
	BrandImpactScore  float64 `json:"brand_impact_score"`
}

// OperationalImpact estimates the internal load from a crisis.
type OperationalImpact struct {
	SupportTicketsSpike      int    `json:"support_tickets_spike"`
	TeamHoursRequired        int    `json:"team_hours_required"`
	SystemRecoveryEffort     string `json:"system_recovery_effort"`
	PreventiveMeasuresNeeded int    `json:"preventive_measures_needed"`
}

// CrisisImpact is the full crisis impact assessment.
type CrisisImpact struct {
	CrisisType       string            `json:"crisis_type"`
	Status           string            `json:"status"`
	Financial        FinancialImpact   `json:"financial_impact"`
	Customers        CustomerImpact    `json:"customer_impact"`
	Operations       OperationalImpact `json:"operational_impact"`
	SeverityScore    float64           `json:"severity_score"`
	RecoveryTimeline string            `json:"recovery_timeline"`
}

func (CrisisImpact) Branch() string    { return branch.Analytics }
func (CrisisImpact) Operation() string { return OpCrisisImpact }

// defaultAffectedCustomers is assumed when the crisis report does not
// quantify the blast radius.
const defaultAffectedCustomers = 1000

// CrisisImpactAnalysis assesses the financial, customer and operational
// impact of an active crisis.
func (c *Coordinator) CrisisImpactAnalysis(ctx context.Context, data CrisisData) (CrisisImpact, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return CrisisImpact{}, err
	}

	crisisType := data.Type
	if crisisType == "" {
		crisisType = "service_outage"
	}
	affected := data.AffectedCustomers
	if affected <= 0 {
		affected = defaultAffectedCustomers
	}

	c.log.Warn("Crisis impact analyzed", map[string]interface{}{
		"crisis_type": crisisType,
		"affected":    affected,
	})

	return CrisisImpact{
		CrisisType: crisisType,
		Status:     "analysis_complete",
		Financial: FinancialImpact{
			EstimatedRevenueLoss: 45000,
			RefundExposure:       12000,
			RecoveryCosts:        8000,
			TotalImpact:          65000,
		},
		Customers: CustomerImpact{
			AffectedCustomers: affected,
			ChurnRiskHigh:     affected * 5 / 100,
			SatisfactionDrop:  -1.2,
			BrandImpactScore:  6.8,
		},
		Operations: OperationalImpact{
			SupportTicketsSpike:      450,
			TeamHoursRequired:        120,
			SystemRecoveryEffort:     "high",
			PreventiveMeasuresNeeded: 5,
		},
		SeverityScore:    7.5,
		RecoveryTimeline: "24-48 hours",
	}, nil
}
