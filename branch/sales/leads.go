package sales

import (
	"context"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// LeadRequest is a qualified lead handed over from marketing.
type LeadRequest struct {
	LeadID          string  `json:"lead_id"`
	Company         string  `json:"company"`
	Source          string  `json:"source"`
	Segment         string  `json:"segment"`
	EngagementScore float64 `json:"engagement_score"`
}

// CRMSync reports the CRM update performed for an opportunity.
type CRMSync struct {
	Status        string   `json:"status"`
	RecordID      string   `json:"record_id"`
	FieldsUpdated []string `json:"fields_updated"`
}

// FollowUpStep is one action in the automated follow-up cadence.
type FollowUpStep struct {
	Day      int    `json:"day"`
	Action   string `json:"action"`
	Template string `json:"template"`
}

// LeadOutcome is the result of running a lead through the sales
// pipeline. Status is "won" when the scoring model clears the win
// threshold; OrderID and Products are set only on the won path.
type LeadOutcome struct {
	LeadID         string         `json:"lead_id"`
	Company        string         `json:"company"`
	OpportunityID  string         `json:"opportunity_id"`
	Stage          string         `json:"stage"`
	Status         string         `json:"status"`
	Score          float64        `json:"score"`
	Confidence     float64        `json:"confidence"`
	Priority       string         `json:"priority"`
	DealSize       float64        `json:"deal_size"`
	WinProbability float64        `json:"win_probability"`
	NextAction     string         `json:"next_action"`
	OrderID        string         `json:"order_id,omitempty"`
	Products       []string       `json:"products,omitempty"`
	CRM            CRMSync        `json:"crm"`
	Quote          Quote          `json:"quote"`
	FollowUps      []FollowUpStep `json:"follow_ups"`
}

func (LeadOutcome) Branch() string    { return branch.Sales }
func (LeadOutcome) Operation() string { return OpProcessLead }

// ProcessLead runs CRM sync, opportunity scoring, quoting and follow-up
// scheduling for a lead and decides whether the deal is won.
func (c *Coordinator) ProcessLead(ctx context.Context, req LeadRequest) (LeadOutcome, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return LeadOutcome{}, err
	}

	value := estimatedValue(req.Segment)
	score := scoreOpportunity(value)
	won := score > winThreshold

	priority := "medium"
	if score > winThreshold {
		priority = "high"
	}

	outcome := LeadOutcome{
		LeadID:         req.LeadID,
		Company:        req.Company,
		OpportunityID:  "OPP-" + req.LeadID,
		Stage:          "qualified",
		Status:         "nurturing",
		Score:          score,
		Confidence:     0.85,
		Priority:       priority,
		DealSize:       value,
		WinProbability: score * 100,
		NextAction:     "continue_nurturing",
		CRM: CRMSync{
			Status:        "synced",
			RecordID:      req.LeadID,
			FieldsUpdated: []string{"status", "value", "contact", "last_activity"},
		},
		Quote:     c.buildQuote("QT-"+req.LeadID, value),
		FollowUps: followUpCadence(),
	}

	if won {
		outcome.Status = "won"
		outcome.NextAction = "schedule_demo"
		outcome.OrderID = "ORD-" + req.LeadID
		outcome.Products = productsForSegment(req.Segment)
	}

	c.mu.Lock()
	c.opportunitiesProcessed++
	c.quotesGenerated++
	c.pipelineValue += value
	c.mu.Unlock()

	c.log.Info("Lead processed", map[string]interface{}{
		"lead_id": req.LeadID,
		"segment": req.Segment,
		"score":   score,
		"status":  outcome.Status,
	})

	return outcome, nil
}

// followUpCadence is the AI-determined contact schedule.
func followUpCadence() []FollowUpStep {
	return []FollowUpStep{
		{Day: 1, Action: "email", Template: "initial_contact"},
		{Day: 3, Action: "call", Template: "discovery"},
		{Day: 7, Action: "email", Template: "proposal_review"},
	}
}

// productsForSegment maps a segment to its standard product bundle.
func productsForSegment(segment string) []string {
	switch segment {
	case "enterprise":
		return []string{"automation_suite", "analytics_module", "premium_support"}
	case "mid_market":
		return []string{"automation_suite", "analytics_module"}
	default:
		return []string{"automation_suite"}
	}
}

// QuoteRequest asks for an AI-priced quote on an opportunity.
type QuoteRequest struct {
	OpportunityID  string  `json:"opportunity_id"`
	EstimatedValue float64 `json:"estimated_value"`
}

// Quote is an AI-priced quote with its permissible discount band.
type Quote struct {
	QuoteID        string     `json:"quote_id"`
	Status         string     `json:"status"`
	BasePrice      float64    `json:"base_price"`
	OptimizedPrice float64    `json:"optimized_price"`
	DiscountRange  [2]float64 `json:"discount_range"`
}

func (Quote) Branch() string    { return branch.Sales }
func (Quote) Operation() string { return OpGenerateQuote }

// GenerateQuote prices an opportunity with the AI pricing model.
func (c *Coordinator) GenerateQuote(ctx context.Context, req QuoteRequest) (Quote, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return Quote{}, err
	}

	value := req.EstimatedValue
	if value <= 0 {
		value = estimatedValue("")
	}

	c.mu.Lock()
	c.quotesGenerated++
	c.mu.Unlock()

	return c.buildQuote("QT-"+req.OpportunityID, value), nil
}

func (c *Coordinator) buildQuote(quoteID string, baseValue float64) Quote {
	return Quote{
		QuoteID:        quoteID,
		Status:         "generated",
		BasePrice:      baseValue,
		OptimizedPrice: baseValue * quoteOptimization,
		DiscountRange:  [2]float64{0.05, 0.15},
	}
}

// DealClose identifies a deal to close and its contract value.
type DealClose struct {
	DealID        string  `json:"deal_id"`
	Company       string  `json:"company"`
	ContractValue float64 `json:"contract_value"`
}

// ClosedDeal is the outcome of closing a deal.
type ClosedDeal struct {
	DealID              string  `json:"deal_id"`
	Company             string  `json:"company"`
	Status              string  `json:"status"`
	DealValue           float64 `json:"deal_value"`
	Commission          float64 `json:"commission"`
	OnboardingInitiated bool    `json:"onboarding_initiated"`
	WelcomeSent         bool    `json:"welcome_sent"`
	ConversionRate      float64 `json:"conversion_rate"`
}

func (ClosedDeal) Branch() string    { return branch.Sales }
func (ClosedDeal) Operation() string { return OpCloseDeal }

// CloseDeal records a closed-won deal, calculates commission and
// triggers onboarding.
func (c *Coordinator) CloseDeal(ctx context.Context, req DealClose) (ClosedDeal, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return ClosedDeal{}, err
	}

	c.mu.Lock()
	c.dealsClosed++
	c.revenueClosed += req.ContractValue
	opportunities := c.opportunitiesProcessed
	closed := c.dealsClosed
	c.mu.Unlock()

	if opportunities < 1 {
		opportunities = 1
	}

	deal := ClosedDeal{
		DealID:              req.DealID,
		Company:             req.Company,
		Status:              "closed_won",
		DealValue:           req.ContractValue,
		Commission:          req.ContractValue * commissionRate,
		OnboardingInitiated: true,
		WelcomeSent:         true,
		ConversionRate:      float64(closed) / float64(opportunities),
	}

	c.log.Info("Deal closed", map[string]interface{}{
		"deal_id": req.DealID,
		"value":   req.ContractValue,
	})

	return deal, nil
}
