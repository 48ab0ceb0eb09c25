package marketing

import (
	"context"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// ProductBrief describes a product entering launch planning.
type ProductBrief struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	TargetMarket string `json:"target_market"`
	LaunchDate   string `json:"launch_date"`
}

// LaunchPlan is the marketing side of a product launch.
type LaunchPlan struct {
	ProductID       string   `json:"product_id"`
	Status          string   `json:"status"`
	Positioning     string   `json:"positioning"`
	ChannelPlan     []string `json:"channel_plan"`
	ContentPieces   int      `json:"content_pieces"`
	TeaserCampaign  bool     `json:"teaser_campaign"`
	PreLaunchLeads  int      `json:"pre_launch_leads"`
	MessagingThemes []string `json:"messaging_themes"`
}

func (LaunchPlan) Branch() string    { return branch.Marketing }
func (LaunchPlan) Operation() string { return OpPlanProductLaunch }

// PlanProductLaunch prepares positioning, channel mix and launch
// content for a new product.
func (c *Coordinator) PlanProductLaunch(ctx context.Context, brief ProductBrief) (LaunchPlan, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return LaunchPlan{}, err
	}

	c.log.Info("Product launch plan prepared", map[string]interface{}{
		"product_id": brief.ProductID,
		"market":     brief.TargetMarket,
	})

	return LaunchPlan{
		ProductID:      brief.ProductID,
		Status:         "plan_ready",
		Positioning:    "AI-first automation for " + brief.TargetMarket,
		ChannelPlan:    []string{"email", "social", "content", "paid_search"},
		ContentPieces:  12,
		TeaserCampaign: true,
		PreLaunchLeads: 350,
		MessagingThemes: []string{
			"efficiency_gains",
			"ai_decisioning",
			"time_to_value",
		},
	}, nil
}

// CrisisCommsRequest configures crisis communications.
type CrisisCommsRequest struct {
	CrisisType  string   `json:"crisis_type"`
	Channels    []string `json:"channels"`
	MessageTone string   `json:"message_tone"`
}

// CrisisCommsReport is the outcome of activating crisis communications.
type CrisisCommsReport struct {
	CrisisType         string   `json:"crisis_type"`
	Status             string   `json:"status"`
	Channels           []string `json:"channels"`
	MessageTone        string   `json:"message_tone"`
	StatementPublished bool     `json:"statement_published"`
	UpdateCadence      string   `json:"update_cadence"`
	PressBriefing      bool     `json:"press_briefing_scheduled"`
}

func (CrisisCommsReport) Branch() string    { return branch.Marketing }
func (CrisisCommsReport) Operation() string { return OpCrisisComms }

// CrisisCommunications publishes coordinated external messaging during
// a crisis.
func (c *Coordinator) CrisisCommunications(ctx context.Context, req CrisisCommsRequest) (CrisisCommsReport, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return CrisisCommsReport{}, err
	}

	tone := req.MessageTone
	if tone == "" {
		tone = "transparent"
	}

	c.log.Warn("Crisis communications active", map[string]interface{}{
		"crisis_type": req.CrisisType,
		"channels":    req.Channels,
	})

	return CrisisCommsReport{
		CrisisType:         req.CrisisType,
		Status:             "communications_active",
		Channels:           req.Channels,
		MessageTone:        tone,
		StatementPublished: true,
		UpdateCadence:      "hourly",
		PressBriefing:      true,
	}, nil
}

// PerformanceReview is the marketing quarterly review.
type PerformanceReview struct {
	Status              string  `json:"status"`
	CampaignsRun        int     `json:"campaigns_run"`
	LeadsGenerated      int     `json:"leads_generated"`
	QualifiedLeadGrowth float64 `json:"qualified_lead_growth_yoy"`
	CostPerLead         float64 `json:"cost_per_lead"`
	TopChannel          string  `json:"top_channel"`
	CampaignROI         float64 `json:"campaign_roi"`
}

func (PerformanceReview) Branch() string    { return branch.Marketing }
func (PerformanceReview) Operation() string { return OpQuarterlyReview }

// QuarterlyPerformanceReview reports the quarter's marketing
// performance, including live tallies from this coordinator.
func (c *Coordinator) QuarterlyPerformanceReview(ctx context.Context) (PerformanceReview, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return PerformanceReview{}, err
	}

	tallies := c.Counters()

	return PerformanceReview{
		Status:              "completed",
		CampaignsRun:        tallies.CampaignsLaunched,
		LeadsGenerated:      tallies.LeadsGenerated,
		QualifiedLeadGrowth: 32.0,
		CostPerLead:         142.50,
		TopChannel:          "content_marketing",
		CampaignROI:         4.2,
	}, nil
}
