package sales

import (
	"context"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// ProductBrief describes a product the sales team must be ready to sell.
type ProductBrief struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	TargetMarket string `json:"target_market"`
	LaunchDate   string `json:"launch_date"`
}

// SalesMaterials is the sales enablement package for a product launch.
type SalesMaterials struct {
	ProductID         string   `json:"product_id"`
	Status            string   `json:"status"`
	BattleCards       int      `json:"battle_cards"`
	DemoScripts       int      `json:"demo_scripts"`
	ProposalTemplates int      `json:"proposal_templates"`
	PricingTiers      []string `json:"pricing_tiers"`
	TrainingScheduled bool     `json:"training_scheduled"`
}

func (SalesMaterials) Branch() string    { return branch.Sales }
func (SalesMaterials) Operation() string { return OpPrepareSalesMaterials }

// PrepareSalesMaterials builds the enablement package for a launch.
func (c *Coordinator) PrepareSalesMaterials(ctx context.Context, brief ProductBrief) (SalesMaterials, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return SalesMaterials{}, err
	}

	c.log.Info("Sales materials prepared", map[string]interface{}{
		"product_id": brief.ProductID,
	})

	return SalesMaterials{
		ProductID:         brief.ProductID,
		Status:            "materials_ready",
		BattleCards:       5,
		DemoScripts:       3,
		ProposalTemplates: 4,
		PricingTiers:      []string{"starter", "professional", "enterprise"},
		TrainingScheduled: true,
	}, nil
}

// RetentionRequest configures a retention campaign, typically after a
// crisis.
type RetentionRequest struct {
	CrisisAffected     bool `json:"crisis_affected"`
	CompensationOffers bool `json:"compensation_offers"`
}

// RetentionCampaign is the outcome of a customer retention campaign.
type RetentionCampaign struct {
	Status             string   `json:"status"`
	CrisisAffected     bool     `json:"crisis_affected"`
	CompensationOffers bool     `json:"compensation_offers"`
	OutreachWaves      int      `json:"outreach_waves"`
	AccountsContacted  int      `json:"accounts_contacted"`
	RetentionOffers    []string `json:"retention_offers"`
	ProjectedSaveRate  float64  `json:"projected_save_rate"`
}

func (RetentionCampaign) Branch() string    { return branch.Sales }
func (RetentionCampaign) Operation() string { return OpRetentionCampaign }

// CustomerRetentionCampaign runs targeted outreach to at-risk accounts.
func (c *Coordinator) CustomerRetentionCampaign(ctx context.Context, req RetentionRequest) (RetentionCampaign, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return RetentionCampaign{}, err
	}

	offers := []string{"service_credits", "plan_upgrades", "dedicated_support"}
	if !req.CompensationOffers {
		offers = []string{"plan_upgrades", "dedicated_support"}
	}

	c.log.Info("Retention campaign started", map[string]interface{}{
		"crisis_affected": req.CrisisAffected,
	})

	return RetentionCampaign{
		Status:             "campaign_active",
		CrisisAffected:     req.CrisisAffected,
		CompensationOffers: req.CompensationOffers,
		OutreachWaves:      3,
		AccountsContacted:  250,
		RetentionOffers:    offers,
		ProjectedSaveRate:  0.82,
	}, nil
}

// PipelineAnalysis is the sales quarterly review.
type PipelineAnalysis struct {
	Status                string  `json:"status"`
	OpportunitiesOpen     int     `json:"opportunities_open"`
	DealsClosed           int     `json:"deals_closed"`
	PipelineValue         float64 `json:"pipeline_value"`
	RevenueClosed         float64 `json:"revenue_closed"`
	ConversionRate        float64 `json:"conversion_rate"`
	ConversionImprovement float64 `json:"conversion_improvement"`
	ForecastNextQuarter   float64 `json:"forecast_next_quarter"`
}

func (PipelineAnalysis) Branch() string    { return branch.Sales }
func (PipelineAnalysis) Operation() string { return OpPipelineAnalysis }

// QuarterlyPipelineAnalysis reports the quarter's pipeline performance,
// including live tallies from this coordinator.
func (c *Coordinator) QuarterlyPipelineAnalysis(ctx context.Context) (PipelineAnalysis, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return PipelineAnalysis{}, err
	}

	tallies := c.Counters()

	open := tallies.OpportunitiesProcessed - tallies.DealsClosed
	if open < 0 {
		open = 0
	}

	return PipelineAnalysis{
		Status:                "completed",
		OpportunitiesOpen:     open,
		DealsClosed:           tallies.DealsClosed,
		PipelineValue:         tallies.PipelineValue,
		RevenueClosed:         tallies.RevenueClosed,
		ConversionRate:        tallies.ConversionRate(),
		ConversionImprovement: 18.0,
		ForecastNextQuarter:   1250000,
	}, nil
}
