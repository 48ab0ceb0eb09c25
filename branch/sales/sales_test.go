package sales

import (
	"context"
	"testing"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

func TestProcessLead_EnterpriseWins(t *testing.T) {
	c := New(0, nil)

	outcome, err := c.ProcessLead(context.Background(), LeadRequest{
		LeadID:          "LEAD-5438",
		Company:         "TechCorp",
		Source:          "marketing_campaign",
		Segment:         "enterprise",
		EngagementScore: 75,
	})
	if err != nil {
		t.Fatalf("ProcessLead failed: %v", err)
	}

	if outcome.Branch() != branch.Sales || outcome.Operation() != OpProcessLead {
		t.Errorf("unexpected identity %q/%q", outcome.Branch(), outcome.Operation())
	}
	if outcome.Score != 0.9 {
		t.Errorf("expected score 0.9 for enterprise value, got %v", outcome.Score)
	}
	if outcome.Status != "won" {
		t.Errorf("expected won status, got %q", outcome.Status)
	}
	if outcome.OrderID != "ORD-LEAD-5438" {
		t.Errorf("unexpected order id %q", outcome.OrderID)
	}
	if len(outcome.Products) != 3 {
		t.Errorf("expected 3 enterprise products, got %v", outcome.Products)
	}
	if outcome.DealSize != 75000 {
		t.Errorf("expected deal size 75000, got %v", outcome.DealSize)
	}
	if outcome.Quote.QuoteID != "QT-LEAD-5438" {
		t.Errorf("unexpected quote id %q", outcome.Quote.QuoteID)
	}
	if outcome.Quote.OptimizedPrice != 75000*0.95 {
		t.Errorf("expected 5%% price optimization, got %v", outcome.Quote.OptimizedPrice)
	}
	if len(outcome.FollowUps) != 3 {
		t.Fatalf("expected 3 follow-up steps, got %d", len(outcome.FollowUps))
	}
	for i, day := range []int{1, 3, 7} {
		if outcome.FollowUps[i].Day != day {
			t.Errorf("follow-up %d: expected day %d, got %d", i, day, outcome.FollowUps[i].Day)
		}
	}
}

func TestProcessLead_UnknownSegmentNurtures(t *testing.T) {
	c := New(0, nil)

	outcome, err := c.ProcessLead(context.Background(), LeadRequest{LeadID: "LEAD-1", Company: "MysteryCo"})
	if err != nil {
		t.Fatalf("ProcessLead failed: %v", err)
	}

	if outcome.Status != "nurturing" {
		t.Errorf("expected nurturing status, got %q", outcome.Status)
	}
	if outcome.OrderID != "" {
		t.Errorf("expected no order id on the nurture path, got %q", outcome.OrderID)
	}
	if outcome.Products != nil {
		t.Errorf("expected no products on the nurture path, got %v", outcome.Products)
	}
	if outcome.NextAction != "continue_nurturing" {
		t.Errorf("unexpected next action %q", outcome.NextAction)
	}
}

func TestGenerateQuote_Pricing(t *testing.T) {
	c := New(0, nil)

	quote, err := c.GenerateQuote(context.Background(), QuoteRequest{
		OpportunityID:  "OPP-77",
		EstimatedValue: 20000,
	})
	if err != nil {
		t.Fatalf("GenerateQuote failed: %v", err)
	}

	if quote.QuoteID != "QT-OPP-77" {
		t.Errorf("unexpected quote id %q", quote.QuoteID)
	}
	if quote.BasePrice != 20000 || quote.OptimizedPrice != 19000 {
		t.Errorf("unexpected pricing: base %v optimized %v", quote.BasePrice, quote.OptimizedPrice)
	}
	if quote.DiscountRange != [2]float64{0.05, 0.15} {
		t.Errorf("unexpected discount range %v", quote.DiscountRange)
	}
	if c.Counters().QuotesGenerated != 1 {
		t.Errorf("expected 1 quote tallied, got %d", c.Counters().QuotesGenerated)
	}
}

func TestCloseDeal_CommissionAndConversion(t *testing.T) {
	c := New(0, nil)
	ctx := context.Background()

	for _, id := range []string{"LEAD-1", "LEAD-2", "LEAD-3"} {
		if _, err := c.ProcessLead(ctx, LeadRequest{LeadID: id, Segment: "mid_market"}); err != nil {
			t.Fatalf("ProcessLead failed: %v", err)
		}
	}

	deal, err := c.CloseDeal(ctx, DealClose{DealID: "OPP-LEAD-1", Company: "TechCorp", ContractValue: 40000})
	if err != nil {
		t.Fatalf("CloseDeal failed: %v", err)
	}

	if deal.Status != "closed_won" {
		t.Errorf("expected closed_won, got %q", deal.Status)
	}
	if deal.Commission != 4000 {
		t.Errorf("expected 10%% commission of 4000, got %v", deal.Commission)
	}
	if want := 1.0 / 3.0; deal.ConversionRate != want {
		t.Errorf("expected conversion rate %v, got %v", want, deal.ConversionRate)
	}
	if !deal.OnboardingInitiated || !deal.WelcomeSent {
		t.Error("expected onboarding and welcome to be triggered")
	}

	tallies := c.Counters()
	if tallies.DealsClosed != 1 || tallies.RevenueClosed != 40000 {
		t.Errorf("unexpected tallies: %+v", tallies)
	}
}

func TestQuarterlyPipelineAnalysis_ReportsTallies(t *testing.T) {
	c := New(0, nil)
	ctx := context.Background()

	if _, err := c.ProcessLead(ctx, LeadRequest{LeadID: "LEAD-1", Segment: "enterprise"}); err != nil {
		t.Fatalf("ProcessLead failed: %v", err)
	}
	if _, err := c.ProcessLead(ctx, LeadRequest{LeadID: "LEAD-2", Segment: "startup"}); err != nil {
		t.Fatalf("ProcessLead failed: %v", err)
	}
	if _, err := c.CloseDeal(ctx, DealClose{DealID: "OPP-LEAD-1", ContractValue: 75000}); err != nil {
		t.Fatalf("CloseDeal failed: %v", err)
	}

	analysis, err := c.QuarterlyPipelineAnalysis(ctx)
	if err != nil {
		t.Fatalf("QuarterlyPipelineAnalysis failed: %v", err)
	}

	if analysis.OpportunitiesOpen != 1 {
		t.Errorf("expected 1 open opportunity, got %d", analysis.OpportunitiesOpen)
	}
	if analysis.DealsClosed != 1 {
		t.Errorf("expected 1 closed deal, got %d", analysis.DealsClosed)
	}
	if analysis.PipelineValue != 90000 {
		t.Errorf("expected pipeline value 90000, got %v", analysis.PipelineValue)
	}
	if analysis.RevenueClosed != 75000 {
		t.Errorf("expected revenue 75000, got %v", analysis.RevenueClosed)
	}
	if analysis.ConversionRate != 0.5 {
		t.Errorf("expected conversion rate 0.5, got %v", analysis.ConversionRate)
	}
	if analysis.ConversionImprovement != 18.0 {
		t.Errorf("expected 18.0 conversion improvement, got %v", analysis.ConversionImprovement)
	}
}

func TestRetentionCampaign_OffersFollowCompensationFlag(t *testing.T) {
	c := New(0, nil)

	withComp, err := c.CustomerRetentionCampaign(context.Background(), RetentionRequest{
		CrisisAffected:     true,
		CompensationOffers: true,
	})
	if err != nil {
		t.Fatalf("CustomerRetentionCampaign failed: %v", err)
	}
	if len(withComp.RetentionOffers) != 3 {
		t.Errorf("expected 3 offers with compensation, got %v", withComp.RetentionOffers)
	}
	if withComp.Status != "campaign_active" {
		t.Errorf("unexpected status %q", withComp.Status)
	}

	withoutComp, err := c.CustomerRetentionCampaign(context.Background(), RetentionRequest{})
	if err != nil {
		t.Fatalf("CustomerRetentionCampaign failed: %v", err)
	}
	if len(withoutComp.RetentionOffers) != 2 {
		t.Errorf("expected 2 offers without compensation, got %v", withoutComp.RetentionOffers)
	}
}
