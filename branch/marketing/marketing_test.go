package marketing

import (
	"context"
	"testing"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

func TestRunCampaign_TalliesOutput(t *testing.T) {
	c := New(0, nil)

	report, err := c.RunCampaign(context.Background(), CampaignRequest{
		CampaignID:     "CAMP-ENT-001",
		TargetAudience: "enterprise",
		TargetCount:    200,
		Channels:       []string{"email", "social", "content"},
	})
	if err != nil {
		t.Fatalf("RunCampaign failed: %v", err)
	}

	if report.Branch() != branch.Marketing {
		t.Errorf("expected branch %q, got %q", branch.Marketing, report.Branch())
	}
	if report.Operation() != OpRunCampaign {
		t.Errorf("expected operation %q, got %q", OpRunCampaign, report.Operation())
	}
	if report.LeadsGenerated != 30 {
		t.Errorf("expected 30 leads from 200 targets, got %d", report.LeadsGenerated)
	}
	if report.EmailsSent != 200 {
		t.Errorf("expected 200 emails, got %d", report.EmailsSent)
	}
	if report.EngagementScore != 75 {
		t.Errorf("expected engagement score 75, got %v", report.EngagementScore)
	}

	tallies := c.Counters()
	if tallies.CampaignsLaunched != 1 || tallies.LeadsGenerated != 30 || tallies.EmailsSent != 200 {
		t.Errorf("unexpected tallies: %+v", tallies)
	}
}

func TestRunCampaign_DefaultTargetCount(t *testing.T) {
	c := New(0, nil)

	report, err := c.RunCampaign(context.Background(), CampaignRequest{CampaignID: "CAMP-GEN-001"})
	if err != nil {
		t.Fatalf("RunCampaign failed: %v", err)
	}

	if report.EmailsSent != defaultTargetCount {
		t.Errorf("expected default target of %d emails, got %d", defaultTargetCount, report.EmailsSent)
	}
	if report.LeadsGenerated != 15 {
		t.Errorf("expected 15 leads from the default target, got %d", report.LeadsGenerated)
	}
}

func TestLaunchCampaign_Economics(t *testing.T) {
	c := New(0, nil)

	report, err := c.LaunchCampaign(context.Background(), LaunchRequest{
		CampaignType:   "product_launch",
		TargetAudience: "B2B SaaS companies",
		Budget:         50000,
		Channels:       []string{"linkedin", "google_ads", "content_marketing"},
	})
	if err != nil {
		t.Fatalf("LaunchCampaign failed: %v", err)
	}

	if report.CampaignID != "CAMP-PRODUCT_LAUNCH-001" {
		t.Errorf("unexpected campaign id %q", report.CampaignID)
	}
	if report.Status != "launched" {
		t.Errorf("expected status launched, got %q", report.Status)
	}
	if report.Performance.LeadsGenerated != 15 {
		t.Errorf("expected 15 leads, got %d", report.Performance.LeadsGenerated)
	}

	wantCost := 50000.0 / 15.0
	if report.Performance.CostPerLead != wantCost {
		t.Errorf("expected cost per lead %v, got %v", wantCost, report.Performance.CostPerLead)
	}
}

func TestQualifyLead_Scoring(t *testing.T) {
	tests := []struct {
		name      string
		lead      Lead
		wantScore int
		wantPass  bool
	}{
		{"enterprise high interest", Lead{Name: "TechCorp", CompanySize: "enterprise", Interest: "high"}, 100, true},
		{"mid market high interest", Lead{Name: "MidSizeCo", CompanySize: "mid_market", Interest: "high"}, 90, true},
		{"startup medium interest", Lead{Name: "StartupXYZ", CompanySize: "startup", Interest: "medium"}, 70, true},
		{"startup no interest", Lead{Name: "ColdCo", CompanySize: "startup"}, 60, false},
		{"unknown size", Lead{Name: "MysteryCo", Interest: "medium"}, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0, nil)
			result, err := c.QualifyLead(context.Background(), tt.lead)
			if err != nil {
				t.Fatalf("QualifyLead failed: %v", err)
			}
			if result.Qualification.LeadScore != tt.wantScore {
				t.Errorf("expected score %d, got %d", tt.wantScore, result.Qualification.LeadScore)
			}
			if result.Qualification.ShouldPassToSales != tt.wantPass {
				t.Errorf("expected pass=%v, got %v", tt.wantPass, result.Qualification.ShouldPassToSales)
			}
			if result.LeadID == "" {
				t.Error("expected a lead id")
			}
		})
	}
}

func TestCrisisCommunications_DefaultTone(t *testing.T) {
	c := New(0, nil)

	report, err := c.CrisisCommunications(context.Background(), CrisisCommsRequest{
		CrisisType: "service_outage",
		Channels:   []string{"email", "social", "website"},
	})
	if err != nil {
		t.Fatalf("CrisisCommunications failed: %v", err)
	}

	if report.MessageTone != "transparent" {
		t.Errorf("expected transparent tone by default, got %q", report.MessageTone)
	}
	if report.Status != "communications_active" {
		t.Errorf("unexpected status %q", report.Status)
	}
	if !report.StatementPublished {
		t.Error("expected a published statement")
	}
}

func TestQuarterlyPerformanceReview_ReportsTallies(t *testing.T) {
	c := New(0, nil)

	if _, err := c.RunCampaign(context.Background(), CampaignRequest{TargetCount: 200}); err != nil {
		t.Fatalf("RunCampaign failed: %v", err)
	}
	if _, err := c.LaunchCampaign(context.Background(), LaunchRequest{CampaignType: "retention", Budget: 10000}); err != nil {
		t.Fatalf("LaunchCampaign failed: %v", err)
	}

	review, err := c.QuarterlyPerformanceReview(context.Background())
	if err != nil {
		t.Fatalf("QuarterlyPerformanceReview failed: %v", err)
	}

	if review.CampaignsRun != 2 {
		t.Errorf("expected 2 campaigns, got %d", review.CampaignsRun)
	}
	if review.LeadsGenerated != 45 {
		t.Errorf("expected 45 leads, got %d", review.LeadsGenerated)
	}
	if review.QualifiedLeadGrowth != 32.0 {
		t.Errorf("expected 32.0 qualified lead growth, got %v", review.QualifiedLeadGrowth)
	}
}

func TestRunCampaign_Cancelled(t *testing.T) {
	c := New(0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.RunCampaign(ctx, CampaignRequest{}); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
