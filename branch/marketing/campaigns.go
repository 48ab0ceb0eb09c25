package marketing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// CampaignRequest configures a multi-channel campaign run.
type CampaignRequest struct {
	CampaignID     string   `json:"campaign_id"`
	TargetAudience string   `json:"target_audience"`
	TargetCount    int      `json:"target_count"`
	Channels       []string `json:"channels"`
}

// CampaignReport is the outcome of a campaign run. EngagementScore
// feeds downstream lead processing.
type CampaignReport struct {
	CampaignID      string   `json:"campaign_id"`
	TargetAudience  string   `json:"target_audience"`
	Channels        []string `json:"channels"`
	Status          string   `json:"status"`
	EmailsSent      int      `json:"emails_sent"`
	LeadsGenerated  int      `json:"leads_generated"`
	EngagementScore float64  `json:"engagement_score"`
}

func (CampaignReport) Branch() string    { return branch.Marketing }
func (CampaignReport) Operation() string { return OpRunCampaign }

// RunCampaign executes the email, social and lead generation agents
// for a campaign and tallies their output.
func (c *Coordinator) RunCampaign(ctx context.Context, req CampaignRequest) (CampaignReport, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return CampaignReport{}, err
	}

	targetCount := req.TargetCount
	if targetCount <= 0 {
		targetCount = defaultTargetCount
	}
	leads := int(float64(targetCount) * leadConversionRate)
	c.recordCampaign(targetCount, leads)

	c.log.Info("Campaign executed", map[string]interface{}{
		"campaign_id": req.CampaignID,
		"audience":    req.TargetAudience,
		"leads":       leads,
	})

	return CampaignReport{
		CampaignID:      req.CampaignID,
		TargetAudience:  req.TargetAudience,
		Channels:        req.Channels,
		Status:          "completed",
		EmailsSent:      targetCount,
		LeadsGenerated:  leads,
		EngagementScore: 75,
	}, nil
}

// LaunchRequest configures a budgeted campaign launch.
type LaunchRequest struct {
	CampaignType   string   `json:"campaign_type"`
	TargetAudience string   `json:"target_audience"`
	TargetCount    int      `json:"target_count"`
	Budget         float64  `json:"budget"`
	Channels       []string `json:"channels"`
}

// CampaignPerformance summarizes launch economics.
type CampaignPerformance struct {
	LeadsGenerated int     `json:"leads_generated"`
	EngagementRate float64 `json:"engagement_rate"`
	CostPerLead    float64 `json:"cost_per_lead"`
}

// LaunchReport is the outcome of a budgeted campaign launch.
type LaunchReport struct {
	CampaignID   string              `json:"campaign_id"`
	CampaignType string              `json:"campaign_type"`
	Status       string              `json:"status"`
	Performance  CampaignPerformance `json:"performance"`
}

func (LaunchReport) Branch() string    { return branch.Marketing }
func (LaunchReport) Operation() string { return OpLaunchCampaign }

// LaunchCampaign launches a budgeted campaign and reports its
// acquisition economics.
func (c *Coordinator) LaunchCampaign(ctx context.Context, req LaunchRequest) (LaunchReport, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return LaunchReport{}, err
	}

	targetCount := req.TargetCount
	if targetCount <= 0 {
		targetCount = defaultTargetCount
	}
	leads := int(float64(targetCount) * leadConversionRate)
	seq := c.recordCampaign(targetCount, leads)

	costPerLead := 0.0
	if leads > 0 {
		costPerLead = req.Budget / float64(leads)
	}

	report := LaunchReport{
		CampaignID:   fmt.Sprintf("CAMP-%s-%03d", strings.ToUpper(req.CampaignType), seq),
		CampaignType: req.CampaignType,
		Status:       "launched",
		Performance: CampaignPerformance{
			LeadsGenerated: leads,
			EngagementRate: 7.5,
			CostPerLead:    costPerLead,
		},
	}

	c.log.Info("Campaign launched", map[string]interface{}{
		"campaign_id": report.CampaignID,
		"budget":      req.Budget,
		"leads":       leads,
	})

	return report, nil
}

// Lead is an inbound marketing lead awaiting qualification.
type Lead struct {
	Name        string `json:"name"`
	CompanySize string `json:"company_size"`
	Interest    string `json:"interest"`
}

// Qualification is a scored lead assessment.
type Qualification struct {
	LeadScore         int  `json:"lead_score"`
	ShouldPassToSales bool `json:"should_pass_to_sales"`
}

// LeadQualification is the outcome of scoring a lead.
type LeadQualification struct {
	LeadID        string        `json:"lead_id"`
	Lead          Lead          `json:"data"`
	Qualification Qualification `json:"qualification"`
}

func (LeadQualification) Branch() string    { return branch.Marketing }
func (LeadQualification) Operation() string { return OpQualifyLead }

// QualifyLead scores a lead on company size and expressed interest and
// decides whether it passes to sales.
func (c *Coordinator) QualifyLead(ctx context.Context, lead Lead) (LeadQualification, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return LeadQualification{}, err
	}

	score := 50
	switch lead.CompanySize {
	case "enterprise":
		score += 30
	case "mid_market":
		score += 20
	case "startup":
		score += 10
	}
	switch lead.Interest {
	case "high":
		score += 20
	case "medium":
		score += 10
	}

	qualified := score >= 70

	c.mu.Lock()
	c.leadsQualified++
	seq := c.leadsQualified
	c.mu.Unlock()

	c.log.Debug("Lead scored", map[string]interface{}{
		"lead":      lead.Name,
		"score":     score,
		"qualified": qualified,
	})

	return LeadQualification{
		LeadID: fmt.Sprintf("LEAD-%04d", seq),
		Lead:   lead,
		Qualification: Qualification{
			LeadScore:         score,
			ShouldPassToSales: qualified,
		},
	}, nil
}
