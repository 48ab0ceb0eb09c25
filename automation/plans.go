package automation

import (
	"fmt"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/branch/analytics"
	"github.com/Garrettc123/ai-business-automation-tree/branch/customerservice"
	"github.com/Garrettc123/ai-business-automation-tree/branch/hr"
	"github.com/Garrettc123/ai-business-automation-tree/branch/marketing"
	"github.com/Garrettc123/ai-business-automation-tree/branch/operations"
	"github.com/Garrettc123/ai-business-automation-tree/branch/sales"
	"github.com/Garrettc123/ai-business-automation-tree/workflow"
)

// lifecyclePlan chains the five lifecycle stages. Fulfillment is
// conditional: the filter lets it run only when the sales stage won
// the deal, and a skipped step leaves no trace in the record.
func (s *System) lifecyclePlan(req LifecycleRequest) (*workflow.Plan, workflow.StepFilter) {
	campaignOut := workflow.Port[marketing.CampaignReport]{Key: marketing.OpRunCampaign}
	leadOut := workflow.Port[sales.LeadOutcome]{Key: sales.OpProcessLead}
	fulfillmentOut := workflow.Port[operations.Fulfillment]{Key: operations.OpFulfillOrder}
	onboardingOut := workflow.Port[customerservice.OnboardingReport]{Key: customerservice.OpOnboardCustomer}
	journeyOut := workflow.Port[analytics.JourneyReport]{Key: analytics.OpTrackJourney}

	campaignTag := req.Segment
	if campaignTag == "" {
		campaignTag = "GEN"
	}
	audience := req.Segment
	if audience == "" {
		audience = "general"
	}
	tier := req.Tier
	if tier == "" {
		tier = "standard"
	}

	// Branches that produced a result before the journey step runs, in
	// stage order.
	touchpointSources := []struct{ key, branch string }{
		{campaignOut.Key, branch.Marketing},
		{leadOut.Key, branch.Sales},
		{fulfillmentOut.Key, branch.Operations},
		{onboardingOut.Key, branch.CustomerService},
	}

	plan := &workflow.Plan{
		Steps: map[string]workflow.Step{
			marketing.OpRunCampaign: workflow.NewStep(workflow.StepConfig[marketing.CampaignRequest, marketing.CampaignReport]{
				Name:   marketing.OpRunCampaign,
				Branch: branch.Marketing,
				Call:   s.marketing.RunCampaign,
				Extract: func(*workflow.State) (marketing.CampaignRequest, error) {
					return marketing.CampaignRequest{
						CampaignID:     fmt.Sprintf("CAMP-%s-001", campaignTag),
						TargetAudience: audience,
						Channels:       []string{"email", "social", "content"},
					}, nil
				},
				Output: campaignOut,
			}),
			sales.OpProcessLead: workflow.NewStep(workflow.StepConfig[sales.LeadRequest, sales.LeadOutcome]{
				Name:   sales.OpProcessLead,
				Branch: branch.Sales,
				Call:   s.sales.ProcessLead,
				Extract: func(state *workflow.State) (sales.LeadRequest, error) {
					campaign, err := workflow.Read(state, campaignOut)
					if err != nil {
						return sales.LeadRequest{}, err
					}
					return sales.LeadRequest{
						LeadID:          req.LeadID,
						Source:          "marketing_campaign",
						Segment:         req.Segment,
						EngagementScore: campaign.EngagementScore,
					}, nil
				},
				Output: leadOut,
			}),
			operations.OpFulfillOrder: workflow.NewStep(workflow.StepConfig[operations.Order, operations.Fulfillment]{
				Name:   operations.OpFulfillOrder,
				Branch: branch.Operations,
				Call:   s.operations.FulfillOrder,
				Extract: func(state *workflow.State) (operations.Order, error) {
					lead, err := workflow.Read(state, leadOut)
					if err != nil {
						return operations.Order{}, err
					}
					return operations.Order{
						OrderID:    lead.OrderID,
						CustomerID: req.CustomerID,
						Products:   lead.Products,
					}, nil
				},
				Output: fulfillmentOut,
			}),
			customerservice.OpOnboardCustomer: workflow.NewStep(workflow.StepConfig[customerservice.OnboardingRequest, customerservice.OnboardingReport]{
				Name:   customerservice.OpOnboardCustomer,
				Branch: branch.CustomerService,
				Call:   s.customerservice.OnboardCustomer,
				Extract: func(state *workflow.State) (customerservice.OnboardingRequest, error) {
					lead, err := workflow.Read(state, leadOut)
					if err != nil {
						return customerservice.OnboardingRequest{}, err
					}
					return customerservice.OnboardingRequest{
						CustomerID: req.CustomerID,
						Tier:       tier,
						Products:   lead.Products,
					}, nil
				},
				Output: onboardingOut,
			}),
			analytics.OpTrackJourney: workflow.NewStep(workflow.StepConfig[analytics.JourneyRequest, analytics.JourneyReport]{
				Name:   analytics.OpTrackJourney,
				Branch: branch.Analytics,
				Call:   s.analytics.TrackCustomerJourney,
				Extract: func(state *workflow.State) (analytics.JourneyRequest, error) {
					var touchpoints []string
					for _, src := range touchpointSources {
						if _, ok := state.Get(src.key); ok {
							touchpoints = append(touchpoints, src.branch)
						}
					}
					return analytics.JourneyRequest{
						CustomerID:    req.CustomerID,
						JourneyStages: []string{"awareness", "consideration", "purchase", "retention"},
						Touchpoints:   touchpoints,
					}, nil
				},
				Output: journeyOut,
			}),
		},
		Edges: []workflow.Edge{
			{From: marketing.OpRunCampaign, To: sales.OpProcessLead},
			{From: sales.OpProcessLead, To: operations.OpFulfillOrder},
			{From: operations.OpFulfillOrder, To: customerservice.OpOnboardCustomer},
			{From: customerservice.OpOnboardCustomer, To: analytics.OpTrackJourney},
		},
	}

	filter := func(name string, state *workflow.State) bool {
		if name != operations.OpFulfillOrder {
			return true
		}
		lead, err := workflow.Read(state, leadOut)
		if err != nil {
			return false
		}
		return lead.Status == "won"
	}

	return plan, filter
}

// launchPlan is the single six-way fan-out: every branch receives the
// same product brief and prepares its department in parallel.
func (s *System) launchPlan(req LaunchRequest) *workflow.Plan {
	return &workflow.Plan{
		Steps: map[string]workflow.Step{
			marketing.OpPlanProductLaunch: workflow.NewStep(workflow.StepConfig[marketing.ProductBrief, marketing.LaunchPlan]{
				Name:   marketing.OpPlanProductLaunch,
				Branch: branch.Marketing,
				Call:   s.marketing.PlanProductLaunch,
				Extract: func(*workflow.State) (marketing.ProductBrief, error) {
					return marketing.ProductBrief{
						ProductID:    req.ProductID,
						ProductName:  req.ProductName,
						TargetMarket: req.TargetMarket,
						LaunchDate:   req.LaunchDate,
					}, nil
				},
				Output: workflow.Port[marketing.LaunchPlan]{Key: marketing.OpPlanProductLaunch},
			}),
			sales.OpPrepareSalesMaterials: workflow.NewStep(workflow.StepConfig[sales.ProductBrief, sales.SalesMaterials]{
				Name:   sales.OpPrepareSalesMaterials,
				Branch: branch.Sales,
				Call:   s.sales.PrepareSalesMaterials,
				Extract: func(*workflow.State) (sales.ProductBrief, error) {
					return sales.ProductBrief{
						ProductID:    req.ProductID,
						ProductName:  req.ProductName,
						TargetMarket: req.TargetMarket,
						LaunchDate:   req.LaunchDate,
					}, nil
				},
				Output: workflow.Port[sales.SalesMaterials]{Key: sales.OpPrepareSalesMaterials},
			}),
			operations.OpSetupSupplyChain: workflow.NewStep(workflow.StepConfig[operations.ProductBrief, operations.SupplyChainSetup]{
				Name:   operations.OpSetupSupplyChain,
				Branch: branch.Operations,
				Call:   s.operations.SetupSupplyChain,
				Extract: func(*workflow.State) (operations.ProductBrief, error) {
					return operations.ProductBrief{
						ProductID:    req.ProductID,
						ProductName:  req.ProductName,
						TargetMarket: req.TargetMarket,
						LaunchDate:   req.LaunchDate,
					}, nil
				},
				Output: workflow.Port[operations.SupplyChainSetup]{Key: operations.OpSetupSupplyChain},
			}),
			customerservice.OpTrainSupportTeam: workflow.NewStep(workflow.StepConfig[customerservice.ProductBrief, customerservice.TrainingReport]{
				Name:   customerservice.OpTrainSupportTeam,
				Branch: branch.CustomerService,
				Call:   s.customerservice.TrainSupportTeam,
				Extract: func(*workflow.State) (customerservice.ProductBrief, error) {
					return customerservice.ProductBrief{
						ProductID:    req.ProductID,
						ProductName:  req.ProductName,
						TargetMarket: req.TargetMarket,
						LaunchDate:   req.LaunchDate,
					}, nil
				},
				Output: workflow.Port[customerservice.TrainingReport]{Key: customerservice.OpTrainSupportTeam},
			}),
			analytics.OpTrackingDashboard: workflow.NewStep(workflow.StepConfig[analytics.ProductBrief, analytics.TrackingSetup]{
				Name:   analytics.OpTrackingDashboard,
				Branch: branch.Analytics,
				Call:   s.analytics.SetupTrackingDashboard,
				Extract: func(*workflow.State) (analytics.ProductBrief, error) {
					return analytics.ProductBrief{
						ProductID:    req.ProductID,
						ProductName:  req.ProductName,
						TargetMarket: req.TargetMarket,
						LaunchDate:   req.LaunchDate,
					}, nil
				},
				Output: workflow.Port[analytics.TrackingSetup]{Key: analytics.OpTrackingDashboard},
			}),
			hr.OpRecruitProductTeam: workflow.NewStep(workflow.StepConfig[hr.ProductBrief, hr.RecruitmentPlan]{
				Name:   hr.OpRecruitProductTeam,
				Branch: branch.HR,
				Call:   s.hr.RecruitProductTeam,
				Extract: func(*workflow.State) (hr.ProductBrief, error) {
					return hr.ProductBrief{
						ProductID:    req.ProductID,
						ProductName:  req.ProductName,
						TargetMarket: req.TargetMarket,
						LaunchDate:   req.LaunchDate,
					}, nil
				},
				Output: workflow.Port[hr.RecruitmentPlan]{Key: hr.OpRecruitProductTeam},
			}),
		},
	}
}

// crisisPlan wires the three-phase protocol: immediate response, then
// analysis and communication, then recovery planning. Each phase is a
// two-way fan-out gated on the previous phase's full join.
func (s *System) crisisPlan(req CrisisRequest) *workflow.Plan {
	crisisType := req.Type
	if crisisType == "" {
		crisisType = "service_outage"
	}
	severity := req.Severity
	if severity == "" {
		severity = "high"
	}

	plan := &workflow.Plan{
		Steps: map[string]workflow.Step{
			customerservice.OpActivateCrisisMode: workflow.NewStep(workflow.StepConfig[customerservice.CrisisActivation, customerservice.CrisisModeReport]{
				Name:   customerservice.OpActivateCrisisMode,
				Branch: branch.CustomerService,
				Call:   s.customerservice.ActivateCrisisMode,
				Extract: func(*workflow.State) (customerservice.CrisisActivation, error) {
					return customerservice.CrisisActivation{
						CrisisType:             crisisType,
						Severity:               severity,
						CustomerCommunications: true,
					}, nil
				},
				Output: workflow.Port[customerservice.CrisisModeReport]{Key: customerservice.OpActivateCrisisMode},
			}),
			operations.OpEmergencyResponse: workflow.NewStep(workflow.StepConfig[operations.EmergencyRequest, operations.EmergencyReport]{
				Name:   operations.OpEmergencyResponse,
				Branch: branch.Operations,
				Call:   s.operations.EmergencyResponse,
				Extract: func(*workflow.State) (operations.EmergencyRequest, error) {
					return operations.EmergencyRequest{
						CrisisType:    crisisType,
						BackupSystems: true,
					}, nil
				},
				Output: workflow.Port[operations.EmergencyReport]{Key: operations.OpEmergencyResponse},
			}),
			analytics.OpCrisisImpact: workflow.NewStep(workflow.StepConfig[analytics.CrisisData, analytics.CrisisImpact]{
				Name:   analytics.OpCrisisImpact,
				Branch: branch.Analytics,
				Call:   s.analytics.CrisisImpactAnalysis,
				Extract: func(*workflow.State) (analytics.CrisisData, error) {
					return analytics.CrisisData{
						Type:              crisisType,
						Severity:          severity,
						AffectedCustomers: req.AffectedCustomers,
					}, nil
				},
				Output: workflow.Port[analytics.CrisisImpact]{Key: analytics.OpCrisisImpact},
			}),
			marketing.OpCrisisComms: workflow.NewStep(workflow.StepConfig[marketing.CrisisCommsRequest, marketing.CrisisCommsReport]{
				Name:   marketing.OpCrisisComms,
				Branch: branch.Marketing,
				Call:   s.marketing.CrisisCommunications,
				Extract: func(*workflow.State) (marketing.CrisisCommsRequest, error) {
					return marketing.CrisisCommsRequest{
						CrisisType:  crisisType,
						Channels:    []string{"email", "social", "website"},
						MessageTone: "transparent",
					}, nil
				},
				Output: workflow.Port[marketing.CrisisCommsReport]{Key: marketing.OpCrisisComms},
			}),
			sales.OpRetentionCampaign: workflow.NewStep(workflow.StepConfig[sales.RetentionRequest, sales.RetentionCampaign]{
				Name:   sales.OpRetentionCampaign,
				Branch: branch.Sales,
				Call:   s.sales.CustomerRetentionCampaign,
				Extract: func(*workflow.State) (sales.RetentionRequest, error) {
					return sales.RetentionRequest{
						CrisisAffected:     true,
						CompensationOffers: true,
					}, nil
				},
				Output: workflow.Port[sales.RetentionCampaign]{Key: sales.OpRetentionCampaign},
			}),
			hr.OpCrisisTeamSupport: workflow.NewStep(workflow.StepConfig[hr.SupportRequest, hr.SupportReport]{
				Name:   hr.OpCrisisTeamSupport,
				Branch: branch.HR,
				Call:   s.hr.CrisisTeamSupport,
				Extract: func(*workflow.State) (hr.SupportRequest, error) {
					return hr.SupportRequest{
						StressManagement:    true,
						AdditionalResources: true,
					}, nil
				},
				Output: workflow.Port[hr.SupportReport]{Key: hr.OpCrisisTeamSupport},
			}),
		},
	}

	// Phase gates: immediate response, analysis, recovery.
	immediate := []string{customerservice.OpActivateCrisisMode, operations.OpEmergencyResponse}
	analysis := []string{analytics.OpCrisisImpact, marketing.OpCrisisComms}
	recovery := []string{sales.OpRetentionCampaign, hr.OpCrisisTeamSupport}

	for _, from := range immediate {
		for _, to := range analysis {
			plan.Edges = append(plan.Edges, workflow.Edge{From: from, To: to})
		}
	}
	for _, from := range analysis {
		for _, to := range recovery {
			plan.Edges = append(plan.Edges, workflow.Edge{From: from, To: to})
		}
	}

	return plan
}

// reviewPlan collects all six quarterly reviews in one fan-out; the
// consolidated narrative is attached after the join.
func (s *System) reviewPlan() *workflow.Plan {
	return &workflow.Plan{
		Steps: map[string]workflow.Step{
			marketing.OpQuarterlyReview: workflow.NewSourceStep(
				marketing.OpQuarterlyReview, branch.Marketing,
				s.marketing.QuarterlyPerformanceReview,
				workflow.Port[marketing.PerformanceReview]{Key: marketing.OpQuarterlyReview},
			),
			sales.OpPipelineAnalysis: workflow.NewSourceStep(
				sales.OpPipelineAnalysis, branch.Sales,
				s.sales.QuarterlyPipelineAnalysis,
				workflow.Port[sales.PipelineAnalysis]{Key: sales.OpPipelineAnalysis},
			),
			operations.OpEfficiencyAudit: workflow.NewSourceStep(
				operations.OpEfficiencyAudit, branch.Operations,
				s.operations.EfficiencyAudit,
				workflow.Port[operations.EfficiencyAuditReport]{Key: operations.OpEfficiencyAudit},
			),
			customerservice.OpSatisfactionAnalysis: workflow.NewSourceStep(
				customerservice.OpSatisfactionAnalysis, branch.CustomerService,
				s.customerservice.SatisfactionAnalysis,
				workflow.Port[customerservice.SatisfactionReport]{Key: customerservice.OpSatisfactionAnalysis},
			),
			analytics.OpExecutiveDashboard: workflow.NewSourceStep(
				analytics.OpExecutiveDashboard, branch.Analytics,
				s.analytics.GenerateExecutiveDashboard,
				workflow.Port[analytics.ExecutiveDashboard]{Key: analytics.OpExecutiveDashboard},
			),
			hr.OpWorkforceAnalytics: workflow.NewSourceStep(
				hr.OpWorkforceAnalytics, branch.HR,
				s.hr.WorkforceAnalytics,
				workflow.Port[hr.WorkforceReport]{Key: hr.OpWorkforceAnalytics},
			),
		},
	}
}
