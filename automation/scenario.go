package automation

import (
	"github.com/Garrettc123/ai-business-automation-tree/workflow"
)

// Scenario is a named cross-branch workflow. The set is closed; an
// unrecognized tag fails dispatch before any branch is called.
type Scenario string

const (
	// ScenarioCustomerLifecycle chains marketing, sales, operations,
	// customer service and analytics into one end-to-end journey.
	ScenarioCustomerLifecycle Scenario = "customer-lifecycle"
	// ScenarioProductLaunch fans a launch brief out to all six branches
	// in a single parallel wave.
	ScenarioProductLaunch Scenario = "product-launch"
	// ScenarioCrisisResponse runs the three-phase crisis protocol:
	// immediate response, analysis and communication, recovery.
	ScenarioCrisisResponse Scenario = "crisis-response"
	// ScenarioQuarterlyReview collects every branch's quarterly review
	// and consolidates them into cross-functional insights.
	ScenarioQuarterlyReview Scenario = "quarterly-review"
)

// Scenarios returns the closed scenario set in presentation order.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioCustomerLifecycle,
		ScenarioProductLaunch,
		ScenarioCrisisResponse,
		ScenarioQuarterlyReview,
	}
}

// spec describes how one scenario's records are identified and which
// terminal status a clean run gets.
type spec struct {
	tag     Scenario
	name    string
	prefix  string
	success workflow.Status
}

var scenarioSpecs = map[Scenario]spec{
	ScenarioCustomerLifecycle: {
		tag:     ScenarioCustomerLifecycle,
		name:    "complete_customer_lifecycle",
		prefix:  "LIFECYCLE",
		success: workflow.StatusCompleted,
	},
	ScenarioProductLaunch: {
		tag:     ScenarioProductLaunch,
		name:    "product_launch_automation",
		prefix:  "LAUNCH",
		success: workflow.StatusCompleted,
	},
	ScenarioCrisisResponse: {
		tag:     ScenarioCrisisResponse,
		name:    "crisis_management_protocol",
		prefix:  "CRISIS",
		success: workflow.StatusResolved,
	},
	ScenarioQuarterlyReview: {
		tag:     ScenarioQuarterlyReview,
		name:    "quarterly_business_review",
		prefix:  "QBR",
		success: workflow.StatusCompleted,
	},
}

// LifecycleRequest submits one customer to the end-to-end lifecycle.
// Segment drives campaign targeting and deal sizing; Tier selects the
// onboarding track and defaults to standard.
type LifecycleRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	LeadID     string `json:"lead_id" validate:"required"`
	Segment    string `json:"segment"`
	Tier       string `json:"tier"`
}

// LaunchRequest submits a product brief to the six-branch launch wave.
type LaunchRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	ProductName  string `json:"product_name" validate:"required"`
	TargetMarket string `json:"target_market"`
	LaunchDate   string `json:"launch_date"`
}

// CrisisRequest activates the crisis protocol. Type defaults to
// service_outage and Severity to high, matching the runbook's assumed
// worst case.
type CrisisRequest struct {
	Type              string `json:"type"`
	Severity          string `json:"severity"`
	AffectedCustomers int    `json:"affected_customers" validate:"min=0"`
}
