// Package hr coordinates the talent management agents: candidate
// screening, performance reviews, engagement surveys, recruiting and
// workforce analytics.
package hr

import (
	"sync"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
)

// Operation names reported by hr results.
const (
	OpScreenCandidate    = "screen_candidate"
	OpPerformanceReview  = "performance_review"
	OpEngagementSurvey   = "engagement_survey"
	OpRecruitProductTeam = "recruit_product_team"
	OpCrisisTeamSupport  = "crisis_team_support"
	OpWorkforceAnalytics = "workforce_analytics"
	OpOnboardEmployee    = "onboard_employee"
)

// Candidate screening bands. Candidates at or above advanceThreshold
// move to interviews; those above reviewThreshold get a second look.
const (
	advanceThreshold = 75.0
	reviewThreshold  = 60.0
)

var (
	_ branch.Result = CandidateEvaluation{}
	_ branch.Result = ReviewReport{}
	_ branch.Result = SurveyReport{}
	_ branch.Result = RecruitmentPlan{}
	_ branch.Result = SupportReport{}
	_ branch.Result = WorkforceReport{}
	_ branch.Result = OnboardingPlan{}
)

// Coordinator runs talent workloads and keeps hiring and survey
// tallies. Safe for concurrent use.
type Coordinator struct {
	delay time.Duration
	log   *logger.Logger

	mu                    sync.Mutex
	applicationsProcessed int
	candidatesAdvanced    int
	surveysCompleted      int
	reviewsCompleted      int
	employeesOnboarded    int
}

// New returns an hr coordinator. delay is the simulated agent latency
// applied per operation; tests pass zero.
func New(delay time.Duration, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewDefault(branch.HR)
	}
	return &Coordinator{
		delay: delay,
		log:   log.WithComponent("branch.hr"),
	}
}

// Counters is a snapshot of the coordinator's tallies.
type Counters struct {
	ApplicationsProcessed int `json:"applications_processed"`
	CandidatesAdvanced    int `json:"candidates_advanced"`
	SurveysCompleted      int `json:"surveys_completed"`
	ReviewsCompleted      int `json:"reviews_completed"`
	EmployeesOnboarded    int `json:"employees_onboarded"`
}

// Counters returns the current tallies.
func (c *Coordinator) Counters() Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Counters{
		ApplicationsProcessed: c.applicationsProcessed,
		CandidatesAdvanced:    c.candidatesAdvanced,
		SurveysCompleted:      c.surveysCompleted,
		ReviewsCompleted:      c.reviewsCompleted,
		EmployeesOnboarded:    c.employeesOnboarded,
	}
}
