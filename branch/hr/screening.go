package hr

import (
	"context"
	"math"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// Resume is the parsed resume attached to an application.
type Resume struct {
	YearsExperience int      `json:"years_experience"`
	Education       string   `json:"education"`
	Skills          []string `json:"skills"`
	Certifications  []string `json:"certifications"`
}

// Application is a job application to screen.
type Application struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	Resume     Resume   `json:"resume"`
	References []string `json:"references"`
}

// ResumeAnalysis is the outcome of parsing and scoring a resume.
type ResumeAnalysis struct {
	ExperienceYears    int      `json:"experience_years"`
	EducationLevel     string   `json:"education_level"`
	RelevantExperience bool     `json:"relevant_experience"`
	KeywordsMatched    int      `json:"keywords_matched"`
	KeywordsTotal      int      `json:"keywords_total"`
	KeywordMatchRate   float64  `json:"keyword_match_rate"`
	CareerProgression  string   `json:"career_progression"`
	EmploymentGaps     bool     `json:"employment_gaps"`
	Certifications     []string `json:"certifications"`
	TechnicalSkills    []string `json:"technical_skills"`
	Score              float64  `json:"score"`
	Strengths          []string `json:"strengths"`
	Concerns           []string `json:"concerns"`
}

// TechnicalSkills are the hands-on assessment results.
type TechnicalSkills struct {
	Programming    int     `json:"programming"`
	ProblemSolving int     `json:"problem_solving"`
	SystemDesign   int     `json:"system_design"`
	Score          float64 `json:"score"`
}

// SoftSkills are the behavioral assessment results.
type SoftSkills struct {
	Communication int     `json:"communication"`
	Teamwork      int     `json:"teamwork"`
	Leadership    int     `json:"leadership"`
	Adaptability  int     `json:"adaptability"`
	Score         float64 `json:"score"`
}

// SkillsAssessment is the combined skills evaluation.
type SkillsAssessment struct {
	Technical         TechnicalSkills `json:"technical_skills"`
	Soft              SoftSkills      `json:"soft_skills"`
	DomainKnowledge   float64         `json:"domain_knowledge"`
	LearningPotential float64         `json:"learning_potential"`
	OverallScore      float64         `json:"overall_score"`
	SkillGaps         []string        `json:"skill_gaps"`
	Development       []string        `json:"development_recommendations"`
}

// CultureFit is the values and work style evaluation.
type CultureFit struct {
	ValuesAlignment     int      `json:"values_alignment"`
	WorkStyleMatch      int      `json:"work_style_match"`
	TeamDynamicsFit     int      `json:"team_dynamics_fit"`
	CompanyCultureMatch int      `json:"company_culture_match"`
	MotivationAlignment int      `json:"motivation_alignment"`
	Score               float64  `json:"score"`
	FitLevel            string   `json:"fit_level"`
	Insights            []string `json:"insights"`
}

// ReferenceCheck is the automated reference verification result.
type ReferenceCheck struct {
	Provided       int      `json:"references_provided"`
	Verified       int      `json:"references_verified"`
	AverageRating  float64  `json:"average_rating"`
	WorkQuality    float64  `json:"work_quality_rating"`
	Reliability    float64  `json:"reliability_rating"`
	Teamwork       float64  `json:"teamwork_rating"`
	WouldRehire    bool     `json:"would_rehire"`
	FeedbackThemes []string `json:"positive_feedback_themes"`
	Score          float64  `json:"score"`
	Status         string   `json:"verification_status"`
}

// CandidateScore is the weighted rollup across the four evaluations.
type CandidateScore struct {
	Score      float64 `json:"score"`
	Rating     string  `json:"rating"`
	Resume     float64 `json:"resume"`
	Skills     float64 `json:"skills"`
	Culture    float64 `json:"culture"`
	References float64 `json:"references"`
}

// CandidateEvaluation is the full screening outcome for one applicant.
type CandidateEvaluation struct {
	CandidateID    string           `json:"candidate_id"`
	CandidateName  string           `json:"candidate_name"`
	Position       string           `json:"position"`
	Resume         ResumeAnalysis   `json:"resume_analysis"`
	Skills         SkillsAssessment `json:"skills_assessment"`
	Culture        CultureFit       `json:"culture_fit"`
	References     ReferenceCheck   `json:"reference_check"`
	Overall        CandidateScore   `json:"overall_score"`
	Recommendation string           `json:"recommendation"`
	NextSteps      []string         `json:"next_steps"`
}

func (CandidateEvaluation) Branch() string    { return branch.HR }
func (CandidateEvaluation) Operation() string { return OpScreenCandidate }

// ScreenCandidate runs the resume, skills, culture and reference
// evaluations and rolls them into a weighted hiring recommendation.
func (c *Coordinator) ScreenCandidate(ctx context.Context, app Application) (CandidateEvaluation, error) {
	if err := branch.Simulate(ctx, c.delay); err != nil {
		return CandidateEvaluation{}, err
	}

	resume := screenResume(app)
	skills := assessSkills()
	culture := evaluateCultureFit()
	references := checkReferences(app)

	// Overall weighting favors demonstrated skills over resume claims.
	raw := resume.Score*0.25 + skills.OverallScore*0.35 + culture.Score*0.25 + references.Score*0.15

	rating := "fair"
	switch {
	case raw >= 85:
		rating = "excellent"
	case raw >= 75:
		rating = "very_good"
	case raw >= 60:
		rating = "good"
	}

	overall := CandidateScore{
		Score:      math.Round(raw*10) / 10,
		Rating:     rating,
		Resume:     resume.Score,
		Skills:     skills.OverallScore,
		Culture:    culture.Score,
		References: references.Score,
	}

	recommendation := "decline"
	switch {
	case overall.Score >= advanceThreshold:
		recommendation = "advance"
	case overall.Score >= reviewThreshold:
		recommendation = "maybe"
	}

	c.mu.Lock()
	c.applicationsProcessed++
	if recommendation == "advance" {
		c.candidatesAdvanced++
	}
	c.mu.Unlock()

	c.log.Info("Candidate screened", map[string]interface{}{
		"candidate":      app.Name,
		"position":       app.Position,
		"score":          overall.Score,
		"recommendation": recommendation,
	})

	return CandidateEvaluation{
		CandidateID:    app.ID,
		CandidateName:  app.Name,
		Position:       app.Position,
		Resume:         resume,
		Skills:         skills,
		Culture:        culture,
		References:     references,
		Overall:        overall,
		Recommendation: recommendation,
		NextSteps:      nextSteps(recommendation),
	}, nil
}

func screenResume(app Application) ResumeAnalysis {
	education := app.Resume.Education
	if education == "" {
		education = "bachelor"
	}

	analysis := ResumeAnalysis{
		ExperienceYears:    app.Resume.YearsExperience,
		EducationLevel:     education,
		RelevantExperience: true,
		KeywordsMatched:    18,
		KeywordsTotal:      25,
		KeywordMatchRate:   72.0,
		CareerProgression:  "positive",
		EmploymentGaps:     false,
		Certifications:     app.Resume.Certifications,
		TechnicalSkills:    app.Resume.Skills,
		Strengths: []string{
			"Strong keyword alignment with job requirements",
			"Consistent career progression",
			"Relevant industry certifications",
		},
	}

	experienceScore := math.Min(float64(analysis.ExperienceYears)/5*100, 100)
	relevanceScore := 50.0
	if analysis.RelevantExperience {
		relevanceScore = 85.0
	}

	score := analysis.KeywordMatchRate*0.4 + experienceScore*0.3 + relevanceScore*0.3
	analysis.Score = math.Round(score*10) / 10
	if score < 75 {
		analysis.Concerns = []string{"Limited experience with specific technology X"}
	}

	return analysis
}

func assessSkills() SkillsAssessment {
	technical := TechnicalSkills{Programming: 85, ProblemSolving: 78, SystemDesign: 82, Score: 81.7}
	soft := SoftSkills{Communication: 88, Teamwork: 85, Leadership: 75, Adaptability: 90, Score: 84.5}

	overall := technical.Score*0.4 + soft.Score*0.3 + 79*0.2 + 86*0.1

	return SkillsAssessment{
		Technical:         technical,
		Soft:              soft,
		DomainKnowledge:   79,
		LearningPotential: 86,
		OverallScore:      math.Round(overall*10) / 10,
		SkillGaps:         []string{"Advanced cloud architecture"},
		Development: []string{
			"Cloud certification training",
			"Leadership development program",
		},
	}
}

func evaluateCultureFit() CultureFit {
	fit := CultureFit{
		ValuesAlignment:     88,
		WorkStyleMatch:      82,
		TeamDynamicsFit:     85,
		CompanyCultureMatch: 84,
		MotivationAlignment: 90,
	}

	score := float64(fit.ValuesAlignment+fit.WorkStyleMatch+fit.TeamDynamicsFit+
		fit.CompanyCultureMatch+fit.MotivationAlignment) / 5
	fit.Score = math.Round(score*10) / 10

	fit.FitLevel = "low"
	switch {
	case score >= 80:
		fit.FitLevel = "high"
	case score >= 65:
		fit.FitLevel = "medium"
	}

	fit.Insights = []string{
		"Strong alignment with company values",
		"Collaborative work style matches team dynamics",
		"High motivation for company mission",
	}

	return fit
}

func checkReferences(app Application) ReferenceCheck {
	check := ReferenceCheck{
		Provided:      len(app.References),
		Verified:      len(app.References),
		AverageRating: 4.5,
		WorkQuality:   4.7,
		Reliability:   4.6,
		Teamwork:      4.4,
		WouldRehire:   true,
		FeedbackThemes: []string{
			"Excellent problem solver",
			"Strong team player",
			"Delivers high-quality work",
		},
		Status: "completed",
	}

	check.Score = math.Round(check.AverageRating/5*100*10) / 10

	return check
}

func nextSteps(recommendation string) []string {
	switch recommendation {
	case "advance":
		return []string{
			"Schedule technical interview",
			"Arrange hiring manager meeting",
			"Prepare assessment exercises",
		}
	case "maybe":
		return []string{
			"Request additional information",
			"Conduct phone screening",
			"Review with hiring team",
		}
	default:
		return []string{
			"Send polite rejection email",
			"Add to talent pool for future opportunities",
		}
	}
}
