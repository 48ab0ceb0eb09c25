package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
	"github.com/Garrettc123/ai-business-automation-tree/observability"
)

func TestWithTracing_WrapsStep(t *testing.T) {
	inner := okStep("run_campaign", branch.Marketing)

	traced := WithTracing(inner, "workflow.lifecycle")
	if traced.Name() != "run_campaign" {
		t.Fatalf("expected 'run_campaign', got %q", traced.Name())
	}
	if traced.Branch() != branch.Marketing {
		t.Fatalf("expected marketing branch, got %q", traced.Branch())
	}

	result, err := traced.Run(context.Background(), NewState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Branch() != branch.Marketing {
		t.Fatalf("unexpected result branch %q", result.Branch())
	}
}

func TestWithTracing_PropagatesError(t *testing.T) {
	stepErr := errors.New("fail")
	inner := newFuncStep("run_campaign", branch.Marketing, func(_ context.Context, _ *State) (branch.Result, error) {
		return nil, stepErr
	})

	traced := WithTracing(inner, "workflow")
	_, err := traced.Run(context.Background(), NewState())
	if !errors.Is(err, stepErr) {
		t.Fatalf("expected step error, got %v", err)
	}
}

func TestWithLogging_Success(t *testing.T) {
	log := logger.NewDefault("workflow-test")
	inner := okStep("process_lead", branch.Sales)

	logged := WithLogging(inner, log)
	if logged.Name() != "process_lead" {
		t.Fatalf("expected 'process_lead', got %q", logged.Name())
	}

	result, err := logged.Run(context.Background(), NewState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Operation() != "process_lead" {
		t.Fatalf("unexpected result operation %q", result.Operation())
	}
}

func TestWithLogging_Error(t *testing.T) {
	log := logger.NewDefault("workflow-test")
	stepErr := errors.New("log-fail")
	inner := newFuncStep("fulfill_order", branch.Operations, func(_ context.Context, _ *State) (branch.Result, error) {
		return nil, stepErr
	})

	logged := WithLogging(inner, log)
	_, err := logged.Run(context.Background(), NewState())
	if !errors.Is(err, stepErr) {
		t.Fatalf("expected step error, got %v", err)
	}
}

func TestWithMetrics_Success(t *testing.T) {
	meter := observability.Meter("workflow-test")
	metrics, err := observability.NewMetrics(meter)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	inner := okStep("onboard_customer", branch.CustomerService)

	wrapped := WithMetrics(inner, metrics)
	if wrapped.Branch() != branch.CustomerService {
		t.Fatalf("expected customer_service, got %q", wrapped.Branch())
	}

	result, err := wrapped.Run(context.Background(), NewState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected result")
	}
}

func TestWithMetrics_Error(t *testing.T) {
	meter := observability.Meter("workflow-test")
	metrics, err := observability.NewMetrics(meter)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	stepErr := errors.New("metrics-fail")
	inner := newFuncStep("workforce_analytics", branch.HR, func(_ context.Context, _ *State) (branch.Result, error) {
		return nil, stepErr
	})

	wrapped := WithMetrics(inner, metrics)
	_, err = wrapped.Run(context.Background(), NewState())
	if !errors.Is(err, stepErr) {
		t.Fatalf("expected step error, got %v", err)
	}
}

func TestWithTracing_InPlan(t *testing.T) {
	scorePort := Port[string]{Key: "traced-out"}

	first := WithTracing(newFuncStep("campaign", branch.Marketing, func(_ context.Context, s *State) (branch.Result, error) {
		Write(s, scorePort, "from-campaign")
		return stubReport{branchName: branch.Marketing, op: "campaign"}, nil
	}), "test-plan")

	second := WithTracing(newFuncStep("lead", branch.Sales, func(_ context.Context, s *State) (branch.Result, error) {
		v, err := Read(s, scorePort)
		if err != nil {
			return nil, err
		}
		return stubReport{branchName: branch.Sales, op: "lead", value: v}, nil
	}), "test-plan")

	p := &Plan{
		Steps: map[string]Step{"campaign": first, "lead": second},
		Edges: []Edge{{From: "campaign", To: "lead"}},
	}

	engine := &Engine{}
	state := NewState()
	out, err := engine.Execute(context.Background(), p, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Steps["campaign"].Status != StepCompleted {
		t.Fatal("expected campaign completed")
	}
	if out.Steps["lead"].Status != StepCompleted {
		t.Fatal("expected lead completed")
	}
	got, ok := out.Steps["lead"].Output.(stubReport)
	if !ok || got.value != "from-campaign" {
		t.Fatalf("expected traced lead step to observe campaign output, got %+v", out.Steps["lead"].Output)
	}
}
