package workflow

import (
	"context"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
	"github.com/Garrettc123/ai-business-automation-tree/observability"
)

// WithTracing wraps a Step with OpenTelemetry span creation.
// Each execution creates a span named "{prefix}.{stepName}".
func WithTracing(step Step, prefix string) Step {
	return &tracingStep{inner: step, prefix: prefix}
}

type tracingStep struct {
	inner  Step
	prefix string
}

func (s *tracingStep) Name() string   { return s.inner.Name() }
func (s *tracingStep) Branch() string { return s.inner.Branch() }

func (s *tracingStep) Run(ctx context.Context, state *State) (branch.Result, error) {
	spanName := s.prefix + "." + s.inner.Name()
	ctx, span := observability.StartSpan(ctx, spanName)
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrBranch, s.inner.Branch())
	observability.SetSpanAttribute(ctx, observability.AttrOperationName, s.inner.Name())

	result, err := s.inner.Run(ctx, state)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}

	return result, err
}

// WithMetrics wraps a Step with metric recording.
// Records operation count, duration, and errors per branch.
func WithMetrics(step Step, metrics *observability.Metrics) Step {
	return &metricsStep{inner: step, metrics: metrics}
}

type metricsStep struct {
	inner   Step
	metrics *observability.Metrics
}

func (s *metricsStep) Name() string   { return s.inner.Name() }
func (s *metricsStep) Branch() string { return s.inner.Branch() }

func (s *metricsStep) Run(ctx context.Context, state *State) (branch.Result, error) {
	start := time.Now()
	result, err := s.inner.Run(ctx, state)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		s.metrics.RecordError(ctx, "branch_failure", s.inner.Branch())
	}
	s.metrics.RecordOperation(ctx, s.inner.Branch(), s.inner.Name(), status, duration)

	return result, err
}

// WithLogging wraps a Step with execution logging.
// Logs: branch, step name, duration, and success/error status.
func WithLogging(step Step, log *logger.Logger) Step {
	return &loggingStep{inner: step, log: log}
}

type loggingStep struct {
	inner Step
	log   *logger.Logger
}

func (s *loggingStep) Name() string   { return s.inner.Name() }
func (s *loggingStep) Branch() string { return s.inner.Branch() }

func (s *loggingStep) Run(ctx context.Context, state *State) (branch.Result, error) {
	start := time.Now()
	result, err := s.inner.Run(ctx, state)
	duration := time.Since(start)

	fields := map[string]interface{}{
		"branch":   s.inner.Branch(),
		"step":     s.inner.Name(),
		"duration": duration.String(),
	}

	if err != nil {
		fields["error"] = err.Error()
		s.log.Error("branch step failed", fields)
	} else {
		s.log.Debug("branch step completed", fields)
	}

	return result, err
}
