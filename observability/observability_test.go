package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Garrettc123/ai-business-automation-tree/component"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestNewMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordRequestStart(ctx)
	metrics.RecordRequestEnd(ctx, "automation", "GET /health", "ok", 100*time.Millisecond)
	metrics.RecordOperation(ctx, "sales", "process_lead", "completed", 50*time.Millisecond)
	metrics.RecordError(ctx, "branch_failure", "operations")
}

func TestNewOperationContext(t *testing.T) {
	oc := NewOperationContext("automation", "customer-lifecycle", "LIFECYCLE-1", nil)

	if oc.ServiceName != "automation" {
		t.Errorf("expected ServiceName 'automation', got %s", oc.ServiceName)
	}
	if oc.OperationName != "customer-lifecycle" {
		t.Errorf("expected OperationName 'customer-lifecycle', got %s", oc.OperationName)
	}
	if oc.RequestID != "LIFECYCLE-1" {
		t.Errorf("expected RequestID 'LIFECYCLE-1', got %s", oc.RequestID)
	}
	if oc.StartTime.IsZero() {
		t.Error("expected StartTime to be set")
	}
}

func TestOperationContextFromContext(t *testing.T) {
	oc := NewOperationContext("automation", "customer-lifecycle", "LIFECYCLE-1", nil)
	ctx := WithOperationContext(context.Background(), oc)

	retrieved := OperationContextFromContext(ctx)
	if retrieved == nil {
		t.Fatal("expected operation context from context")
	}
	if retrieved.ServiceName != oc.ServiceName {
		t.Errorf("expected ServiceName %s, got %s", oc.ServiceName, retrieved.ServiceName)
	}
}

func TestOperationContextFromContext_NotSet(t *testing.T) {
	retrieved := OperationContextFromContext(context.Background())
	if retrieved != nil {
		t.Error("expected nil when operation context not set")
	}
}

func TestOperationContext_Duration(t *testing.T) {
	oc := NewOperationContext("automation", "product-launch", "LAUNCH-1", nil)
	oc.StartTime = time.Now().Add(-50 * time.Millisecond)

	duration := oc.Duration()
	if duration < 45*time.Millisecond || duration > 200*time.Millisecond {
		t.Errorf("expected duration around 50ms, got %v", duration)
	}
}

func TestOperationContext_NilMetrics(t *testing.T) {
	oc := NewOperationContext("automation", "crisis-response", "CRISIS-1", nil)
	ctx := context.Background()

	ctx, span := oc.StartSpanForOperation(ctx, SpanWorkflowExecute)
	oc.EndOperation(ctx, span, "completed", nil)
}

func TestTracer(t *testing.T) {
	tracer := Tracer("test-tracer")
	if tracer == nil {
		t.Fatal("expected non-nil tracer")
	}
}

func TestMeter(t *testing.T) {
	meter := Meter("test-meter")
	if meter == nil {
		t.Fatal("expected non-nil meter")
	}
}

func TestStartSpan(t *testing.T) {
	ctx := context.Background()
	ctx, span := StartSpan(ctx, "test-operation")
	defer span.End()

	if span == nil {
		t.Fatal("expected non-nil span")
	}
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
}

func TestSpanFromContext(t *testing.T) {
	ctx := context.Background()
	span := SpanFromContext(ctx)
	if span == nil {
		t.Fatal("expected non-nil span (noop)")
	}

	// With a real span
	ctx, s := StartSpan(ctx, "test")
	defer s.End()
	got := SpanFromContext(ctx)
	if got == nil {
		t.Fatal("expected non-nil span from context")
	}
}

func TestSetSpanAttribute(t *testing.T) {
	// Use SDK tracer so span.IsRecording() returns true
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), "test-attrs")
	defer span.End()

	// Test all supported types - should not panic
	SetSpanAttribute(ctx, "string-key", "value")
	SetSpanAttribute(ctx, "int-key", 42)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "string-slice-key", []string{"a", "b"})

	// Unsupported type - should not panic, just ignored
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})

	// Reset to noop
	otel.SetTracerProvider(otel.GetTracerProvider())
}

func TestSetSpanAttributeNoSpan(t *testing.T) {
	// With background context (no recording span), should not panic
	ctx := context.Background()
	SetSpanAttribute(ctx, "key", "value")
}

func TestSetSpanError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), "test-error")
	defer span.End()

	SetSpanError(ctx, fmt.Errorf("test error"))
}

func TestSetSpanErrorNoSpan(t *testing.T) {
	ctx := context.Background()
	// Should not panic with background context
	SetSpanError(ctx, fmt.Errorf("no span error"))
}

func TestRecordErrorDirect(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Should not panic
	metrics.RecordError(context.Background(), "timeout", "marketing")
}

func TestOperationContextWithMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, _ := NewMetrics(meter)

	oc := NewOperationContext("automation", "quarterly-review", "QBR-1", metrics)
	ctx := context.Background()

	ctx, span := oc.StartSpanForOperation(ctx, SpanWorkflowExecute)
	oc.EndOperation(ctx, span, "completed", nil)
}

func TestOperationContextEndWithError(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, _ := NewMetrics(meter)

	oc := NewOperationContext("automation", "customer-lifecycle", "LIFECYCLE-2", metrics)
	ctx := context.Background()

	ctx, span := oc.StartSpanForOperation(ctx, SpanWorkflowExecute)
	oc.EndOperation(ctx, span, "failed", fmt.Errorf("something failed"))
}

func TestDefaultTracerConfigFields(t *testing.T) {
	cfg := DefaultTracerConfig("svc")
	if cfg.ServiceVersion != "1.0.0" {
		t.Errorf("expected ServiceVersion '1.0.0', got %q", cfg.ServiceVersion)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected Environment 'development', got %q", cfg.Environment)
	}
}

func TestDefaultMeterConfigFields(t *testing.T) {
	cfg := DefaultMeterConfig("svc")
	if cfg.ServiceVersion != "1.0.0" {
		t.Errorf("expected ServiceVersion '1.0.0', got %q", cfg.ServiceVersion)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected Environment 'development', got %q", cfg.Environment)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure true for default config")
	}
}

func TestSpanNameConstants(t *testing.T) {
	if SpanHTTPRequest != "http.request" {
		t.Errorf("expected 'http.request', got %q", SpanHTTPRequest)
	}
	if SpanWorkflowExecute != "workflow.execute" {
		t.Errorf("expected 'workflow.execute', got %q", SpanWorkflowExecute)
	}
	if SpanBranchOperation != "branch.operation" {
		t.Errorf("expected 'branch.operation', got %q", SpanBranchOperation)
	}
}

func TestAttributeKeyConstants(t *testing.T) {
	if AttrServiceName != "service.name" {
		t.Errorf("expected 'service.name', got %q", AttrServiceName)
	}
	if AttrScenario != "workflow.scenario" {
		t.Errorf("expected 'workflow.scenario', got %q", AttrScenario)
	}
	if AttrWorkflowID != "workflow.id" {
		t.Errorf("expected 'workflow.id', got %q", AttrWorkflowID)
	}
	if AttrBranch != "branch.name" {
		t.Errorf("expected 'branch.name', got %q", AttrBranch)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.SampleRate != 1.0 {
		t.Errorf("expected default SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected default Interval 15s, got %v", cfg.Interval)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{SampleRate: 1.5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for sample rate > 1.0")
	}

	cfg = Config{Enabled: true, SampleRate: 0.5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for enabled telemetry without endpoint")
	}

	cfg = Config{Enabled: true, Endpoint: "localhost:4318", SampleRate: 0.5}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestTelemetryDisabled(t *testing.T) {
	tel := NewTelemetry(Config{}, "automation", "1.0.0", "development")

	if err := tel.Start(context.Background()); err != nil {
		t.Fatalf("Start failed for disabled telemetry: %v", err)
	}
	if tel.Metrics() != nil {
		t.Error("expected nil metrics when disabled")
	}

	h := tel.Health(context.Background())
	if h.Status != component.StatusHealthy {
		t.Errorf("expected healthy status for disabled telemetry, got %s", h.Status)
	}
	if h.Message != "disabled" {
		t.Errorf("expected 'disabled' message, got %q", h.Message)
	}

	if err := tel.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
}

func TestTelemetryDescribe(t *testing.T) {
	tel := NewTelemetry(Config{}, "automation", "1.0.0", "development")
	desc := tel.Describe()
	if desc.Name != "Telemetry" {
		t.Errorf("expected 'Telemetry', got %q", desc.Name)
	}
	if desc.Details != "disabled" {
		t.Errorf("expected 'disabled' details, got %q", desc.Details)
	}

	tel = NewTelemetry(Config{Enabled: true, Endpoint: "localhost:4318"}, "automation", "1.0.0", "development")
	desc = tel.Describe()
	if desc.Details == "disabled" {
		t.Error("expected endpoint details for enabled telemetry")
	}
}

func TestTelemetryName(t *testing.T) {
	tel := NewTelemetry(Config{}, "automation", "1.0.0", "development")
	if tel.Name() != "telemetry" {
		t.Errorf("expected 'telemetry', got %q", tel.Name())
	}
}
