package observability

import (
	"context"
	"fmt"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Garrettc123/ai-business-automation-tree/component"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
)

// Config configures the Telemetry component.
type Config struct {
	// Enabled turns telemetry export on. Even when true, an empty
	// Endpoint disables export.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Endpoint is the OTLP HTTP endpoint host:port.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows plain HTTP export (development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults fills in zero values with development defaults.
func (c *Config) ApplyDefaults() {
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.SampleRate < 0 || c.SampleRate > 1.0 {
		return fmt.Errorf("observability.sample_rate must be between 0.0 and 1.0 (got: %f)", c.SampleRate)
	}
	if c.Enabled && c.Endpoint == "" {
		return fmt.Errorf("observability.endpoint is required when enabled")
	}
	return nil
}

// Telemetry is a lifecycle component wrapping the OpenTelemetry tracer and
// meter providers. When no endpoint is configured it starts as a no-op and
// Metrics() returns nil, so callers degrade to untelemetered execution.
type Telemetry struct {
	cfg         Config
	serviceName string
	version     string
	environment string

	tp      *sdktrace.TracerProvider
	mp      *sdkmetric.MeterProvider
	metrics *Metrics
}

// NewTelemetry creates the telemetry component for a service.
func NewTelemetry(cfg Config, serviceName, version, environment string) *Telemetry {
	cfg.ApplyDefaults()
	return &Telemetry{
		cfg:         cfg,
		serviceName: serviceName,
		version:     version,
		environment: environment,
	}
}

// Name implements component.Component.
func (t *Telemetry) Name() string { return "telemetry" }

// Start initializes the tracer and meter providers. A disabled config is
// not an error.
func (t *Telemetry) Start(ctx context.Context) error {
	if !t.enabled() {
		logger.Info("telemetry disabled, no OTLP endpoint configured")
		return nil
	}

	tracerCfg := &TracerConfig{
		ServiceName:    t.serviceName,
		ServiceVersion: t.version,
		Environment:    t.environment,
		Endpoint:       t.cfg.Endpoint,
		Insecure:       t.cfg.Insecure,
		SampleRate:     t.cfg.SampleRate,
	}
	tp, err := InitTracer(ctx, tracerCfg)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	t.tp = tp

	meterCfg := &MeterConfig{
		ServiceName:    t.serviceName,
		ServiceVersion: t.version,
		Environment:    t.environment,
		Endpoint:       t.cfg.Endpoint,
		Insecure:       t.cfg.Insecure,
		Interval:       t.cfg.Interval,
	}
	mp, err := InitMeter(ctx, meterCfg)
	if err != nil {
		return fmt.Errorf("init meter: %w", err)
	}
	t.mp = mp

	metrics, err := NewMetrics(Meter(t.serviceName))
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}
	t.metrics = metrics

	return nil
}

// Stop flushes and shuts down both providers.
func (t *Telemetry) Stop(ctx context.Context) error {
	var firstErr error
	if t.tp != nil {
		if err := t.tp.Shutdown(ctx); err != nil {
			firstErr = fmt.Errorf("tracer shutdown: %w", err)
		}
		t.tp = nil
	}
	if t.mp != nil {
		if err := t.mp.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("meter shutdown: %w", err)
		}
		t.mp = nil
	}
	t.metrics = nil
	return firstErr
}

// Health implements component.Component.
func (t *Telemetry) Health(ctx context.Context) component.Health {
	if !t.enabled() {
		return component.Health{
			Name:    t.Name(),
			Status:  component.StatusHealthy,
			Message: "disabled",
		}
	}
	return component.Health{
		Name:    t.Name(),
		Status:  component.StatusHealthy,
		Message: fmt.Sprintf("exporting to %s", t.cfg.Endpoint),
	}
}

// Describe implements component.Describable for the startup summary.
func (t *Telemetry) Describe() component.Description {
	details := "disabled"
	if t.enabled() {
		details = fmt.Sprintf("otlp-http %s sample=%.2f", t.cfg.Endpoint, t.cfg.SampleRate)
	}
	return component.Description{
		Name:    "Telemetry",
		Type:    "observability",
		Details: details,
	}
}

// Metrics returns the shared metric instruments, or nil when disabled.
func (t *Telemetry) Metrics() *Metrics {
	return t.metrics
}

func (t *Telemetry) enabled() bool {
	return t.cfg.Enabled && t.cfg.Endpoint != ""
}

var _ component.Component = (*Telemetry)(nil)
var _ component.Describable = (*Telemetry)(nil)
