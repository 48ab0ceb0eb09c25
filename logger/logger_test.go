package logger

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("automation")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "automation" {
		t.Errorf("expected service 'automation', got %q", l.service)
	}
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{
		Level:  "loud",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	base := NewDefault("svc")
	tagged := base.WithComponent("workflow")
	if tagged == base {
		t.Fatal("WithComponent must return a new logger")
	}
	if tagged.service != base.service {
		t.Errorf("service changed: %q != %q", tagged.service, base.service)
	}
}

func TestWithFieldsAndError(t *testing.T) {
	l := NewDefault("svc").
		WithFields(map[string]interface{}{FieldScenario: "product-launch"}).
		WithError(errors.New("boom"))
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	l.Debug("chained logger works")
}

func TestWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("request_id"), "req-123")
	l := NewDefault("svc").WithContext(ctx)
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %q", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	cfg := Config{Level: "verbose", Format: "console"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFieldsHelper(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields map: %#v", m)
	}
	// Odd trailing key is dropped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 entry, got %d", len(m))
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("run_campaign", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500, got %v", m[FieldDuration])
	}
}

func TestRegistryFallsBackToGlobal(t *testing.T) {
	l := Get("never-registered")
	if l == nil {
		t.Fatal("expected fallback logger")
	}

	named := NewDefault("named")
	Register("named-one", named)
	if got := Get("named-one"); got != named {
		t.Error("expected registered logger back")
	}
}
