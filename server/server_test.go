package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Garrettc123/ai-business-automation-tree/automation"
	"github.com/Garrettc123/ai-business-automation-tree/server"
)

// newTestServer builds a served automation system without binding a
// port; requests go straight to the assembled handler.
func newTestServer(t *testing.T) (*server.Server, *automation.System) {
	t.Helper()

	sys := automation.New(automation.Config{}, nil, nil)
	sys.Activate()

	cfg := server.Config{}
	cfg.ApplyDefaults()

	srv := server.New(cfg, nil)
	srv.RegisterStatusRoutes(sys)
	return srv, sys
}

func get(t *testing.T, srv *server.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", path, http.NoBody))
	return rr
}

func TestHealthEndpoint_FreshInstance(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := get(t, srv, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		System  struct {
			Status        string   `json:"status"`
			UptimeSeconds float64  `json:"uptime_seconds"`
			BranchCount   int      `json:"branches_count"`
			Branches      []string `json:"branches"`
			Timestamp     string   `json:"timestamp"`
			Version       string   `json:"version"`
		} `json:"system"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body.Status != "healthy" {
		t.Fatalf("expected healthy, got %q", body.Status)
	}
	if body.Message == "" {
		t.Fatal("expected a message")
	}
	if body.System.Status != "operational" {
		t.Fatalf("expected operational system, got %q", body.System.Status)
	}
	if body.System.BranchCount != 6 || len(body.System.Branches) != 6 {
		t.Fatalf("expected 6 branches, got %d/%d", body.System.BranchCount, len(body.System.Branches))
	}
	if body.System.UptimeSeconds < 0 {
		t.Fatalf("negative uptime: %v", body.System.UptimeSeconds)
	}
	if body.System.Version == "" {
		t.Fatal("expected a version")
	}
	if body.System.Timestamp == "" {
		t.Fatal("expected a timestamp")
	}
}

func TestStatusEndpoint_SystemObjectAlone(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := get(t, srv, "/api/status")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := body["system"]; ok {
		t.Fatal("/api/status must return the system object without a wrapper")
	}
	for _, key := range []string{"status", "uptime_seconds", "branches_count", "branches", "timestamp", "version"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing key %q in %s", key, rr.Body.String())
		}
	}
}

func TestBranchesEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := get(t, srv, "/api/branches")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		Branches map[string]struct {
			Status        string  `json:"status"`
			Type          string  `json:"type"`
			LastExecution *string `json:"last_execution"`
		} `json:"branches"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(body.Branches) != 6 {
		t.Fatalf("expected 6 branches, got %d", len(body.Branches))
	}
	marketing, ok := body.Branches["marketing"]
	if !ok {
		t.Fatalf("missing marketing branch: %v", body.Branches)
	}
	if marketing.Status != "active" {
		t.Fatalf("expected active, got %q", marketing.Status)
	}
	if marketing.Type != "marketing_automation" {
		t.Fatalf("unexpected type %q", marketing.Type)
	}
	if marketing.LastExecution != nil {
		t.Fatalf("fresh branch should have no execution stamp, got %v", *marketing.LastExecution)
	}
}

func TestUnknownPath_NotFoundShape(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := get(t, srv, "/api/workflows")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	var body struct {
		Error              string   `json:"error"`
		Path               string   `json:"path"`
		AvailableEndpoints []string `json:"available_endpoints"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Error == "" || body.Path != "/api/workflows" {
		t.Fatalf("unexpected 404 body: %+v", body)
	}
	want := []string{"/health", "/api/status", "/api/branches"}
	if len(body.AvailableEndpoints) != len(want) {
		t.Fatalf("expected %v, got %v", want, body.AvailableEndpoints)
	}
	for i, ep := range want {
		if body.AvailableEndpoints[i] != ep {
			t.Fatalf("expected %v, got %v", want, body.AvailableEndpoints)
		}
	}
}

func TestOptions_CORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("OPTIONS", "/api/status", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for OPTIONS, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS header, got %q", got)
	}
}

func TestEveryResponse_CarriesCORSAndRequestID(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := get(t, srv, "/health")
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS header, got %q", got)
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected a request ID header")
	}
}

func TestBranchesEndpoint_ReflectsExecution(t *testing.T) {
	srv, sys := newTestServer(t)

	if _, err := sys.QuarterlyReview(t.Context()); err != nil {
		t.Fatalf("review failed: %v", err)
	}

	rr := get(t, srv, "/api/branches")
	var body struct {
		Branches map[string]struct {
			LastExecution *string `json:"last_execution"`
		} `json:"branches"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for name, info := range body.Branches {
		if info.LastExecution == nil {
			t.Fatalf("branch %q missing execution stamp after a 6-way review", name)
		}
	}
}

func TestConfig_PortResolution(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("HTTP_PORT", "9292")

	cfg := server.Config{}
	cfg.ApplyDefaults()
	if cfg.Port != 9191 {
		t.Fatalf("PORT must win, got %d", cfg.Port)
	}
}

func TestConfig_PortEnvBeatsConfiguredValue(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("HTTP_PORT", "")

	cfg := server.Config{Port: 8080}
	cfg.ApplyDefaults()
	if cfg.Port != 9191 {
		t.Fatalf("PORT must override the configured port, got %d", cfg.Port)
	}
}

func TestConfig_PortFallsBackToHTTPPort(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HTTP_PORT", "9292")

	cfg := server.Config{}
	cfg.ApplyDefaults()
	if cfg.Port != 9292 {
		t.Fatalf("expected HTTP_PORT fallback, got %d", cfg.Port)
	}
}

func TestConfig_PortDefault(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HTTP_PORT", "")

	cfg := server.Config{}
	cfg.ApplyDefaults()
	if cfg.Port != 8080 {
		t.Fatalf("expected default 8080, got %d", cfg.Port)
	}

	cfg = server.Config{Port: 3000}
	cfg.ApplyDefaults()
	if cfg.Port != 3000 {
		t.Fatalf("configured port must stand without env overrides, got %d", cfg.Port)
	}
}

func TestConfig_InvalidPortValueSkipped(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("HTTP_PORT", "9292")

	cfg := server.Config{}
	cfg.ApplyDefaults()
	if cfg.Port != 9292 {
		t.Fatalf("unparsable PORT must fall through, got %d", cfg.Port)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := server.Config{Port: 70000}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}

	cfg = server.Config{Port: 8080, ReadTimeout: -1}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative read timeout")
	}

	cfg = server.Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}
