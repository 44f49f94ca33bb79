package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if !reflect.DeepEqual(cfg, Defaults()) {
		t.Fatalf("expected defaults %+v, got %+v", Defaults(), cfg)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.RosterFile != "team.csv" || cfg.VisitorLogFile != "userinfo.csv" {
		t.Fatalf("unexpected default files %s / %s", cfg.RosterFile, cfg.VisitorLogFile)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("expected metrics enabled on %s, got %+v", defaultMetricsPort, cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("ROSTER_FILE", "/data/roster.csv")
	t.Setenv("VISITOR_LOG_FILE", "/data/visitors.csv")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://birds.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.RosterFile != "/data/roster.csv" || cfg.VisitorLogFile != "/data/visitors.csv" {
		t.Fatalf("expected file overrides, got %s / %s", cfg.RosterFile, cfg.VisitorLogFile)
	}
	if want := []string{"http://localhost:3000", "https://birds.example.com"}; !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.CORSOrigins)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("expected log overrides, got %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("expected otlp endpoint override, got %s", cfg.Metrics.OtlpEndpoint)
	}
}

func TestParseRejectsMalformedBool(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "maybe")

	if _, err := Parse(); err == nil {
		t.Fatalf("expected parse error for malformed bool")
	}
}

func TestLoadMalformedValueFallsBackToDefaults(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port on malformed env, got %s", cfg.Port)
	}
}
