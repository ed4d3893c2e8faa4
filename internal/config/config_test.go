package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ReservePercent != nil {
		t.Errorf("expected nil reserve when unset, got %g", *cfg.ReservePercent)
	}
	if cfg.Verbose {
		t.Error("verbose should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RENOCALC_RESERVE_PERCENT", "15.5")
	t.Setenv("RENOCALC_CURRENCY", "EUR")
	t.Setenv("RENOCALC_EXPORT_DIR", "/tmp/reports")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ReservePercent == nil || *cfg.ReservePercent != 15.5 {
		t.Errorf("expected reserve 15.5, got %v", cfg.ReservePercent)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("expected currency EUR, got %q", cfg.Currency)
	}
	if cfg.ExportDir != "/tmp/reports" {
		t.Errorf("expected export dir /tmp/reports, got %q", cfg.ExportDir)
	}
}

func TestLoadRejectsOutOfRangeReserve(t *testing.T) {
	t.Setenv("RENOCALC_RESERVE_PERCENT", "150")
	if _, err := Load(); err == nil {
		t.Error("expected error for reserve above 100")
	}

	t.Setenv("RENOCALC_RESERVE_PERCENT", "-5")
	if _, err := Load(); err == nil {
		t.Error("expected error for negative reserve")
	}
}
