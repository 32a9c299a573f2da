package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.StartingBalance != 1000 {
		t.Fatalf("StartingBalance = %v, want 1000", cfg.StartingBalance)
	}
	if cfg.WinProbability != 0.3 {
		t.Fatalf("WinProbability = %v, want 0.3", cfg.WinProbability)
	}
	if cfg.DefaultMultiplier != 2.0 {
		t.Fatalf("DefaultMultiplier = %v, want 2.0", cfg.DefaultMultiplier)
	}
	if cfg.DefaultGameType != "slots" {
		t.Fatalf("DefaultGameType = %q, want slots", cfg.DefaultGameType)
	}
	if cfg.MetricsNamespace != "cryptospins" {
		t.Fatalf("MetricsNamespace = %q, want cryptospins", cfg.MetricsNamespace)
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STARTING_BALANCE", "500")
	t.Setenv("WIN_PROBABILITY", "0.45")
	t.Setenv("DEFAULT_MULTIPLIER", "3.5")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.StartingBalance != 500 {
		t.Fatalf("StartingBalance = %v, want 500", cfg.StartingBalance)
	}
	if cfg.WinProbability != 0.45 {
		t.Fatalf("WinProbability = %v, want 0.45", cfg.WinProbability)
	}
	if cfg.DefaultMultiplier != 3.5 {
		t.Fatalf("DefaultMultiplier = %v, want 3.5", cfg.DefaultMultiplier)
	}
}
