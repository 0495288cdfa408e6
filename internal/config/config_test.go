package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Policy.InitialBalance != 1000000 {
		t.Errorf("initial_balance = %v, want 1000000", cfg.Policy.InitialBalance)
	}
	if cfg.Policy.PayrollCap != 350000 {
		t.Errorf("payroll_cap = %v, want 350000", cfg.Policy.PayrollCap)
	}
	if cfg.Policy.FringeRate != 0.46 {
		t.Errorf("fringe_rate = %v, want 0.46", cfg.Policy.FringeRate)
	}
	if cfg.Baseline.StepDays != 7 {
		t.Errorf("step_days = %d, want 7", cfg.Baseline.StepDays)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Baseline.StartDate = "2026-01-01"
	cfg.Documents.ShareURL = "https://contoso.sharepoint.com/:x:/s/fin/EXabc"
	cfg.Approval.Endpoint = "https://approvals.example.com/submit"

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Baseline.StartDate != "2026-01-01" {
		t.Errorf("start_date = %q, want 2026-01-01", got.Baseline.StartDate)
	}
	if got.Documents.ShareURL != cfg.Documents.ShareURL {
		t.Errorf("share_url = %q, want %q", got.Documents.ShareURL, cfg.Documents.ShareURL)
	}
	if got.Approval.Endpoint != cfg.Approval.Endpoint {
		t.Errorf("endpoint = %q, want %q", got.Approval.Endpoint, cfg.Approval.Endpoint)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Policy.PayrollCap != 350000 {
		t.Errorf("payroll_cap = %v, want default 350000", got.Policy.PayrollCap)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "cashlens")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	partial := "[policy]\npayroll_cap = 500000.0\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Policy.PayrollCap != 500000 {
		t.Errorf("payroll_cap = %v, want overridden 500000", got.Policy.PayrollCap)
	}
	if got.Policy.FringeRate != 0.46 {
		t.Errorf("fringe_rate = %v, want default 0.46", got.Policy.FringeRate)
	}
}

func TestGetGraphTokenEnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Documents.Token = "from-config"

	t.Setenv("CASHLENS_GRAPH_TOKEN", "from-env")
	if got := GetGraphToken(cfg); got != "from-env" {
		t.Errorf("token = %q, want from-env", got)
	}

	t.Setenv("CASHLENS_GRAPH_TOKEN", "")
	if got := GetGraphToken(cfg); got != "from-config" {
		t.Errorf("token = %q, want from-config", got)
	}
}

func TestGetApprovalEndpointEnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Approval.Endpoint = "https://config.example.com"

	t.Setenv("CASHLENS_APPROVE_URL", "https://env.example.com")
	if got := GetApprovalEndpoint(cfg); got != "https://env.example.com" {
		t.Errorf("endpoint = %q, want env value", got)
	}
}

func TestEnginePolicy(t *testing.T) {
	cfg := DefaultConfig()

	pol, err := EnginePolicy(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pol.InitialBalance.String() != "1000000" {
		t.Errorf("initial balance = %s, want 1000000", pol.InitialBalance)
	}
	if pol.BiWeeklyPayDate.Format("2006-01-02") != "2025-01-24" {
		t.Errorf("bi-weekly pay date = %s, want 2025-01-24", pol.BiWeeklyPayDate.Format("2006-01-02"))
	}
	if pol.MonthlyPayDate.Format("2006-01-02") != "2025-01-31" {
		t.Errorf("monthly pay date = %s, want 2025-01-31", pol.MonthlyPayDate.Format("2006-01-02"))
	}
}

func TestEnginePolicyValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero initial balance", func(c *Config) { c.Policy.InitialBalance = 0 }},
		{"negative fringe rate", func(c *Config) { c.Policy.FringeRate = -0.1 }},
		{"fraction over one", func(c *Config) { c.Policy.CashLowFraction = 1.5 }},
		{"bad biweekly date", func(c *Config) { c.Policy.BiWeeklyPayDate = "Jan 24" }},
		{"bad monthly date", func(c *Config) { c.Policy.MonthlyPayDate = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if _, err := EnginePolicy(cfg); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestBaselineRange(t *testing.T) {
	cfg := DefaultConfig()

	start, end, err := BaselineRange(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.After(end) {
		t.Errorf("start %s after end %s", start, end)
	}

	cfg.Baseline.EndDate = "not-a-date"
	if _, _, err := BaselineRange(cfg); err == nil {
		t.Fatal("expected error for bad end_date")
	}
}
