package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"cashlens/internal/engine"
	"cashlens/internal/model"
)

// Config holds all cashlens configuration.
type Config struct {
	Policy     PolicyConfig     `toml:"policy"`
	Baseline   BaselineConfig   `toml:"baseline"`
	Documents  DocumentsConfig  `toml:"documents"`
	Approval   ApprovalConfig   `toml:"approval"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// PolicyConfig holds the fiscal policy knobs.
type PolicyConfig struct {
	InitialBalance  float64 `toml:"initial_balance"`
	PayrollCap      float64 `toml:"payroll_cap"`
	FringeRate      float64 `toml:"fringe_rate"`
	CashLowFraction float64 `toml:"cash_low_fraction"`
	BiWeeklyPayDate string  `toml:"biweekly_pay_date"`
	MonthlyPayDate  string  `toml:"monthly_pay_date"`
}

// BaselineConfig holds timeline generation settings.
type BaselineConfig struct {
	StartDate string  `toml:"start_date"`
	EndDate   string  `toml:"end_date"`
	StepDays  int     `toml:"step_days"`
	DriftMax  float64 `toml:"drift_max"`
	LedgerCSV string  `toml:"ledger_csv,omitempty"`
}

// DocumentsConfig holds Microsoft Graph settings for spreadsheet lookup.
type DocumentsConfig struct {
	ShareURL string `toml:"share_url,omitempty"`
	Token    string `toml:"token,omitempty"`
}

// ApprovalConfig holds the approval submission endpoint.
type ApprovalConfig struct {
	Endpoint string `toml:"endpoint,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	pol := engine.DefaultPolicy()
	return Config{
		Policy: PolicyConfig{
			InitialBalance:  pol.InitialBalance.InexactFloat64(),
			PayrollCap:      pol.PayrollCap.InexactFloat64(),
			FringeRate:      pol.FringeRate.InexactFloat64(),
			CashLowFraction: pol.CashLowFraction.InexactFloat64(),
			BiWeeklyPayDate: pol.BiWeeklyPayDate.Format(model.DateLayout),
			MonthlyPayDate:  pol.MonthlyPayDate.Format(model.DateLayout),
		},
		Baseline: BaselineConfig{
			StartDate: "2025-05-01",
			EndDate:   "2025-07-31",
			StepDays:  7,
			DriftMax:  20000,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cashlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cashlens")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetGraphToken returns the Graph API token from env var or config, in that order.
func GetGraphToken(cfg Config) string {
	if tok := os.Getenv("CASHLENS_GRAPH_TOKEN"); tok != "" {
		return tok
	}
	return cfg.Documents.Token
}

// GetApprovalEndpoint returns the approval endpoint from env var or config,
// in that order.
func GetApprovalEndpoint(cfg Config) string {
	if url := os.Getenv("CASHLENS_APPROVE_URL"); url != "" {
		return url
	}
	return cfg.Approval.Endpoint
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// EnginePolicy converts the policy section into an engine.Policy,
// validating dates and rates.
func EnginePolicy(cfg Config) (engine.Policy, error) {
	p := cfg.Policy

	if p.InitialBalance <= 0 {
		return engine.Policy{}, fmt.Errorf("policy: initial_balance must be positive, got %v", p.InitialBalance)
	}
	if p.FringeRate < 0 {
		return engine.Policy{}, fmt.Errorf("policy: fringe_rate must not be negative, got %v", p.FringeRate)
	}
	if p.CashLowFraction < 0 || p.CashLowFraction > 1 {
		return engine.Policy{}, fmt.Errorf("policy: cash_low_fraction must be in [0, 1], got %v", p.CashLowFraction)
	}

	biweekly, err := model.ParseDate(p.BiWeeklyPayDate)
	if err != nil {
		return engine.Policy{}, fmt.Errorf("policy: biweekly_pay_date: %w", err)
	}
	monthly, err := model.ParseDate(p.MonthlyPayDate)
	if err != nil {
		return engine.Policy{}, fmt.Errorf("policy: monthly_pay_date: %w", err)
	}

	return engine.Policy{
		InitialBalance:  decimal.NewFromFloat(p.InitialBalance),
		PayrollCap:      decimal.NewFromFloat(p.PayrollCap),
		FringeRate:      decimal.NewFromFloat(p.FringeRate),
		CashLowFraction: decimal.NewFromFloat(p.CashLowFraction),
		BiWeeklyPayDate: biweekly,
		MonthlyPayDate:  monthly,
	}, nil
}

// BaselineRange parses the baseline date range from the config.
func BaselineRange(cfg Config) (start, end time.Time, err error) {
	start, err = model.ParseDate(cfg.Baseline.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("baseline: start_date: %w", err)
	}
	end, err = model.ParseDate(cfg.Baseline.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("baseline: end_date: %w", err)
	}
	return start, end, nil
}
