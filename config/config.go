package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rustyeddy/propfirm/risk"
	"gopkg.in/yaml.v3"
)

// Env overrides, loaded from the process environment or a .env file.
const (
	EnvConfig    = "PROPFIRM_CONFIG"
	EnvStateFile = "PROPFIRM_STATE_FILE"
	EnvDBPath    = "PROPFIRM_DB_PATH"
)

// Config is the complete evaluation-tracker configuration.
type Config struct {
	Rules   RulesConfig         `json:"rules" yaml:"rules"`
	Stages  map[int]StageConfig `json:"stages" yaml:"stages"`
	Journal JournalConfig       `json:"journal" yaml:"journal"`
	Storage StorageConfig       `json:"storage" yaml:"storage"`
}

// RulesConfig contains the account risk parameters.
type RulesConfig struct {
	InitialBalance float64 `json:"initial_balance" yaml:"initial_balance"`
	FixedRisk      float64 `json:"fixed_risk" yaml:"fixed_risk"`
	RewardPerWin   float64 `json:"reward_per_win" yaml:"reward_per_win"`
	LossPerLoss    float64 `json:"loss_per_loss" yaml:"loss_per_loss"`
	MinRR          float64 `json:"min_rr" yaml:"min_rr"`
	MaxDailyLoss   float64 `json:"max_daily_loss" yaml:"max_daily_loss"`
	MaxTotalLoss   float64 `json:"max_total_loss" yaml:"max_total_loss"`
	Leverage       string  `json:"leverage" yaml:"leverage"` // display only
}

// StageConfig contains one stage's pass conditions.
type StageConfig struct {
	TargetProfit   float64 `json:"target_profit" yaml:"target_profit"`
	MinTradingDays int     `json:"min_trading_days" yaml:"min_trading_days"`
}

// JournalConfig contains audit-trail parameters.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// StorageConfig locates the persisted account state.
type StorageConfig struct {
	StateFile string `json:"state_file" yaml:"state_file"`
}

// Load resolves the effective configuration: defaults, then an optional
// config file (path argument, or PROPFIRM_CONFIG when empty), then env
// overrides for the storage paths. A missing .env file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	cfg := Default()
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v := os.Getenv(EnvStateFile); v != "" {
		cfg.Storage.StateFile = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Journal.Type = "sqlite"
		cfg.Journal.DBPath = v
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Start from defaults so a partial file only overrides what it names.
	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Rules.InitialBalance <= 0 {
		return fmt.Errorf("rules.initial_balance must be positive")
	}
	if c.Rules.FixedRisk <= 0 {
		return fmt.Errorf("rules.fixed_risk must be positive")
	}
	if c.Rules.RewardPerWin <= 0 {
		return fmt.Errorf("rules.reward_per_win must be positive")
	}
	if c.Rules.LossPerLoss <= 0 {
		return fmt.Errorf("rules.loss_per_loss must be positive")
	}
	if c.Rules.MinRR <= 0 {
		return fmt.Errorf("rules.min_rr must be positive")
	}
	if c.Rules.MaxDailyLoss <= 0 {
		return fmt.Errorf("rules.max_daily_loss must be positive")
	}
	if c.Rules.MaxTotalLoss <= 0 {
		return fmt.Errorf("rules.max_total_loss must be positive")
	}
	if len(c.Stages) == 0 {
		return fmt.Errorf("at least one stage is required")
	}
	if _, ok := c.Stages[1]; !ok {
		return fmt.Errorf("stage 1 is required")
	}
	for id, s := range c.Stages {
		if s.TargetProfit <= 0 {
			return fmt.Errorf("stage %d: target_profit must be positive", id)
		}
		if s.MinTradingDays <= 0 {
			return fmt.Errorf("stage %d: min_trading_days must be positive", id)
		}
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal trades_file and equity_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Storage.StateFile == "" {
		return fmt.Errorf("storage.state_file is required")
	}
	return nil
}

// Policy converts the rule parameters into the engine's policy value.
func (c *Config) Policy() risk.Policy {
	stages := make(map[int]risk.StageRule, len(c.Stages))
	for id, s := range c.Stages {
		stages[id] = risk.StageRule{
			TargetProfit:   s.TargetProfit,
			MinTradingDays: s.MinTradingDays,
		}
	}
	return risk.Policy{
		InitialBalance: c.Rules.InitialBalance,
		FixedRisk:      c.Rules.FixedRisk,
		RewardPerWin:   c.Rules.RewardPerWin,
		LossPerLoss:    c.Rules.LossPerLoss,
		MinRR:          c.Rules.MinRR,
		MaxDailyLoss:   c.Rules.MaxDailyLoss,
		MaxTotalLoss:   c.Rules.MaxTotalLoss,
		Stages:         stages,
	}
}

// Default returns a configuration with the standard evaluation rules.
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			InitialBalance: 5000,
			FixedRisk:      25,
			RewardPerWin:   50,
			LossPerLoss:    25,
			MinRR:          2,
			MaxDailyLoss:   250,
			MaxTotalLoss:   500,
			Leverage:       "1:100",
		},
		Stages: map[int]StageConfig{
			1: {TargetProfit: 400, MinTradingDays: 5},
			2: {TargetProfit: 250, MinTradingDays: 5},
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Storage: StorageConfig{
			// Versioned like a storage key: a layout change bumps the name.
			StateFile: "./propfirm-state-v1.json",
		},
	}
}
