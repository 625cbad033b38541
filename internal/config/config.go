package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Inputs   InputsConfig   `yaml:"inputs"`
	Download DownloadConfig `yaml:"download"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputsConfig names the source datasets. Each entry is a local file
// path or an http(s) URL.
type InputsConfig struct {
	Employees string `yaml:"employees"`
	Reference string `yaml:"reference"`
	Adult     string `yaml:"adult"`
}

// DownloadConfig contains settings for fetching remote datasets
type DownloadConfig struct {
	CacheDir   string        `yaml:"cache_dir"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// AnalysisConfig selects which hypotheses run and how the join behaves
type AnalysisConfig struct {
	Hypothesis     string `yaml:"hypothesis"`      // all, 1, 2 or 3
	StrictJoin     bool   `yaml:"strict_join"`     // duplicate reference keys fail instead of dedup
	WriteReference bool   `yaml:"write_reference"` // persist the derived reference table
}

// OutputConfig contains artifact settings
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Charts bool   `yaml:"charts"`
	Tables bool   `yaml:"tables"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Format     string `yaml:"format"`      // json, console
	OutputPath string `yaml:"output_path"` // stdout, stderr, or file path
}

// Load reads and parses the configuration file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Inputs.Employees == "" {
		return fmt.Errorf("employees dataset is required")
	}

	switch c.Analysis.Hypothesis {
	case "all", "1", "2", "3":
	default:
		return fmt.Errorf("invalid hypothesis selector: %q", c.Analysis.Hypothesis)
	}

	// Only the salary-shortfall hypothesis joins against expected incomes.
	needsReference := c.Analysis.Hypothesis == "all" || c.Analysis.Hypothesis == "1"
	if needsReference && c.Inputs.Reference == "" && c.Inputs.Adult == "" {
		return fmt.Errorf("either a reference table or the adult census dataset is required")
	}

	if c.Download.Timeout <= 0 {
		return fmt.Errorf("download timeout must be positive")
	}

	if c.Download.MaxRetries < 0 {
		return fmt.Errorf("download max retries cannot be negative")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output directory is required")
	}

	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Inputs: InputsConfig{
			Employees: "data/hr_employee_attrition.csv",
			Adult:     "data/adult.csv",
		},
		Download: DownloadConfig{
			CacheDir:   ".cache/datasets",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			RetryDelay: 1 * time.Second,
		},
		Analysis: AnalysisConfig{
			Hypothesis:     "all",
			StrictJoin:     false,
			WriteReference: false,
		},
		Output: OutputConfig{
			Dir:    "out",
			Charts: true,
			Tables: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
		},
	}
}
