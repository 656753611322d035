package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete pipeline configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Seasons SeasonsConfig `yaml:"seasons" envconfig:"SEASONS"`
	Pricing PricingConfig `yaml:"pricing" envconfig:"PRICING"`
	Inputs  InputsConfig  `yaml:"inputs" envconfig:"INPUTS"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"omitempty,oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// SeasonsConfig bounds the season windows used by the dataset build.
// Seasons are identified by their ending calendar year (season_end).
type SeasonsConfig struct {
	PerformanceStart int `yaml:"performance_start" envconfig:"PERFORMANCE_START" validate:"min=1947"`
	PerformanceEnd   int `yaml:"performance_end" envconfig:"PERFORMANCE_END" validate:"gtefield=PerformanceStart"`
	SalaryStart      int `yaml:"salary_start" envconfig:"SALARY_START" validate:"min=1947"`
	SalaryEnd        int `yaml:"salary_end" envconfig:"SALARY_END" validate:"gtefield=SalaryStart"`
	DraftStart       int `yaml:"draft_start" envconfig:"DRAFT_START" validate:"min=1947"`
	DraftEnd         int `yaml:"draft_end" envconfig:"DRAFT_END" validate:"gtefield=DraftStart"`
	RookieYears      int `yaml:"rookie_years" envconfig:"ROOKIE_YEARS" validate:"min=1,max=10"`
}

// PricingConfig contains the arbitrage classification parameters.
type PricingConfig struct {
	// FrictionPremium widens the free-agency band before a bucket is
	// classified as mispriced. 0.07 means a bucket must price 7% below the
	// FA 25th percentile to be a BUY.
	FrictionPremium float64 `yaml:"friction_premium" envconfig:"FRICTION_PREMIUM" validate:"gte=0,lt=1"`
	// ApronMarkup scales the baseline band for the apron-pressure scenario.
	ApronMarkup float64 `yaml:"apron_markup" envconfig:"APRON_MARKUP" validate:"gt=1"`
}

// InputsConfig names the raw source files inside the data directory.
type InputsConfig struct {
	PerformanceCSV string `yaml:"performance_csv" envconfig:"PERFORMANCE_CSV" validate:"required"`
	SalaryCSV      string `yaml:"salary_csv" envconfig:"SALARY_CSV" validate:"required"`
	DraftCSV       string `yaml:"draft_csv" envconfig:"DRAFT_CSV" validate:"required"`
}

// Default returns the built-in configuration: the season windows and
// pricing constants the published analysis uses.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/pickarb.log",
		},
		Seasons: SeasonsConfig{
			PerformanceStart: 2017,
			PerformanceEnd:   2024,
			SalaryStart:      2016,
			SalaryEnd:        2024,
			DraftStart:       2016,
			DraftEnd:         2020,
			RookieYears:      4,
		},
		Pricing: PricingConfig{
			FrictionPremium: 0.07,
			ApronMarkup:     1.10,
		},
		Inputs: InputsConfig{
			PerformanceCSV: "modern_RAPTOR_by_player.csv",
			SalaryCSV:      "player_salary.csv",
			DraftCSV:       "draft_picks.csv",
		},
	}
}

// Load loads configuration in precedence order: defaults, then the optional
// YAML file next to the executable, then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		if err := overlayFromFile(&cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("PICKARB", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// overlayFromFile unmarshals the YAML file on top of cfg. Fields absent from
// the file keep their current values.
func overlayFromFile(cfg *Config, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// getConfigFilePath returns the expected config file location next to the
// executable, falling back to the working directory.
func getConfigFilePath() string {
	if paths, err := GetPaths(); err == nil {
		return paths.ConfigFile
	}
	return "pickarb.yaml"
}
