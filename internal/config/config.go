package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// ScheduleRule defines one recurrence from which schedule slots are
// generated.
type ScheduleRule struct {
	RRule           string `yaml:"rrule" validate:"required"`
	Label           string `yaml:"label" validate:"required"`
	Location        string `yaml:"location,omitempty"`
	DurationMinutes int    `yaml:"durationMinutes,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL     string         `yaml:"databaseURL" validate:"required,url"`
	CredentialsFile string         `yaml:"credentialsFile" validate:"required"`
	EventID         string         `yaml:"eventID" validate:"required"`
	OperatorUID     string         `yaml:"operatorUID" validate:"required"`
	OperatorName    string         `yaml:"operatorName,omitempty"`
	PostgresURL     string         `yaml:"postgresURL,omitempty"`
	ScheduleRules   []ScheduleRule `yaml:"scheduleRules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from gl_console_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix.
// For example, env="test" will look for "gl_console_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.ScheduleRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in scheduleRules[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in the current directory and
// the home directory, with an optional environment suffix.
func findConfigFile(env string) (string, error) {
	configFileName := "gl_console_config.yaml"
	if env != "" {
		configFileName = "gl_console_config." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
