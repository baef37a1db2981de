package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		DatabaseURL:     "https://gl-console-test.firebaseio.com",
		CredentialsFile: "service-account.json",
		EventID:         "ev-2026-spring",
		OperatorUID:     "admin-1",
		OperatorName:    "運営 太郎",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.PostgresURL = "postgres://localhost:5432/glconsole"
	cfg.ScheduleRules = []ScheduleRule{
		{
			RRule:           "FREQ=WEEKLY;BYDAY=SA",
			Label:           "オープンキャンパス",
			Location:        "本館",
			DurationMinutes: 180,
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	err := Validate(validConfig())
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := validConfig()
	cfg.EventID = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = "not a url"

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := validConfig()
	cfg.ScheduleRules = []ScheduleRule{
		{RRule: "INVALID_RRULE_SYNTAX", Label: "午前の部"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_RuleMissingLabel(t *testing.T) {
	cfg := validConfig()
	cfg.ScheduleRules = []ScheduleRule{
		{RRule: "FREQ=WEEKLY;BYDAY=SA"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestLoadFromPath_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gl_console_config.yaml")
	content := `databaseURL: https://gl-console-test.firebaseio.com
credentialsFile: service-account.json
eventID: ev-2026-spring
operatorUID: admin-1
scheduleRules:
  - rrule: FREQ=WEEKLY;BYDAY=SA
    label: オープンキャンパス
    durationMinutes: 120
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "ev-2026-spring", cfg.EventID)
	require.Len(t, cfg.ScheduleRules, 1)
	assert.Equal(t, 120, cfg.ScheduleRules[0].DurationMinutes)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gl_console_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("databaseURL: [unclosed"), 0644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
