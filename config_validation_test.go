package snapcast

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/snapcast/testhelper"
)

func TestConfigStrictMode(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "snapcast.yaml")

	// Config with an unknown field
	configContent := `
generation:
  runtime_package: castruntime
  unknown_field: value
`

	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	assert.NoError(t, err)

	_, err = LoadConfig(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		expectError string
	}{
		{
			name:   "valid defaults" + testhelper.Caller(t),
			modify: func(*Config) {},
		},
		{
			name:        "invalid runtime package" + testhelper.Caller(t),
			modify:      func(c *Config) { c.Generation.RuntimePackage = "cast-runtime" },
			expectError: "runtime_package",
		},
		{
			name:        "invalid name prefix" + testhelper.Caller(t),
			modify:      func(c *Config) { c.Generation.NamePrefix = "1x" },
			expectError: "name_prefix",
		},
		{
			name:        "invalid input term" + testhelper.Caller(t),
			modify:      func(c *Config) { c.Generation.InputTerm = "a.b" },
			expectError: "a.b",
		},
		{
			name:        "unknown time zone" + testhelper.Caller(t),
			modify:      func(c *Config) { c.Session.TimeZone = "Nowhere/Town" },
			expectError: "session.time_zone",
		},
		{
			name: "restriction without rule" + testhelper.Caller(t),
			modify: func(c *Config) {
				c.Rules.Restrictions = []RuleRestriction{{When: "true"}}
			},
			expectError: "rule is required",
		},
		{
			name: "restriction with unknown rule" + testhelper.Caller(t),
			modify: func(c *Config) {
				c.Rules.Restrictions = []RuleRestriction{{Rule: "int_to_string", When: "true"}}
			},
			expectError: "unknown rule 'int_to_string'",
		},
		{
			name: "restriction without condition" + testhelper.Caller(t),
			modify: func(c *Config) {
				c.Rules.Restrictions = []RuleRestriction{{Rule: "identity"}}
			},
			expectError: "when is required",
		},
		{
			name: "restriction with broken condition" + testhelper.Caller(t),
			modify: func(c *Config) {
				c.Rules.Restrictions = []RuleRestriction{{Rule: "identity", When: "input.length >"}}
			},
			expectError: "rules.restrictions[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := getDefaultConfig()
			tt.modify(config)

			err := validateConfig(config)
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}

			assert.IsError(t, err, ErrConfigValidation)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestLoadConfigValidationFailure(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "snapcast.yaml")

	configContent := `
rules:
  restrictions:
    - rule: identity
      when: "1 + 2"
`

	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	assert.NoError(t, err)

	_, err = LoadConfig(configPath)
	assert.IsError(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "configuration validation failed")
}
