package snapcast

import (
	"fmt"
	"go/token"
	"os"
	"regexp"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/snapcast/casting"
)

// Config represents the SnapCast configuration
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Session    SessionConfig    `yaml:"session"`
	Rules      RulesConfig      `yaml:"rules"`
}

// GenerationConfig controls how emitted code refers to runtime support and names its terms
type GenerationConfig struct {
	RuntimePackage      string `yaml:"runtime_package"`        // Package name generated code uses for castruntime
	SessionTimeZoneTerm string `yaml:"session_time_zone_term"` // Expression yielding the session *time.Location (derived from runtime_package if empty)
	NamePrefix          string `yaml:"name_prefix"`            // Prefix for fresh identifiers
	InputTerm           string `yaml:"input_term"`             // Default name of the input value variable
	NullTerm            string `yaml:"null_term"`              // Default name of the input null flag variable
}

// SessionConfig represents session settings used when previewing casts
type SessionConfig struct {
	TimeZone string `yaml:"time_zone"`
}

// RulesConfig represents adjustments to the built-in cast rules
type RulesConfig struct {
	Restrictions []RuleRestriction `yaml:"restrictions"`
}

// RuleRestriction prevents a rule from matching while the CEL condition When holds
type RuleRestriction struct {
	Rule string `yaml:"rule"`
	When string `yaml:"when"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	if !fileExists(configPath) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&config)
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if name := config.Generation.RuntimePackage; name != "" && !token.IsIdentifier(name) {
		return fmt.Errorf("%w: generation.runtime_package '%s' is not a valid Go identifier", ErrConfigValidation, name)
	}

	if prefix := config.Generation.NamePrefix; prefix != "" && !token.IsIdentifier(prefix) {
		return fmt.Errorf("%w: generation.name_prefix '%s' is not a valid Go identifier", ErrConfigValidation, prefix)
	}

	for _, term := range []string{config.Generation.InputTerm, config.Generation.NullTerm} {
		if term != "" && !token.IsIdentifier(term) {
			return fmt.Errorf("%w: generation term '%s' is not a valid Go identifier", ErrConfigValidation, term)
		}
	}

	if _, err := config.SessionLocation(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	knownRules := make(map[string]bool)
	for _, rule := range casting.BuiltinRules() {
		knownRules[rule.Name()] = true
	}

	for i, restriction := range config.Rules.Restrictions {
		if restriction.Rule == "" {
			return fmt.Errorf("%w: rules.restrictions[%d]: rule is required", ErrConfigValidation, i)
		}

		if !knownRules[restriction.Rule] {
			return fmt.Errorf("%w: rules.restrictions[%d]: unknown rule '%s'", ErrConfigValidation, i, restriction.Rule)
		}

		if restriction.When == "" {
			return fmt.Errorf("%w: rules.restrictions[%d]: when is required", ErrConfigValidation, i)
		}

		if _, err := casting.CompileCondition(restriction.When); err != nil {
			return fmt.Errorf("%w: rules.restrictions[%d]: %w", ErrConfigValidation, i, err)
		}
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			RuntimePackage: casting.DefaultRuntimePackage,
			InputTerm:      "in",
			NullTerm:       "inIsNull",
		},
		Session: SessionConfig{
			TimeZone: "UTC",
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Generation.RuntimePackage == "" {
		config.Generation.RuntimePackage = defaults.Generation.RuntimePackage
	}

	if config.Generation.InputTerm == "" {
		config.Generation.InputTerm = defaults.Generation.InputTerm
	}

	if config.Generation.NullTerm == "" {
		config.Generation.NullTerm = defaults.Generation.NullTerm
	}

	if config.Session.TimeZone == "" {
		config.Session.TimeZone = defaults.Session.TimeZone
	}
}

// SessionLocation resolves the configured session time zone
func (c *Config) SessionLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Session.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: session.time_zone '%s': %w", ErrInvalidSessionTimeZone, c.Session.TimeZone, err)
	}

	return loc, nil
}

// NewContext returns a fresh generation context configured from the generation section
func (c *Config) NewContext() *casting.GeneratorContext {
	opts := []casting.ContextOption{
		casting.WithRuntimePackage(c.Generation.RuntimePackage),
		casting.WithNamePrefix(c.Generation.NamePrefix),
	}

	if c.Generation.SessionTimeZoneTerm != "" {
		opts = append(opts, casting.WithSessionTimeZoneTerm(c.Generation.SessionTimeZoneTerm))
	}

	return casting.NewGeneratorContext(opts...)
}

// BuildRegistry returns the built-in rules with the configured restrictions applied
func (c *Config) BuildRegistry() (*casting.Registry, error) {
	restrictions := make([]casting.Restriction, 0, len(c.Rules.Restrictions))

	for _, r := range c.Rules.Restrictions {
		when, err := casting.CompileCondition(r.When)
		if err != nil {
			return nil, fmt.Errorf("rule '%s': %w", r.Rule, err)
		}

		restrictions = append(restrictions, casting.Restriction{Rule: r.Rule, When: when})
	}

	return casting.NewRegistry(casting.BuiltinRules(), restrictions...)
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in string settings.
// CEL conditions are left untouched.
func expandConfigEnvVars(config *Config) {
	config.Generation.RuntimePackage = expandEnvVars(config.Generation.RuntimePackage)
	config.Generation.SessionTimeZoneTerm = expandEnvVars(config.Generation.SessionTimeZoneTerm)
	config.Generation.NamePrefix = expandEnvVars(config.Generation.NamePrefix)
	config.Session.TimeZone = expandEnvVars(config.Session.TimeZone)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
