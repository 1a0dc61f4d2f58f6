// Package config provides configuration management for bemestar.
// It loads settings from environment variables with the BEMESTAR_ prefix
// and provides sensible defaults for all configuration options.
//
// An optional YAML policy file (BEMESTAR_POLICY_FILE) can override the
// workload thresholds and point at a lexicon override file. Values from the
// policy file take precedence over environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/internal/lexicon"
)

// ErrInvalidThresholds is returned by Validate when the workload thresholds
// are not positive and strictly increasing.
var ErrInvalidThresholds = engine.ErrInvalidThresholds

// ErrInvalidConfig is returned by Validate for any other bad value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration settings for the bemestar application.
type Config struct {
	Log      LogConfig
	Session  SessionConfig
	Storage  StorageConfig
	Policy   PolicyConfig
	Workload WorkloadConfig
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level       string // zap level name (default: info)
	Development bool   // human-readable console output (default: false)
}

// SessionConfig contains the timings used by the orchestration layer.
type SessionConfig struct {
	ThinkingDelay time.Duration // delay before AI/NPC replies (default: 1500ms)
	VoiceDelay    time.Duration // canned voice capture delay (default: 3000ms)
	Locale        string        // speech locale (default: pt-BR)
}

// StorageConfig contains filesystem locations.
type StorageConfig struct {
	DataPath string // root of the events directory (default: ./data)
}

// PolicyConfig points at optional YAML files.
type PolicyConfig struct {
	PolicyFile  string // workload policy overrides (default: none)
	LexiconFile string // lexicon overrides (default: none)
}

// WorkloadConfig holds the inclusive upper bounds of each workload tier.
type WorkloadConfig struct {
	LightMax    int `yaml:"light_max"`    // default: 15
	ModerateMax int `yaml:"moderate_max"` // default: 25
	HeavyMax    int `yaml:"heavy_max"`    // default: 35
}

// Thresholds converts the workload settings for the aggregator.
func (w WorkloadConfig) Thresholds() engine.Thresholds {
	return engine.Thresholds{LightMax: w.LightMax, ModerateMax: w.ModerateMax, HeavyMax: w.HeavyMax}
}

// Policy is the shape of the YAML policy file. Zero values leave the
// corresponding setting untouched.
type Policy struct {
	Workload    WorkloadConfig `yaml:"workload"`
	LexiconFile string         `yaml:"lexicon_file"`
}

// LoadConfig loads configuration from environment variables with sensible
// defaults, applies the policy file if one is configured, and validates the
// result.
func LoadConfig() (*Config, error) {
	cfg := buildBaseConfig()

	if cfg.Policy.PolicyFile != "" {
		policy, err := LoadPolicyFile(cfg.Policy.PolicyFile)
		if err != nil {
			return nil, err
		}
		cfg.ApplyPolicy(policy)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadPolicyFile reads a YAML policy file.
func LoadPolicyFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("config: read policy %s: %w", path, err)
	}
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("config: parse policy %s: %w", path, err)
	}
	return p, nil
}

// ApplyPolicy overrides settings with the non-zero values of p.
func (c *Config) ApplyPolicy(p Policy) {
	if p.Workload.LightMax != 0 {
		c.Workload.LightMax = p.Workload.LightMax
	}
	if p.Workload.ModerateMax != 0 {
		c.Workload.ModerateMax = p.Workload.ModerateMax
	}
	if p.Workload.HeavyMax != 0 {
		c.Workload.HeavyMax = p.Workload.HeavyMax
	}
	if p.LexiconFile != "" {
		c.Policy.LexiconFile = p.LexiconFile
	}
}

// Validate checks the configuration for values the session cannot run with.
func (c *Config) Validate() error {
	if err := c.Workload.Thresholds().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Session.ThinkingDelay < 0 {
		return fmt.Errorf("config: %w: thinking delay %s is negative", ErrInvalidConfig, c.Session.ThinkingDelay)
	}
	if c.Session.VoiceDelay < 0 {
		return fmt.Errorf("config: %w: voice delay %s is negative", ErrInvalidConfig, c.Session.VoiceDelay)
	}
	if c.Session.Locale == "" {
		return fmt.Errorf("config: %w: locale is required", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LexiconSet returns the default lexicons, or the defaults overridden by the
// configured lexicon file.
func (c *Config) LexiconSet() (*lexicon.Set, error) {
	if c.Policy.LexiconFile == "" {
		return lexicon.Default(), nil
	}
	return lexicon.LoadFile(c.Policy.LexiconFile)
}

// buildBaseConfig constructs a Config from environment variables and defaults.
func buildBaseConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:       getEnv("BEMESTAR_LOG_LEVEL", "info"),
			Development: getEnvBool("BEMESTAR_LOG_DEVELOPMENT", false),
		},
		Session: SessionConfig{
			ThinkingDelay: getEnvDuration("BEMESTAR_THINKING_DELAY", 1500*time.Millisecond),
			VoiceDelay:    getEnvDuration("BEMESTAR_VOICE_DELAY", 3000*time.Millisecond),
			Locale:        getEnv("BEMESTAR_LOCALE", "pt-BR"),
		},
		Storage: StorageConfig{
			DataPath: getEnv("BEMESTAR_DATA_PATH", "./data"),
		},
		Policy: PolicyConfig{
			PolicyFile:  getEnv("BEMESTAR_POLICY_FILE", ""),
			LexiconFile: getEnv("BEMESTAR_LEXICON_FILE", ""),
		},
		Workload: WorkloadConfig{
			LightMax:    getEnvInt("BEMESTAR_LIGHT_MAX", 15),
			ModerateMax: getEnvInt("BEMESTAR_MODERATE_MAX", 25),
			HeavyMax:    getEnvInt("BEMESTAR_HEAVY_MAX", 35),
		},
	}
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value.
// If the environment variable exists but cannot be parsed as an integer,
// it returns the default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		switch value {
		case "yes", "Yes", "YES":
			return true
		case "no", "No", "NO":
			return false
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration such as "1500ms" or "2s". A bare
// integer is read as milliseconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
