package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrypster/bemestar/internal/config"
	"github.com/scrypster/bemestar/internal/lexicon"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"BEMESTAR_LOG_LEVEL", "BEMESTAR_THINKING_DELAY", "BEMESTAR_VOICE_DELAY",
		"BEMESTAR_LOCALE", "BEMESTAR_POLICY_FILE", "BEMESTAR_LEXICON_FILE",
		"BEMESTAR_LIGHT_MAX", "BEMESTAR_MODERATE_MAX", "BEMESTAR_HEAVY_MAX",
	} {
		_ = os.Unsetenv(key)
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1500*time.Millisecond, cfg.Session.ThinkingDelay)
	assert.Equal(t, 3*time.Second, cfg.Session.VoiceDelay)
	assert.Equal(t, "pt-BR", cfg.Session.Locale)
	assert.Equal(t, "./data", cfg.Storage.DataPath)
	assert.Equal(t, config.WorkloadConfig{LightMax: 15, ModerateMax: 25, HeavyMax: 35}, cfg.Workload)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BEMESTAR_THINKING_DELAY", "10ms")
	t.Setenv("BEMESTAR_VOICE_DELAY", "250")
	t.Setenv("BEMESTAR_LOG_DEVELOPMENT", "true")
	t.Setenv("BEMESTAR_LIGHT_MAX", "10")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Session.ThinkingDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.VoiceDelay)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, 10, cfg.Workload.LightMax)
}

func TestLoadConfig_UnparseableFallsBack(t *testing.T) {
	t.Setenv("BEMESTAR_LIGHT_MAX", "many")
	t.Setenv("BEMESTAR_THINKING_DELAY", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Workload.LightMax)
	assert.Equal(t, 1500*time.Millisecond, cfg.Session.ThinkingDelay)
}

func TestLoadConfig_InvalidThresholds(t *testing.T) {
	t.Setenv("BEMESTAR_LIGHT_MAX", "30")

	_, err := config.LoadConfig()
	if !errors.Is(err, config.ErrInvalidThresholds) {
		t.Fatalf("expected ErrInvalidThresholds, got %v", err)
	}
}

func TestLoadConfig_PolicyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workload:\n  light_max: 12\n  heavy_max: 30\nlexicon_file: lex.yaml\n"), 0o600))

	t.Setenv("BEMESTAR_POLICY_FILE", path)
	t.Setenv("BEMESTAR_LIGHT_MAX", "14")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	// Policy wins over env; unset keys keep their env/default value.
	assert.Equal(t, config.WorkloadConfig{LightMax: 12, ModerateMax: 25, HeavyMax: 30}, cfg.Workload)
	assert.Equal(t, "lex.yaml", cfg.Policy.LexiconFile)
}

func TestLoadPolicyFile_Errors(t *testing.T) {
	_, err := config.LoadPolicyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workload: [1, 2"), 0o600))
	_, err = config.LoadPolicyFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Log:      config.LogConfig{Level: "debug"},
			Session:  config.SessionConfig{Locale: "pt-BR"},
			Workload: config.WorkloadConfig{LightMax: 15, ModerateMax: 25, HeavyMax: 35},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative thinking delay", func(c *config.Config) { c.Session.ThinkingDelay = -time.Second }},
		{"negative voice delay", func(c *config.Config) { c.Session.VoiceDelay = -time.Second }},
		{"empty locale", func(c *config.Config) { c.Session.Locale = "" }},
		{"unknown log level", func(c *config.Config) { c.Log.Level = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLexiconSet(t *testing.T) {
	cfg := &config.Config{}
	set, err := cfg.LexiconSet()
	require.NoError(t, err)
	assert.Equal(t, lexicon.DefaultVersion, set.Version)

	cfg.Policy.LexiconFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.LexiconSet()
	assert.Error(t, err)
}
