package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "SKYDESK_MODEL", "SKYDESK_MAX_ITERATIONS", "SKYDESK_LOG_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
	assert.Equal(t, DefaultLogDir, cfg.LogDir)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SKYDESK_MODEL", "gpt-4o")
	t.Setenv("SKYDESK_MAX_ITERATIONS", "25")
	t.Setenv("SKYDESK_LOG_DIR", "/tmp/traces")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 25, cfg.MaxIterations)
	assert.Equal(t, "/tmp/traces", cfg.LogDir)
}

func TestLoad_RejectsBadMaxIterations(t *testing.T) {
	for _, raw := range []string{"zero", "0", "-3", "2.5"} {
		t.Run(raw, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("OPENAI_API_KEY", "sk-test")
			t.Setenv("SKYDESK_MAX_ITERATIONS", raw)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "SKYDESK_MAX_ITERATIONS")
		})
	}
}
