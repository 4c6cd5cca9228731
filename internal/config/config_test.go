package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/llm"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))
	return tmpFile
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"llm_provider": "ollama",
		"ollama_model": "llama3",
		"llm_timeout": "15s",
		"session_ttl": "30m"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "ollama", cfg.LLMProvider)
	assert.Equal(t, "llama3", cfg.OllamaModel)
	assert.Equal(t, Duration(15*time.Second), cfg.LLMTimeout)
	assert.Equal(t, Duration(30*time.Minute), cfg.SessionTTL)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_BadDuration(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"llm_timeout": "soon"}`))
	assert.Error(t, err)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero value", Config{}, ""},
		{"defaults", Defaults(), ""},
		{"none provider", Config{LLMProvider: ProviderNone}, ""},
		{"bad port", Config{Port: 70000}, "port"},
		{"bad provider", Config{LLMProvider: "openai"}, "llm_provider"},
		{"negative timeout", Config{LLMTimeout: Duration(-time.Second)}, "llm_timeout"},
		{"negative ttl", Config{SessionTTL: Duration(-time.Second)}, "session_ttl"},
		{"bad log format", Config{LogFormat: "xml"}, "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.LLMProvider)
	assert.Equal(t, Duration(2*time.Hour), cfg.SessionTTL)
}

func TestLoad_ZeroSessionTTLDisablesExpiry(t *testing.T) {
	t.Setenv("SESSION_TTL", "0s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Duration(0), cfg.SessionTTL)
}

func TestLoad_ZeroSessionTTLFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"session_ttl": "0s"}`))
	require.NoError(t, err)

	assert.Equal(t, Duration(0), cfg.SessionTTL)
	assert.Equal(t, Duration(10*time.Minute), cfg.SessionCleanupInterval)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"port": 9090, "log_level": "debug", "llm_provider": "gemini"}`)
	t.Setenv("PORT", "7070")
	t.Setenv("SESSION_TTL", "45m")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Duration(45*time.Minute), cfg.SessionTTL)
	assert.Equal(t, Duration(10*time.Minute), cfg.SessionCleanupInterval)
	assert.Equal(t, "gemini", cfg.LLMProvider)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "none")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.ModelsEnabled())
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "forever")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLLMConfig(t *testing.T) {
	cfg := Config{LLMProvider: "ollama", OllamaURL: "http://gpu:11434", OllamaModel: "llama3", LLMTimeout: Duration(5 * time.Second)}

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderOllama, llmCfg.Provider)
	assert.Equal(t, "http://gpu:11434", llmCfg.BaseURL)
	assert.Equal(t, "llama3", llmCfg.GetModel(llm.TierLite))
	assert.Equal(t, 5*time.Second, llmCfg.GetTimeout())

	gemini := Config{LLMProvider: "gemini"}
	assert.Equal(t, llm.ProviderGemini, gemini.LLMConfig().Provider)
	defaults := Defaults()
	assert.Equal(t, llm.ProviderOllama, defaults.LLMConfig().Provider)
	assert.Equal(t, "json", (&Config{LogFormat: "json"}).LoggingOptions().Format)
}
