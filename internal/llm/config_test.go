package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	assert.Equal(t, DefaultTimeout, config.GetTimeout())
}

func TestDefaultOllamaConfig(t *testing.T) {
	config := DefaultOllamaConfig("")

	assert.Equal(t, ProviderOllama, config.Provider)
	assert.Equal(t, "mistral", config.GetModel(TierLite))
	assert.Equal(t, "mistral", config.GetModel(TierAdvanced))
	assert.Equal(t, DefaultOllamaURL, config.BaseURL)

	custom := DefaultOllamaConfig("llama3")
	assert.Equal(t, "llama3", custom.GetModel(TierStandard))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	// Unknown tier should fallback to TierStandard, then TierLite
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{},
	}

	assert.Equal(t, "", config.GetModel(TierAdvanced))
}

func TestGetTimeout_ZeroUsesDefault(t *testing.T) {
	config := &Config{}
	assert.Equal(t, DefaultTimeout, config.GetTimeout())

	config.Timeout = 5 * time.Second
	assert.Equal(t, 5*time.Second, config.GetTimeout())
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierAdvanced, "custom-model")

	// Original should be unchanged
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	assert.Equal(t, "custom-model", newConfig.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash-lite", newConfig.GetModel(TierLite))
	assert.Equal(t, config.Timeout, newConfig.Timeout)
}
