package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, []string{"gemini-2.5-flash-lite", "gemini-2.5-flash"}, config.AvailableModels())
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	// Unknown tier falls back to TierStandard, then TierLite
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
	assert.Equal(t, "fallback-model", config.GetModel(TierStandard))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}

	assert.Equal(t, "", config.GetModel(TierStandard))
	assert.Empty(t, config.AvailableModels())
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierStandard, "custom-model")

	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "custom-model", newConfig.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash-lite", newConfig.GetModel(TierLite))
}

func TestGenerationOptions_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   GenerationOptions
		want GenerationOptions
	}{
		{"zero value", GenerationOptions{}, GenerationOptions{Temperature: 0.7, MaxTokens: 3000}},
		{"explicit values kept", GenerationOptions{Temperature: 0.2, MaxTokens: 1000}, GenerationOptions{Temperature: 0.2, MaxTokens: 1000}},
		{"negative reset", GenerationOptions{Temperature: -1, MaxTokens: -5}, GenerationOptions{Temperature: 0.7, MaxTokens: 3000}},
		{"max tokens clamped", GenerationOptions{Temperature: 1, MaxTokens: 100000}, GenerationOptions{Temperature: 1, MaxTokens: MaxOutputTokens}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithDefaults())
		})
	}
	assert.Equal(t, DefaultGenerationOptions(), GenerationOptions{}.WithDefaults())
}
