// Package llm provides the generative model client used for themed resume conversion
// and portfolio copy, along with model tier and generation settings.
package llm

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for short copy: portfolio headlines and section blurbs
	TierLite ModelTier = "lite"
	// TierStandard is for structured output: full resume conversion
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// Generation defaults for resume conversion.
const (
	DefaultTemperature float32 = 0.7
	DefaultMaxTokens   int32   = 3000
	// MaxOutputTokens is the largest MaxTokens a caller may request.
	MaxOutputTokens int32 = 8192
)

// GenerationOptions tunes a single generation call.
type GenerationOptions struct {
	Temperature float32
	MaxTokens   int32
}

// DefaultGenerationOptions returns the conversion defaults.
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{Temperature: DefaultTemperature, MaxTokens: DefaultMaxTokens}
}

// WithDefaults fills zero fields with the defaults and clamps MaxTokens.
func (o GenerationOptions) WithDefaults() GenerationOptions {
	if o.Temperature <= 0 {
		o.Temperature = DefaultTemperature
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.MaxTokens > MaxOutputTokens {
		o.MaxTokens = MaxOutputTokens
	}
	return o
}

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// AvailableModels lists the configured model names, lite first.
func (c *Config) AvailableModels() []string {
	var models []string
	for _, tier := range []ModelTier{TierLite, TierStandard} {
		if model, ok := c.Models[tier]; ok {
			models = append(models, model)
		}
	}
	return models
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)+1),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
