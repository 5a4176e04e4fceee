// Package llm provides the model configuration and client abstraction used
// by resume evaluation.
package llm

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for per-section scoring of small inputs
	TierLite ModelTier = "lite"
	// TierStandard is for whole-resume evaluation
	TierStandard ModelTier = "standard"
)

// Config holds the model names per tier
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model assignment
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard
// then lite when the tier is not configured
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
