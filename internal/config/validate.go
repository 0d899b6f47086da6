package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Model.Provider {
	case "claude", "openai":
	default:
		return fmt.Errorf("model.provider must be \"claude\" or \"openai\" (got %q)", c.Model.Provider)
	}

	if c.Model.APIKey == "" {
		return fmt.Errorf("model.api_key is required (set MODEL_API_KEY)")
	}
	if c.Model.MaxTokens <= 0 {
		return fmt.Errorf("model.max_tokens must be > 0 (got %d)", c.Model.MaxTokens)
	}
	if c.Model.Timeout <= 0 {
		return fmt.Errorf("model.timeout must be > 0 (got %v)", c.Model.Timeout)
	}

	if c.Dictionary.Timeout <= 0 {
		return fmt.Errorf("dictionary.timeout must be > 0 (got %v)", c.Dictionary.Timeout)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}
