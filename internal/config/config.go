package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Model      ModelConfig      `yaml:"model"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// ModelConfig holds settings for the semantic analysis collaborator.
type ModelConfig struct {
	// Provider selects the model backend: "claude" or "openai".
	Provider   string        `yaml:"provider"    env:"MODEL_PROVIDER"    env-default:"claude"`
	APIKey     string        `yaml:"api_key"     env:"MODEL_API_KEY"`
	Claude     string        `yaml:"claude"      env:"MODEL_CLAUDE"      env-default:"claude-3-5-sonnet-latest"`
	OpenAI     string        `yaml:"openai"      env:"MODEL_OPENAI"      env-default:"gpt-4o-mini"`
	MaxTokens  int           `yaml:"max_tokens"  env:"MODEL_MAX_TOKENS"  env-default:"4096"`
	Timeout    time.Duration `yaml:"timeout"     env:"MODEL_TIMEOUT"     env-default:"90s"`
	PromptPath string        `yaml:"prompt_path" env:"MODEL_PROMPT_PATH"`
}

// DictionaryConfig holds settings for the lexical collaborator.
type DictionaryConfig struct {
	BaseURL            string        `yaml:"base_url"             env:"DICT_BASE_URL"`
	Timeout            time.Duration `yaml:"timeout"              env:"DICT_TIMEOUT"              env-default:"10s"`
	BreakerMaxFailures uint32        `yaml:"breaker_max_failures" env:"DICT_BREAKER_MAX_FAILURES" env-default:"5"`
	BreakerOpenTimeout time.Duration `yaml:"breaker_open_timeout" env:"DICT_BREAKER_OPEN_TIMEOUT" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP rate limiting settings for the translate
// endpoint. Limiting protects the metered model API behind it.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATELIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATELIMIT_PER_MINUTE"       env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// ModelName returns the configured model identifier for the active provider.
func (m ModelConfig) ModelName() string {
	if m.Provider == "openai" {
		return m.OpenAI
	}
	return m.Claude
}
