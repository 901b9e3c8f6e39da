// Package config loads router configuration from the environment and
// optional YAML files.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full router configuration.
type Config struct {
	Routing   RoutingConfig            `koanf:"routing"`
	OpenAI    ProviderConfig           `koanf:"openai"`
	Anthropic ProviderConfig           `koanf:"anthropic"`
	Gemini    ProviderConfig           `koanf:"gemini"`
	Grok      ProviderConfig           `koanf:"grok"`
	Pricing   map[string]PricingConfig `koanf:"pricing"`
}

// RoutingConfig configures the smart router.
type RoutingConfig struct {
	// Strategy is one of cost_optimized, quality_optimized, balanced.
	Strategy string `koanf:"strategy"`

	// PreferredProvider steers the balanced strategy.
	PreferredProvider string `koanf:"preferred_provider"`
}

// ProviderConfig configures a single LLM backend.
type ProviderConfig struct {
	APIKey       string `koanf:"api_key"`
	DefaultModel string `koanf:"default_model"`
	BaseURL      string `koanf:"base_url"`
}

// PricingConfig overrides the static price table for one model.
// Prices are USD per 1K tokens.
type PricingConfig struct {
	InputPer1K  float64 `koanf:"input_per_1k"`
	OutputPer1K float64 `koanf:"output_per_1k"`
}

// envPrefix is the namespace for router environment variables, e.g.
// LLMROUTER_ROUTING_STRATEGY=cost_optimized.
const envPrefix = "LLMROUTER_"

// Load builds the configuration from environment variables.
func Load() (*Config, error) {
	return load("")
}

// LoadFile builds the configuration from a YAML file, with environment
// variables layered on top.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// LLMROUTER_OPENAI_API_KEY -> openai.api_key: the first underscore
	// separates section from field, the rest belong to the field name.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, err
	}

	if !k.Exists("routing.strategy") {
		k.Set("routing.strategy", "balanced")
	}
	if !k.Exists("routing.preferred_provider") {
		k.Set("routing.preferred_provider", "openai")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	cfg.applyConventionalEnv()
	return &cfg, nil
}

// applyConventionalEnv fills empty fields from the provider-standard
// variable names (OPENAI_API_KEY, DEFAULT_OPENAI_MODEL, ...) so the
// router works out of the box next to other tooling that already sets
// them.
func (c *Config) applyConventionalEnv() {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = os.Getenv(key)
		}
	}

	fill(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	fill(&c.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	fill(&c.Gemini.APIKey, "GOOGLE_API_KEY")
	fill(&c.Grok.APIKey, "XAI_API_KEY")

	fill(&c.OpenAI.DefaultModel, "DEFAULT_OPENAI_MODEL")
	fill(&c.Anthropic.DefaultModel, "DEFAULT_ANTHROPIC_MODEL")
	fill(&c.Gemini.DefaultModel, "DEFAULT_GEMINI_MODEL")
	fill(&c.Grok.DefaultModel, "DEFAULT_GROK_MODEL")
}
