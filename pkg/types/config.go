// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network
// requests (the live scanner and the composer backend).
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-assistant/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EngineConfig holds settings for the search engine.
type EngineConfig struct {
	// MaxResults is the default cap for a standard search (default 15).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// DeepResearchCap bounds the deduplicated deep-research result set
	// (default 50).
	DeepResearchCap int `json:"deep_research_cap" yaml:"deep_research_cap"`

	// MaxVariations bounds the query variations deep research fans out
	// over (default 15).
	MaxVariations int `json:"max_variations" yaml:"max_variations"`

	// PerSiteLimit bounds results per category per variation in deep
	// research (default 8).
	PerSiteLimit int `json:"per_site_limit" yaml:"per_site_limit"`

	// Seed fixes the generator's random source when non-zero. Zero means
	// seed from the clock.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ScanConfig holds settings for the content scanner.
type ScanConfig struct {
	HTTPConfig `yaml:",inline"`

	// MinDelay and MaxDelay bound the simulated scan latency
	// (defaults 600ms and 1400ms). Zero values disable the delay.
	MinDelay time.Duration `json:"min_delay" yaml:"min_delay"`
	MaxDelay time.Duration `json:"max_delay" yaml:"max_delay"`

	// MaxContentLen truncates scanned content, in runes (default 800).
	MaxContentLen int `json:"max_content_len" yaml:"max_content_len"`
}

// ComposeConfig holds settings for the response composer.
type ComposeConfig struct {
	// Model is the chat model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// BaseURL points at an OpenAI-compatible endpoint. Empty uses the
	// provider default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// APIKey authenticates against the endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MinChunkDelay and MaxChunkDelay bound the per-word streaming delay
	// (defaults 20ms and 50ms). Zero values disable the delay.
	MinChunkDelay time.Duration `json:"min_chunk_delay" yaml:"min_chunk_delay"`
	MaxChunkDelay time.Duration `json:"max_chunk_delay" yaml:"max_chunk_delay"`
}

// HistoryConfig holds settings for the search history store.
type HistoryConfig struct {
	// DataDir is the directory holding the history database (default
	// "data/").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default page size for history listings (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// AssistantConfig groups all stage configurations.
type AssistantConfig struct {
	Engine  EngineConfig  `json:"engine" yaml:"engine"`
	Scan    ScanConfig    `json:"scan" yaml:"scan"`
	Compose ComposeConfig `json:"compose" yaml:"compose"`
	History HistoryConfig `json:"history" yaml:"history"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() AssistantConfig {
	return AssistantConfig{
		Engine: EngineConfig{
			MaxResults:      15,
			DeepResearchCap: 50,
			MaxVariations:   15,
			PerSiteLimit:    8,
		},
		Scan: ScanConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   15 * time.Second,
				UserAgent: "research-assistant/0.1",
			},
			MinDelay:      600 * time.Millisecond,
			MaxDelay:      1400 * time.Millisecond,
			MaxContentLen: 800,
		},
		Compose: ComposeConfig{
			Model:         "gpt-4o-mini",
			MinChunkDelay: 20 * time.Millisecond,
			MaxChunkDelay: 50 * time.Millisecond,
		},
		History: HistoryConfig{
			DataDir:    "data",
			MaxResults: 20,
		},
	}
}
