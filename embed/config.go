// Copyright 2025 Provex Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package embed

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration shared by embedding providers.
type Config struct {
	// Host is the base URL for the remote embedding service API.
	// Example: "https://api.openai.com/v1" or a local OpenAI-compatible
	// server such as "http://localhost:11434/v1".
	Host string

	// APIKey is the bearer token sent to the remote embedding service.
	APIKey string

	// Model is the model identifier to embed with.
	// Example: "text-embedding-3-small", "fast-bge-small-en"
	Model string

	// Timeout bounds each individual embedding call against a remote
	// service. Ignored by local providers.
	Timeout time.Duration

	// Strict controls failure handling on remote embedding errors.
	// When false (the default) a failed call degrades to a zero vector;
	// when true the error is surfaced to the caller.
	Strict bool

	// CacheDir is where local providers download and cache model files.
	// Ignored by remote providers.
	CacheDir string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the remote embedding service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithAPIKey sets the bearer token for the remote embedding service.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithModel sets the embedding model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithTimeout sets the per-call timeout for remote embedding requests.
func WithTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithStrict makes remote embedding failures surface as errors instead
// of degrading to zero vectors.
func WithStrict(strict bool) ConfigOption {
	return func(c *Config) {
		c.Strict = strict
	}
}

// WithCacheDir sets the model cache directory for local providers.
func WithCacheDir(dir string) ConfigOption {
	return func(c *Config) {
		c.CacheDir = dir
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible embedding service.
func DefaultConfig() *Config {
	return &Config{
		Host:     "http://localhost:11434/v1",
		Model:    "text-embedding-3-small",
		Timeout:  30 * time.Second,
		CacheDir: "local_cache",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("https://api.openai.com"),
//	    WithModel("text-embedding-3-large"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to the host if missing, which is required by
// most OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("embed config: Host is required")
	}
	if c.Model == "" {
		return errors.New("embed config: Model is required")
	}
	if c.Timeout <= 0 {
		return errors.New("embed config: Timeout must be positive")
	}
	return nil
}
