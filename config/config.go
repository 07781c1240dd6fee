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

package config

import (
	"fmt"
	"os"

	"github.com/provex/ragstore/core"
)

// Variant selects which embedding backend a store is built with.
type Variant string

const (
	// VariantLocal embeds with an on-device ONNX model.
	VariantLocal Variant = "local"

	// VariantRemote embeds through an OpenAI-compatible API.
	VariantRemote Variant = "remote"

	// VariantLegacy designates the predecessor JSON-file store; it can
	// only be opened as a migration source, never served.
	VariantLegacy Variant = "legacy"
)

// Settings is the recognized configuration surface of a store.
type Settings struct {
	// Variant selects the embedding backend.
	Variant Variant

	// Model is the embedding model identifier. Changing it against an
	// existing store changes vector dimensionality and forces a
	// migration.
	Model string

	// Host is the remote embedding service URL (remote variant only).
	Host string

	// APIKey is the remote service bearer token (remote variant only).
	APIKey string

	// DataDir is where the store keeps its database (or, for the
	// legacy variant, where the JSON files live).
	DataDir string

	// DefaultTenant is the tenant used when operations omit one.
	DefaultTenant string

	// Strict surfaces remote embedding failures instead of degrading
	// to zero vectors.
	Strict bool
}

// Default returns the settings used when nothing is configured: a
// local-model store under ./data.
func Default() *Settings {
	return &Settings{
		Variant:       VariantLocal,
		Model:         "BAAI/bge-small-en-v1.5",
		DataDir:       "data",
		DefaultTenant: core.DefaultTenantID,
	}
}

// FromEnv builds settings from RAGSTORE_* environment variables,
// starting from Default for anything unset.
func FromEnv() *Settings {
	s := Default()
	if v := os.Getenv("RAGSTORE_VARIANT"); v != "" {
		s.Variant = Variant(v)
	}
	if v := os.Getenv("RAGSTORE_MODEL"); v != "" {
		s.Model = v
	}
	if v := os.Getenv("RAGSTORE_HOST"); v != "" {
		s.Host = v
	}
	if v := os.Getenv("RAGSTORE_API_KEY"); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv("RAGSTORE_DATA_DIR"); v != "" {
		s.DataDir = v
	}
	if v := os.Getenv("RAGSTORE_DEFAULT_TENANT"); v != "" {
		s.DefaultTenant = v
	}
	if v := os.Getenv("RAGSTORE_STRICT"); v == "1" || v == "true" {
		s.Strict = true
	}
	return s
}

// Validate checks the settings are complete for their variant.
func (s *Settings) Validate() error {
	switch s.Variant {
	case VariantLocal, VariantLegacy:
	case VariantRemote:
		if s.Host == "" {
			return fmt.Errorf("config: Host is required for the remote variant")
		}
	default:
		return fmt.Errorf("config: unknown variant %q", s.Variant)
	}
	if s.Model == "" && s.Variant != VariantLegacy {
		return fmt.Errorf("config: Model is required")
	}
	if s.DataDir == "" {
		return fmt.Errorf("config: DataDir is required")
	}
	return nil
}
