package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, VariantLocal, s.Variant)
	assert.Equal(t, "BAAI/bge-small-en-v1.5", s.Model)
	assert.Equal(t, "data", s.DataDir)
	assert.Equal(t, "default", s.DefaultTenant)
	require.NoError(t, s.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RAGSTORE_VARIANT", "remote")
	t.Setenv("RAGSTORE_MODEL", "text-embedding-3-small")
	t.Setenv("RAGSTORE_HOST", "http://localhost:11434")
	t.Setenv("RAGSTORE_API_KEY", "sk-test")
	t.Setenv("RAGSTORE_DATA_DIR", "/var/lib/ragstore")
	t.Setenv("RAGSTORE_DEFAULT_TENANT", "acme")
	t.Setenv("RAGSTORE_STRICT", "true")

	s := FromEnv()

	assert.Equal(t, VariantRemote, s.Variant)
	assert.Equal(t, "text-embedding-3-small", s.Model)
	assert.Equal(t, "http://localhost:11434", s.Host)
	assert.Equal(t, "sk-test", s.APIKey)
	assert.Equal(t, "/var/lib/ragstore", s.DataDir)
	assert.Equal(t, "acme", s.DefaultTenant)
	assert.True(t, s.Strict)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"local defaults ok", func(s *Settings) {}, ""},
		{"remote needs host", func(s *Settings) { s.Variant = VariantRemote }, "Host is required"},
		{"remote with host ok", func(s *Settings) {
			s.Variant = VariantRemote
			s.Host = "http://localhost:11434"
		}, ""},
		{"legacy without model ok", func(s *Settings) {
			s.Variant = VariantLegacy
			s.Model = ""
		}, ""},
		{"missing model", func(s *Settings) { s.Model = "" }, "Model is required"},
		{"missing data dir", func(s *Settings) { s.DataDir = "" }, "DataDir is required"},
		{"unknown variant", func(s *Settings) { s.Variant = "qdrant" }, "unknown variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
