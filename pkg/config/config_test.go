// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg := FromLookup(lookupFrom(nil))

	assert.Equal(t, DefaultSPARQLEndpoint, cfg.SPARQLEndpoint)
	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
	assert.NotEmpty(t, cfg.SecretKey)
	assert.Equal(t, AppName, cfg.AppName)
	assert.Equal(t, "GET", cfg.SPARQLMethod)
	assert.Equal(t, 30*time.Second, cfg.SPARQLTimeout)
	assert.Equal(t, AuthNone, cfg.SPARQLAuthType)
	assert.False(t, cfg.HasCredentials())
}

func TestFromLookupEndpointExact(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"plain", "http://example.org/sparql"},
		{"padded", " http://example.org/sparql "},
		{"trailing newline", "http://example.org/sparql\n"},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromLookup(lookupFrom(map[string]string{
				EnvSPARQLEndpoint: tt.value,
			}))
			assert.Equal(t, tt.value, cfg.SPARQLEndpoint)
		})
	}
}

func TestFromLookupStringValuesVerbatim(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		EnvSecretKey:      " secret ",
		EnvSPARQLAuthType: " basic ",
		EnvSPARQLUser:     "admin ",
		EnvSPARQLPassword: " pw",
	}))
	assert.Equal(t, " secret ", cfg.SecretKey)
	assert.Equal(t, AuthBasic, cfg.SPARQLAuthType)
	assert.Equal(t, "admin ", cfg.SPARQLUser)
	assert.Equal(t, " pw", cfg.SPARQLPassword)
}

func TestFromLookupEmptyValuesUseDefaults(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		EnvSPARQLEndpoint: "",
		EnvSecretKey:      "",
	}))
	assert.Equal(t, DefaultSPARQLEndpoint, cfg.SPARQLEndpoint)
	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
}

func TestFromLookupAlternateEndpointIgnored(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		"FOODKG_SPARQL_ENDPOINT": "https://foodkg.rpi.edu/sparql",
	}))
	assert.Equal(t, DefaultSPARQLEndpoint, cfg.SPARQLEndpoint)
}

func TestFromLookupSPARQLSettings(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantMethod string
		wantTO     time.Duration
		wantAuth   AuthType
		wantCreds  bool
	}{
		{
			name:       "post lower case",
			env:        map[string]string{EnvSPARQLMethod: "post"},
			wantMethod: "POST",
			wantTO:     30 * time.Second,
			wantAuth:   AuthNone,
		},
		{
			name:       "unsupported method falls back",
			env:        map[string]string{EnvSPARQLMethod: "PUT"},
			wantMethod: "GET",
			wantTO:     30 * time.Second,
			wantAuth:   AuthNone,
		},
		{
			name:       "custom timeout",
			env:        map[string]string{EnvSPARQLTimeout: "5"},
			wantMethod: "GET",
			wantTO:     5 * time.Second,
			wantAuth:   AuthNone,
		},
		{
			name:       "invalid timeout",
			env:        map[string]string{EnvSPARQLTimeout: "soon"},
			wantMethod: "GET",
			wantTO:     30 * time.Second,
			wantAuth:   AuthNone,
		},
		{
			name:       "negative timeout",
			env:        map[string]string{EnvSPARQLTimeout: "-1"},
			wantMethod: "GET",
			wantTO:     30 * time.Second,
			wantAuth:   AuthNone,
		},
		{
			name: "basic with credentials",
			env: map[string]string{
				EnvSPARQLAuthType: "basic",
				EnvSPARQLUser:     "admin",
				EnvSPARQLPassword: "pw",
			},
			wantMethod: "GET",
			wantTO:     30 * time.Second,
			wantAuth:   AuthBasic,
			wantCreds:  true,
		},
		{
			name: "basic without password",
			env: map[string]string{
				EnvSPARQLAuthType: "BASIC",
				EnvSPARQLUser:     "admin",
			},
			wantMethod: "GET",
			wantTO:     30 * time.Second,
			wantAuth:   AuthBasic,
		},
		{
			name:       "unknown auth type",
			env:        map[string]string{EnvSPARQLAuthType: "KERBEROS"},
			wantMethod: "GET",
			wantTO:     30 * time.Second,
			wantAuth:   AuthNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromLookup(lookupFrom(tt.env))
			assert.Equal(t, tt.wantMethod, cfg.SPARQLMethod)
			assert.Equal(t, tt.wantTO, cfg.SPARQLTimeout)
			assert.Equal(t, tt.wantAuth, cfg.SPARQLAuthType)
			assert.Equal(t, tt.wantCreds, cfg.HasCredentials())
		})
	}
}

func TestLoadFromProcessEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvSPARQLEndpoint, "http://example.org/sparql")
	t.Setenv(EnvSecretKey, "")

	cfg := Load()
	assert.Equal(t, "http://example.org/sparql", cfg.SPARQLEndpoint)
	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SPARQL_TOKEN=from-file\n"), 0o600))

	t.Setenv(EnvSPARQLToken, "")
	os.Unsetenv(EnvSPARQLToken)

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv(EnvSPARQLToken))

	// existing environment wins
	t.Setenv(EnvSPARQLToken, "from-env")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv(EnvSPARQLToken))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLogValueHidesSecrets(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		EnvSecretKey:      "super-secret",
		EnvSPARQLPassword: "hunter2",
		EnvSPARQLToken:    "tok-123",
	}))

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("config", "config", cfg)

	out := buf.String()
	for _, secret := range []string{"super-secret", "hunter2", "tok-123"} {
		assert.NotContains(t, out, secret)
	}
	assert.Contains(t, out, DefaultSPARQLEndpoint)
}
