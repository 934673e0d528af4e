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
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/foodkg/recommender/pkg/defaults"
)

// Environment variable names.
const (
	EnvSPARQLEndpoint = "SPARQL_ENDPOINT"
	EnvSecretKey      = "SECRET_KEY"
	EnvSPARQLMethod   = "SPARQL_METHOD"
	EnvSPARQLTimeout  = "SPARQL_TIMEOUT"
	EnvSPARQLAuthType = "SPARQL_AUTH_TYPE"
	EnvSPARQLUser     = "SPARQL_USER"
	EnvSPARQLPassword = "SPARQL_PASSWORD"
	EnvSPARQLToken    = "SPARQL_TOKEN"
)

// Documented defaults.
const (
	AppName               = "foodkg-recommender"
	DefaultSPARQLEndpoint = "http://localhost:3030/recipes/sparql"
	DefaultSecretKey      = "dev-secret-key"
	DefaultSPARQLMethod   = "GET"
)

// AuthType selects how requests to the SPARQL endpoint are authenticated.
type AuthType string

const (
	AuthNone   AuthType = "NONE"
	AuthBasic  AuthType = "BASIC"
	AuthDigest AuthType = "DIGEST"
)

// ServiceConfig is the resolved runtime configuration of a service instance.
// It is built once at startup and passed by value.
type ServiceConfig struct {
	AppName        string
	SPARQLEndpoint string
	SecretKey      string

	SPARQLMethod   string
	SPARQLTimeout  time.Duration
	SPARQLAuthType AuthType
	SPARQLUser     string
	SPARQLPassword string
	SPARQLToken    string
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads an optional .env file from the working directory and then
// resolves the configuration from the process environment.
// Variables already present in the environment win over .env entries.
func Load() ServiceConfig {
	if err := LoadDotEnv(); err != nil {
		slog.Warn("failed to load .env file", "error", err)
	}
	return FromLookup(os.LookupEnv)
}

// LoadDotEnv loads the given files (default ".env") into the process
// environment. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("no .env file found, reading from environment", "file", f)
				continue
			}
			return err
		}
		slog.Debug("loaded environment file", "file", f)
	}
	return nil
}

// FromLookup resolves the configuration using lookup for every variable.
// Absent or empty variables take their documented defaults; invalid values
// are logged and replaced with defaults. String settings are used verbatim,
// only the enumerated and numeric settings are trimmed before parsing.
func FromLookup(lookup LookupFunc) ServiceConfig {
	raw := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	get := func(key string) string {
		return strings.TrimSpace(raw(key))
	}
	orDefault := func(key, def string) string {
		if v := raw(key); v != "" {
			return v
		}
		return def
	}

	cfg := ServiceConfig{
		AppName:        AppName,
		SPARQLEndpoint: orDefault(EnvSPARQLEndpoint, DefaultSPARQLEndpoint),
		SecretKey:      orDefault(EnvSecretKey, DefaultSecretKey),
		SPARQLMethod:   DefaultSPARQLMethod,
		SPARQLTimeout:  defaults.SPARQLQueryTimeout,
		SPARQLAuthType: AuthNone,
		SPARQLUser:     raw(EnvSPARQLUser),
		SPARQLPassword: raw(EnvSPARQLPassword),
		SPARQLToken:    raw(EnvSPARQLToken),
	}

	if m := strings.ToUpper(get(EnvSPARQLMethod)); m != "" {
		switch m {
		case "GET", "POST":
			cfg.SPARQLMethod = m
		default:
			slog.Warn("unsupported SPARQL method, using GET", "value", m)
		}
	}

	if s := get(EnvSPARQLTimeout); s != "" {
		secs, err := strconv.Atoi(s)
		if err != nil || secs <= 0 {
			slog.Warn("invalid SPARQL timeout, using default",
				"value", s, "default", defaults.SPARQLQueryTimeout)
		} else {
			cfg.SPARQLTimeout = time.Duration(secs) * time.Second
		}
	}

	if a := AuthType(strings.ToUpper(get(EnvSPARQLAuthType))); a != "" {
		switch a {
		case AuthNone, AuthBasic, AuthDigest:
			cfg.SPARQLAuthType = a
		default:
			slog.Warn("unsupported SPARQL auth type, using NONE", "value", string(a))
		}
	}

	return cfg
}

// HasCredentials reports whether user/password auth should be applied.
func (c ServiceConfig) HasCredentials() bool {
	return c.SPARQLAuthType != AuthNone && c.SPARQLUser != "" && c.SPARQLPassword != ""
}

// LogValue implements slog.LogValuer and keeps secrets out of logs.
func (c ServiceConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("app", c.AppName),
		slog.String("sparqlEndpoint", c.SPARQLEndpoint),
		slog.String("sparqlMethod", c.SPARQLMethod),
		slog.Duration("sparqlTimeout", c.SPARQLTimeout),
		slog.String("sparqlAuth", string(c.SPARQLAuthType)),
		slog.Bool("sparqlToken", c.SPARQLToken != ""),
		slog.Bool("customSecretKey", c.SecretKey != DefaultSecretKey),
	)
}
