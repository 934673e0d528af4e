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

package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foodkg/recommender/pkg/config"
	"github.com/foodkg/recommender/pkg/defaults"
	"github.com/foodkg/recommender/pkg/foodkg"
	"github.com/foodkg/recommender/pkg/logging"
	"github.com/foodkg/recommender/pkg/server"
	"github.com/foodkg/recommender/pkg/sparql"
	"github.com/foodkg/recommender/pkg/web"
)

const (
	name           = "foodkgd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/foodkg/recommender/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the web server and blocks until shutdown.
func Serve() error {
	return ServeContext(context.Background())
}

// ServeContext configures logging, resolves the service configuration,
// builds the knowledge graph service and runs the server until ctx is done
// or the process receives SIGINT/SIGTERM.
func ServeContext(ctx context.Context) error {
	setupLogging()
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg := config.Load()
	slog.Info("resolved configuration", "config", cfg)

	s, err := newServer(ctx, cfg)
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// setupLogging loads .env before configuring the default logger so that a
// LOG_LEVEL set only in the file takes effect.
func setupLogging() {
	dotEnvErr := config.LoadDotEnv()
	logging.SetDefaultStructuredLogger(name, version)
	if dotEnvErr != nil {
		slog.Warn("failed to load .env file", "error", dotEnvErr)
	}
}

// newServer wires the SPARQL client, the knowledge graph service and the
// web handlers into a server. The ingredient list is warmed before return;
// a failed warm-up is logged and left for the first request to retry.
func newServer(ctx context.Context, cfg config.ServiceConfig) (*server.Server, error) {
	client, err := sparql.NewClientFromConfig(cfg,
		sparql.WithUserAgent(fmt.Sprintf("%s/%s", name, version)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sparql client: %w", err)
	}

	svc := foodkg.NewService(client,
		foodkg.WithIngredientCache(defaults.IngredientCacheTTL, defaults.IngredientCacheCleanup),
	)
	warmUp(ctx, svc)

	h, err := web.NewHandler(cfg, svc)
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	), nil
}

func warmUp(ctx context.Context, svc *foodkg.Service) {
	ctx, cancel := context.WithTimeout(ctx, defaults.StartupWarmupTimeout)
	defer cancel()

	list, err := svc.Ingredients(ctx)
	if err != nil {
		slog.Warn("ingredient list warm-up failed, continuing", "error", err)
		return
	}
	slog.Info("ingredient list loaded", "count", len(list))
}
