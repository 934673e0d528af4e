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

package defaults

import "time"

const (
	// SPARQLQueryTimeout is the default timeout for a single SPARQL query.
	// Overridden by SPARQL_TIMEOUT.
	SPARQLQueryTimeout = 30 * time.Second

	// SPARQLRetryMaxElapsed bounds the total time spent retrying a query.
	SPARQLRetryMaxElapsed = 45 * time.Second

	// SPARQLRetryInitialInterval is the first backoff interval between retries.
	SPARQLRetryInitialInterval = 250 * time.Millisecond

	// SPARQLMaxRetries caps the number of attempts for a single query.
	SPARQLMaxRetries uint = 3
)

const (
	// PageHandlerTimeout is the timeout for rendering HTML pages that
	// query the knowledge graph.
	PageHandlerTimeout = 30 * time.Second

	// APIHandlerTimeout is the timeout for JSON API requests.
	APIHandlerTimeout = 30 * time.Second

	// StartupWarmupTimeout bounds the ingredient list warm-up at startup.
	StartupWarmupTimeout = 20 * time.Second

	// IngredientLoadTimeout bounds a shared ingredient list load, which
	// outlives the request that started it.
	IngredientLoadTimeout = 90 * time.Second
)

const (
	// IngredientCacheTTL is how long the knowledge graph ingredient list is cached.
	IngredientCacheTTL = 30 * time.Minute

	// IngredientCacheCleanup is the purge interval for expired cache items.
	IngredientCacheCleanup = time.Hour

	// APICacheMaxAge is the Cache-Control max-age for JSON API responses.
	APICacheMaxAge = 5 * time.Minute
)

const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 45 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)
