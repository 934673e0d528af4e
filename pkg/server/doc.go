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

// Package server provides the reusable HTTP server behind foodkgd.
//
// Callers supply handlers keyed by ServeMux pattern; the server adds the
// system endpoints, wraps every handler in a middleware chain and manages
// the listener lifecycle.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("foodkgd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/ingredients": h.Ingredients,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
// GET /health - liveness; always 200 with {"status":"ok"}
//
// GET /ready - readiness; 200 while serving, 503 before start and during shutdown
//
// GET /metrics - Prometheus exposition
//
// When no handler is registered for "/", a JSON description of the server
// (name, version, readiness, routes) is served there.
//
// # Middleware
//
// Configured handlers run behind, outermost first:
//
//   - metrics: request count, latency and in-flight gauge by route pattern
//   - API version: negotiated from Accept (application/vnd.foodkg.v1+json),
//     echoed in X-API-Version
//   - request ID: X-Request-Id is accepted when it is a UUID, generated
//     otherwise, and echoed in the response
//   - panic recovery: 500 with a structured error
//   - rate limiting: token bucket (golang.org/x/time/rate); 429 with
//     Retry-After when exhausted, X-RateLimit-* headers otherwise
//   - logging: request start and completion at debug level
//
// # Errors
//
// API errors share one JSON envelope:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "at least one ingredient is required",
//	  "details": {"param": "ingredient"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives the status from a pkg/errors code:
// INVALID_REQUEST 400, UNAUTHORIZED 401, NOT_FOUND 404,
// METHOD_NOT_ALLOWED 405, RATE_LIMIT_EXCEEDED 429, SERVICE_UNAVAILABLE 503,
// TIMEOUT 504, anything else 500.
//
// # Configuration
//
// PORT (default 8080) and SHUTDOWN_TIMEOUT_SECONDS (default 30) are read
// from the environment by NewConfig. Timeouts default to pkg/defaults.
package server
