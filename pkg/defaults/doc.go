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

// Package defaults provides centralized configuration constants for the
// foodkg-recommender service.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - SPARQL timeouts: per-query deadline and retry budget
//   - Handler timeouts: for HTTP request processing
//   - Cache durations: ingredient list TTL and API Cache-Control
//   - Server timeouts: for HTTP server configuration
//   - HTTP client timeouts: for outbound requests to the SPARQL endpoint
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.PageHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - A SPARQL query must time out before the page handler does
//   - A page handler must time out before the server write deadline
//   - Server shutdown: 30s for graceful shutdown
package defaults
