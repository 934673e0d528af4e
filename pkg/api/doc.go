// Package api wires the foodkgd web service.
//
// It is a thin layer over pkg/server: it configures logging, resolves the
// ServiceConfig from the environment (and an optional .env file), builds the
// SPARQL client and knowledge graph service, and registers the pkg/web
// handlers. Server lifecycle, middleware and the /health, /ready and
// /metrics endpoints belong to pkg/server.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /                      - Home page
//   - GET /recipe/{uri...}       - Recipe detail page
//   - GET /v1/ingredients        - Knowledge graph ingredients
//   - GET /v1/ingredients/match  - Ingredient name matching
//   - GET /v1/recipes            - Recipe search by ingredients
//   - GET /v1/recipe             - Recipe details
//
// System endpoints:
//   - GET /health  - Liveness, always {"status":"ok"}
//   - GET /ready   - Readiness
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
//   - SPARQL_ENDPOINT: SPARQL query endpoint (default: http://localhost:3030/recipes/sparql)
//   - SECRET_KEY: application secret (default: dev-secret-key)
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: logging level (debug, info, warn, error)
//
// The ingredient list is loaded once at startup. When the knowledge graph is
// unreachable the server still starts; pages render with an empty list.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/foodkg/recommender/pkg/api.version=1.0.0'"
package api
