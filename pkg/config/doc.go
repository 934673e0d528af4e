// Package config resolves the immutable ServiceConfig of a foodkg-recommender
// instance from the process environment.
//
// Resolution order for every variable: process environment, then an optional
// .env file in the working directory, then the documented default. A missing
// variable is never an error.
//
//	SPARQL_ENDPOINT   http://localhost:3030/recipes/sparql
//	SECRET_KEY        dev-secret-key
//	SPARQL_METHOD     GET (GET or POST)
//	SPARQL_TIMEOUT    30 (seconds)
//	SPARQL_AUTH_TYPE  NONE (NONE, BASIC or DIGEST)
//	SPARQL_USER, SPARQL_PASSWORD, SPARQL_TOKEN
//
// Handlers never read the environment themselves; the resolved value is
// constructed in main and passed down:
//
//	cfg := config.Load()
//	client := sparql.NewClientFromConfig(cfg)
package config
