// Package web holds the foodkgd HTTP handlers: the HTML pages rendered from
// embedded templates and the versioned JSON API.
//
// Pages:
//
//	GET /                  home page with the known ingredient list
//	GET /recipe/{uri...}   recipe detail page; uri is the URL-encoded recipe IRI
//
// JSON API:
//
//	GET /v1/ingredients              knowledge graph ingredient names
//	GET /v1/ingredients/match?q=     resolve free-form ingredient names
//	GET /v1/recipes?ingredient=      recipes containing every ingredient
//	GET /v1/recipe?uri=              details of one recipe
//
// Handlers only see the ServiceConfig passed to NewHandler and a Service;
// they never read the environment. Routes returns the handlers keyed by
// ServeMux pattern for server.WithHandler.
package web
