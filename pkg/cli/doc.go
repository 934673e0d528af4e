// Package cli implements the foodkg command-line tool.
//
// # Commands
//
// serve - Run the web server (same as foodkgd):
//
//	foodkg serve
//
// ingredients - List knowledge graph ingredients:
//
//	foodkg ingredients -t table
//
// match - Resolve free-form ingredient names:
//
//	foodkg match tomatos "green onion"
//	foodkg match --file pantry.yaml
//
// recipes - Find recipes containing all given ingredients:
//
//	foodkg recipes --ingredient tomato --ingredient basil [--category any] [--green-sugar] [--limit 20]
//
// recipe - Show one recipe:
//
//	foodkg recipe --uri http://idea.rpi.edu/heals/kb/recipe/...
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--endpoint     SPARQL endpoint, overrides SPARQL_ENDPOINT
//	--log-level    Log level: debug, info, warn, error
//
// # Environment Variables
//
// The same variables as the server: SPARQL_ENDPOINT, SPARQL_METHOD,
// SPARQL_TIMEOUT, SPARQL_AUTH_TYPE, SPARQL_USER, SPARQL_PASSWORD,
// SPARQL_TOKEN and LOG_LEVEL. A .env file in the working directory is
// loaded when present.
//
// # Exit Codes
//
//	0  Success
//	1  Any error
package cli
