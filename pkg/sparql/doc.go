// Package sparql is a small client for the SPARQL 1.1 Protocol.
//
// Queries are sent with GET (?query=) or POST (form encoded) and results are
// decoded from the SPARQL 1.1 Query Results JSON format.
//
//	client, err := sparql.NewClientFromConfig(cfg)
//	if err != nil {
//	    return err
//	}
//	res, err := client.Query(ctx, "SELECT ?s WHERE { ?s ?p ?o } LIMIT 1")
//
// Network errors, 5xx and 429 responses are retried with exponential backoff
// within the configured budget. Other 4xx responses, decode failures and
// per-request timeouts fail immediately. Every error returned is a
// *errors.StructuredError:
//
//	TIMEOUT              request or caller deadline exceeded
//	SERVICE_UNAVAILABLE  endpoint unreachable, 5xx, 429 or 404
//	UNAUTHORIZED         401 or 403
//	INVALID_REQUEST      other 4xx, typically a malformed query
//	INTERNAL             undecodable response
package sparql
