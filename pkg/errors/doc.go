// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "sparql endpoint unreachable",
//	    cause,
//	    map[string]interface{}{
//	        "endpoint": endpoint,
//	        "attempt":  attempt,
//	    },
//	)
//
// Callers that only need the classification use CodeOf or IsCode:
//
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // render 404
//	}
package errors
