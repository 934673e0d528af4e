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

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a failure for callers and for the HTTP error envelope.
type ErrorCode string

// Codes used across the service. The HTTP layer maps each to a status.
const (
	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"     // bad input, bad IRI, rejected query
	ErrCodeUnauthorized      ErrorCode = "UNAUTHORIZED"        // endpoint rejected credentials
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"           // no recipe, no matching ingredient
	ErrCodeMethodNotAllowed  ErrorCode = "METHOD_NOT_ALLOWED"  // wrong HTTP method
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED" // server rate limiter
	ErrCodeTimeout           ErrorCode = "TIMEOUT"             // query or handler deadline
	ErrCodeUnavailable       ErrorCode = "SERVICE_UNAVAILABLE" // SPARQL endpoint down or 5xx
	ErrCodeInternal          ErrorCode = "INTERNAL"            // decode failures, bugs
)

// Retryable reports whether a request failing with c may succeed if repeated
// unchanged.
func (c ErrorCode) Retryable() bool {
	switch c {
	case ErrCodeTimeout, ErrCodeUnavailable, ErrCodeRateLimitExceeded, ErrCodeInternal:
		return true
	default:
		return false
	}
}

// StructuredError carries a code, a message safe to show to clients, the
// underlying cause and key/value context for logs and error details.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes Cause to errors.Is and errors.As.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New returns a StructuredError without cause or context.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// NewWithContext returns a StructuredError with context and no cause.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Context: context}
}

// Wrap classifies cause under code.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// WrapWithContext classifies cause under code and attaches context.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// CodeOf returns the code of the first StructuredError in err's chain.
// The second return value is false when err carries no structured code.
func CodeOf(err error) (ErrorCode, bool) {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code, true
	}
	return "", false
}

// IsCode reports whether err's chain contains a StructuredError with the given code.
func IsCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// IsRetryable reports whether err is classified under a retryable code.
// Unclassified errors are not retryable.
func IsRetryable(err error) bool {
	c, ok := CodeOf(err)
	return ok && c.Retryable()
}
