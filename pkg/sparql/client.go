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

package sparql

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/foodkg/recommender/pkg/config"
	"github.com/foodkg/recommender/pkg/defaults"
	"github.com/foodkg/recommender/pkg/errors"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 64 << 20

// Client executes queries against a SPARQL 1.1 protocol endpoint.
// A Client is safe for concurrent use.
type Client struct {
	endpoint  *url.URL
	method    string
	timeout   time.Duration
	user      string
	password  string
	token     string
	userAgent string

	maxTries        uint
	initialInterval time.Duration
	maxElapsed      time.Duration

	httpClient *http.Client
}

// NewClient creates a Client for the given endpoint URL.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"sparql endpoint must be an absolute http(s) URL",
			map[string]any{"endpoint": endpoint})
	}

	c := &Client{
		endpoint:        u,
		method:          http.MethodGet,
		timeout:         defaults.SPARQLQueryTimeout,
		userAgent:       DefaultUserAgent,
		maxTries:        defaults.SPARQLMaxRetries,
		initialInterval: defaults.SPARQLRetryInitialInterval,
		maxElapsed:      defaults.SPARQLRetryMaxElapsed,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = newDefaultHTTPClient()
	}

	return c, nil
}

// NewClientFromConfig creates a Client from the resolved service configuration.
// Extra options are applied after the configured ones.
func NewClientFromConfig(cfg config.ServiceConfig, opts ...Option) (*Client, error) {
	base := []Option{
		WithMethod(cfg.SPARQLMethod),
		WithTimeout(cfg.SPARQLTimeout),
	}

	if cfg.HasCredentials() {
		if cfg.SPARQLAuthType == config.AuthDigest {
			slog.Warn("digest auth is not supported by the sparql client, sending basic credentials",
				"endpoint", cfg.SPARQLEndpoint)
		}
		base = append(base, WithBasicAuth(cfg.SPARQLUser, cfg.SPARQLPassword))
	}
	if cfg.SPARQLToken != "" {
		base = append(base, WithBearerToken(cfg.SPARQLToken))
	}

	return NewClient(cfg.SPARQLEndpoint, append(base, opts...)...)
}

// Endpoint returns the endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Method returns the HTTP method used for queries.
func (c *Client) Method() string {
	return c.method
}

// Query executes a SELECT or ASK query and decodes the JSON results.
// Transient failures are retried with exponential backoff.
func (c *Client) Query(ctx context.Context, query string) (*Results, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "sparql query is empty")
	}

	start := time.Now()
	slog.Debug("executing sparql query", "endpoint", c.endpoint.Redacted(), "method", c.method)

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.initialInterval

	attempt := 0
	res, err := backoff.Retry(ctx,
		func() (*Results, error) {
			attempt++
			return c.do(ctx, query)
		},
		backoff.WithBackOff(eb),
		backoff.WithMaxTries(c.maxTries),
		backoff.WithMaxElapsedTime(c.maxElapsed),
		backoff.WithNotify(func(err error, next time.Duration) {
			queryRetries.Inc()
			slog.Warn("sparql query failed, retrying",
				"attempt", attempt, "retryIn", next, "error", err)
		}),
	)

	if err != nil {
		err = c.classify(ctx, err)
		code, _ := errors.CodeOf(err)
		queryErrors.WithLabelValues(string(code)).Inc()
		queryDuration.WithLabelValues(c.method, "error").Observe(time.Since(start).Seconds())
		return nil, err
	}

	queryDuration.WithLabelValues(c.method, "success").Observe(time.Since(start).Seconds())
	slog.Debug("sparql query completed",
		"attempts", attempt,
		"bindings", len(res.Bindings()),
		"duration", time.Since(start))
	return res, nil
}

// Select executes a SELECT query and returns its solutions.
func (c *Client) Select(ctx context.Context, query string) ([]Binding, error) {
	res, err := c.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return res.Bindings(), nil
}

// Ask executes an ASK query.
func (c *Client) Ask(ctx context.Context, query string) (bool, error) {
	res, err := c.Query(ctx, query)
	if err != nil {
		return false, err
	}
	if res.Boolean == nil {
		return false, errors.New(errors.ErrCodeInternal, "sparql endpoint returned no boolean for ASK query")
	}
	return *res.Boolean, nil
}

// Ping checks that the endpoint answers a trivial ASK query.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Ask(ctx, "ASK {}")
	return err
}

// classify maps retry loop exits onto structured errors.
func (c *Client) classify(ctx context.Context, err error) error {
	// the max-tries exit returns the last error without unwrapping it
	var perm *backoff.PermanentError
	if stderrors.As(err, &perm) {
		err = perm.Unwrap()
	}
	if _, ok := errors.CodeOf(err); ok {
		return err
	}
	ectx := map[string]any{"endpoint": c.endpoint.Redacted()}
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.WrapWithContext(errors.ErrCodeTimeout, "sparql query timed out", err, ectx)
	case stderrors.Is(err, context.Canceled) || ctx.Err() != nil:
		return errors.WrapWithContext(errors.ErrCodeTimeout, "sparql query cancelled", err, ectx)
	default:
		return errors.WrapWithContext(errors.ErrCodeInternal, "sparql query failed", err, ectx)
	}
}

// do performs a single attempt. Errors wrapped with backoff.Permanent are not retried.
func (c *Client) do(parent context.Context, query string) (*Results, error) {
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, query)
	if err != nil {
		return nil, backoff.Permanent(errors.Wrap(errors.ErrCodeInternal, "failed to build sparql request", err))
	}

	ectx := map[string]any{"endpoint": c.endpoint.Redacted()}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if parent.Err() != nil {
			return nil, backoff.Permanent(parent.Err())
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			ectx["timeout"] = c.timeout.String()
			return nil, backoff.Permanent(errors.WrapWithContext(errors.ErrCodeTimeout,
				"sparql query timed out", err, ectx))
		}
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "sparql endpoint unreachable", err, ectx)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to read sparql response", err, ectx)
	}

	if resp.StatusCode != http.StatusOK {
		ectx["status"] = resp.StatusCode
		ectx["body"] = snippet(body)
		return nil, statusError(resp.StatusCode, ectx)
	}

	var res Results
	if err := json.Unmarshal(body, &res); err != nil {
		ectx["contentType"] = resp.Header.Get("Content-Type")
		return nil, backoff.Permanent(errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to decode sparql results", err, ectx))
	}
	return &res, nil
}

func statusError(status int, ectx map[string]any) error {
	msg := fmt.Sprintf("sparql endpoint returned %d %s", status, http.StatusText(status))
	switch {
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return errors.NewWithContext(errors.ErrCodeUnavailable, msg, ectx)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return backoff.Permanent(errors.NewWithContext(errors.ErrCodeUnauthorized, msg, ectx))
	case status == http.StatusNotFound:
		return backoff.Permanent(errors.NewWithContext(errors.ErrCodeUnavailable, msg, ectx))
	default:
		return backoff.Permanent(errors.NewWithContext(errors.ErrCodeInvalidRequest, msg, ectx))
	}
}

func (c *Client) newRequest(ctx context.Context, query string) (*http.Request, error) {
	var (
		req *http.Request
		err error
	)

	switch c.method {
	case http.MethodPost:
		form := url.Values{"query": {query}}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(),
			strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	default:
		u := *c.endpoint
		q := u.Query()
		q.Set("query", query)
		u.RawQuery = q.Encode()
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
	}

	req.Header.Set("Accept", resultsMediaType)
	req.Header.Set("User-Agent", c.userAgent)
	if c.user != "" && c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func snippet(body []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
