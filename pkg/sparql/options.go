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
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/foodkg/recommender/pkg/defaults"
)

const (
	// DefaultUserAgent is sent with every query.
	DefaultUserAgent = "foodkg-recommender/1.0"

	// Accept header for SELECT and ASK results.
	resultsMediaType = "application/sparql-results+json"

	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
)

// Option configures a Client.
type Option func(*Client)

// WithMethod sets the HTTP method used for queries. Only GET and POST are
// accepted; anything else leaves the current method unchanged.
func WithMethod(method string) Option {
	return func(c *Client) {
		switch m := strings.ToUpper(method); m {
		case http.MethodGet, http.MethodPost:
			c.method = m
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithBasicAuth sets HTTP basic credentials.
func WithBasicAuth(user, password string) Option {
	return func(c *Client) {
		c.user = user
		c.password = password
	}
}

// WithBearerToken sets a bearer token. When both a token and basic
// credentials are configured, the token is sent.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRetry configures the retry budget for transient failures.
// maxTries of 1 disables retries.
func WithRetry(maxTries uint, initialInterval, maxElapsed time.Duration) Option {
	return func(c *Client) {
		if maxTries > 0 {
			c.maxTries = maxTries
		}
		if initialInterval > 0 {
			c.initialInterval = initialInterval
		}
		if maxElapsed > 0 {
			c.maxElapsed = maxElapsed
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func newDefaultHTTPClient() *http.Client {
	t := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,

		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,

		IdleConnTimeout:   defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2: true,

		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	// No client or response header timeout: each attempt is bounded by the
	// per-query context deadline from WithTimeout.
	return &http.Client{Transport: t}
}
