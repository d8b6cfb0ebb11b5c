// Package personalai wraps the Personal AI REST API. Every operation is one
// round trip; failures are logged and propagated to the caller, never
// swallowed. A successful call hands back the *http.Response unmodified with
// its body still open.
package personalai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.personal.ai"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=personalai_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Personal AI API. Credentials are fixed at
// construction; the per-call DomainName override never mutates the instance
// default.
type Client struct {
	// apiKey authenticates every request via the x-api-key header.
	apiKey string
	// baseURL is the base URL for the API.
	baseURL string
	// domainName selects the default AI persona for calls that accept one.
	domainName string
	// httpClient is the HTTP client.
	httpClient HTTPClient
	// log receives error and (when debug) request/response metadata.
	log *logrus.Entry
	// debug enables request/response metadata logging.
	debug bool
}

// Option is a configuration option for the Personal AI client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithDomainName sets the default AI persona domain.
func WithDomainName(domainName string) Option {
	return func(c *Client) {
		c.domainName = domainName
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger routes client logging through the given logger.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) {
		c.log = log.WithField("component", "personalai")
	}
}

// WithDebug enables request/response metadata logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a new Personal AI client.
func NewClient(apiKey string, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("personalai: api key is required")
	}
	var client = &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		log:        logrus.NewEntry(logrus.StandardLogger()).WithField("component", "personalai"),
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// domain resolves a per-call persona override against the instance default.
func (c *Client) domain(override string) string {
	if override != "" {
		return override
	}
	return c.domainName
}

// do performs one API round trip. A nil payload sends no body; query may be
// nil. Any transport error or non-2xx status is logged and returned; a 2xx
// response is returned with its body intact.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		u += sep + query.Encode()
	}

	var body io.Reader = http.NoBody
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, c.fail(fmt.Errorf("encoding payload: %w", err), method, u)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, c.fail(fmt.Errorf("creating request: %w", err), method, u)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(fmt.Errorf("performing request: %w", err), method, u)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		resp.Body.Close()
		return nil, c.fail(fmt.Errorf("%s %s -> %d: %s", method, path, resp.StatusCode, snippet), method, u)
	}

	if c.debug {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Debug("personal ai request completed")
	}
	return resp, nil
}

// fail logs an operation error before handing it back to the caller.
func (c *Client) fail(err error, method, u string) error {
	c.log.WithError(err).WithFields(logrus.Fields{
		"method": method,
		"url":    u,
	}).Error("personal ai request failed")
	return err
}

// nullable converts an optional string to its wire form: empty becomes an
// explicit JSON null, everything else is sent as-is. Payloads always carry
// every defined key.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
