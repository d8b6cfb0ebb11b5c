package personalai

import (
	"context"
	"net/http"
	"net/url"
)

// ValidateAPIKey checks that the configured API key is correct and active.
func (c *Client) ValidateAPIKey(ctx context.Context) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, "/v1/api-key/validate", nil, nil)
}

// ValidateToken verifies a webhook token/challenge pair.
func (c *Client) ValidateToken(ctx context.Context, token, challenge string) (*http.Response, error) {
	q := url.Values{}
	q.Set("token", token)
	q.Set("challenge", challenge)
	return c.do(ctx, http.MethodGet, "/external/api/webhook/verification", q, nil)
}
