package personalai

import (
	"context"
	"net/http"
	"net/url"
)

// SendExternalInvite sends an email invite to a Personal AI or Lounge. An
// empty domainName falls back to the instance default.
func (c *Client) SendExternalInvite(ctx context.Context, email, domainName string) (*http.Response, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("domain_name", c.domain(domainName))
	return c.do(ctx, http.MethodPost, "/v1/invite", q, nil)
}
