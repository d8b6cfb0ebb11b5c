package forex

import (
	"context"
	"fmt"
	"net/url"

	"tradingadvisor/internal/httpx"
)

// Fixer reads rates from fixer.io. Auth rides in the access_key query
// parameter; the rate sits at rates.<target> behind a success flag.
type Fixer struct {
	AccessKey string
	BaseURL   string
	client    *httpx.Client
}

func NewFixer(accessKey, baseURL string, hc *httpx.Client) *Fixer {
	if baseURL == "" {
		baseURL = "https://data.fixer.io"
	}
	return &Fixer{AccessKey: accessKey, BaseURL: baseURL, client: hc}
}

func (p *Fixer) Name() string { return "fixer.io" }

func (p *Fixer) Rate(ctx context.Context, base, target string) (float64, error) {
	q := url.Values{}
	q.Set("access_key", p.AccessKey)
	q.Set("base", base)
	q.Set("symbols", target)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code int    `json:"code"`
			Type string `json:"type"`
		} `json:"error"`
		Rates map[string]float64 `json:"rates"`
	}
	u := fmt.Sprintf("%s/api/latest?%s", p.BaseURL, q.Encode())
	if err := getJSON(ctx, p.client, u, &body); err != nil {
		return 0, err
	}
	if !body.Success {
		return 0, fmt.Errorf("%s: error code=%d type=%q", p.Name(), body.Error.Code, body.Error.Type)
	}
	rate, ok := body.Rates[target]
	if !ok {
		return 0, fmt.Errorf("%s: no rate for %s in response", p.Name(), target)
	}
	return rate, nil
}
