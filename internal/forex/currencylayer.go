package forex

import (
	"context"
	"fmt"
	"net/url"

	"tradingadvisor/internal/httpx"
)

// CurrencyLayer reads rates from currencylayer.com. The rate sits at
// quotes.<base><target>, a concatenated pair key.
type CurrencyLayer struct {
	AccessKey string
	BaseURL   string
	client    *httpx.Client
}

func NewCurrencyLayer(accessKey, baseURL string, hc *httpx.Client) *CurrencyLayer {
	if baseURL == "" {
		baseURL = "https://api.currencylayer.com"
	}
	return &CurrencyLayer{AccessKey: accessKey, BaseURL: baseURL, client: hc}
}

func (p *CurrencyLayer) Name() string { return "currencylayer" }

func (p *CurrencyLayer) Rate(ctx context.Context, base, target string) (float64, error) {
	q := url.Values{}
	q.Set("access_key", p.AccessKey)
	q.Set("source", base)
	q.Set("currencies", target)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code int    `json:"code"`
			Info string `json:"info"`
		} `json:"error"`
		Quotes map[string]float64 `json:"quotes"`
	}
	u := fmt.Sprintf("%s/live?%s", p.BaseURL, q.Encode())
	if err := getJSON(ctx, p.client, u, &body); err != nil {
		return 0, err
	}
	if !body.Success {
		return 0, fmt.Errorf("%s: error code=%d info=%q", p.Name(), body.Error.Code, body.Error.Info)
	}
	rate, ok := body.Quotes[base+target]
	if !ok {
		return 0, fmt.Errorf("%s: no quote for %s%s in response", p.Name(), base, target)
	}
	return rate, nil
}
