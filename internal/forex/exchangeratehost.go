package forex

import (
	"context"
	"fmt"
	"net/url"

	"tradingadvisor/internal/httpx"
)

// ExchangeRateHost reads rates from exchangerate.host. The rate sits at
// rates.<target>.
type ExchangeRateHost struct {
	AccessKey string
	BaseURL   string
	client    *httpx.Client
}

func NewExchangeRateHost(accessKey, baseURL string, hc *httpx.Client) *ExchangeRateHost {
	if baseURL == "" {
		baseURL = "https://api.exchangerate.host"
	}
	return &ExchangeRateHost{AccessKey: accessKey, BaseURL: baseURL, client: hc}
}

func (p *ExchangeRateHost) Name() string { return "exchangerate.host" }

func (p *ExchangeRateHost) Rate(ctx context.Context, base, target string) (float64, error) {
	q := url.Values{}
	q.Set("base", base)
	q.Set("symbols", target)
	if p.AccessKey != "" {
		q.Set("access_key", p.AccessKey)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	u := fmt.Sprintf("%s/latest?%s", p.BaseURL, q.Encode())
	if err := getJSON(ctx, p.client, u, &body); err != nil {
		return 0, err
	}
	rate, ok := body.Rates[target]
	if !ok {
		return 0, fmt.Errorf("%s: no rate for %s in response", p.Name(), target)
	}
	return rate, nil
}
