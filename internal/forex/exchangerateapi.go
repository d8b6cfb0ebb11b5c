package forex

import (
	"context"
	"fmt"
	"net/url"

	"tradingadvisor/internal/httpx"
)

// ExchangeRateAPI reads rates from exchangerate-api.com (v6). The key is
// embedded in the URL path rather than a query parameter; the rate sits at
// conversion_rate.
type ExchangeRateAPI struct {
	APIKey  string
	BaseURL string
	client  *httpx.Client
}

func NewExchangeRateAPI(apiKey, baseURL string, hc *httpx.Client) *ExchangeRateAPI {
	if baseURL == "" {
		baseURL = "https://v6.exchangerate-api.com"
	}
	return &ExchangeRateAPI{APIKey: apiKey, BaseURL: baseURL, client: hc}
}

func (p *ExchangeRateAPI) Name() string { return "exchangerate-api" }

func (p *ExchangeRateAPI) Rate(ctx context.Context, base, target string) (float64, error) {
	var body struct {
		Result         string  `json:"result"`
		ErrorType      string  `json:"error-type"`
		ConversionRate float64 `json:"conversion_rate"`
	}
	u := fmt.Sprintf("%s/v6/%s/pair/%s/%s",
		p.BaseURL, url.PathEscape(p.APIKey), url.PathEscape(base), url.PathEscape(target))
	if err := getJSON(ctx, p.client, u, &body); err != nil {
		return 0, err
	}
	if body.Result != "success" {
		return 0, fmt.Errorf("%s: result=%q error=%q", p.Name(), body.Result, body.ErrorType)
	}
	return body.ConversionRate, nil
}
