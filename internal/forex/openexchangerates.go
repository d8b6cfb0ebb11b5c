package forex

import (
	"context"
	"fmt"
	"net/url"

	"tradingadvisor/internal/httpx"
)

// OpenExchangeRates reads rates from openexchangerates.org. Auth rides in
// the app_id query parameter; the rate sits at rates.<target>.
type OpenExchangeRates struct {
	AppID   string
	BaseURL string
	client  *httpx.Client
}

func NewOpenExchangeRates(appID, baseURL string, hc *httpx.Client) *OpenExchangeRates {
	if baseURL == "" {
		baseURL = "https://openexchangerates.org"
	}
	return &OpenExchangeRates{AppID: appID, BaseURL: baseURL, client: hc}
}

func (p *OpenExchangeRates) Name() string { return "openexchangerates" }

func (p *OpenExchangeRates) Rate(ctx context.Context, base, target string) (float64, error) {
	q := url.Values{}
	q.Set("app_id", p.AppID)
	q.Set("base", base)
	q.Set("symbols", target)

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	u := fmt.Sprintf("%s/api/latest.json?%s", p.BaseURL, q.Encode())
	if err := getJSON(ctx, p.client, u, &body); err != nil {
		return 0, err
	}
	rate, ok := body.Rates[target]
	if !ok {
		return 0, fmt.Errorf("%s: no rate for %s in response", p.Name(), target)
	}
	return rate, nil
}
