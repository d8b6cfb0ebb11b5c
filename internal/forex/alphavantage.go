package forex

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"tradingadvisor/internal/httpx"
)

// AlphaVantage reads rates from alphavantage.co. The rate comes back as a
// string inside the nested "Realtime Currency Exchange Rate" object.
type AlphaVantage struct {
	APIKey  string
	BaseURL string
	client  *httpx.Client
}

func NewAlphaVantage(apiKey, baseURL string, hc *httpx.Client) *AlphaVantage {
	if baseURL == "" {
		baseURL = "https://www.alphavantage.co"
	}
	return &AlphaVantage{APIKey: apiKey, BaseURL: baseURL, client: hc}
}

func (p *AlphaVantage) Name() string { return "alphavantage" }

func (p *AlphaVantage) Rate(ctx context.Context, base, target string) (float64, error) {
	q := url.Values{}
	q.Set("function", "CURRENCY_EXCHANGE_RATE")
	q.Set("from_currency", base)
	q.Set("to_currency", target)
	q.Set("apikey", p.APIKey)

	var body struct {
		Realtime struct {
			ExchangeRate string `json:"5. Exchange Rate"`
		} `json:"Realtime Currency Exchange Rate"`
		ErrorMessage string `json:"Error Message"`
		Note         string `json:"Note"`
	}
	u := fmt.Sprintf("%s/query?%s", p.BaseURL, q.Encode())
	if err := getJSON(ctx, p.client, u, &body); err != nil {
		return 0, err
	}
	if body.ErrorMessage != "" {
		return 0, fmt.Errorf("%s: %s", p.Name(), body.ErrorMessage)
	}
	if body.Realtime.ExchangeRate == "" {
		if body.Note != "" {
			return 0, fmt.Errorf("%s: %s", p.Name(), body.Note)
		}
		return 0, fmt.Errorf("%s: no exchange rate in response", p.Name())
	}
	rate, err := strconv.ParseFloat(body.Realtime.ExchangeRate, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: parse rate %q: %w", p.Name(), body.Realtime.ExchangeRate, err)
	}
	return rate, nil
}
