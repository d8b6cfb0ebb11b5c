package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tradingadvisor/internal/httpx"
	"tradingadvisor/internal/marketdata"
)

// Config controls the Yahoo Finance chart client. The chart endpoint needs
// no API key.
type Config struct {
	Name    string
	BaseURL string
}

// Source fetches historical OHLCV series from the Yahoo Finance chart API.
// The same endpoint serves equities ("AAPL") and crypto pairs ("BTC-USD").
type Source struct {
	cfg    Config
	client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Source {
	if cfg.Name == "" {
		cfg.Name = "YahooFinance"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://query1.finance.yahoo.com"
	}
	return &Source{cfg: cfg, client: hc}
}

func (s *Source) Name() string { return s.cfg.Name }

func (s *Source) Candles(ctx context.Context, symbol, start, end string, interval marketdata.Interval) (marketdata.Series, error) {
	p1, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("yahoo: start date %q: %w", start, err)
	}
	p2, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("yahoo: end date %q: %w", end, err)
	}

	q := url.Values{}
	q.Set("period1", strconv.FormatInt(p1.UTC().Unix(), 10))
	q.Set("period2", strconv.FormatInt(p2.UTC().Unix(), 10))
	q.Set("interval", string(interval))
	q.Set("events", "history")

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", s.cfg.BaseURL, url.PathEscape(symbol), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		return nil, fmt.Errorf("GET %s -> %d: %s", u, resp.StatusCode, string(b))
	}

	var api chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if api.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s: %s", api.Chart.Error.Code, api.Chart.Error.Description)
	}
	if len(api.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: empty result for %s", symbol)
	}

	res := api.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return marketdata.Series{}, nil
	}
	quote := res.Indicators.Quote[0]

	out := make(marketdata.Series, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		o := at(quote.Open, i)
		h := at(quote.High, i)
		l := at(quote.Low, i)
		c := at(quote.Close, i)
		v := at(quote.Volume, i)
		// a null anywhere in the row means the row is unusable
		if o == nil || h == nil || l == nil || c == nil || v == nil {
			continue
		}
		out = append(out, marketdata.Candle{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   *o,
			High:   *h,
			Low:    *l,
			Close:  *c,
			Volume: int64(*v),
		})
	}
	return out, nil
}

func at(vals []*float64, i int) *float64 {
	if i < 0 || i >= len(vals) {
		return nil
	}
	return vals[i]
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
