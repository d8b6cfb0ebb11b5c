// Package dataapi is the market/forex/crypto facade. Unlike the personalai
// client, every method here swallows failures: it logs the error and returns
// an empty sentinel, so callers cannot tell "no data in range" from "request
// failed". That ambiguity is part of the contract, not a bug to fix here.
package dataapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"tradingadvisor/internal/forex"
	"tradingadvisor/internal/httpx"
	"tradingadvisor/internal/marketdata"
)

// Client bundles the data sources behind the original wrapper surface.
type Client struct {
	stocks marketdata.Source
	crypto marketdata.Source
	rates  forex.Provider
	http   *httpx.Client
	log    *logrus.Entry
}

func New(stocks, crypto marketdata.Source, rates forex.Provider, hc *httpx.Client, log *logrus.Logger) *Client {
	return &Client{
		stocks: stocks,
		crypto: crypto,
		rates:  rates,
		http:   hc,
		log:    log.WithField("component", "dataapi"),
	}
}

// GetStockData fetches a historical OHLCV series for a stock ticker. On any
// failure it logs and returns an empty series.
func (c *Client) GetStockData(ctx context.Context, ticker, start, end string, interval marketdata.Interval) marketdata.Series {
	series, err := c.stocks.Candles(ctx, ticker, start, end, interval)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"source": c.stocks.Name(),
			"ticker": ticker,
		}).Error("fetching stock data failed")
		return marketdata.Series{}
	}
	return series
}

// GetCryptoData fetches a historical OHLCV series for a crypto symbol, with
// the same swallow-and-default contract as GetStockData.
func (c *Client) GetCryptoData(ctx context.Context, symbol, start, end string, interval marketdata.Interval) marketdata.Series {
	series, err := c.crypto.Candles(ctx, symbol, start, end, interval)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"source": c.crypto.Name(),
			"symbol": symbol,
		}).Error("fetching crypto data failed")
		return marketdata.Series{}
	}
	return series
}

// GetForexRate resolves the current exchange rate between two currency
// codes. The no-value sentinel is (0, false); errors never escape.
func (c *Client) GetForexRate(ctx context.Context, base, target string) (float64, bool) {
	rate, err := c.rates.Rate(ctx, base, target)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"provider": c.rates.Name(),
			"base":     base,
			"target":   target,
		}).Error("fetching forex rate failed")
		return 0, false
	}
	return rate, true
}

// GetHTMLData fetches the raw body of a URL. On any failure, including a
// non-2xx status, it logs and returns ("", false).
func (c *Client) GetHTMLData(ctx context.Context, rawURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		c.log.WithError(err).WithField("url", rawURL).Error("fetching html failed")
		return "", false
	}
	resp, err := c.http.Do(ctx, req)
	if err != nil {
		c.log.WithError(err).WithField("url", rawURL).Error("fetching html failed")
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WithError(fmt.Errorf("status %d", resp.StatusCode)).
			WithField("url", rawURL).Error("fetching html failed")
		return "", false
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.WithError(err).WithField("url", rawURL).Error("fetching html failed")
		return "", false
	}
	return string(b), true
}
