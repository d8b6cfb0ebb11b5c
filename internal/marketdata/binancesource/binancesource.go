package binancesource

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"

	"tradingadvisor/internal/marketdata"
)

// Config controls the Binance kline source. Public kline data needs no API
// key, but one can be supplied for the higher request weight allowance.
type Config struct {
	Name      string
	APIKey    string
	SecretKey string
	BaseURL   string // optional override, used by tests
}

// Source fetches historical OHLCV series from Binance klines. Symbols use
// the exchange form ("BTCUSDT"), not the Yahoo pair form ("BTC-USD").
type Source struct {
	cfg    Config
	client *binance.Client
}

func New(cfg Config, httpClient *binance.Client) *Source {
	if cfg.Name == "" {
		cfg.Name = "Binance"
	}
	c := httpClient
	if c == nil {
		c = binance.NewClient(cfg.APIKey, cfg.SecretKey)
	}
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	return &Source{cfg: cfg, client: c}
}

func (s *Source) Name() string { return s.cfg.Name }

func (s *Source) Candles(ctx context.Context, symbol, start, end string, interval marketdata.Interval) (marketdata.Series, error) {
	p1, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("binance: start date %q: %w", start, err)
	}
	p2, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("binance: end date %q: %w", end, err)
	}

	klines, err := s.client.NewKlinesService().
		Symbol(symbol).
		Interval(binanceInterval(interval)).
		StartTime(p1.UTC().UnixMilli()).
		EndTime(p2.UTC().UnixMilli()).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance klines: %w", err)
	}

	out := make(marketdata.Series, 0, len(klines))
	for _, k := range klines {
		c, err := toCandle(k)
		if err != nil {
			// rows the exchange could not fill are dropped, not fatal
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func binanceInterval(iv marketdata.Interval) string {
	switch iv {
	case marketdata.Weekly:
		return "1w"
	case marketdata.Monthly:
		return "1M"
	default:
		return "1d"
	}
}

func toCandle(k *binance.Kline) (marketdata.Candle, error) {
	o, err := strconv.ParseFloat(k.Open, 64)
	if err != nil {
		return marketdata.Candle{}, fmt.Errorf("parse open %q: %w", k.Open, err)
	}
	h, err := strconv.ParseFloat(k.High, 64)
	if err != nil {
		return marketdata.Candle{}, fmt.Errorf("parse high %q: %w", k.High, err)
	}
	l, err := strconv.ParseFloat(k.Low, 64)
	if err != nil {
		return marketdata.Candle{}, fmt.Errorf("parse low %q: %w", k.Low, err)
	}
	c, err := strconv.ParseFloat(k.Close, 64)
	if err != nil {
		return marketdata.Candle{}, fmt.Errorf("parse close %q: %w", k.Close, err)
	}
	v, err := strconv.ParseFloat(k.Volume, 64)
	if err != nil {
		return marketdata.Candle{}, fmt.Errorf("parse volume %q: %w", k.Volume, err)
	}
	return marketdata.Candle{
		Time:   time.UnixMilli(k.OpenTime).UTC(),
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: int64(v),
	}, nil
}
