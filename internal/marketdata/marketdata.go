package marketdata

import (
	"context"
	"time"
)

// Interval selects the candle width of a historical series.
type Interval string

const (
	Daily   Interval = "1d"
	Weekly  Interval = "1wk"
	Monthly Interval = "1mo"
)

// Candle is one row of a historical series. All fields are required; sources
// drop rows where the upstream payload left any of them null.
type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Series is a time-ordered list of candles.
type Series []Candle

// Source fetches a historical OHLCV series for one symbol. Start and end are
// YYYY-MM-DD strings passed through without local validation; a malformed
// date is rejected upstream, not here.
type Source interface {
	Name() string
	Candles(ctx context.Context, symbol, start, end string, interval Interval) (Series, error)
}
