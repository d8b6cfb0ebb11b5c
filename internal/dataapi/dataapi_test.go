package dataapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"tradingadvisor/internal/dataapi"
	"tradingadvisor/internal/httpx"
	"tradingadvisor/internal/marketdata"
)

type stubSource struct {
	series marketdata.Series
	err    error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Candles(ctx context.Context, symbol, start, end string, interval marketdata.Interval) (marketdata.Series, error) {
	return s.series, s.err
}

type stubRates struct {
	rate float64
	err  error
}

func (s *stubRates) Name() string { return "stub-rates" }

func (s *stubRates) Rate(ctx context.Context, base, target string) (float64, error) {
	return s.rate, s.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestGetStockData(t *testing.T) {
	t.Parallel()

	want := marketdata.Series{{Time: time.Unix(1672704000, 0).UTC(), Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10}}
	c := dataapi.New(&stubSource{series: want}, &stubSource{}, &stubRates{}, httpx.New(time.Second), quietLogger())

	got := c.GetStockData(context.Background(), "AAPL", "2023-01-01", "2023-06-30", marketdata.Daily)
	require.Equal(t, want, got)
}

func TestGetStockData_FailureReturnsEmpty(t *testing.T) {
	t.Parallel()

	c := dataapi.New(&stubSource{err: errors.New("boom")}, &stubSource{}, &stubRates{}, httpx.New(time.Second), quietLogger())

	got := c.GetStockData(context.Background(), "AAPL", "2023-01-01", "2023-06-30", marketdata.Daily)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestGetCryptoData_FailureReturnsEmpty(t *testing.T) {
	t.Parallel()

	c := dataapi.New(&stubSource{}, &stubSource{err: errors.New("boom")}, &stubRates{}, httpx.New(time.Second), quietLogger())

	got := c.GetCryptoData(context.Background(), "BTC-USD", "2023-01-01", "2023-06-30", marketdata.Daily)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestGetForexRate(t *testing.T) {
	t.Parallel()

	c := dataapi.New(&stubSource{}, &stubSource{}, &stubRates{rate: 0.9214}, httpx.New(time.Second), quietLogger())

	rate, ok := c.GetForexRate(context.Background(), "USD", "EUR")
	require.True(t, ok)
	require.InEpsilon(t, 0.9214, rate, 1e-9)
}

func TestGetForexRate_FailureReturnsNoValue(t *testing.T) {
	t.Parallel()

	c := dataapi.New(&stubSource{}, &stubSource{}, &stubRates{err: errors.New("boom")}, httpx.New(time.Second), quietLogger())

	rate, ok := c.GetForexRate(context.Background(), "USD", "EUR")
	require.False(t, ok)
	require.Zero(t, rate)
}

func TestGetHTMLData(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>hello</html>"))
	}))
	defer server.Close()

	c := dataapi.New(&stubSource{}, &stubSource{}, &stubRates{}, httpx.New(time.Second), quietLogger())

	body, ok := c.GetHTMLData(context.Background(), server.URL)
	require.True(t, ok)
	require.Equal(t, "<html>hello</html>", body)
}

func TestGetHTMLData_BadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	c := dataapi.New(&stubSource{}, &stubSource{}, &stubRates{}, httpx.New(time.Second), quietLogger())

	body, ok := c.GetHTMLData(context.Background(), server.URL)
	require.False(t, ok)
	require.Empty(t, body)
}
