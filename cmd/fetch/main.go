package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"tradingadvisor/internal/config"
	"tradingadvisor/internal/dataapi"
	"tradingadvisor/internal/forex"
	"tradingadvisor/internal/httpx"
	"tradingadvisor/internal/logging"
	"tradingadvisor/internal/marketdata"
	"tradingadvisor/internal/marketdata/binancesource"
	"tradingadvisor/internal/marketdata/yahoo"
)

func main() {
	var op string
	var symbol string
	var start string
	var end string
	var interval string
	var base string
	var target string
	var rateProvider string
	var cryptoSource string
	var rawURL string
	var envPath string

	flag.StringVar(&op, "op", "stock", "operation: stock|crypto|forex|html")
	flag.StringVar(&symbol, "symbol", getenv("SYMBOL", "AAPL"), "ticker or crypto symbol")
	flag.StringVar(&start, "start", getenv("START_DATE", "2023-01-01"), "start date YYYY-MM-DD")
	flag.StringVar(&end, "end", getenv("END_DATE", "2023-06-30"), "end date YYYY-MM-DD")
	flag.StringVar(&interval, "interval", getenv("INTERVAL", "1d"), "candle interval: 1d|1wk|1mo")
	flag.StringVar(&base, "base", getenv("BASE_CURRENCY", "USD"), "forex base currency")
	flag.StringVar(&target, "target", getenv("TARGET_CURRENCY", "EUR"), "forex target currency")
	flag.StringVar(&rateProvider, "rate-provider", getenv("RATE_PROVIDER", "exchangerate.host"), "forex provider: exchangerate.host|fixer.io|currencylayer|openexchangerates|alphavantage|exchangerate-api")
	flag.StringVar(&cryptoSource, "crypto-source", getenv("CRYPTO_SOURCE", "yahoo"), "crypto source: yahoo|binance")
	flag.StringVar(&rawURL, "url", "", "URL for -op html")
	flag.StringVar(&envPath, "env", getenv("ENV_FILE", ""), "path to .env (optional)")
	flag.Parse()

	cfg, err := config.Load(envPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.Logging)
	hc := httpx.New(cfg.RequestTimeout)

	stocks := yahoo.New(yahoo.Config{}, hc)
	var crypto marketdata.Source = stocks
	if strings.EqualFold(cryptoSource, "binance") {
		crypto = binancesource.New(binancesource.Config{}, nil)
	}

	rates, err := pickRateProvider(rateProvider, cfg.Forex, hc)
	if err != nil {
		log.Fatalf("forex: %v", err)
	}

	client := dataapi.New(stocks, crypto, rates, hc, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+5*time.Second)
	defer cancel()

	switch op {
	case "stock":
		printJSON(client.GetStockData(ctx, symbol, start, end, marketdata.Interval(interval)))
	case "crypto":
		printJSON(client.GetCryptoData(ctx, symbol, start, end, marketdata.Interval(interval)))
	case "forex":
		rate, ok := client.GetForexRate(ctx, base, target)
		if !ok {
			fmt.Printf("%s/%s: no rate available\n", base, target)
			os.Exit(1)
		}
		fmt.Printf("%s/%s: %g\n", base, target, rate)
	case "html":
		if rawURL == "" {
			log.Fatal("-url is required for -op html")
		}
		body, ok := client.GetHTMLData(ctx, rawURL)
		if !ok {
			fmt.Println("no data")
			os.Exit(1)
		}
		fmt.Println(body)
	default:
		log.Fatalf("unknown op %q", op)
	}
}

func pickRateProvider(name string, keys config.Forex, hc *httpx.Client) (forex.Provider, error) {
	switch strings.ToLower(name) {
	case "exchangerate.host":
		return forex.NewExchangeRateHost(keys.ExchangeRateHostKey, "", hc), nil
	case "fixer.io", "fixer":
		return forex.NewFixer(keys.FixerKey, "", hc), nil
	case "currencylayer":
		return forex.NewCurrencyLayer(keys.CurrencyLayerKey, "", hc), nil
	case "openexchangerates":
		return forex.NewOpenExchangeRates(keys.OpenExchangeRatesID, "", hc), nil
	case "alphavantage":
		return forex.NewAlphaVantage(keys.AlphaVantageKey, "", hc), nil
	case "exchangerate-api":
		return forex.NewExchangeRateAPI(keys.ExchangeRateAPIKey, "", hc), nil
	}
	return nil, fmt.Errorf("unknown rate provider %q", name)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("encode: %v", err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
