// Package forex normalizes six exchange-rate services behind one Provider
// capability: base + target currency in, a single float rate out. Variants
// differ only in URL template, how the key rides along, and the JSON path
// holding the rate.
package forex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tradingadvisor/internal/httpx"
)

// Provider resolves the current exchange rate between two currency codes.
type Provider interface {
	Name() string
	Rate(ctx context.Context, base, target string) (float64, error)
}

// getJSON performs one GET round trip and decodes the body into v. Every
// variant funnels through here so the status / decode handling exists once.
func getJSON(ctx context.Context, client *httpx.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		return fmt.Errorf("GET %s -> %d: %s", url, resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
