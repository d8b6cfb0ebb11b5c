// Package keycheck is a standalone, deliberately verbose re-implementation
// of the API key validation call. Where the personalai client raises on any
// failure, this one never returns a Go error: every outcome is folded into a
// discriminated Result so a transport failure, a logical failure behind an
// HTTP 200, and a success are all distinguishable.
package keycheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tradingadvisor/internal/config"
)

// Status discriminates the three validation outcomes.
type Status string

const (
	// StatusOK means the key is valid and user fields were returned.
	StatusOK Status = "success"
	// StatusValidationFailed means the API answered 200 but the payload
	// signals an invalid or inactive key.
	StatusValidationFailed Status = "validation_failed"
	// StatusTransportError means the request itself failed (network error or
	// non-2xx status).
	StatusTransportError Status = "transport_error"
)

// Result is the structured validation outcome. RawBody carries whatever the
// API returned, when anything was readable.
type Result struct {
	Status    Status          `json:"validation"`
	FirstName string          `json:"firstName,omitempty"`
	LastName  string          `json:"lastName,omitempty"`
	Email     string          `json:"email,omitempty"`
	Err       string          `json:"error,omitempty"`
	RawBody   json.RawMessage `json:"response_body,omitempty"`
}

// HTTPClient describes an HTTP client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Checker validates a Personal AI API key with verbose diagnostics written
// to Out.
type Checker struct {
	cfg    config.PersonalAI
	client HTTPClient
	// Out receives the diagnostic trace; defaults to io.Discard.
	Out io.Writer
}

func New(cfg config.PersonalAI, client HTTPClient) *Checker {
	if client == nil {
		client = http.DefaultClient
	}
	return &Checker{cfg: cfg, client: client, Out: io.Discard}
}

// Check performs the validation round trip. It never returns a Go error;
// the Result discriminates all outcomes.
func (c *Checker) Check(ctx context.Context) Result {
	u := c.cfg.BaseURL + "/v1/api-key/validate"

	fmt.Fprintf(c.Out, "Request URL: %s\n", u)
	fmt.Fprintf(c.Out, "Request Headers: Content-Type=application/json x-api-key=%s\n", MaskKey(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return Result{Status: StatusTransportError, Err: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		fmt.Fprintf(c.Out, "Request failed: %v\n", err)
		return Result{Status: StatusTransportError, Err: err.Error()}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	fmt.Fprintf(c.Out, "Response Status Code: %d\n", resp.StatusCode)
	fmt.Fprintf(c.Out, "Response Headers: %v\n", resp.Header)
	fmt.Fprintf(c.Out, "Response Body: %s\n", body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{
			Status:  StatusTransportError,
			Err:     fmt.Sprintf("unexpected status %d", resp.StatusCode),
			RawBody: rawOrNil(body),
		}
	}
	if readErr != nil {
		return Result{Status: StatusTransportError, Err: readErr.Error()}
	}
	if len(body) == 0 {
		return Result{Status: StatusValidationFailed, Err: "empty response"}
	}

	var parsed struct {
		Validation string `json:"validation"`
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Email      string `json:"email"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Result{
			Status:  StatusValidationFailed,
			Err:     "invalid JSON response",
			RawBody: rawOrNil(body),
		}
	}

	// a 200 can still carry a failed validation; that is a logical failure,
	// not a transport one
	if parsed.Validation != "success" {
		return Result{
			Status:  StatusValidationFailed,
			Err:     "validation failed despite 200 status code",
			RawBody: body,
		}
	}

	return Result{
		Status:    StatusOK,
		FirstName: parsed.FirstName,
		LastName:  parsed.LastName,
		Email:     parsed.Email,
		RawBody:   body,
	}
}

// MaskKey keeps only the last four characters of a credential visible.
func MaskKey(key string) string {
	if len(key) <= 4 {
		return "***"
	}
	return "***" + key[len(key)-4:]
}

func rawOrNil(body []byte) json.RawMessage {
	if json.Valid(body) {
		return body
	}
	return nil
}
