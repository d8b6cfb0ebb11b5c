package keycheck_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tradingadvisor/internal/config"
	"tradingadvisor/internal/keycheck"
)

func checkerFor(serverURL string) *keycheck.Checker {
	cfg := config.PersonalAI{APIKey: "test-key-abcd", BaseURL: serverURL}
	return keycheck.New(cfg, http.DefaultClient)
}

func TestCheck_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/api-key/validate", r.URL.Path)
		require.Equal(t, "test-key-abcd", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"validation":"success","firstName":"A","lastName":"B","email":"a@b.co"}`))
	}))
	defer server.Close()

	res := checkerFor(server.URL).Check(context.Background())

	require.Equal(t, keycheck.StatusOK, res.Status)
	require.Equal(t, "A", res.FirstName)
	require.Equal(t, "B", res.LastName)
	require.Equal(t, "a@b.co", res.Email)
	require.NotEmpty(t, res.RawBody)
}

func TestCheck_LogicalFailureOn200(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"validation":"failed"}`))
	}))
	defer server.Close()

	res := checkerFor(server.URL).Check(context.Background())

	// a 200 with a failed validation field is distinct from a transport error
	require.Equal(t, keycheck.StatusValidationFailed, res.Status)
	require.NotEqual(t, keycheck.StatusTransportError, res.Status)
	require.NotEmpty(t, res.Err)
	require.JSONEq(t, `{"validation":"failed"}`, string(res.RawBody))
}

func TestCheck_TransportFailure(t *testing.T) {
	t.Parallel()

	res := checkerFor("http://127.0.0.1:1").Check(context.Background())

	require.Equal(t, keycheck.StatusTransportError, res.Status)
	require.NotEmpty(t, res.Err)
}

func TestCheck_BadStatusIsTransport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	res := checkerFor(server.URL).Check(context.Background())

	require.Equal(t, keycheck.StatusTransportError, res.Status)
	require.Contains(t, res.Err, "401")
}

func TestCheck_EmptyAndInvalidBodies(t *testing.T) {
	t.Parallel()

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		res := checkerFor(server.URL).Check(context.Background())
		require.Equal(t, keycheck.StatusValidationFailed, res.Status)
		require.Equal(t, "empty response", res.Err)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		res := checkerFor(server.URL).Check(context.Background())
		require.Equal(t, keycheck.StatusValidationFailed, res.Status)
		require.Equal(t, "invalid JSON response", res.Err)
	})
}

func TestCheck_VerboseTrace(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"validation":"success"}`))
	}))
	defer server.Close()

	checker := checkerFor(server.URL)
	var trace strings.Builder
	checker.Out = &trace

	checker.Check(context.Background())

	out := trace.String()
	require.Contains(t, out, "Request URL: "+server.URL)
	require.Contains(t, out, "Response Status Code: 200")
	// the key never appears unmasked in diagnostics
	require.NotContains(t, out, "test-key-abcd")
	require.Contains(t, out, "***abcd")
}

func TestMaskKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "***wxyz", keycheck.MaskKey("test-key-wxyz"))
	require.Equal(t, "***", keycheck.MaskKey("abc"))
	require.Equal(t, "***", keycheck.MaskKey(""))
}
