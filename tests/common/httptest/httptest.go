//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON with an optional Bearer token.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	headers := map[string]string{}
	if authToken != "" {
		headers["Authorization"] = "Bearer " + authToken
	}
	return PerformRequestWithHeaders(t, router, method, path, body, headers)
}

// PerformStaffRequest authenticates the way the door scanner does.
func PerformStaffRequest(t *testing.T, router *gin.Engine, method, path string, body any, staffToken string) *httptest.ResponseRecorder {
	t.Helper()
	return PerformRequestWithHeaders(t, router, method, path, body, map[string]string{"Authorization": "Staff " + staffToken})
}

func PerformRequestWithHeaders(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		if _, ok := headers["Content-Type"]; !ok {
			headers = withHeader(headers, "Content-Type", "application/json")
		}
	}
	return PerformRawRequest(t, router, method, path, raw, headers)
}

// PerformRawRequest sends raw untouched, which signed webhook bodies need.
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path string, raw []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodes JSON response body into target struct
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}

func withHeader(headers map[string]string, k, v string) map[string]string {
	out := make(map[string]string, len(headers)+1)
	for hk, hv := range headers {
		out[hk] = hv
	}
	out[k] = v
	return out
}
