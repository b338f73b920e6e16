//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Header is an extra request header; a blank Value removes the header.
type Header struct {
	Key   string
	Value string
}

// executes HTTP request with an optional JSON body
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, headers ...Header) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewReader(b)
		headers = append([]Header{{Key: "Content-Type", Value: gin.MIMEJSON}}, headers...)
	}
	return serve(router, httptest.NewRequest(method, path, reqBody), headers)
}

// sends a raw body as-is, for malformed JSON cases
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, body string, headers ...Header) *httptest.ResponseRecorder {
	t.Helper()

	headers = append([]Header{{Key: "Content-Type", Value: gin.MIMEJSON}}, headers...)
	return serve(router, httptest.NewRequest(method, path, bytes.NewBufferString(body)), headers)
}

func serve(router *gin.Engine, req *http.Request, headers []Header) *httptest.ResponseRecorder {
	for _, h := range headers {
		if h.Value == "" {
			req.Header.Del(h.Key)
			continue
		}
		req.Header.Set(h.Key, h.Value)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
