//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// asserts a 422 response and returns the reported field names
func AssertValidationResponse(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", http.StatusUnprocessableEntity, w.Code, w.Body.String()))

	var resp struct {
		Detail []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"detail"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode validation response JSON: %s", w.Body.String()))

	fields := make([]string, 0, len(resp.Detail))
	for _, d := range resp.Detail {
		fields = append(fields, d.Field)
	}
	return fields
}

// asserts the Location header points under base and returns the trailing id
func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, base string) string {
	t.Helper()

	loc := w.Header().Get("Location")
	prefix := strings.TrimSuffix(base, "/") + "/"
	if !assert.True(t, strings.HasPrefix(loc, prefix), "Location %q is not under %q", loc, base) {
		return ""
	}
	return strings.TrimPrefix(loc, prefix)
}
