//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders compares response headers. An empty expected value means the
// header must be absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Empty(t, w.Header().Get(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertNoStore checks that the response is marked as not cacheable.
func AssertNoStore(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{"Cache-Control": "no-store"})
}
