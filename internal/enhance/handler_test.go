package enhance

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func serve(t *testing.T, h http.Handler, method, body string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(method, "/api/enhance-code", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := map[string]string{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestHandlerSuccess(t *testing.T) {
	fc := &fakeCompleter{reply: "```python\nprint(1)\n```"}
	h := NewHandler(NewService(fc), zaptest.NewLogger(t))

	rec, out := serve(t, h, http.MethodPost, `{"code":"print( 1 )"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "print(1)", out["enhancedCode"])
	assert.NotContains(t, out, "error")

	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestHandlerEmptyModelOutput(t *testing.T) {
	h := NewHandler(NewService(&fakeCompleter{reply: "```go\n```"}), zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodPost, "/api/enhance-code", strings.NewReader(`{"code":"x"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"enhancedCode":""}`, rec.Body.String())
}

func TestHandlerKeepsRequestID(t *testing.T) {
	h := NewHandler(NewService(&fakeCompleter{reply: "x"}), nil)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"code":"x"}`))
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestHandlerErrors(t *testing.T) {
	tests := []struct {
		name      string
		completer Completer
		method    string
		body      string
		status    int
		message   string
	}{
		{"missing code", &fakeCompleter{}, http.MethodPost, `{}`, http.StatusBadRequest, "Code is required"},
		{"empty code", &fakeCompleter{}, http.MethodPost, `{"code":""}`, http.StatusBadRequest, "Code is required"},
		{"malformed body", &fakeCompleter{}, http.MethodPost, `{"code":`, http.StatusBadRequest, "invalid JSON body"},
		{"not configured", nil, http.MethodPost, `{"code":"x"}`, http.StatusInternalServerError, ErrNotConfigured.Error()},
		{"model failure", &fakeCompleter{err: errors.New("upstream 503")}, http.MethodPost, `{"code":"x"}`, http.StatusInternalServerError, "enhance code: upstream 503"},
		{"wrong method", &fakeCompleter{}, http.MethodGet, ``, http.StatusMethodNotAllowed, "method not allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(NewService(tt.completer), zaptest.NewLogger(t))
			rec, out := serve(t, h, tt.method, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, out["error"])
			assert.NotContains(t, out, "enhancedCode")
		})
	}
}
