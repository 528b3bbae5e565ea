package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverPanic(t *testing.T) {
	app, _ := newTestApplication(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
	assert.JSONEq(t, `{"detail":"the server encountered a problem and could not process your request"}`, res.Body.String())
}

func TestLogRequest(t *testing.T) {
	testCases := []struct {
		name      string
		handler   http.HandlerFunc
		wantCode  int
		wantLevel string
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			},
			wantCode:  http.StatusTeapot,
			wantLevel: "INFO",
		},
		{
			name: "implicit ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("[]"))
			},
			wantCode:  http.StatusOK,
			wantLevel: "INFO",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantCode:  http.StatusInternalServerError,
			wantLevel: "ERROR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app, _ := newTestApplication(t)

			var buf bytes.Buffer
			app.logger = slog.New(slog.NewJSONHandler(&buf, nil))

			req := httptest.NewRequest(http.MethodGet, "/blog?page=2", nil)
			res := httptest.NewRecorder()

			app.logRequest(tc.handler).ServeHTTP(res, req)

			assert.Equal(t, tc.wantCode, res.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "request", entry["msg"])
			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/blog?page=2", entry["uri"])
			assert.Equal(t, float64(tc.wantCode), entry["status"])
			assert.Contains(t, entry, "duration")
		})
	}
}
