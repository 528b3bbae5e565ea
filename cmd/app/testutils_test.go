package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sushihentaime/blogist/internal/blogservice"
	"github.com/sushihentaime/blogist/internal/common"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, string) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, string(responseBody)
}

func newTestApplication(t *testing.T) (*application, *common.Store) {
	store := common.TestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       store,
		blogService: blogservice.NewBlogService(store, nil, logger),
	}

	return app, store
}

func (ts *testServer) do(t *testing.T, method, path string, body io.Reader) (int, http.Header, string) {
	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func marshal(t *testing.T, payload any) io.Reader {
	if raw, ok := payload.(string); ok {
		return bytes.NewBufferString(raw)
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	return bytes.NewReader(jsonPayload)
}

func (ts *testServer) post(t *testing.T, path string, payload any) (int, http.Header, string) {
	return ts.do(t, http.MethodPost, path, marshal(t, payload))
}

func (ts *testServer) put(t *testing.T, path string, payload any) (int, http.Header, string) {
	return ts.do(t, http.MethodPut, path, marshal(t, payload))
}

func (ts *testServer) get(t *testing.T, path string) (int, http.Header, string) {
	return ts.do(t, http.MethodGet, path, nil)
}

func (ts *testServer) delete(t *testing.T, path string) (int, http.Header, string) {
	return ts.do(t, http.MethodDelete, path, nil)
}
