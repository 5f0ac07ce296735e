package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/testutil"
)

func newTestHandler(t *testing.T, seed bool) http.Handler {
	t.Helper()

	logger := testutil.TestLogger(t)
	stor := testutil.SetupTestStorage(t, logger)
	if seed {
		testutil.SeedListings(t, stor)
	}

	return New(stor, config.Default(), logger)
}

func get(t *testing.T, handler http.Handler, path string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	return w.Result()
}

func TestCatalogHandler(t *testing.T) {
	resp := get(t, newTestHandler(t, true), "/")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	doc, err := catalog.ParseDocument(resp.Body, catalog.DefaultSelectors())
	require.NoError(t, err)
	require.Equal(t, 3, doc.Catalog.Len())
}

func TestCatalogHandlerEmpty(t *testing.T) {
	resp := get(t, newTestHandler(t, false), "/")
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportHandlers(t *testing.T) {
	handler := newTestHandler(t, true)

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/listings.csv", "text/csv", "make,model,price,title\nToyota,Corolla,20000,Toyota Corolla"},
		{"/listings.json", "application/json", `"model": "Civic"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := get(t, handler, tt.path)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), tt.contentType))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Contains(t, string(body), tt.contains)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	resp := get(t, newTestHandler(t, true), "/expenses")
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLoggingMiddlewareKeepsStatus(t *testing.T) {
	handler := loggingMiddleware(testutil.TestLogger(t), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	resp := get(t, handler, "/")
	defer resp.Body.Close()

	require.Equal(t, http.StatusTeapot, resp.StatusCode)
}
