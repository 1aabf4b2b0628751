package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizportal/internal/infrastructure/config"
	"bizportal/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://portal.example")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	srv, err := NewServer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(srv.Lifecycle.Stop)
	return srv
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)

	t.Run("ping", func(t *testing.T) {
		w := serve(srv.Handler, http.MethodGet, "/v1/ping", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	})

	t.Run("seeded collections", func(t *testing.T) {
		w := serve(srv.Handler, http.MethodGet, "/v1/quotes", "")
		require.Equal(t, http.StatusOK, w.Code)
		var quotes []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quotes))
		assert.Len(t, quotes, len(database.MockQuotes()))

		w = serve(srv.Handler, http.MethodGet, "/v1/tickets", "")
		var tickets []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tickets))
		assert.Len(t, tickets, len(database.MockTickets()))
	})

	t.Run("submit quote prices from catalog", func(t *testing.T) {
		w := serve(srv.Handler, http.MethodPost, "/v1/quotes", `{"product_id":"1","quantity":2}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var quote map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
		assert.Equal(t, 860.0, quote["amount"])
		assert.Equal(t, "In Review", quote["status"])
	})

	t.Run("invoice pdf", func(t *testing.T) {
		w := serve(srv.Handler, http.MethodGet, "/v1/invoices/INV-2023-001/pdf", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/quotes", nil)
		req.Header.Set("Origin", "http://portal.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, req)

		assert.Equal(t, "http://portal.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("swagger", func(t *testing.T) {
		w := serve(srv.Handler, http.MethodGet, "/swagger/doc.json", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown quote", func(t *testing.T) {
		w := serve(srv.Handler, http.MethodPost, "/v1/quotes/QT-0/approve", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
