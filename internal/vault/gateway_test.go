package vault

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avolkovx/privseal/internal/sealed"
	"github.com/stretchr/testify/require"
)

func TestHTTPGateway_RequestDecryption(t *testing.T) {
	var gotHandles []sealed.Handle
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gatewayRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotHandles = req.Handles
		_ = json.NewEncoder(w).Encode(gatewayResponse{RequestID: "req-77"})
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL)
	id, err := gw.RequestDecryption(context.Background(), []sealed.Handle{"h1", "h2"})
	require.NoError(t, err)
	require.Equal(t, "req-77", id)
	require.Equal(t, []sealed.Handle{"h1", "h2"}, gotHandles)
}

func TestHTTPGateway_RetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(gatewayResponse{RequestID: "req-1"})
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL)
	id, err := gw.RequestDecryption(context.Background(), []sealed.Handle{"h"})
	require.NoError(t, err)
	require.Equal(t, "req-1", id)
	require.Equal(t, 3, attempts)
}

func TestHTTPGateway_RejectsClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad handles", http.StatusBadRequest)
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL)
	_, err := gw.RequestDecryption(context.Background(), []sealed.Handle{"h"})
	require.Error(t, err)
}
