package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetSOLPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/price" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("ids") != "solana" || r.URL.Query().Get("vs_currencies") != "eur" {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"solana":{"eur":131.456}}`))
	}))
	defer srv.Close()

	price, err := NewCoinGeckoClient(srv.URL+"/").GetSOLPrice(context.Background(), "EUR")
	if err != nil {
		t.Fatalf("GetSOLPrice: %v", err)
	}
	if price != "131.46" {
		t.Errorf("price = %q, want 131.46", price)
	}
}

func TestGetSOLPrice_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("vs_currencies") == "xxx" {
			w.Write([]byte(`{"solana":{}}`))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewCoinGeckoClient(srv.URL)
	if _, err := c.GetSOLPrice(context.Background(), "usd"); err == nil {
		t.Error("expected error on non-200 status")
	}
	if _, err := c.GetSOLPrice(context.Background(), "xxx"); err == nil {
		t.Error("expected error for missing currency in response")
	}
	if _, err := c.GetSOLPrice(context.Background(), " "); err == nil {
		t.Error("expected error for empty currency")
	}
}
