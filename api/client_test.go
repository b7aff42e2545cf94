package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchOrdersBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"customerName":"A","quantity":2,"price":100}]`))
	}))
	defer srv.Close()

	orders, err := NewClientWithBase(srv.URL).FetchOrders(context.Background())
	if err != nil {
		t.Fatalf("FetchOrders: %v", err)
	}
	if len(orders) != 1 || orders[0].CustomerName != "A" {
		t.Errorf("orders = %+v", orders)
	}
}

func TestFetchOrdersWrappedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"customerName":"A"},{"customerName":"B"}]}`))
	}))
	defer srv.Close()

	orders, err := NewClientWithBase(srv.URL).FetchOrders(context.Background())
	if err != nil {
		t.Fatalf("FetchOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("got %d orders, want 2", len(orders))
	}
}

func TestFetchOrdersErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewClientWithBase(srv.URL).FetchOrders(context.Background()); err == nil {
		t.Error("expected error on 502")
	}
	if _, err := NewClientWithBase("").FetchOrders(context.Background()); err == nil {
		t.Error("expected error on unconfigured base URL")
	}
}
