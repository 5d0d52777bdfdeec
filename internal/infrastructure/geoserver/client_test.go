package geoserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_FetchCities(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "cartowiki", srv.Client())

	payload, err := client.FetchCities(context.Background(), -500)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if string(payload) != `{"type":"FeatureCollection","features":[]}` {
		t.Fatalf("unexpected payload: %s", payload)
	}

	if gotPath != "/cartowiki/ows" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	want := map[string]string{
		"service":      "WFS",
		"version":      "1.0.0",
		"request":      "GetFeature",
		"typeName":     "cartowiki:cities",
		"outputFormat": "application/json",
		"viewparams":   "year:-500",
	}
	for key, value := range want {
		if gotQuery[key] != value {
			t.Fatalf("query %s = %q, want %q", key, gotQuery[key], value)
		}
	}
}

func TestClient_FetchCities_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "layer not found", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "cartowiki", srv.Client())

	if _, err := client.FetchCities(context.Background(), 1492); err == nil {
		t.Fatalf("expected error for non-200 upstream response")
	}
}
