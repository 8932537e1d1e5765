package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rickgao/stockfighter-data/internal/api"
)

// newExchangeServer serves a two-venue exchange: TESTEX (open, two stocks)
// and SHUT (closed).
func newExchangeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/venues", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": true,
			"venues": [
				{"id": 1, "name": "Test Exchange", "venue": "TESTEX", "state": "open"},
				{"id": 2, "name": "Shut Exchange", "venue": "SHUT", "state": "closed"}
			]
		}`))
	})
	mux.HandleFunc("/venues/TESTEX/stocks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"ok": true,
			"symbols": [
				{"name": "Foreign Owned Occluded Bridge Architecture Resources", "symbol": "FOOBAR"},
				{"name": "Best American Zinc", "symbol": "BAZ"}
			]
		}`))
	})
	mux.HandleFunc("/venues/SHUT/stocks", func(w http.ResponseWriter, r *http.Request) {
		t.Error("stocks should not be fetched for a closed venue")
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSyncOnce(t *testing.T) {
	server := newExchangeServer(t)
	client := api.NewClient(server.URL, "test-key", api.WithTimeout(5*time.Second))

	r := New(DefaultConfig(), client, nil)

	if err := r.syncOnce(context.Background()); err != nil {
		t.Fatalf("syncOnce failed: %v", err)
	}

	venues := r.Venues()
	if len(venues) != 2 {
		t.Fatalf("len(venues) = %d, want 2", len(venues))
	}

	listings := r.Listings()
	if len(listings) != 2 {
		t.Fatalf("len(listings) = %d, want 2", len(listings))
	}
	for _, l := range listings {
		if l.Venue != "TESTEX" {
			t.Errorf("listing venue = %q, want TESTEX", l.Venue)
		}
	}
	if listings[0].Symbol != "FOOBAR" || listings[1].Symbol != "BAZ" {
		t.Errorf("listings = %+v, want FOOBAR then BAZ", listings)
	}

	if r.LastSyncAt().IsZero() {
		t.Error("LastSyncAt should be set after a successful sync")
	}
}

func TestSyncOnceFailureKeepsState(t *testing.T) {
	var failing atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/venues", func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.Write([]byte(`{"id": false, "error": "exchange offline"}`))
			return
		}
		w.Write([]byte(`{
			"id": true,
			"venues": [{"id": 1, "name": "Test Exchange", "venue": "TESTEX", "state": "open"}]
		}`))
	})
	mux.HandleFunc("/venues/TESTEX/stocks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true, "symbols": [{"name": "Foo", "symbol": "FOOBAR"}]}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := api.NewClient(server.URL, "test-key")
	r := New(DefaultConfig(), client, nil)

	if err := r.syncOnce(context.Background()); err != nil {
		t.Fatalf("first syncOnce failed: %v", err)
	}

	failing.Store(true)
	if err := r.syncOnce(context.Background()); err == nil {
		t.Fatal("second syncOnce should fail")
	}

	// The failed sync must not clear the previous watch list.
	if got := len(r.Listings()); got != 1 {
		t.Errorf("len(listings) after failed sync = %d, want 1", got)
	}
}

func TestStartStop(t *testing.T) {
	server := newExchangeServer(t)
	client := api.NewClient(server.URL, "test-key")

	r := New(Config{SyncInterval: time.Hour}, client, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if got := len(r.Listings()); got != 2 {
		t.Errorf("len(listings) = %d, want 2", got)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	if err := r.Stop(stopCtx); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestStartFailsWhenInitialSyncFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": false, "error": "exchange offline"}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL, "test-key")
	r := New(DefaultConfig(), client, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Start(ctx); err == nil {
		t.Error("Start should fail when the initial sync fails")
	}
}

func TestListingsReturnsCopy(t *testing.T) {
	server := newExchangeServer(t)
	client := api.NewClient(server.URL, "test-key")

	r := New(DefaultConfig(), client, nil)
	if err := r.syncOnce(context.Background()); err != nil {
		t.Fatalf("syncOnce failed: %v", err)
	}

	listings := r.Listings()
	listings[0].Symbol = "MUTATED"

	if r.Listings()[0].Symbol != "FOOBAR" {
		t.Error("mutating the returned slice should not affect registry state")
	}
}
