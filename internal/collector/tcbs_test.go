package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTCBSFetchDailyBars(t *testing.T) {
	var gotTicker, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTicker = r.URL.Query().Get("ticker")
		gotType = r.URL.Query().Get("type")
		// Out of order on purpose, plus one bar in epoch millis.
		fmt.Fprint(w, `{"data":[
			{"tradingDate":"2025-08-28T00:00:00","open":1280,"high":1292,"low":1275,"close":1290,"volume":500000},
			{"tradingDate":"2025-08-27","open":1270,"high":1285,"low":1268,"close":1280,"volume":450000},
			{"time":1756425600000,"open":1290,"high":1301,"low":1288,"close":1300,"volume":480000}
		]}`)
	}))
	defer srv.Close()

	f := NewTCBSFetcher(srv.URL, "")
	bars, err := f.FetchDailyBars("vnindex", 30)
	if err != nil {
		t.Fatalf("FetchDailyBars: %v", err)
	}
	if gotTicker != "VNINDEX" {
		t.Errorf("ticker = %q, want upper-cased VNINDEX", gotTicker)
	}
	if gotType != "index" {
		t.Errorf("type = %q, want index for known index tickers", gotType)
	}
	if len(bars) != 3 {
		t.Fatalf("got %d bars, want 3", len(bars))
	}
	for i := 1; i < len(bars); i++ {
		if !bars[i-1].Time.Before(bars[i].Time) {
			t.Errorf("bars not chronological at %d", i)
		}
	}
	if bars[0].Close != 1280 {
		t.Errorf("first close = %.0f, want the Aug 27 bar", bars[0].Close)
	}
}

func TestTCBSStockType(t *testing.T) {
	var gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.URL.Query().Get("type")
		fmt.Fprint(w, `{"data":[{"tradingDate":"2025-08-28","open":90,"high":92,"low":89,"close":91,"volume":1000}]}`)
	}))
	defer srv.Close()

	f := NewTCBSFetcher(srv.URL, "")
	if _, err := f.FetchDailyBars("VCB", 30); err != nil {
		t.Fatalf("FetchDailyBars: %v", err)
	}
	if gotType != "stock" {
		t.Errorf("type = %q, want stock", gotType)
	}
}

func TestTCBSEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer srv.Close()

	f := NewTCBSFetcher(srv.URL, "")
	if _, err := f.FetchDailyBars("VCB", 30); err == nil {
		t.Fatal("expected error on empty data")
	}
}

func TestTCBSHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewTCBSFetcher(srv.URL, "")
	if _, err := f.FetchDailyBars("VCB", 30); err == nil {
		t.Fatal("expected error on 503")
	}
}
