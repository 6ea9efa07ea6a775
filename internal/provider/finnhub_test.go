package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"investtrack/internal/models"
)

func newTestFinnhub(server *httptest.Server, key string) *FinnhubProvider {
	return NewFinnhubProvider(server.Client(), key, WithFinnhubBaseURL(server.URL), WithFinnhubRate(0))
}

func TestFinnhubProvider_FetchQuote_Success(t *testing.T) {
	var lastURL string
	server := newJSONServer(http.StatusOK, `{"c":189.5,"d":1.25,"dp":0.66,"h":190.1,"l":187.3,"o":188,"pc":188.25,"t":1700000000}`, &lastURL)
	defer server.Close()

	res := newTestFinnhub(server, "secret").FetchQuote(context.Background(), "aapl")
	if !res.OK() {
		t.Fatalf("expected OK, got %s", res.Status)
	}
	q := res.Quote
	if q.Symbol != "AAPL" || q.Price != 189.5 || q.DayLow != 187.3 {
		t.Errorf("unexpected quote: %+v", q)
	}
	if q.MarketCap != models.MarketCapUnavailable || q.Currency != models.DefaultCurrency {
		t.Errorf("expected placeholder metadata, got %+v", q)
	}
	if !strings.HasPrefix(lastURL, "/quote?") || !strings.Contains(lastURL, "token=secret") {
		t.Errorf("unexpected request URL %s", lastURL)
	}
}

func TestFinnhubProvider_FetchQuote_SentinelZero(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Status
	}{
		{"zero price", `{"c":0,"d":null,"dp":null,"h":0,"l":0,"o":0,"pc":0,"t":0}`, StatusUnavailable},
		{"missing price", `{}`, StatusUnavailable},
		{"missing change", `{"c":10,"h":11,"l":9}`, StatusNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newJSONServer(http.StatusOK, tt.body, nil)
			defer server.Close()

			res := newTestFinnhub(server, "secret").FetchQuote(context.Background(), "ZZZZ")
			if res.Status != tt.want {
				t.Errorf("got status %s, want %s", res.Status, tt.want)
			}
			if res.OK() {
				t.Error("sentinel price must not produce a quote")
			}
		})
	}
}

func TestFinnhubProvider_FetchQuote_HTTPFailure(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusTooManyRequests, http.StatusInternalServerError} {
		server := newJSONServer(status, `{"error":"nope"}`, nil)
		res := newTestFinnhub(server, "secret").FetchQuote(context.Background(), "AAPL")
		server.Close()
		if res.Status != StatusUnavailable {
			t.Errorf("status %d: got %s, want unavailable", status, res.Status)
		}
	}
}

func TestFinnhubProvider_NoKey(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	p := newTestFinnhub(server, "  ")
	if p.Configured() {
		t.Fatal("expected provider without key to be unconfigured")
	}
	if res := p.FetchQuote(context.Background(), "AAPL"); res.Status != StatusUnavailable {
		t.Errorf("quote: got %s, want unavailable", res.Status)
	}
	if res := p.FetchChart(context.Background(), "AAPL", models.ChartWindow{Interval: models.IntervalDay}); res.Status != StatusUnavailable {
		t.Errorf("chart: got %s, want unavailable", res.Status)
	}
	if hits.Load() != 0 {
		t.Errorf("expected no HTTP calls, got %d", hits.Load())
	}
}

func TestFinnhubProvider_FetchChart_Resolution(t *testing.T) {
	tests := []struct {
		interval   models.Interval
		resolution string
	}{
		{models.Interval5Minute, "resolution=5&"},
		{models.IntervalHour, "resolution=60&"},
		{models.IntervalDay, "resolution=D&"},
		{models.IntervalWeek, "resolution=W&"},
	}

	for _, tt := range tests {
		t.Run(string(tt.interval), func(t *testing.T) {
			var lastURL string
			server := newJSONServer(http.StatusOK, `{"c":[10,11,12],"t":[1704067200,1704153600,1704240000],"s":"ok"}`, &lastURL)
			defer server.Close()

			res := newTestFinnhub(server, "secret").FetchChart(context.Background(), "AAPL", models.ChartWindow{
				From:     time.Unix(1704067200, 0),
				To:       time.Unix(1704240000, 0),
				Interval: tt.interval,
			})
			if !res.OK() {
				t.Fatalf("expected OK, got %s", res.Status)
			}
			if len(res.Points) != 3 || res.Points[2].Price != 12 {
				t.Errorf("unexpected points: %+v", res.Points)
			}
			if !strings.Contains(lastURL, tt.resolution) {
				t.Errorf("expected %q in %s", tt.resolution, lastURL)
			}
			if !strings.Contains(lastURL, "from=1704067200") || !strings.Contains(lastURL, "to=1704240000") {
				t.Errorf("expected window bounds in %s", lastURL)
			}
		})
	}
}

func TestFinnhubProvider_FetchChart_NonOK(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Status
	}{
		{"no data", `{"s":"no_data"}`, StatusNoData},
		{"empty ok", `{"c":[],"t":[],"s":"ok"}`, StatusNoData},
		{"length mismatch", `{"c":[1,2],"t":[1],"s":"ok"}`, StatusUnavailable},
		{"malformed", `{"c":"x"}`, StatusUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newJSONServer(http.StatusOK, tt.body, nil)
			defer server.Close()

			res := newTestFinnhub(server, "secret").FetchChart(context.Background(), "AAPL", models.ChartWindow{Interval: models.IntervalDay})
			if res.Status != tt.want {
				t.Errorf("got status %s, want %s", res.Status, tt.want)
			}
		})
	}
}

func finnhubCandleBody(n int, nulls map[int]bool) string {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	ts := make([]string, n)
	closes := make([]string, n)
	for i := 0; i < n; i++ {
		ts[i] = fmt.Sprint(start + int64(i)*86400)
		if nulls[i] {
			closes[i] = "null"
		} else {
			closes[i] = fmt.Sprintf("%.2f", 100+float64(i))
		}
	}
	return fmt.Sprintf(`{"c":[%s],"t":[%s],"s":"ok"}`, strings.Join(closes, ","), strings.Join(ts, ","))
}

func TestFinnhubProvider_FetchChart_FiltersNullCloses(t *testing.T) {
	window := models.ChartWindow{
		From:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Interval: models.IntervalDay,
	}

	t.Run("thirty_with_three_nulls", func(t *testing.T) {
		server := newJSONServer(http.StatusOK, finnhubCandleBody(30, map[int]bool{0: true, 14: true, 29: true}), nil)
		defer server.Close()

		res := newTestFinnhub(server, "secret").FetchChart(context.Background(), "AAPL", window)
		if !res.OK() {
			t.Fatalf("expected OK, got %s", res.Status)
		}
		if len(res.Points) != 27 {
			t.Fatalf("expected 27 points, got %d", len(res.Points))
		}
		if res.Points[0].Time != "2024-01-02" {
			t.Errorf("expected first kept date 2024-01-02, got %q", res.Points[0].Time)
		}
		for _, pt := range res.Points {
			if pt.Price == 0 {
				t.Fatalf("null close decoded as zero at %s", pt.Time)
			}
		}
	})

	t.Run("null_between_values", func(t *testing.T) {
		body := `{"c":[10,null,12],"t":[1704067200,1704153600,1704240000],"s":"ok"}`
		server := newJSONServer(http.StatusOK, body, nil)
		defer server.Close()

		res := newTestFinnhub(server, "secret").FetchChart(context.Background(), "AAPL", window)
		if !res.OK() {
			t.Fatalf("expected OK, got %s", res.Status)
		}
		if len(res.Points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(res.Points))
		}
		if res.Points[0].Price != 10 || res.Points[1].Price != 12 {
			t.Errorf("unexpected prices %v, %v", res.Points[0].Price, res.Points[1].Price)
		}
	})
}
