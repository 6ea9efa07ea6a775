package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"investtrack/internal/logger"
	"investtrack/internal/market"
	"investtrack/internal/models"
	"investtrack/internal/provider"
	"investtrack/internal/services"
	"investtrack/internal/testutil"
	"investtrack/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "error")
	validator.Register()
}

type testApp struct {
	Router *gin.Engine
	Market *market.Service
}

type staticNews struct{}

func (staticNews) Fetch(context.Context, string) []models.NewsItem {
	return []models.NewsItem{{ID: "1", Title: "Apple beats estimates", Source: "Reuters", Time: "1h ago"}}
}

// newUpstream fakes the Yahoo endpoints: only AAPL has a quote and live
// search never returns anything.
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/quote", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("symbols") != "AAPL" {
			_, _ = fmt.Fprint(w, `{"quoteResponse":{"result":[],"error":null}}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"quoteResponse":{"result":[{"symbol":"AAPL","longName":"Apple Inc.","currency":"USD",
			"regularMarketPrice":189.5,"regularMarketChange":1.25,"regularMarketChangePercent":0.66,
			"regularMarketDayHigh":190.1,"regularMarketDayLow":187.3,"marketCap":2950000000000}],"error":null}}`)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"quotes":[]}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	upstream := newUpstream(t)
	yahoo := provider.NewYahooProvider(upstream.Client(),
		provider.WithYahooURLs(upstream.URL+"/quote", upstream.URL+"/chart", upstream.URL+"/search"))
	finnhub := provider.NewFinnhubProvider(upstream.Client(), "")

	marketService := market.NewService(finnhub, yahoo, market.Options{})
	portfolioService := services.NewPortfolioService(testutil.SetupTestDB(t), marketService)

	router := newRouter(appServices{market: marketService, news: staticNews{}, portfolio: portfolioService})
	return &testApp{Router: router, Market: marketService}
}

func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
}

func TestStockFlow(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/stock/aapl", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stock page: %d %s", rec.Code, rec.Body.String())
	}
	var page struct {
		models.Quote
		News []models.NewsItem `json:"news"`
	}
	decode(t, rec, &page)
	if page.Name != "Apple Inc." || page.MarketCap != "2.95T" || len(page.News) != 1 {
		t.Errorf("unexpected page %+v", page)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected request ID header")
	}

	rec = app.request("GET", "/api/stock/ZZZZ", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown symbol: expected 404, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/stock/search?q=2330", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("search: %d %s", rec.Code, rec.Body.String())
	}
	var results []models.SearchResult
	decode(t, rec, &results)
	if len(results) == 0 || results[0].Symbol != "2330.TW" {
		t.Errorf("expected local table match, got %+v", results)
	}

	rec = app.request("GET", "/api/health", "")
	var health struct {
		Status       string `json:"status"`
		CacheEntries int    `json:"cache_entries"`
	}
	decode(t, rec, &health)
	if health.Status != "ok" || health.CacheEntries != 1 {
		t.Errorf("expected one cached quote, got %+v", health)
	}
}

func TestPortfolioFlow(t *testing.T) {
	app := setupApp(t)

	rec := app.request("PUT", "/api/portfolio/aapl", `{"shares":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update shares: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("PUT", "/api/portfolio/ZZZZ", `{"shares":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update shares: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/portfolio/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("summary: %d %s", rec.Code, rec.Body.String())
	}
	var summary services.PortfolioSummary
	decode(t, rec, &summary)
	if summary.Unavailable != 1 {
		t.Errorf("expected ZZZZ unavailable, got %d", summary.Unavailable)
	}
	if len(summary.Totals) != 1 || summary.Totals[0].Amount != "379.00" || summary.Totals[0].Display != "$379.00" {
		t.Errorf("unexpected totals %+v", summary.Totals)
	}

	rec = app.request("PUT", "/api/portfolio/AAPL", `{"shares":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove via zero: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/portfolio", "")
	var page struct {
		Data       []models.PortfolioPosition `json:"data"`
		TotalItems int64                      `json:"total_items"`
	}
	decode(t, rec, &page)
	if page.TotalItems != 1 || page.Data[0].Symbol != "ZZZZ" {
		t.Errorf("expected only ZZZZ left, got %+v", page)
	}

	rec = app.request("DELETE", "/api/portfolio/ZZZZ", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/portfolio/ZZZZ", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rec.Code)
	}
}
