// Package news fetches recent headlines for a ticker from a Google News
// RSS search, preferring established financial outlets.
package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"investtrack/internal/logger"
	"investtrack/internal/models"
)

const (
	defaultFeedURL = "https://news.google.com/rss/search"

	// Limit is the number of headlines returned per symbol.
	Limit = 8

	maxFeedBytes = 2 << 20
)

// credibleSources is ordered by preference: wire services, then financial
// media, then regional outlets, with Yahoo-owned sources last.
var credibleSources = []string{
	"Reuters", "Bloomberg", "Associated Press", "AP News", "Financial Times",
	"Wall Street Journal", "WSJ", "The Economist",

	"CNBC", "MarketWatch", "Barron's", "Investor's Business Daily", "The New York Times",
	"Washington Post", "Forbes", "Fortune", "Business Insider", "CNN Business",
	"Seeking Alpha", "The Motley Fool",

	"經濟日報", "工商時報", "中央通訊社", "中央社", "自由時報", "聯合報", "鉅亨網",
	"MoneyDJ理財網", "MoneyDJ", "財訊雙週刊", "財訊", "天下雜誌", "商業周刊", "今周刊",
	"數位時代", "非凡新聞", "鑽石投資", "Anue鉅亨",

	"南華早報", "South China Morning Post", "SCMP", "香港經濟日報", "HKET", "信報財經新聞",
	"信報", "明報", "星島日報", "東方日報", "文匯報", "經濟通", "AAStocks", "阿思達克財經網",

	"Yahoo Finance", "Yahoo奇摩", "Yahoo奇摩股市", "ETtoday",
}

var relMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Hour, Format: "%dm %s", DivBy: time.Minute},
	{D: humanize.Day, Format: "%dh %s", DivBy: time.Hour},
	{D: humanize.Week, Format: "%dd %s", DivBy: humanize.Day},
}

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
	Source      string `xml:"source"`
}

// Fetcher retrieves and ranks headlines.
type Fetcher struct {
	httpClient *http.Client
	feedURL    string
	policy     *bluemonday.Policy
	now        func() time.Time
}

// NewFetcher creates a fetcher for feedURL, or the Google News search
// endpoint when feedURL is empty.
func NewFetcher(httpClient *http.Client, feedURL string) *Fetcher {
	if feedURL == "" {
		feedURL = defaultFeedURL
	}
	return &Fetcher{
		httpClient: httpClient,
		feedURL:    feedURL,
		policy:     bluemonday.StrictPolicy(),
		now:        time.Now,
	}
}

// Fetch returns up to Limit headlines about symbol. Failures are logged and
// yield an empty list.
func (f *Fetcher) Fetch(ctx context.Context, symbol string) []models.NewsItem {
	items, err := f.fetchFeed(ctx, symbol)
	if err != nil {
		logger.Get().Warnw("News feed failed", "symbol", symbol, "error", err)
		return []models.NewsItem{}
	}
	return f.rank(items)
}

func (f *Fetcher) fetchFeed(ctx context.Context, symbol string) ([]rssItem, error) {
	q := url.Values{}
	q.Set("q", symbol+" stock")
	q.Set("hl", "en-US")
	q.Set("gl", "US")
	q.Set("ceid", "US:en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.feedURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxFeedBytes)).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}
	return feed.Channel.Items, nil
}

type rankedItem struct {
	item      rssItem
	source    string
	published time.Time
	priority  int
}

func (f *Fetcher) rank(items []rssItem) []models.NewsItem {
	ranked := make([]rankedItem, 0, len(items))
	for _, it := range items {
		src := strings.TrimSpace(it.Source)
		if src == "" {
			src = extractSource(it.Title)
		}
		ranked = append(ranked, rankedItem{
			item:      it,
			source:    src,
			published: parsePubDate(it.PubDate),
			priority:  sourcePriority(src),
		})
	}

	// Credible sources sort by list position; everything else ties at the end.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].priority != ranked[j].priority {
			return ranked[i].priority < ranked[j].priority
		}
		return ranked[i].published.After(ranked[j].published)
	})
	if len(ranked) > Limit {
		ranked = ranked[:Limit]
	}

	now := f.now()
	out := make([]models.NewsItem, 0, len(ranked))
	for _, r := range ranked {
		id := r.item.GUID
		if id == "" {
			id = uuid.NewString()
		}
		summary := strings.TrimSpace(html.UnescapeString(f.policy.Sanitize(r.item.Description)))
		if summary == "" {
			summary = r.item.Title
		}
		out = append(out, models.NewsItem{
			ID:      id,
			Title:   cleanHeadline(r.item.Title),
			Summary: summary,
			Source:  r.source,
			Time:    relativeTime(r.published, now),
			URL:     r.item.Link,
		})
	}
	return out
}

// sourcePriority returns the position of the first credible source that src
// mentions, or len(credibleSources) when none does.
func sourcePriority(src string) int {
	s := strings.ToLower(src)
	for i, c := range credibleSources {
		if strings.Contains(s, strings.ToLower(c)) {
			return i
		}
	}
	return len(credibleSources)
}

// cleanHeadline drops the " - Source" suffix Google News appends.
func cleanHeadline(title string) string {
	head, _, _ := strings.Cut(title, " - ")
	return head
}

func extractSource(title string) string {
	parts := strings.Split(title, " - ")
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return "Google News"
}

func parsePubDate(s string) time.Time {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC3339} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t
		}
	}
	return time.Unix(0, 0)
}

// relativeTime renders "5m ago", "3h ago" or "2d ago" within a week, and a
// calendar date beyond that.
func relativeTime(t, now time.Time) string {
	if t.After(now) {
		t = now
	}
	if now.Sub(t) >= humanize.Week {
		return t.Format("2006-01-02")
	}
	return humanize.CustomRelTime(t, now, "ago", "from now", relMagnitudes)
}
