package models

// DefaultCurrency is used when a provider does not report a currency.
const DefaultCurrency = "USD"

// MarketCapUnavailable is the display value of an unknown market capitalization.
const MarketCapUnavailable = "N/A"

// Quote is a point-in-time price snapshot for a ticker.
//
// Numeric fields are always finite; a provider response that cannot fill
// all of them is treated as no data rather than surfaced partially.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	DayHigh       float64 `json:"dayHigh"`
	DayLow        float64 `json:"dayLow"`
	MarketCap     string  `json:"marketCap"`
	Currency      string  `json:"currency"`
}

// QuoteMetadata holds the descriptive fields of a quote that do not
// depend on the latest trade.
type QuoteMetadata struct {
	Name      string
	MarketCap string
	Currency  string
}

// Metadata returns the descriptive part of q.
func (q Quote) Metadata() QuoteMetadata {
	return QuoteMetadata{Name: q.Name, MarketCap: q.MarketCap, Currency: q.Currency}
}

// WithMetadata returns a copy of q whose descriptive fields are taken from m.
// Empty fields of m leave the corresponding field of q untouched.
func (q Quote) WithMetadata(m QuoteMetadata) Quote {
	if m.Name != "" {
		q.Name = m.Name
	}
	if m.MarketCap != "" {
		q.MarketCap = m.MarketCap
	}
	if m.Currency != "" {
		q.Currency = m.Currency
	}
	return q
}
