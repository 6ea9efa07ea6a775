package models

// InstrumentType is the normalized kind of a listed instrument.
type InstrumentType string

const (
	InstrumentEquity InstrumentType = "equity"
	InstrumentETF    InstrumentType = "etf"
	InstrumentCrypto InstrumentType = "crypto"
	InstrumentIndex  InstrumentType = "index"
	InstrumentFund   InstrumentType = "fund"
	InstrumentOther  InstrumentType = "other"
)

// SearchResult is one instrument matched by a symbol search.
type SearchResult struct {
	Symbol   string         `json:"symbol" yaml:"symbol"`
	Name     string         `json:"name" yaml:"name"`
	Exchange string         `json:"exchange" yaml:"exchange"`
	Type     InstrumentType `json:"type" yaml:"type"`
	Currency string         `json:"currency,omitempty" yaml:"currency,omitempty"`
}
